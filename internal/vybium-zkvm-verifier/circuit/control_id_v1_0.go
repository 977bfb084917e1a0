package circuit

import "github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"

// Precomputed control IDs for the 1.0 circuits, indexed by po2 - core.MinCyclesPo2.
var v10SegmentControlIDs = controlIDTables{
	core.HashSha256: {
		core.MustParseDigest("0x3fbbb7e770f89715068d51da22333ce03b4bcc4665564fb0aee7ae079660151d"), // po2 13
		core.MustParseDigest("0xfce662145aa0a4f4ba55cec3bf6a42458d8c78429088c4314afb8dc90728436a"), // po2 14
		core.MustParseDigest("0x2454ffb04f24c6d4a6251fe281ac3ddd2cee2edefe8170448a3c32655893d16f"), // po2 15
		core.MustParseDigest("0x6df087ba8e72a67385d0a3d6cb6570223448b3587163a3c67d23a2e033cf56bf"), // po2 16
		core.MustParseDigest("0x5ea55ebc8115e74cf17552ccd311a913da75124d0d65625c74092e85abf19d7d"), // po2 17
		core.MustParseDigest("0x9759c786b2d99749b98167615dd706ddc28d2673069413837787065812494392"), // po2 18
		core.MustParseDigest("0x8940769b1e9999148e70e70d68236b720c476fff8dc14add4c6e9e40b9069421"), // po2 19
		core.MustParseDigest("0x216ed7de5e3ba45299867803d580b3428c76fcc892452d99382da7db5389d698"), // po2 20
		core.MustParseDigest("0xc3d2d5bfa956602ab1d14c7fd3e89c01eaa434bd6adb0614d5ba83d07b6764c0"), // po2 21
		core.MustParseDigest("0xb941b0b8812073021262ab9dd92aa5eace4c8ea4f35f89d0321f0ee13c1cff35"), // po2 22
		core.MustParseDigest("0x6558de48a14baae2b9b70c84a6d7b47f23231bb83786cb60f41110f16ca6049d"), // po2 23
		core.MustParseDigest("0xc2738d0b0c2a2ff94b876eff524c209e0137ec40d91a384131a6c0749b2ebf95"), // po2 24
	},
	core.HashPoseidon2: {
		core.MustParseDigest("0x56246bfb46b1196c9e52b62768516603b2087684f2825772ceddc3e0001d0bf2"), // po2 13
		core.MustParseDigest("0xadc7d0303a491321ba07bad86049513d0f9aaf59f2a0342b3061bcc40c75a0d5"), // po2 14
		core.MustParseDigest("0x85236054881028cd47d8d256319c906a630455e44beba8b5e7abec2e59646e9b"), // po2 15
		core.MustParseDigest("0x5a383f05f43787f9284af5388b536379fb3b627b87c449f1393b3b47d253c53a"), // po2 16
		core.MustParseDigest("0xc75151bdc24cf3578fa8e0afd54d7fc31dfc9926554b0b4a898a5552bec929e7"), // po2 17
		core.MustParseDigest("0x90852add63cd8a1cc3b2bacbaa10bc13be0476f0faf93500185f5bd2de643a66"), // po2 18
		core.MustParseDigest("0x51bf882bee9849eca6237e2c4cbccaf77a353e94ce9a7937e04df46ea5c3036a"), // po2 19
		core.MustParseDigest("0x2926d40d66f32ff0e32c8083835cf277a682d43a0c2ad1f1dc6844e164574873"), // po2 20
		core.MustParseDigest("0xa61bb2ffb7175ad30269e725cc8cdba924a4ed02b39a17ef1a3dca4626cd1aa0"), // po2 21
		core.MustParseDigest("0xaca6ccd343ab463e65c4e9f242d647b5aa14608038a63ae5ca8dac30fe097156"), // po2 22
		core.MustParseDigest("0x16c541c69df4f15e3b86b4786efc99858dc0d966d54751d59a1c118d3b0525c6"), // po2 23
		core.MustParseDigest("0x0b25857d349f25253f9261b1b8adcb831aed6cc6be231b39d2d1f511dc4fa2a0"), // po2 24
	},
	core.HashBlake2b: {
		core.MustParseDigest("0x11b4f1c9e6929fb7daa15c178d55b417ed74325278b3460d020a5458fc2d1340"), // po2 13
		core.MustParseDigest("0xc1c9676e806bdaa6ebe4d0293e986b24f5dd02fbb367bfa82b99d3efbfeb9acd"), // po2 14
		core.MustParseDigest("0x835bcbedec8fc0f25f0a0cbddbd23255a588a8f79a4b5722454f7be2d7ca1e60"), // po2 15
		core.MustParseDigest("0xa849a0408e70a52490f81ee7d2bbd06e3739bd9d7f77ec8c367a56cbdf72da0e"), // po2 16
		core.MustParseDigest("0xce3413049cc5a06578315b577c82bac45c0b57a19ab04093c6328d620e186169"), // po2 17
		core.MustParseDigest("0xc9388ec30f074ac44df7242c68bd20db0e513734f736fbf1806f0fba01cdddd2"), // po2 18
		core.MustParseDigest("0x036a062711c7cb8d1d409b1d53f29c7416870a22dfd53ad2c563b720ca5b4ba5"), // po2 19
		core.MustParseDigest("0xb30902725777c25f51a150215fa14567c2df60198774a067fd90249d489cc303"), // po2 20
		core.MustParseDigest("0x40d17671d60cf646ea5f40a1c3d99226f0fde9d34afe14566d5df4cb4e3be49b"), // po2 21
		core.MustParseDigest("0x3c9119b675a5a28d08e4bdfc59403ec463c6f36ef758ae94c2d4afd71c8f8270"), // po2 22
		core.MustParseDigest("0xa184a3acd9386a692fc281b7a68781358849aca99654a48c6a3bb685b740681b"), // po2 23
		core.MustParseDigest("0xed44f9fedb23d218d2fffb7003023280fc25c08b5b96a8de4029125676a32baf"), // po2 24
	},
}

// Control IDs of the 1.0 recursion programs allowed in succinct receipts.
var v10RecursionControlIDs = []core.Digest{
	core.MustParseDigest("0xbcf1397bd7412edbd90718522e40c9349bd4441b66961626592a28ad26c50d5a"), // lift_14
	core.MustParseDigest("0x84b6b8ebb0aab29743a21004e75195469e0b79faeeb92ff4e91ca9254f983a53"), // lift_15
	core.MustParseDigest("0x0febeee973824d6cc8bc8b30c2cdb0f54c9e83cf5e17466ce47c199ee9bef170"), // lift_16
	core.MustParseDigest("0x659fbc3e81d6d2e84690517e8476056c17386758bf6227596a6b5d6dd75a3561"), // lift_17
	core.MustParseDigest("0xefa37b0a2fd914dd25b4764675aebc4aa9faaec88513e9a08f6611384cae289e"), // lift_18
	core.MustParseDigest("0xda58ac4c997a21beada8f1d7bbd41f7c7ada86687e084185321097ec8a369d2b"), // lift_19
	core.MustParseDigest("0xbbee4ed501df6a70f7b98639b24f5e6e4c18c911f59c8130e5fcbd8d6f219ccc"), // lift_20
	core.MustParseDigest("0x907753ee5ae3eccfed00d5266f6e05dcd23a721a94359a89fb93f73d3c95a7c3"), // lift_21
	core.MustParseDigest("0xf29e0f1f37d41464c482960d720acab6a4b3ba07c5003f008ac0720e4a538c68"), // join
	core.MustParseDigest("0xe02c259e8b09bd90d3911e96f1eb315ce5b2ec4c73dad150742ed7f1e74a450f"), // resolve
	core.MustParseDigest("0x89df5359311c87f1f7f057758930aa7fd5abbb41996a31c1dfd0399e878fe992"), // identity
}

// Fingerprints of the generated 1.0 tap tables.
var v10SegmentTapsFingerprint = core.MustParseDigest("0xd66e1cbd750e22bc14aecc4c0d1921aedd0154f42288e6ba232cf6d2665ed21d")

var v10RecursionTapsFingerprint = core.MustParseDigest("0x5d48f9597a6114f09bd1a752c2e19ffe169138e999a769a3b8c1bde3145a04ed")
