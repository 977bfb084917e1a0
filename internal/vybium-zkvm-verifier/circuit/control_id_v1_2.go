package circuit

import "github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"

// Precomputed control IDs for the 1.2 circuits, indexed by po2 - core.MinCyclesPo2.
var v12SegmentControlIDs = controlIDTables{
	core.HashSha256: {
		core.MustParseDigest("0xea770eaf5409d291a1556fc0b2b6dd431860fd32e1422a98e1472fe008b2fa8b"), // po2 13
		core.MustParseDigest("0x31433649d458a726726d19118610fe92d0fd2996e9ca37fd9f35cceeae4a7052"), // po2 14
		core.MustParseDigest("0xee75e5a51c2d5e51017c701b8445e9c0083f7b6681bb4c7fb7fdb4e99e2601d4"), // po2 15
		core.MustParseDigest("0x19671ccb902dfd38c377cf7027355d07d866f98e1bc84b306a72a7ebbc698a22"), // po2 16
		core.MustParseDigest("0xfdbc56f623f5d60d238c5e8cb45d94e873b8fbfb841c63dc74a3a7735a8d1e99"), // po2 17
		core.MustParseDigest("0x9ebb3b80a39181c5cbf9559e142071769f7aad31d2813faf48df6a0b0bb274c0"), // po2 18
		core.MustParseDigest("0xb96064548dc6945a19d9318bb0e5dd58c68df2ea597464baba1f75ad385039df"), // po2 19
		core.MustParseDigest("0x5a416b52e99b89e08377ea2608aade396acc692e19821a9b390f46f1dfea13fd"), // po2 20
		core.MustParseDigest("0x245a64e32346dd89fba6e572715ab306865f3584ab90467897eccf104deeb97c"), // po2 21
		core.MustParseDigest("0x21c315521841c2e7c8089bb3e4a60b1b523e8a4f3d0fedb76cbd842e69c88ef1"), // po2 22
		core.MustParseDigest("0xae12367a3ad200b1d1b1a0848e6130a52a064ac9d010518d91a74fcca07cb82a"), // po2 23
		core.MustParseDigest("0xc877091c287985d8b249cc4e84695e9d1f1ee4140c5410e9b29d0335ab56b6f3"), // po2 24
	},
	core.HashPoseidon2: {
		core.MustParseDigest("0xeb8a98d7372a766081a7dec61480a7123b1ebfae4bf4355658cf30a009b9c1b4"), // po2 13
		core.MustParseDigest("0x44ba7421e9a988b5f01e67a29c0b56b14d3648895c2bc955c81aa295e4eb65e8"), // po2 14
		core.MustParseDigest("0x3d789d129f23c51666373e9ef89f6e85a85fc4563615a66c1401ae861d546a92"), // po2 15
		core.MustParseDigest("0xdf1379a667593a6ad68303a14da0795a0324f72af6459b855f71964bcb5f637d"), // po2 16
		core.MustParseDigest("0x31a45f9fc2eaeeceb2913beaced0a214686b16609333391f3cf4cee46e449db5"), // po2 17
		core.MustParseDigest("0x3b55b5fc7e0fbc3f980ae7ae67902b1d882c5743d9e252fc79cccbbea76a9d9a"), // po2 18
		core.MustParseDigest("0x75a7759edf494379cd8e0e32061ea0780a68263f2d97b6a4ffaf87973f97f055"), // po2 19
		core.MustParseDigest("0x0891cb4dcf649e2168c9b30b5828459eb614492d6cdbdeb402709a7d29c2aab8"), // po2 20
		core.MustParseDigest("0x4e199c99c60e1702f762fb80e5aabcda4288fc342ac0b3025f2153bcb42c0487"), // po2 21
		core.MustParseDigest("0xb206ce2a9a38b7b09fec75a591731b01aacb7b9d17dbbe325c1c2248265ce026"), // po2 22
		core.MustParseDigest("0xf43c7a81b72c40ee1a99f745e3d327c3e8b883c2056baaa8caa70bea2f21bfc2"), // po2 23
		core.MustParseDigest("0xb783b8d3525c451b8742d20edc9f49d25c3939eb35fe5bf2d350dceda25fbf5c"), // po2 24
	},
	core.HashBlake2b: {
		core.MustParseDigest("0xbf89c96af633d301971dc30a1784f74dd52104a31aba2cdfb13588bcd7ff80e7"), // po2 13
		core.MustParseDigest("0xb9e86e260a3672a4da7c9709b5f25c402f3a5373cb828c1999c5b2a8993afa51"), // po2 14
		core.MustParseDigest("0x1a1d2945ee1c79a51dcbfeb9d3b00cacc1b98eb5ee928a5176eba5a6ad5ee949"), // po2 15
		core.MustParseDigest("0xd52e7c335ec7b8e32abf89702c4fd664511653e2b2dfca728b25ec138d74727a"), // po2 16
		core.MustParseDigest("0xddc0bf13a47b0d2c59cc0947cf0e9a5866726251f18279236ce54c76ad061171"), // po2 17
		core.MustParseDigest("0x515e55aa989990aec2a10cf19463c2d81097b06c43f52757e464d39dc76a6aec"), // po2 18
		core.MustParseDigest("0xb7dfe511f0808629f9b55ac0b3df57da838dcecf634834a4d20aa317950a2a86"), // po2 19
		core.MustParseDigest("0x83406188238098e55219fa20eac9afcbfd03f8f6c1443cbc3c91021943be84a4"), // po2 20
		core.MustParseDigest("0x1d715e71e0dc270e913e3c1b8c4ab698091f99169d788984829e9eb4ccceca29"), // po2 21
		core.MustParseDigest("0xddaaa03a556d6d342588d8e5f6e032162981c0a790e2e5fe202db91c95a45474"), // po2 22
		core.MustParseDigest("0x237d41eb3e027a308c1cc64cd76978a304ccba8d429fbdeabf6f9f94c6be237f"), // po2 23
		core.MustParseDigest("0xa42094932bc08ae2e929a3d45a8f6b7fdaaa95493a4376eba14363b5ff619621"), // po2 24
	},
}

// Control IDs of the 1.2 recursion programs allowed in succinct receipts.
var v12RecursionControlIDs = []core.Digest{
	core.MustParseDigest("0x7e8a6099eb4435a0200fdd06fbc7d212031b034da75c42649fb056e52a61563c"), // lift_14
	core.MustParseDigest("0x69332bcb8ad12f76240db32f267da59c86739513eec71f543fc5012320c3f702"), // lift_15
	core.MustParseDigest("0xd1b92c5458763fcd335af64df3b1c40e294638b85f72f3a1c5648891b6b4821e"), // lift_16
	core.MustParseDigest("0x2e817ef280cd4c24e96c9b4dabbc13f40ef2f02c4df3b1a2a8e9cec1cba7fb09"), // lift_17
	core.MustParseDigest("0x33f05e5ca2c48bd54895757caee61ba59346e813442b4d652aa129205c460841"), // lift_18
	core.MustParseDigest("0x2d7f107a03151a50f8e568b8ec1d17efcb0d5b6ad5cb31f130cad4ad12974c51"), // lift_19
	core.MustParseDigest("0x6a8043733e1225f277e48550b09d0a17161d5f3cda4279192a9890edf241578e"), // lift_20
	core.MustParseDigest("0x1c99b47019d9686faafdbae90499a471444a45c8f2556f603685da253392e901"), // lift_21
	core.MustParseDigest("0xa18116ded3682a92ec65c84e2e9b87db7d239aaa052594781711488734496b69"), // join
	core.MustParseDigest("0x00d9b27debc5f9db974e77da6d3ff381888f18ce6a723f063139270c6693c7f9"), // resolve
	core.MustParseDigest("0x9c0563d4c8e5d0a201142e09d1ca21d5065f94fde5cc14e98efeb2b0df6ef5eb"), // identity
}

// Fingerprints of the generated 1.2 tap tables.
var v12SegmentTapsFingerprint = core.MustParseDigest("0x6cd1835a9f81e55b9d7bf020171b228a85989ee5d63f5a2f5db4dc987a6b6dea")

var v12RecursionTapsFingerprint = core.MustParseDigest("0xee09f61dd7540fe2c52a83deeee5003f6c951f00e040d6b740492b4ff1b2d9f3")
