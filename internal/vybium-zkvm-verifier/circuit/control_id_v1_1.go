package circuit

import "github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"

// Precomputed control IDs for the 1.1 circuits, indexed by po2 - core.MinCyclesPo2.
var v11SegmentControlIDs = controlIDTables{
	core.HashSha256: {
		core.MustParseDigest("0x1e12cba80c4d496ba26da521adfa6fe1cb9b3f04456ef445d55342d04b54546f"), // po2 13
		core.MustParseDigest("0xdda93d60bc61cc660475e49effb9491007dbd1b491ba41b63cadcd17bcf286c9"), // po2 14
		core.MustParseDigest("0x7e7153446cc07e1a03b1822d7a379007cd16ee3d85d661cfddc8c41da527c104"), // po2 15
		core.MustParseDigest("0x7c6f0c27242c1f21a50f706acd71186d89159cfdf6bf7998b3a3f2e08bec80a4"), // po2 16
		core.MustParseDigest("0x4456e46eb80b194afcd93170cb7906bd183bbdc6b1059abb09c0a7b74a441caf"), // po2 17
		core.MustParseDigest("0x2f03b807a3b06f9e86fd06f1bf55da2d7cb172fc21dc6ec718083f387b3a6d55"), // po2 18
		core.MustParseDigest("0xebe43f063285dc87b6c813710115c1351c98ba2f112c5a3dacf231241fcca4c1"), // po2 19
		core.MustParseDigest("0xf02b33c14ae104187641fb814dc092238a884cdcd6530691516d29a0eb7f7e69"), // po2 20
		core.MustParseDigest("0x5a3dbe5c7435f039aa0baed47aa02c3c15c1ebd2c85d103af27bd556bd0f2c70"), // po2 21
		core.MustParseDigest("0x5bcefbcec491cdd0407ad5ff58cec737d5b8f2a60a37d35fe942277bdd849ba4"), // po2 22
		core.MustParseDigest("0xebb151920f2e30eb8063efde50b8973c3cc38d6eedfbdcb4d8277387d50cba01"), // po2 23
		core.MustParseDigest("0x88cf2f5f66a13913d4522ea51826bd4f52b0f81218d6372f3e42be91bae9940b"), // po2 24
	},
	core.HashPoseidon2: {
		core.MustParseDigest("0xe247d024550ff516f0ebd03cb23dd1a1f5184d2161d1101d8cc62c08cd20f362"), // po2 13
		core.MustParseDigest("0xc8acbb0ac2b267e19aa674b1a1a58a983ca2c11ef68bc9a4e48fa6a1e2ef743c"), // po2 14
		core.MustParseDigest("0xd841043fb64580d5ccfe588ff8185fa3ddaae49197cf220f2196985f0778fae5"), // po2 15
		core.MustParseDigest("0xdd0f4448e91705ba56e05d15835bd58ce05f09367bdaa813b1de715f1bb31ae9"), // po2 16
		core.MustParseDigest("0x9c8c6fcab7c5079493dacf24138524043a4835f2eb7cf12f40676fab8ac341f2"), // po2 17
		core.MustParseDigest("0xdda3e3c2438736ffb679ce2e47e178108ef84168cc2c46a371464a8e39f44a83"), // po2 18
		core.MustParseDigest("0x0b5ce4bbe4cf5d91f4d160e52fe1abb41bef04f72b6d089685f8661ff930bbb6"), // po2 19
		core.MustParseDigest("0x7c3567f8dee4fd34287b6b2fcbf6cf49614cdffcebcc3513924d797be6de40ac"), // po2 20
		core.MustParseDigest("0xc67c3bcb779a040f70612491a49a1b49a3d5787b4b186afa622833c0235e76e5"), // po2 21
		core.MustParseDigest("0x87c70f9f23ff965d39f80bdfcdc82c770432bef0ec0065d6963e4fbfcd29c1ca"), // po2 22
		core.MustParseDigest("0x36074f869bae14ac263493b1ebdaec1018c2878f451857af23b25802131ceb4e"), // po2 23
		core.MustParseDigest("0x1cda465647e97c511662e3969c09440295409ff41d8f249884d31938eafa96c6"), // po2 24
	},
	core.HashBlake2b: {
		core.MustParseDigest("0xcf701b3a881757c1b2ac83ca7551c8e8d2052327600c0f62a917e4eff9f439b7"), // po2 13
		core.MustParseDigest("0x25eb659aec0fd104de1ad165d1da1d73adbbd62ae11170fb11ee21c8ea11c199"), // po2 14
		core.MustParseDigest("0x389d881766afe09e12f3ddc68052d7ea9ca9110303595645035e012d764ac44d"), // po2 15
		core.MustParseDigest("0x0fb91c18666ffed075da0ccb6e4dd2074d061350b36c411afb53fd01acc256b2"), // po2 16
		core.MustParseDigest("0xe5b2a9eebba4c3a08f7ca459bc2759d9ef7a49de913da02e44b24e17c2b1c7fb"), // po2 17
		core.MustParseDigest("0x7ce3678d79a3cf678db323523cc146a030e03c68f599b08b8df5c9affc185eac"), // po2 18
		core.MustParseDigest("0x18a1046496e3ba45d1fc883f820fda7a13d1486d6e1405bf2f67ea0eebd257f7"), // po2 19
		core.MustParseDigest("0x5ae630f92362368c2d169c9c350a57cedb4103ca1bedfed7d1b807889dc29d87"), // po2 20
		core.MustParseDigest("0x4a4eca4ac378884ff64a750a9a6a2e15af783cfb9b8ae86e2e97516856a6c2af"), // po2 21
		core.MustParseDigest("0x1ac7d983a5aa20e11c926bc50188d504655b6f40381e2226c7eda5dec42d5c06"), // po2 22
		core.MustParseDigest("0x487080d91743a6cc80a76290a3abddaa65691f8c354a2729fcbe2f57b19bb1ee"), // po2 23
		core.MustParseDigest("0xff25f51a868b18c504325fdc9ab8bc95f7c70ca660766837b6dd76620775afa2"), // po2 24
	},
}

// Control IDs of the 1.1 recursion programs allowed in succinct receipts.
var v11RecursionControlIDs = []core.Digest{
	core.MustParseDigest("0x1592e5dadddd8b77d831c395e23562906731b5b4664d372d729f6d0fd0b7f7b7"), // lift_14
	core.MustParseDigest("0xc8aa0e8ce974b48cbf42d3eaaf961c26f5d2f3730f1fff7ada279d6cd170639f"), // lift_15
	core.MustParseDigest("0xb4519b6f9e6f129d8aa5c6932934be42ce4c72362e08ee2eb70f9bf1dcc208f1"), // lift_16
	core.MustParseDigest("0x982ff40789316f9375ab8e55140a091b736c462a0471b3e66d094e65196074b4"), // lift_17
	core.MustParseDigest("0xd7b680d90cf8e98fe36111527e49dd42f48076a1a61cb5f5e5b996ff65f9234a"), // lift_18
	core.MustParseDigest("0x3c20979ec97f8b33250d10e73b390a75516a21a6ad9f5835ace9c5417365b853"), // lift_19
	core.MustParseDigest("0x4541ed094408785bcdb1804adddcf6684c2fa0752c913193c98d40198667812f"), // lift_20
	core.MustParseDigest("0x09c5db28e0f38eec1696a4fd0ef125b142e8c11430c28bda0e112817622cb77c"), // lift_21
	core.MustParseDigest("0x8d555deaf8421684183a6e4dbec4d1942213f194c9215d9a08f5d2d57c83e0bd"), // join
	core.MustParseDigest("0x8d2daef8d118152b1bb96edff4f27867621486900c59e6f3e29cb72ed1b0f315"), // resolve
	core.MustParseDigest("0x96057365915e6ef91404ac3c05e9131f12ca4d2a8b3e80519d98ce94394a06f4"), // identity
}

// Fingerprints of the generated 1.1 tap tables.
var v11SegmentTapsFingerprint = core.MustParseDigest("0xbe4e2c9595c3db251b8318c3987ce2d6ccbaa9401125b99afa3da6dadbccaa2d")

var v11RecursionTapsFingerprint = core.MustParseDigest("0xb32a99c58aaa258e9a51672ac321a71779dde5bc53ad959e05999e17b862719d")
