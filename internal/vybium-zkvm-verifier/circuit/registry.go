package circuit

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

const numPo2 = core.MaxCyclesPo2 - core.MinCyclesPo2 + 1

// controlIDTables holds, per hash function name, one control ID per supported po2
type controlIDTables map[string][numPo2]core.Digest

var (
	segmentProtocol   = NewProtocolInfo("RV32IM:rev1v1___")
	recursionProtocol = NewProtocolInfo("RECURSION:rev1v1")
)

const (
	segmentOutputSize   = 138
	segmentMixSize      = 40
	recursionOutputSize = 32
	recursionMixSize    = 20
)

// Version bundles the circuits and precomputed control IDs of one protocol release.
// Versions are immutable and safe to share between goroutines.
type Version struct {
	name           string
	segment        Info
	recursion      Info
	controlIDs     controlIDTables
	recursionIDs   []core.Digest
	recursionGroup *core.MerkleGroup
	controlRoot    core.Digest
}

func newVersion(name string, ids controlIDTables, recursionIDs []core.Digest, segmentTaps, recursionTaps core.Digest) *Version {
	group, err := core.NewMerkleGroup(recursionIDs)
	if err != nil {
		panic(fmt.Sprintf("circuit %s: %v", name, err))
	}

	return &Version{
		name: name,
		segment: Info{
			Protocol:   segmentProtocol,
			OutputSize: segmentOutputSize,
			MixSize:    segmentMixSize,
			Taps:       &TapSet{Name: "rv32im-" + name, Fingerprint: segmentTaps},
		},
		recursion: Info{
			Protocol:   recursionProtocol,
			OutputSize: recursionOutputSize,
			MixSize:    recursionMixSize,
			Taps:       &TapSet{Name: "recursion-" + name, Fingerprint: recursionTaps},
		},
		controlIDs:     ids,
		recursionIDs:   recursionIDs,
		recursionGroup: group,
		controlRoot:    group.Root(core.Poseidon2),
	}
}

var (
	v1_0 = newVersion("v1.0", v10SegmentControlIDs, v10RecursionControlIDs, v10SegmentTapsFingerprint, v10RecursionTapsFingerprint)
	v1_1 = newVersion("v1.1", v11SegmentControlIDs, v11RecursionControlIDs, v11SegmentTapsFingerprint, v11RecursionTapsFingerprint)
	v1_2 = newVersion("v1.2", v12SegmentControlIDs, v12RecursionControlIDs, v12SegmentTapsFingerprint, v12RecursionTapsFingerprint)

	versions = []*Version{v1_0, v1_1, v1_2}
)

// V1_0 returns the 1.0 circuits
func V1_0() *Version { return v1_0 }

// V1_1 returns the 1.1 circuits
func V1_1() *Version { return v1_1 }

// V1_2 returns the 1.2 circuits
func V1_2() *Version { return v1_2 }

// Current returns the newest supported version
func Current() *Version { return v1_2 }

// Versions returns every supported version, oldest first
func Versions() []*Version {
	return append([]*Version(nil), versions...)
}

// LookupVersion finds a version by name; "v1.2" and "1.2" are equivalent
func LookupVersion(name string) (*Version, bool) {
	if !strings.HasPrefix(name, "v") {
		name = "v" + name
	}
	for _, v := range versions {
		if v.name == name {
			return v, true
		}
	}
	return nil, false
}

// ControlID looks up a control ID in the current version's tables
func ControlID(hashName string, po2 int) (core.Digest, bool) {
	return Current().ControlID(hashName, po2)
}

// Po2ForCycles returns the smallest supported po2 whose segment holds cycles
func Po2ForCycles(cycles int) (int, bool) {
	po2 := 0
	if cycles > 1 {
		po2 = bits.Len(uint(cycles - 1))
	}
	if po2 < core.MinCyclesPo2 {
		po2 = core.MinCyclesPo2
	}
	if po2 > core.MaxCyclesPo2 {
		return 0, false
	}
	return po2, true
}

// Name returns the version name, e.g. "v1.2"
func (v *Version) Name() string { return v.name }

// Segment returns the base execution (RV32IM) circuit
func (v *Version) Segment() Info { return v.segment }

// Recursion returns the recursion circuit used by succinct receipts
func (v *Version) Recursion() Info { return v.recursion }

// ControlID returns the control ID for a hash function and po2.
// Unknown hash names and po2 values outside [MinCyclesPo2, MaxCyclesPo2] report false.
func (v *Version) ControlID(hashName string, po2 int) (core.Digest, bool) {
	if po2 < core.MinCyclesPo2 || po2 > core.MaxCyclesPo2 {
		return core.Digest{}, false
	}
	table, ok := v.controlIDs[hashName]
	if !ok {
		return core.Digest{}, false
	}
	return table[po2-core.MinCyclesPo2], true
}

// ControlIDs returns the control IDs for one hash function up to maxPo2
func (v *Version) ControlIDs(hashName string, maxPo2 int) []core.Digest {
	var ids []core.Digest
	for po2 := core.MinCyclesPo2; po2 <= maxPo2; po2++ {
		id, ok := v.ControlID(hashName, po2)
		if !ok {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// AllowedControlIDs returns the control IDs of every hash function up to maxPo2,
// grouped by hash name in sorted order
func (v *Version) AllowedControlIDs(maxPo2 int) []core.Digest {
	var ids []core.Digest
	for _, name := range core.SuiteNames() {
		ids = append(ids, v.ControlIDs(name, maxPo2)...)
	}
	return ids
}

// RecursionControlIDs returns the control IDs of the allowed recursion programs
func (v *Version) RecursionControlIDs() []core.Digest {
	return append([]core.Digest(nil), v.recursionIDs...)
}

// ControlRoot returns the poseidon2 Merkle root over the recursion control IDs
func (v *Version) ControlRoot() core.Digest {
	return v.controlRoot
}

// RecursionInclusionProof proves that a recursion control ID is under ControlRoot
func (v *Version) RecursionInclusionProof(controlID core.Digest) (core.MerkleProof, error) {
	return v.recursionGroup.Proof(controlID, core.Poseidon2)
}
