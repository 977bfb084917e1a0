package receipt

import (
	"slices"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// SegmentVerifierParameters fix what a segment receipt may be proven with. A
// receipt carries their digest so a receipt made for one parameter set is never
// accepted under another.
type SegmentVerifierParameters struct {
	ControlIDs      []core.Digest        `json:"control_ids"`
	ProofSystemInfo circuit.ProtocolInfo `json:"proof_system_info"`
	CircuitInfo     circuit.ProtocolInfo `json:"circuit_info"`
}

// NewSegmentVerifierParameters allows every hash function of v up to maxPo2
func NewSegmentVerifierParameters(v *circuit.Version, maxPo2 int) SegmentVerifierParameters {
	return SegmentVerifierParameters{
		ControlIDs:      v.AllowedControlIDs(maxPo2),
		ProofSystemInfo: circuit.ProofSystemInfo,
		CircuitInfo:     v.Segment().Protocol,
	}
}

// Allows reports whether id is an allowed control ID
func (p SegmentVerifierParameters) Allows(id core.Digest) bool {
	return slices.Contains(p.ControlIDs, id)
}

// Digest hashes the parameters as a tagged struct
func (p SegmentVerifierParameters) Digest() core.Digest {
	return core.TaggedStruct(core.Sha256, "risc0.SegmentReceiptVerifierParameters", []core.Digest{
		core.TaggedList(core.Sha256, "risc0.ControlIdSet", p.ControlIDs),
		p.ProofSystemInfo.Digest(),
		p.CircuitInfo.Digest(),
	}, nil)
}

// SuccinctVerifierParameters fix the recursion programs a succinct receipt may
// be proven with, by the Merkle root over their control IDs
type SuccinctVerifierParameters struct {
	ControlRoot     core.Digest          `json:"control_root"`
	ProofSystemInfo circuit.ProtocolInfo `json:"proof_system_info"`
	CircuitInfo     circuit.ProtocolInfo `json:"circuit_info"`
}

// NewSuccinctVerifierParameters uses the control root of v
func NewSuccinctVerifierParameters(v *circuit.Version) SuccinctVerifierParameters {
	return SuccinctVerifierParameters{
		ControlRoot:     v.ControlRoot(),
		ProofSystemInfo: circuit.ProofSystemInfo,
		CircuitInfo:     v.Recursion().Protocol,
	}
}

// Digest hashes the parameters as a tagged struct
func (p SuccinctVerifierParameters) Digest() core.Digest {
	return core.TaggedStruct(core.Sha256, "risc0.SuccinctReceiptVerifierParameters", []core.Digest{
		p.ControlRoot,
		p.ProofSystemInfo.Digest(),
		p.CircuitInfo.Digest(),
	}, nil)
}

// CompositeVerifierParameters wrap the parameters of the segments a composite
// receipt is built from
type CompositeVerifierParameters struct {
	Segment claim.MaybePruned[SegmentVerifierParameters] `json:"segment"`
}

// NewCompositeVerifierParameters wraps segment parameters
func NewCompositeVerifierParameters(segment SegmentVerifierParameters) CompositeVerifierParameters {
	return CompositeVerifierParameters{Segment: claim.Value(segment)}
}

// Digest hashes the parameters as a tagged struct
func (p CompositeVerifierParameters) Digest() core.Digest {
	return core.TaggedStruct(core.Sha256, "risc0.CompositeReceiptVerifierParameters", []core.Digest{
		p.Segment.Digest(),
	}, nil)
}
