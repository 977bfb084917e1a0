package claim

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// Journal holds the public output bytes written by the guest
type Journal struct {
	Bytes hexutil.Bytes `json:"bytes"`
}

// NewJournal wraps journal bytes
func NewJournal(b []byte) Journal {
	return Journal{Bytes: b}
}

// Digest is the SHA-256 of the journal bytes
func (j Journal) Digest() core.Digest {
	return core.Sha256.HashBytes(j.Bytes)
}

// Assumption is a claim the guest relied on without proving it itself. It must
// be discharged by a receipt verified under ControlRoot.
type Assumption struct {
	Claim       core.Digest `json:"claim"`
	ControlRoot core.Digest `json:"control_root"`
}

// Digest hashes the assumption as a tagged struct
func (a Assumption) Digest() core.Digest {
	return core.TaggedStruct(core.Sha256, "risc0.Assumption", []core.Digest{a.Claim, a.ControlRoot}, nil)
}

// Assumptions is the ordered list of assumptions of an execution
type Assumptions []MaybePruned[Assumption]

// Add appends an assumption
func (a *Assumptions) Add(assumption Assumption) {
	*a = append(*a, Value(assumption))
}

// Digest hashes the list front to back; the empty list hashes to zero
func (a Assumptions) Digest() core.Digest {
	digests := make([]core.Digest, len(a))
	for i, assumption := range a {
		digests[i] = assumption.Digest()
	}
	return core.TaggedList(core.Sha256, "risc0.Assumptions", digests)
}

// Output is the public output of an execution
type Output struct {
	Journal     MaybePruned[Journal]     `json:"journal"`
	Assumptions MaybePruned[Assumptions] `json:"assumptions"`
}

// Digest hashes the output as a tagged struct. A nil output means the
// execution produced none and hashes to zero.
func (o *Output) Digest() core.Digest {
	if o == nil {
		return core.ZeroDigest
	}
	return core.TaggedStruct(core.Sha256, "risc0.Output", []core.Digest{o.Journal.Digest(), o.Assumptions.Digest()}, nil)
}

// Unknown is a claim of erased type. Only its digest survives, so it is always
// carried pruned.
type Unknown struct{}

func (Unknown) valueless() {}

// Digest of the erased value; never called on a pruned MaybePruned
func (Unknown) Digest() core.Digest {
	return core.ZeroDigest
}
