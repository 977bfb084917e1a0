// Package receipttest builds development receipts accepted by the commitment
// engine, for tests of the verifier and its callers. Verifier contexts only
// accept them after Context installs that engine.
package receipttest

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/engine"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt"
)

// Engine returns the development engine Prover seals for
func Engine() engine.Engine {
	return engine.NewCommitment(core.Sha256)
}

// Context returns ctx verifying seals with Engine
func Context(ctx *receipt.VerifierContext) *receipt.VerifierContext {
	return ctx.WithEngine(Engine())
}

// Default is Context(receipt.Default())
func Default() *receipt.VerifierContext {
	return Context(receipt.Default())
}

// Prover seals receipts for the parameters of one verifier context
type Prover struct {
	ctx    *receipt.VerifierContext
	engine *engine.Commitment

	// Hashfn is the hash function named by segment receipts
	Hashfn string

	// Po2 is the segment size written into segment seals
	Po2 uint32

	// RecursionID is the recursion program succinct receipts claim to run
	RecursionID core.Digest
}

// NewProver creates a prover for the parameters of ctx. Its receipts verify
// under Context(ctx).
func NewProver(ctx *receipt.VerifierContext) *Prover {
	return &Prover{
		ctx:         ctx,
		engine:      engine.NewCommitment(core.Sha256),
		Hashfn:      core.HashPoseidon2,
		Po2:         16,
		RecursionID: ctx.Version().RecursionControlIDs()[0],
	}
}

// SessionClaims returns the claims of an n-segment session of imageID that
// halts with journal and the given assumptions
func SessionClaims(imageID core.Digest, journal []byte, n int, assumptions claim.Assumptions) []claim.ReceiptClaim {
	state := func(i int) claim.MaybePruned[claim.SystemState] {
		return claim.Value(claim.SystemState{
			PC:         uint32(0x1000 * (i + 1)),
			MerkleRoot: core.Sha256.HashBytes([]byte(fmt.Sprintf("memory %d", i))),
		})
	}

	claims := make([]claim.ReceiptClaim, n)
	for i := range claims {
		c := claim.ReceiptClaim{
			Pre:      state(i),
			Post:     state(i + 1),
			ExitCode: claim.ExitSplit,
			Output:   claim.Value[*claim.Output](nil),
		}
		if i == 0 {
			c.Pre = claim.Pruned[claim.SystemState](imageID)
		}
		if i == n-1 {
			c.Post = claim.Value(claim.SystemState{})
			c.ExitCode = claim.ExitHalted(0)
			c.Output = claim.Value(&claim.Output{
				Journal:     claim.Value(claim.NewJournal(journal)),
				Assumptions: claim.Value(assumptions),
			})
		}
		claims[i] = c
	}
	return claims
}

// Segment seals one segment receipt
func (p *Prover) Segment(index uint32, c claim.ReceiptClaim) receipt.SegmentReceipt {
	info := p.ctx.Version().Segment()
	controlID, _ := p.ctx.Version().ControlID(p.Hashfn, int(p.Po2))
	globals := engine.Globals{Po2: p.Po2, ControlID: controlID, ClaimDigest: c.Digest()}

	var params core.Digest
	if sp, ok := p.ctx.SegmentParameters(); ok {
		params = sp.Digest()
	}

	return receipt.SegmentReceipt{
		Seal:               p.engine.Seal(info.Taps, info, globals, []byte(fmt.Sprintf("segment %d", index))),
		Index:              index,
		Hashfn:             p.Hashfn,
		VerifierParameters: params,
		Claim:              c,
	}
}

// Composite seals a composite receipt over claims with the given assumption receipts
func (p *Prover) Composite(claims []claim.ReceiptClaim, assumptions ...receipt.InnerAssumptionReceipt) *receipt.CompositeReceipt {
	segments := make([]receipt.SegmentReceipt, len(claims))
	for i, c := range claims {
		segments[i] = p.Segment(uint32(i), c)
	}

	var params core.Digest
	if cp, ok := p.ctx.CompositeParameters(); ok {
		params = cp.Digest()
	}

	return &receipt.CompositeReceipt{
		Segments:           segments,
		AssumptionReceipts: assumptions,
		VerifierParameters: params,
	}
}

// Session seals an n-segment composite receipt proving Ok(imageID, journal)
func (p *Prover) Session(imageID core.Digest, journal []byte, n int) *receipt.CompositeReceipt {
	return p.Composite(SessionClaims(imageID, journal, n, claim.Assumptions{}))
}

// SessionWithAssumptions is Session for a guest that assumed the claims of the
// given receipts, each resolved by its receipt
func (p *Prover) SessionWithAssumptions(imageID core.Digest, journal []byte, n int, receipts ...receipt.InnerAssumptionReceipt) (*receipt.CompositeReceipt, error) {
	var assumptions claim.Assumptions
	for _, r := range receipts {
		digest, err := r.ClaimDigest()
		if err != nil {
			return nil, err
		}
		assumptions.Add(claim.Assumption{Claim: digest})
	}
	return p.Composite(SessionClaims(imageID, journal, n, assumptions), receipts...), nil
}

// Succinct seals a succinct receipt for claim c
func Succinct[C claim.Digestible](p *Prover, c claim.MaybePruned[C]) (*receipt.SuccinctReceipt[C], error) {
	info := p.ctx.Version().Recursion()
	globals := engine.Globals{ControlID: p.RecursionID, ClaimDigest: c.Digest()}

	proof, err := p.ctx.Version().RecursionInclusionProof(p.RecursionID)
	if err != nil {
		return nil, err
	}

	var params core.Digest
	if sp, ok := p.ctx.SuccinctParameters(); ok {
		params = sp.Digest()
	}

	return &receipt.SuccinctReceipt[C]{
		Seal:                  p.engine.Seal(info.Taps, info, globals, []byte("recursion")),
		ControlID:             p.RecursionID,
		Claim:                 c,
		Hashfn:                core.HashPoseidon2,
		VerifierParameters:    params,
		ControlInclusionProof: proof,
	}, nil
}

// SuccinctOk seals a succinct receipt proving Ok(imageID, journal)
func (p *Prover) SuccinctOk(imageID core.Digest, journal []byte) *receipt.SuccinctReceipt[claim.ReceiptClaim] {
	r, err := Succinct(p, claim.Value(claim.Ok(imageID, claim.Value(claim.NewJournal(journal)))))
	if err != nil {
		panic(err)
	}
	return r
}
