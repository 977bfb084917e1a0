package receipt

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// CompositeReceipt proves a session as a chain of segment receipts, plus one
// receipt for each assumption the session made
type CompositeReceipt struct {
	Segments           []SegmentReceipt         `json:"segments"`
	AssumptionReceipts []InnerAssumptionReceipt `json:"assumption_receipts"`
	VerifierParameters core.Digest              `json:"verifier_parameters"`
}

// Inner wraps the receipt as an InnerReceipt
func (r *CompositeReceipt) Inner() InnerReceipt {
	return InnerReceipt{composite: r}
}

// VerifyIntegrityWithContext checks every segment, the chain between them and
// the resolution of every assumption
func (r *CompositeReceipt) VerifyIntegrityWithContext(ctx *VerifierContext) error {
	log.Debug("Verifying composite receipt", "segments", len(r.Segments), "assumptions", len(r.AssumptionReceipts))

	if err := checkParameters(ctx.compositeDigest, r.VerifierParameters); err != nil {
		return err
	}
	if err := r.checkChain(); err != nil {
		return err
	}

	for i := range r.Segments {
		if err := r.Segments[i].VerifyIntegrityWithContext(ctx); err != nil {
			return err
		}
	}

	final := r.Segments[len(r.Segments)-1].Claim
	switch final.ExitCode.System {
	case claim.Halted, claim.Paused:
	default:
		return core.Errorf(core.ErrUnexpectedExitCode, "final segment exited with %s", final.ExitCode)
	}

	return r.verifyAssumptions(ctx, final)
}

func (r *CompositeReceipt) verifyAssumptions(ctx *VerifierContext, final claim.ReceiptClaim) error {
	assumptions, err := r.finalAssumptions(final)
	if err != nil {
		return err
	}
	if len(assumptions) != len(r.AssumptionReceipts) {
		return core.Errorf(core.ErrUnresolvedAssumption, "%d assumptions but %d assumption receipts", len(assumptions), len(r.AssumptionReceipts))
	}

	for i, pruned := range assumptions {
		assumption, err := pruned.Value()
		if err != nil {
			return core.Wrap(core.ErrUnresolvedAssumption, err, fmt.Sprintf("assumption %d", i))
		}

		assumptionCtx := ctx
		if !assumption.ControlRoot.IsZero() {
			assumptionCtx = ctx.WithControlRoot(assumption.ControlRoot)
		}

		receipt := r.AssumptionReceipts[i]
		if err := receipt.VerifyIntegrityWithContext(assumptionCtx); err != nil {
			return err
		}
		digest, err := receipt.ClaimDigest()
		if err != nil {
			return err
		}
		if digest != assumption.Claim {
			return core.Mismatch(core.ErrUnresolvedAssumption, assumption.Claim, digest,
				fmt.Sprintf("assumption %d is not proven by its receipt", i))
		}
	}

	return nil
}

// finalAssumptions returns the assumptions of the last segment. A pruned
// output is fine when no assumption receipts accompany it.
func (r *CompositeReceipt) finalAssumptions(final claim.ReceiptClaim) (claim.Assumptions, error) {
	assumptions, err := final.Assumptions()
	if err != nil {
		if len(r.AssumptionReceipts) == 0 && final.Output.IsPruned() {
			return nil, nil
		}
		return nil, core.Wrap(core.ErrUnresolvedAssumption, err, "final segment assumptions")
	}
	return assumptions, nil
}

// checkChain verifies that the segments form one contiguous execution
func (r *CompositeReceipt) checkChain() error {
	if len(r.Segments) == 0 {
		return core.Errorf(core.ErrReceiptFormat, "composite receipt has no segments")
	}

	for i := range r.Segments {
		seg := &r.Segments[i]
		if seg.Index != uint32(i) {
			return core.Errorf(core.ErrReceiptFormat, "segment %d has index %d", i, seg.Index)
		}
		if i == len(r.Segments)-1 {
			break
		}

		if seg.Claim.ExitCode != claim.ExitSplit {
			return core.Errorf(core.ErrUnexpectedExitCode, "segment %d exited with %s before the final segment", i, seg.Claim.ExitCode)
		}
		next := &r.Segments[i+1]
		if post, pre := seg.Claim.Post.Digest(), next.Claim.Pre.Digest(); post != pre {
			return core.Mismatch(core.ErrReceiptFormat, post, pre,
				fmt.Sprintf("segment %d post state does not match segment %d pre state", i, i+1))
		}
	}

	return nil
}

// Claim composes the session claim from the first and last segments. Resolved
// assumptions are removed from the output since each one has a receipt.
func (r *CompositeReceipt) Claim() (claim.ReceiptClaim, error) {
	if err := r.checkChain(); err != nil {
		return claim.ReceiptClaim{}, err
	}

	first := r.Segments[0].Claim
	last := r.Segments[len(r.Segments)-1].Claim

	output := last.Output
	if len(r.AssumptionReceipts) > 0 {
		value, err := last.Output.Value()
		if err != nil {
			return claim.ReceiptClaim{}, core.Wrap(core.ErrReceiptFormat, err, "final output")
		}
		if value != nil {
			output = claim.Value(&claim.Output{
				Journal:     value.Journal,
				Assumptions: claim.Value(claim.Assumptions{}),
			})
		}
	}

	return claim.ReceiptClaim{
		Pre:      first.Pre,
		Post:     last.Post,
		ExitCode: last.ExitCode,
		Input:    first.Input,
		Output:   output,
	}, nil
}
