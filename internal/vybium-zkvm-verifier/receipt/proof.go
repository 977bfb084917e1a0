package receipt

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

// Proof is the verifiable part of a receipt. When decoded from a full receipt
// document, fields other than the inner receipt are ignored.
type Proof struct {
	Inner InnerReceipt `json:"inner"`
}

// NewProof wraps an inner receipt
func NewProof(inner InnerReceipt) *Proof {
	return &Proof{Inner: inner}
}

// Verify checks that the proof attests that the program imageID halted with
// exit code 0 and produced a journal hashing to journalDigest. It uses the
// default context, which is pinned to the 1.2 circuits.
func (p *Proof) Verify(imageID, journalDigest core.Digest) error {
	return p.VerifyWithContext(Default(), imageID, journalDigest)
}

// VerifyWithContext is Verify under an explicit context
func (p *Proof) VerifyWithContext(ctx *VerifierContext, imageID, journalDigest core.Digest) error {
	log.Debug("Verifying proof", "kind", p.Inner.Kind(), "version", ctx.Version().Name(), "image", imageID)

	// Reject receipts made for other parameters before running the engine
	if err := p.checkParameters(ctx); err != nil {
		return err
	}

	if err := p.Inner.VerifyIntegrityWithContext(ctx); err != nil {
		return err
	}

	// Every field of the claim is constrained, so the expected digest can be
	// built directly without opening the receipt's claim.
	expected := claim.OkDigest(imageID, journalDigest)
	actual, err := p.Inner.Claim()
	if err != nil {
		return err
	}

	if want, got := expected.Digest(), actual.Digest(); want != got {
		if value, err := actual.Value(); err == nil {
			log.Debug("Receipt claim does not match expected claim", "receipt", value, "expected", expected)
		}
		return core.Mismatch(core.ErrClaimDigestMismatch, want, got, "receipt claim does not match expected claim")
	}

	return nil
}

func (p *Proof) checkParameters(ctx *VerifierContext) error {
	switch p.Inner.Kind() {
	case KindComposite:
		return checkParameters(ctx.compositeDigest, p.Inner.VerifierParameters())
	case KindSuccinct:
		return checkParameters(ctx.succinctDigest, p.Inner.VerifierParameters())
	default:
		return core.Errorf(core.ErrReceiptFormat, "empty inner receipt")
	}
}

// Claim returns the claim the proof attests to
func (p *Proof) Claim() (claim.MaybePruned[claim.ReceiptClaim], error) {
	return p.Inner.Claim()
}
