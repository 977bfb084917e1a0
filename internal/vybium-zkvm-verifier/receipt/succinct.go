package receipt

import (
	"github.com/ethereum/go-ethereum/log"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/engine"
)

// SuccinctReceipt proves a claim of type C with a single recursion proof.
// ControlID names the recursion program and ControlInclusionProof shows it is
// one of the programs under the context's control root.
type SuccinctReceipt[C claim.Digestible] struct {
	Seal                  engine.Seal          `json:"seal"`
	ControlID             core.Digest          `json:"control_id"`
	Claim                 claim.MaybePruned[C] `json:"claim"`
	Hashfn                string               `json:"hashfn"`
	VerifierParameters    core.Digest          `json:"verifier_parameters"`
	ControlInclusionProof core.MerkleProof     `json:"control_inclusion_proof"`
}

// VerifyIntegrityWithContext checks that the seal proves Claim under an allowed recursion program
func (r *SuccinctReceipt[C]) VerifyIntegrityWithContext(ctx *VerifierContext) error {
	log.Debug("Verifying succinct receipt", "hashfn", r.Hashfn, "control_id", r.ControlID)

	if err := checkParameters(ctx.succinctDigest, r.VerifierParameters); err != nil {
		return err
	}
	params, _ := ctx.SuccinctParameters()

	hashFn, ok := ctx.Suite(r.Hashfn)
	if !ok {
		return core.Errorf(core.ErrInvalidHashSuite, "unsupported hash function %q", r.Hashfn)
	}

	if r.ControlID.IsZero() {
		return core.Errorf(core.ErrControlVerification, "zero recursion control ID")
	}
	if err := r.ControlInclusionProof.Verify(r.ControlID, params.ControlRoot, hashFn); err != nil {
		return err
	}

	info := ctx.Version().Recursion()
	if err := engine.CheckProtocol(info, r.Seal); err != nil {
		return err
	}
	if err := ctx.Engine().Verify(info.Taps, info, r.Seal); err != nil {
		return core.Wrap(core.ErrInvalidProof, err, "succinct seal rejected")
	}

	globals, err := r.Seal.Globals()
	if err != nil {
		return err
	}
	if globals.ControlID != r.ControlID {
		return core.Mismatch(core.ErrControlVerification, r.ControlID, globals.ControlID, "seal was produced by another recursion program")
	}
	if digest := r.Claim.Digest(); digest != globals.ClaimDigest {
		return core.Mismatch(core.ErrClaimDigestMismatch, digest, globals.ClaimDigest, "seal proves a different claim")
	}

	return nil
}

// IntoUnknown erases the claim type, keeping only its digest
func (r *SuccinctReceipt[C]) IntoUnknown() *SuccinctReceipt[claim.Unknown] {
	return &SuccinctReceipt[claim.Unknown]{
		Seal:                  r.Seal,
		ControlID:             r.ControlID,
		Claim:                 claim.Pruned[claim.Unknown](r.Claim.Digest()),
		Hashfn:                r.Hashfn,
		VerifierParameters:    r.VerifierParameters,
		ControlInclusionProof: r.ControlInclusionProof,
	}
}
