package receipt

import (
	"fmt"

	"github.com/ethereum/go-ethereum/log"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/engine"
)

// SegmentReceipt proves the execution of one segment of a session with the
// base RV32IM circuit
type SegmentReceipt struct {
	Seal               engine.Seal        `json:"seal"`
	Index              uint32             `json:"index"`
	Hashfn             string             `json:"hashfn"`
	VerifierParameters core.Digest        `json:"verifier_parameters"`
	Claim              claim.ReceiptClaim `json:"claim"`
}

// VerifyIntegrityWithContext checks that the seal proves Claim
func (r *SegmentReceipt) VerifyIntegrityWithContext(ctx *VerifierContext) error {
	log.Debug("Verifying segment receipt", "index", r.Index, "hashfn", r.Hashfn)

	if err := checkParameters(ctx.segmentDigest, r.VerifierParameters); err != nil {
		return err
	}
	params, _ := ctx.SegmentParameters()

	if _, ok := ctx.Suite(r.Hashfn); !ok {
		return core.Errorf(core.ErrInvalidHashSuite, "segment %d: unsupported hash function %q", r.Index, r.Hashfn)
	}

	info := ctx.Version().Segment()
	if err := engine.CheckProtocol(info, r.Seal); err != nil {
		return err
	}
	if err := ctx.Engine().Verify(info.Taps, info, r.Seal); err != nil {
		return core.Wrap(core.ErrInvalidProof, err, fmt.Sprintf("segment %d seal rejected", r.Index))
	}

	globals, err := r.Seal.Globals()
	if err != nil {
		return err
	}

	if int(globals.Po2) > ctx.MaxPo2() {
		return core.Errorf(core.ErrControlVerification, "segment %d: po2 %d exceeds maximum %d", r.Index, globals.Po2, ctx.MaxPo2())
	}
	if !params.Allows(globals.ControlID) {
		return core.Errorf(core.ErrControlVerification, "segment %d: control ID %s is not allowed", r.Index, globals.ControlID)
	}
	if want, ok := ctx.Version().ControlID(r.Hashfn, int(globals.Po2)); !ok || want != globals.ControlID {
		return core.Mismatch(core.ErrControlVerification, want, globals.ControlID,
			fmt.Sprintf("segment %d: control ID does not match %s po2 %d", r.Index, r.Hashfn, globals.Po2))
	}

	if digest := r.Claim.Digest(); digest != globals.ClaimDigest {
		return core.Mismatch(core.ErrClaimDigestMismatch, digest, globals.ClaimDigest,
			fmt.Sprintf("segment %d: seal proves a different claim", r.Index))
	}

	return nil
}
