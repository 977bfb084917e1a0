// Package vybiumzkvmverifier verifies receipts produced by the zkVM.
//
// A receipt attests that a program, identified by its image ID, ran inside the
// zkVM, halted successfully and wrote a journal of public output. Verifying a
// receipt answers one question: does this proof show that program P, with
// journal O, halted with exit code 0? The answer is nil or a typed error.
//
// # Receipts
//
// Two receipt shapes are supported:
//
//   - Composite receipts are a chain of segment receipts, one per segment of
//     the execution, plus a receipt for every assumption the guest made.
//   - Succinct receipts are a single recursion proof over the whole execution.
//
// Both are held by an InnerReceipt inside a Proof. Verification first checks
// the integrity of the receipt (the seal proves the receipt's claim under the
// expected circuits and parameters) and then compares the proven claim with the
// claim built from the expected image ID and journal.
//
// # Quick Start
//
// Verifying a receipt read from disk:
//
//	data, err := os.ReadFile("receipt.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	proof, err := vybiumzkvmverifier.DecodeProof(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := vybiumzkvmverifier.DefaultContext().WithEngine(starkEngine)
//	imageID := vybiumzkvmverifier.MustParseDigest("0x...")
//	if err := vybiumzkvmverifier.VerifyJournalWithContext(ctx, proof, imageID, journal); err != nil {
//		log.Fatal(err)
//	}
//
// # Versions
//
// Verify uses the default context, pinned to the 1.2 circuits. Receipts from
// older provers need the matching context:
//
//	ctx, err := vybiumzkvmverifier.ContextForVersion("v1.1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = vybiumzkvmverifier.VerifyWithContext(ctx, proof, imageID, journalDigest)
//
// # Proof Engine
//
// Seals are checked by an Engine. Contexts start without one and reject every
// seal with ErrInvalidProof until a STARK engine is installed with
// VerifierContext.WithEngine. Verify and VerifyJournal use such a context, so
// they only succeed for embedders that replace it through VerifyWithContext.
//
// # Errors
//
// All verification failures are *VerificationError values carrying an
// ErrorCode, so callers can branch with errors.Is:
//
//	if errors.Is(err, vybiumzkvmverifier.ErrClaimDigestMismatch) {
//		// the proof is valid but for another program or journal
//	}
package vybiumzkvmverifier
