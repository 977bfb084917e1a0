package vybiumzkvmverifier

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt"
)

// Verify checks proof against imageID and journalDigest under the default context
func Verify(proof *Proof, imageID, journalDigest Digest) error {
	return proof.Verify(imageID, journalDigest)
}

// VerifyWithContext checks proof under an explicit context
func VerifyWithContext(ctx *VerifierContext, proof *Proof, imageID, journalDigest Digest) error {
	return proof.VerifyWithContext(ctx, imageID, journalDigest)
}

// VerifyJournal is Verify with the journal bytes instead of their digest
func VerifyJournal(proof *Proof, imageID Digest, journal []byte) error {
	return proof.Verify(imageID, JournalDigest(journal))
}

// VerifyJournalWithContext is VerifyWithContext with the journal bytes
func VerifyJournalWithContext(ctx *VerifierContext, proof *Proof, imageID Digest, journal []byte) error {
	return proof.VerifyWithContext(ctx, imageID, JournalDigest(journal))
}

// DecodeProof parses a JSON proof or receipt document
func DecodeProof(data []byte) (*Proof, error) {
	return receipt.DecodeProof(data)
}

// EncodeProof serializes a proof as JSON
func EncodeProof(proof *Proof) ([]byte, error) {
	return receipt.EncodeProof(proof)
}

// DefaultContext returns the context Verify uses. It has no proof engine.
func DefaultContext() *VerifierContext {
	return receipt.Default()
}

// ContextForVersion returns the context for a circuit version such as "v1.0"
func ContextForVersion(version string) (*VerifierContext, error) {
	return receipt.ForVersion(version)
}

// ContextFromConfig builds a context from verifier settings
func ContextFromConfig(cfg *Config) (*VerifierContext, error) {
	return receipt.FromConfig(cfg)
}

// Job is one proof to verify in a batch
type Job struct {
	Proof         *Proof
	ImageID       Digest
	JournalDigest Digest
}

// VerifyBatch verifies independent proofs concurrently under vctx, running at
// most limit at once (no limit if limit <= 0). The returned slice holds one
// result per job, in job order. The error is non-nil only if ctx was cancelled
// before every job ran; jobs that did not run report the context error.
func VerifyBatch(ctx context.Context, vctx *VerifierContext, jobs []Job, limit int) ([]error, error) {
	results := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = err
				return err
			}
			if job.Proof == nil {
				results[i] = core.Errorf(core.ErrReceiptFormat, "job %d has no proof", i)
				return nil
			}
			results[i] = job.Proof.VerifyWithContext(vctx, job.ImageID, job.JournalDigest)
			return nil
		})
	}

	return results, g.Wait()
}
