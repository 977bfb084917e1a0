package vybiumzkvmverifier

import (
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/engine"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/utils"
)

// Digest is a 32-byte hash identifying programs, claims and parameters
type Digest = core.Digest

// Proof is the verifiable part of a receipt
type Proof = receipt.Proof

// InnerReceipt holds a composite or succinct receipt
type InnerReceipt = receipt.InnerReceipt

// InnerAssumptionReceipt holds a receipt resolving an assumption
type InnerAssumptionReceipt = receipt.InnerAssumptionReceipt

// CompositeReceipt is a chain of segment receipts
type CompositeReceipt = receipt.CompositeReceipt

// SegmentReceipt proves one segment of an execution
type SegmentReceipt = receipt.SegmentReceipt

// SuccinctReceipt proves a whole execution with one recursion proof
type SuccinctReceipt = receipt.SuccinctReceipt[claim.ReceiptClaim]

// VerifierContext selects circuits, parameters and the proof engine
type VerifierContext = receipt.VerifierContext

// ReceiptClaim is the statement a receipt proves
type ReceiptClaim = claim.ReceiptClaim

// Journal is the public output of a guest
type Journal = claim.Journal

// Engine verifies seals
type Engine = engine.Engine

// Seal is the cryptographic proof inside a receipt
type Seal = engine.Seal

// Config holds verifier settings
type Config = utils.Config

// ZeroDigest is the all-zero digest
var ZeroDigest = core.ZeroDigest

// DefaultConfig returns the default verifier settings
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// ParseDigest parses a hex digest, with or without 0x
func ParseDigest(s string) (Digest, error) {
	return core.ParseDigest(s)
}

// MustParseDigest is ParseDigest that panics on malformed input
func MustParseDigest(s string) Digest {
	return core.MustParseDigest(s)
}

// JournalDigest hashes journal bytes the way claims commit to them
func JournalDigest(journal []byte) Digest {
	return claim.NewJournal(journal).Digest()
}
