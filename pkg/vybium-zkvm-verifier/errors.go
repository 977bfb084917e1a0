package vybiumzkvmverifier

import "github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"

// ErrorCode classifies verification failures
type ErrorCode = core.ErrorCode

// VerificationError is returned by every failed verification
type VerificationError = core.VerificationError

// Error codes; each one matches errors.Is against any error carrying it
const (
	ErrUnknown                    = core.ErrUnknown
	ErrReceiptFormat              = core.ErrReceiptFormat
	ErrInvalidProof               = core.ErrInvalidProof
	ErrClaimDigestMismatch        = core.ErrClaimDigestMismatch
	ErrVerifierParametersMissing  = core.ErrVerifierParametersMissing
	ErrVerifierParametersMismatch = core.ErrVerifierParametersMismatch
	ErrControlVerification        = core.ErrControlVerification
	ErrInvalidHashSuite           = core.ErrInvalidHashSuite
	ErrCircuitInfoMismatch        = core.ErrCircuitInfoMismatch
	ErrUnexpectedExitCode         = core.ErrUnexpectedExitCode
	ErrUnresolvedAssumption       = core.ErrUnresolvedAssumption
	ErrMerkleQueryOutOfRange      = core.ErrMerkleQueryOutOfRange
)
