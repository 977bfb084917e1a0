package core

import "fmt"

// ErrorCode classifies verification failures
type ErrorCode int

const (
	// ErrUnknown represents an unclassified failure
	ErrUnknown ErrorCode = iota

	// ErrReceiptFormat means the receipt is structurally malformed: an empty
	// segment chain, a broken chain, or the wrong variant accessed
	ErrReceiptFormat

	// ErrInvalidProof means the proof engine rejected the seal
	ErrInvalidProof

	// ErrClaimDigestMismatch means the proven claim differs from the expected one
	ErrClaimDigestMismatch

	// ErrVerifierParametersMissing means the context has no parameters for this receipt shape
	ErrVerifierParametersMissing

	// ErrVerifierParametersMismatch means the receipt was produced for different
	// verifier parameters than the context carries
	ErrVerifierParametersMismatch

	// ErrControlVerification means the control ID is not allowed by the parameters
	ErrControlVerification

	// ErrInvalidHashSuite means the receipt names a hash function the context does not support
	ErrInvalidHashSuite

	// ErrCircuitInfoMismatch means the seal was produced by a different circuit
	ErrCircuitInfoMismatch

	// ErrUnexpectedExitCode means a segment exited in a way that breaks the chain
	ErrUnexpectedExitCode

	// ErrUnresolvedAssumption means an assumption has no matching receipt
	ErrUnresolvedAssumption

	// ErrMerkleQueryOutOfRange means a Merkle index does not fit the proof depth
	ErrMerkleQueryOutOfRange
)

var codeNames = map[ErrorCode]string{
	ErrUnknown:                    "unknown",
	ErrReceiptFormat:              "receipt format error",
	ErrInvalidProof:               "invalid proof",
	ErrClaimDigestMismatch:        "claim digest mismatch",
	ErrVerifierParametersMissing:  "verifier parameters missing",
	ErrVerifierParametersMismatch: "verifier parameters mismatch",
	ErrControlVerification:        "control verification error",
	ErrInvalidHashSuite:           "invalid hash suite",
	ErrCircuitInfoMismatch:        "circuit info mismatch",
	ErrUnexpectedExitCode:         "unexpected exit code",
	ErrUnresolvedAssumption:       "unresolved assumption",
	ErrMerkleQueryOutOfRange:      "merkle query out of range",
}

// String returns the human-readable name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Error lets a bare code be used as an errors.Is target
func (c ErrorCode) Error() string {
	return c.String()
}

// VerificationError is the error returned by every verification step.
// Mismatch errors carry both digests for diagnostics.
type VerificationError struct {
	Code     ErrorCode
	Message  string
	Expected Digest
	Received Digest
	Cause    error
}

// Error returns the error message
func (e *VerificationError) Error() string {
	msg := fmt.Sprintf("zkvm verification error [%s]", e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Expected != ZeroDigest || e.Received != ZeroDigest {
		msg += fmt.Sprintf(" (expected %s, received %s)", e.Expected, e.Received)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the cause of the error
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// Is matches another VerificationError or a bare ErrorCode with the same code
func (e *VerificationError) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *VerificationError:
		return e.Code == t.Code
	default:
		return false
	}
}

// Errorf creates a VerificationError with a formatted message
func Errorf(code ErrorCode, format string, args ...any) *VerificationError {
	return &VerificationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Mismatch creates a VerificationError carrying the expected and received digests
func Mismatch(code ErrorCode, expected, received Digest, message string) *VerificationError {
	return &VerificationError{
		Code:     code,
		Message:  message,
		Expected: expected,
		Received: received,
	}
}

// Wrap creates a VerificationError around cause
func Wrap(code ErrorCode, cause error, message string) *VerificationError {
	return &VerificationError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
