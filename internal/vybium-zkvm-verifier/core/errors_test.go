package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationErrorIs(t *testing.T) {
	err := Errorf(ErrReceiptFormat, "empty segment list")

	assert.True(t, errors.Is(err, ErrReceiptFormat))
	assert.True(t, errors.Is(err, &VerificationError{Code: ErrReceiptFormat}))
	assert.False(t, errors.Is(err, ErrInvalidProof))

	wrapped := fmt.Errorf("verify: %w", err)
	assert.True(t, errors.Is(wrapped, ErrReceiptFormat))

	var verr *VerificationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, ErrReceiptFormat, verr.Code)
}

func TestVerificationErrorCause(t *testing.T) {
	cause := errors.New("fri folding check failed")
	err := Wrap(ErrInvalidProof, cause, "seal rejected")

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "invalid proof")
	assert.Contains(t, err.Error(), cause.Error())
}

func TestMismatchMessage(t *testing.T) {
	expected := Sha256.HashBytes([]byte("expected"))
	received := Sha256.HashBytes([]byte("received"))

	err := Mismatch(ErrClaimDigestMismatch, expected, received, "claim mismatch")
	assert.Equal(t, expected, err.Expected)
	assert.Equal(t, received, err.Received)
	assert.Contains(t, err.Error(), expected.String())
	assert.Contains(t, err.Error(), received.String())
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "claim digest mismatch", ErrClaimDigestMismatch.String())
	assert.Equal(t, "error code 99", ErrorCode(99).String())
}
