package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/circuit"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/claim"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt/receipttest"
)

var (
	testImageID = core.Sha256.HashBytes([]byte("cli guest"))
	testJournal = []byte("cli journal")
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return out.String(), err
}

func writeReceipt(t *testing.T, ctx *receipt.VerifierContext) string {
	t.Helper()
	r := receipttest.NewProver(ctx).Session(testImageID, testJournal, 2)
	data, err := receipt.EncodeProof(receipt.NewProof(r.Inner()))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "receipt.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestVerifyCommand(t *testing.T) {
	receiptPath := writeReceipt(t, receipt.Default())
	journalPath := filepath.Join(t.TempDir(), "journal.bin")
	require.NoError(t, os.WriteFile(journalPath, testJournal, 0o600))

	out, err := run(t, "verify", "--receipt", receiptPath, "--image-id", testImageID.String(), "--journal", journalPath, "--dev-engine")
	require.NoError(t, err)
	assert.Contains(t, out, "receipt verified")

	digest := claim.NewJournal(testJournal).Digest()
	_, err = run(t, "verify", "--receipt", receiptPath, "--image-id", testImageID.String(), "--journal-digest", digest.String(), "--dev-engine")
	require.NoError(t, err)
}

func TestVerifyCommandNeedsEngine(t *testing.T) {
	receiptPath := writeReceipt(t, receipt.Default())
	digest := claim.NewJournal(testJournal).Digest().String()

	_, err := run(t, "verify", "--receipt", receiptPath, "--image-id", testImageID.String(), "--journal-digest", digest)
	assert.ErrorIs(t, err, core.ErrInvalidProof)
}

func TestVerifyCommandRejects(t *testing.T) {
	receiptPath := writeReceipt(t, receipt.Default())
	digest := claim.NewJournal(testJournal).Digest().String()

	_, err := run(t, "verify", "--receipt", receiptPath, "--image-id", core.ZeroDigest.String(), "--journal-digest", digest, "--dev-engine")
	assert.ErrorIs(t, err, core.ErrClaimDigestMismatch)

	_, err = run(t, "verify", "--receipt", receiptPath, "--image-id", testImageID.String(), "--journal-digest", digest, "--version", "v1.0", "--dev-engine")
	assert.ErrorIs(t, err, core.ErrVerifierParametersMismatch)

	_, err = run(t, "verify", "--receipt", receiptPath, "--image-id", testImageID.String())
	assert.Error(t, err)

	_, err = run(t, "verify", "--receipt", filepath.Join(t.TempDir(), "missing.json"), "--image-id", testImageID.String(), "--journal-digest", digest)
	assert.Error(t, err)
}

func TestVerifyCommandOlderVersion(t *testing.T) {
	receiptPath := writeReceipt(t, receipt.V1_1())
	digest := claim.NewJournal(testJournal).Digest().String()

	_, err := run(t, "verify", "--receipt", receiptPath, "--image-id", testImageID.String(), "--journal-digest", digest, "--version", "v1.1", "--dev-engine")
	require.NoError(t, err)
}

func TestControlIDCommand(t *testing.T) {
	out, err := run(t, "control-id", "--hash", core.HashSha256, "--po2", "13")
	require.NoError(t, err)

	want, _ := circuit.V1_2().ControlID(core.HashSha256, 13)
	assert.Equal(t, want.String(), strings.TrimSpace(out))

	_, err = run(t, "control-id", "--po2", "25")
	assert.Error(t, err)

	_, err = run(t, "control-id", "--hash", "sha3", "--po2", "16")
	assert.Error(t, err)
}

func TestControlIDCommandCycles(t *testing.T) {
	out, err := run(t, "control-id", "--hash", core.HashPoseidon2, "--cycles", "100000")
	require.NoError(t, err)

	want, _ := circuit.V1_2().ControlID(core.HashPoseidon2, 17)
	assert.Equal(t, want.String(), strings.TrimSpace(out))

	_, err = run(t, "control-id", "--cycles", "1000")
	require.NoError(t, err)

	_, err = run(t, "control-id", "--cycles", "33554433")
	assert.Error(t, err)

	_, err = run(t, "control-id", "--cycles", "100", "--po2", "16")
	assert.Error(t, err)

	_, err = run(t, "control-id")
	assert.Error(t, err)
}

func TestParamsCommand(t *testing.T) {
	out, err := run(t, "params", "--version", "v1.0")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.0")
	assert.Contains(t, out, circuit.V1_0().ControlRoot().String())
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "params", "--max-po2", "30")
	assert.Error(t, err)

	_, err = run(t, "params", "--verbosity", "9")
	assert.Error(t, err)
}
