package receipt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt"
	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/receipt/receipttest"
)

func TestProofJSONRoundTrip(t *testing.T) {
	ctx := receipttest.Default()
	p := receipttest.NewProver(ctx)
	withAssumption, err := p.SessionWithAssumptions(imageID, journal, 2,
		receipt.NewSuccinctInner(p.SuccinctOk(core.Sha256.HashBytes([]byte("dependency")), nil)).Assumption())
	require.NoError(t, err)

	tests := []struct {
		name  string
		proof *receipt.Proof
	}{
		{"composite", compositeProof(t, ctx, 3)},
		{"composite with assumptions", receipt.NewProof(withAssumption.Inner())},
		{"succinct", succinctProof(t, ctx)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := receipt.EncodeProof(tt.proof)
			require.NoError(t, err)

			decoded, err := receipt.DecodeProof(data)
			require.NoError(t, err)
			assert.Equal(t, tt.proof.Inner.Kind(), decoded.Inner.Kind())
			assert.Equal(t, tt.proof.Inner.VerifierParameters(), decoded.Inner.VerifierParameters())

			want, err := tt.proof.Claim()
			require.NoError(t, err)
			got, err := decoded.Claim()
			require.NoError(t, err)
			assert.Equal(t, want.Digest(), got.Digest())

			require.NoError(t, decoded.VerifyWithContext(receipttest.Default(), imageID, journalDigest))
		})
	}
}

func TestInnerReceiptEnvelope(t *testing.T) {
	data, err := json.Marshal(succinctProof(t, receipttest.Default()).Inner)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.Contains(t, envelope, "succinct")
	assert.NotContains(t, envelope, "composite")

	_, err = json.Marshal(receipt.InnerReceipt{})
	assert.Error(t, err)
}

func TestDecodeProofIgnoresReceiptFields(t *testing.T) {
	data, err := receipt.EncodeProof(succinctProof(t, receipttest.Default()))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["journal"] = json.RawMessage(`{"bytes":"0x7075626c6963206f7574707574"}`)
	doc["metadata"] = json.RawMessage(`{"verifier_parameters":"ignored"}`)
	full, err := json.Marshal(doc)
	require.NoError(t, err)

	proof, err := receipt.DecodeProof(full)
	require.NoError(t, err)
	require.NoError(t, proof.VerifyWithContext(receipttest.Default(), imageID, journalDigest))
}

func TestDecodeProofRejects(t *testing.T) {
	valid, err := receipt.EncodeProof(compositeProof(t, receipttest.Default(), 1))
	require.NoError(t, err)

	tests := []struct {
		name string
		data string
	}{
		{"empty", ``},
		{"not json", `receipt`},
		{"no inner", `{}`},
		{"null inner", `{"inner":null}`},
		{"empty envelope", `{"inner":{}}`},
		{"both variants", `{"inner":{"composite":{"segments":[]},"succinct":{}}}`},
		{"trailing data", string(valid) + `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := receipt.DecodeProof([]byte(tt.data))
			assert.ErrorIs(t, err, core.ErrReceiptFormat)
		})
	}
}
