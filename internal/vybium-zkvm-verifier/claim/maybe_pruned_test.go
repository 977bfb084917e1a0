package claim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-zkvm-verifier/internal/vybium-zkvm-verifier/core"
)

func TestMaybePrunedValue(t *testing.T) {
	m := Value(testJournal)
	assert.False(t, m.IsPruned())
	assert.Equal(t, testJournal.Digest(), m.Digest())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, testJournal, v)

	p := m.Prune()
	assert.True(t, p.IsPruned())
	assert.Equal(t, m.Digest(), p.Digest())

	_, err = p.Value()
	assert.ErrorIs(t, err, ErrPruned)
}

func TestMaybePrunedJSON(t *testing.T) {
	data, err := json.Marshal(Value(testJournal))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"bytes":"0x68656c6c6f2c206a6f75726e616c"}}`, string(data))

	data, err = json.Marshal(Pruned[Journal](testImageID))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pruned":"`+testImageID.String()+`"}`, string(data))

	var m MaybePruned[Journal]
	require.NoError(t, json.Unmarshal(data, &m))
	assert.True(t, m.IsPruned())
	assert.Equal(t, testImageID, m.Digest())
}

func TestMaybePrunedJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"both forms", `{"value":{"bytes":"0x"},"pruned":"0x` + "00" + `"}`},
		{"bad digest", `{"pruned":"0x1234"}`},
		{"not an object", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MaybePruned[Journal]
			assert.Error(t, json.Unmarshal([]byte(tt.data), &m))
		})
	}
}

func TestUnknownAlwaysPruned(t *testing.T) {
	digest := core.Sha256.HashBytes([]byte("erased claim"))
	m := Pruned[Unknown](digest)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pruned":"`+digest.String()+`"}`, string(data))

	var decoded MaybePruned[Unknown]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, digest, decoded.Digest())

	assert.Error(t, json.Unmarshal([]byte(`{"value":{}}`), &decoded))
}
