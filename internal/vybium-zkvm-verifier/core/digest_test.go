package core

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDigest(t *testing.T) {
	hexStr := "0x" + strings.Repeat("ab", DigestSize)

	t.Run("with prefix", func(t *testing.T) {
		d, err := ParseDigest(hexStr)
		require.NoError(t, err)
		assert.Equal(t, byte(0xab), d[0])
		assert.Equal(t, hexStr, d.String())
	})

	t.Run("without prefix", func(t *testing.T) {
		d, err := ParseDigest(strings.TrimPrefix(hexStr, "0x"))
		require.NoError(t, err)
		assert.Equal(t, hexStr, d.String())
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseDigest("0xabcd")
		assert.Error(t, err)
	})

	t.Run("not hex", func(t *testing.T) {
		_, err := ParseDigest("0x" + strings.Repeat("zz", DigestSize))
		assert.Error(t, err)
	})
}

func TestDigestWords(t *testing.T) {
	d := Sha256.HashBytes([]byte("words"))
	assert.Equal(t, d, DigestFromWords(d.Words()))

	var one Digest
	one[0] = 1
	assert.Equal(t, uint32(1), one.Words()[0])
}

func TestDigestJSON(t *testing.T) {
	d := Sha256.HashBytes([]byte("json"))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"`+d.String()+`"`, string(data))

	var decoded Digest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"0x00"`), &decoded))
}

func TestZeroDigest(t *testing.T) {
	assert.True(t, ZeroDigest.IsZero())
	assert.False(t, Sha256.HashBytes(nil).IsZero())
}
