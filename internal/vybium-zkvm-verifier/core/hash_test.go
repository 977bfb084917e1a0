package core

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestSuiteLookup(t *testing.T) {
	for _, name := range []string{HashSha256, HashPoseidon2, HashBlake2b} {
		h, ok := Suite(name)
		require.True(t, ok, name)
		assert.Equal(t, name, h.Name())
	}

	_, ok := Suite("sha3")
	assert.False(t, ok)

	assert.Equal(t, []string{HashBlake2b, HashPoseidon2, HashSha256}, SuiteNames())
}

func TestDefaultSuitesIsACopy(t *testing.T) {
	m := DefaultSuites()
	delete(m, HashSha256)

	_, ok := Suite(HashSha256)
	assert.True(t, ok)
	assert.Len(t, DefaultSuites(), 3)
}

func TestHashBytesMatchesReference(t *testing.T) {
	data := []byte("vybium zkvm")

	assert.Equal(t, Digest(sha256.Sum256(data)), Sha256.HashBytes(data))
	assert.Equal(t, Digest(blake2b.Sum256(data)), Blake2b.HashBytes(data))
}

func TestHashFunctions(t *testing.T) {
	a := Sha256.HashBytes([]byte("a"))
	b := Sha256.HashBytes([]byte("b"))

	for _, h := range []HashFn{Sha256, Blake2b, Poseidon2} {
		t.Run(h.Name(), func(t *testing.T) {
			assert.Equal(t, h.HashBytes([]byte("x")), h.HashBytes([]byte("x")))
			assert.NotEqual(t, h.HashBytes([]byte("x")), h.HashBytes([]byte("y")))

			assert.Equal(t, h.HashPair(a, b), h.HashPair(a, b))
			assert.NotEqual(t, h.HashPair(a, b), h.HashPair(b, a))
		})
	}
}

func TestPoseidon2LengthPrefix(t *testing.T) {
	// Trailing zero bytes pack into the same words; only the length prefix separates them
	assert.NotEqual(t, Poseidon2.HashBytes([]byte{1}), Poseidon2.HashBytes([]byte{1, 0}))
	assert.NotEqual(t, Poseidon2.HashBytes(nil), Poseidon2.HashBytes([]byte{0}))
}
