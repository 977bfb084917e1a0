package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func merkleLeaves(n int) []Digest {
	leaves := make([]Digest, n)
	for i := range leaves {
		leaves[i] = Sha256.HashBytes([]byte(fmt.Sprintf("leaf-%d", i)))
	}
	return leaves
}

func TestMerkleGroupEmpty(t *testing.T) {
	_, err := NewMerkleGroup(nil)
	assert.Error(t, err)
}

func TestMerkleGroupDepth(t *testing.T) {
	tests := []struct {
		leaves int
		depth  int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{11, 4},
	}

	for _, tt := range tests {
		g, err := NewMerkleGroup(merkleLeaves(tt.leaves))
		require.NoError(t, err)
		assert.Equal(t, tt.depth, g.Depth(), "%d leaves", tt.leaves)
	}
}

func TestMerkleSingleLeafRootIsLeaf(t *testing.T) {
	leaves := merkleLeaves(1)
	g, err := NewMerkleGroup(leaves)
	require.NoError(t, err)
	assert.Equal(t, leaves[0], g.Root(Sha256))
}

func TestMerkleProofs(t *testing.T) {
	for _, h := range []HashFn{Sha256, Poseidon2} {
		t.Run(h.Name(), func(t *testing.T) {
			leaves := merkleLeaves(5)
			g, err := NewMerkleGroup(leaves)
			require.NoError(t, err)
			root := g.Root(h)

			for i, leaf := range leaves {
				proof, err := g.Proof(leaf, h)
				require.NoError(t, err)
				assert.Equal(t, uint32(i), proof.Index)
				assert.Len(t, proof.Digests, g.Depth())
				assert.NoError(t, proof.Verify(leaf, root, h))
			}
		})
	}
}

func TestMerkleProofRejects(t *testing.T) {
	leaves := merkleLeaves(4)
	g, err := NewMerkleGroup(leaves)
	require.NoError(t, err)
	root := g.Root(Sha256)

	proof, err := g.Proof(leaves[1], Sha256)
	require.NoError(t, err)

	t.Run("wrong leaf", func(t *testing.T) {
		err := proof.Verify(leaves[2], root, Sha256)
		assert.True(t, errors.Is(err, ErrControlVerification))
	})

	t.Run("wrong index", func(t *testing.T) {
		moved := proof
		moved.Index = 0
		assert.Error(t, moved.Verify(leaves[1], root, Sha256))
	})

	t.Run("index beyond depth", func(t *testing.T) {
		moved := proof
		moved.Index = 4
		err := moved.Verify(leaves[1], root, Sha256)
		assert.True(t, errors.Is(err, ErrMerkleQueryOutOfRange))
	})

	t.Run("unknown leaf", func(t *testing.T) {
		_, err := g.Proof(Sha256.HashBytes([]byte("absent")), Sha256)
		assert.True(t, errors.Is(err, ErrMerkleQueryOutOfRange))
	})

	t.Run("padding leaf", func(t *testing.T) {
		padded, err := NewMerkleGroup(merkleLeaves(3))
		require.NoError(t, err)
		_, err = padded.Proof(ZeroDigest, Sha256)
		assert.True(t, errors.Is(err, ErrMerkleQueryOutOfRange))
	})
}
