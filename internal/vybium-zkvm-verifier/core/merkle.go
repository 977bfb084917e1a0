package core

import (
	"fmt"
	"math/bits"
)

// MerkleGroup is a complete binary Merkle tree over a fixed set of digests.
// Leaves are the digests themselves; the leaf count is padded with ZeroDigest
// up to the next power of two.
type MerkleGroup struct {
	leaves []Digest
	size   int
	depth  int
}

// NewMerkleGroup creates a tree over the given leaves
func NewMerkleGroup(leaves []Digest) (*MerkleGroup, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("cannot create Merkle group with no leaves")
	}

	depth := bits.Len(uint(len(leaves) - 1))
	padded := make([]Digest, 1<<depth)
	copy(padded, leaves)

	return &MerkleGroup{
		leaves: padded,
		size:   len(leaves),
		depth:  depth,
	}, nil
}

// Depth returns the number of levels above the leaves
func (g *MerkleGroup) Depth() int {
	return g.depth
}

// Root returns the Merkle root under the given hash function
func (g *MerkleGroup) Root(h HashFn) Digest {
	level := append([]Digest(nil), g.leaves...)
	for len(level) > 1 {
		next := make([]Digest, len(level)/2)
		for i := range next {
			next[i] = h.HashPair(level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

// Proof returns the inclusion proof of leaf. Padding leaves have no proof.
func (g *MerkleGroup) Proof(leaf Digest, h HashFn) (MerkleProof, error) {
	index := -1
	for i, l := range g.leaves[:g.size] {
		if l == leaf {
			index = i
			break
		}
	}
	if index < 0 {
		return MerkleProof{}, Errorf(ErrMerkleQueryOutOfRange, "leaf %s is not in the group", leaf)
	}

	digests := make([]Digest, 0, g.depth)
	level := append([]Digest(nil), g.leaves...)
	current := index
	for len(level) > 1 {
		digests = append(digests, level[current^1])
		next := make([]Digest, len(level)/2)
		for i := range next {
			next[i] = h.HashPair(level[2*i], level[2*i+1])
		}
		level = next
		current /= 2
	}

	return MerkleProof{
		Index:   uint32(index),
		Digests: digests,
	}, nil
}

// MerkleProof is an inclusion proof: the leaf index and the sibling digests
// from the leaf level up to just below the root
type MerkleProof struct {
	Index   uint32   `json:"index"`
	Digests []Digest `json:"digests"`
}

// Root recomputes the root implied by this proof for leaf
func (p MerkleProof) Root(leaf Digest, h HashFn) Digest {
	cur := leaf
	index := p.Index
	for _, sibling := range p.Digests {
		if index%2 == 0 {
			cur = h.HashPair(cur, sibling)
		} else {
			cur = h.HashPair(sibling, cur)
		}
		index /= 2
	}
	return cur
}

// Verify checks that leaf is included under root
func (p MerkleProof) Verify(leaf, root Digest, h HashFn) error {
	if p.Index>>uint(len(p.Digests)) != 0 {
		return Errorf(ErrMerkleQueryOutOfRange, "index %d out of range for depth %d", p.Index, len(p.Digests))
	}
	if got := p.Root(leaf, h); got != root {
		return Mismatch(ErrControlVerification, root, got, "control inclusion proof does not match root")
	}
	return nil
}
