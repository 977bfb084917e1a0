package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaggedStruct(t *testing.T) {
	a := Sha256.HashBytes([]byte("a"))
	b := Sha256.HashBytes([]byte("b"))

	base := TaggedStruct(Sha256, "tag", []Digest{a, b}, []uint32{1})

	tests := []struct {
		name  string
		other Digest
	}{
		{"different tag", TaggedStruct(Sha256, "other", []Digest{a, b}, []uint32{1})},
		{"swapped children", TaggedStruct(Sha256, "tag", []Digest{b, a}, []uint32{1})},
		{"different data", TaggedStruct(Sha256, "tag", []Digest{a, b}, []uint32{2})},
		{"fewer children", TaggedStruct(Sha256, "tag", []Digest{a}, []uint32{1})},
		{"other hash", TaggedStruct(Blake2b, "tag", []Digest{a, b}, []uint32{1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.other)
		})
	}

	assert.Equal(t, base, TaggedStruct(Sha256, "tag", []Digest{a, b}, []uint32{1}))
}

func TestTaggedList(t *testing.T) {
	a := Sha256.HashBytes([]byte("a"))
	b := Sha256.HashBytes([]byte("b"))

	assert.Equal(t, ZeroDigest, TaggedList(Sha256, "list", nil))

	single := TaggedList(Sha256, "list", []Digest{a})
	assert.Equal(t, TaggedListCons(Sha256, "list", a, ZeroDigest), single)

	pair := TaggedList(Sha256, "list", []Digest{a, b})
	assert.Equal(t, TaggedListCons(Sha256, "list", a, TaggedList(Sha256, "list", []Digest{b})), pair)
	assert.NotEqual(t, pair, TaggedList(Sha256, "list", []Digest{b, a}))
}
