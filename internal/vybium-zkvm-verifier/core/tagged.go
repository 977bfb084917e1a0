package core

import "encoding/binary"

// TaggedStruct computes the structural hash used for claims, assumptions and
// verifier parameters:
//
//	H(H(tag) || down[0] || ... || down[n-1] || data[0] || ... || data[m-1] || n)
//
// data words and the uint16 count n are little-endian. The count keeps lists of
// different arity from colliding.
func TaggedStruct(h HashFn, tag string, down []Digest, data []uint32) Digest {
	tagDigest := h.HashBytes([]byte(tag))

	buf := make([]byte, 0, DigestSize*(1+len(down))+4*len(data)+2)
	buf = append(buf, tagDigest[:]...)
	for _, d := range down {
		buf = append(buf, d[:]...)
	}
	for _, word := range data {
		buf = binary.LittleEndian.AppendUint32(buf, word)
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(down)))

	return h.HashBytes(buf)
}

// TaggedListCons prepends head to a list whose digest is tail
func TaggedListCons(h HashFn, tag string, head, tail Digest) Digest {
	return TaggedStruct(h, tag, []Digest{head, tail}, nil)
}

// TaggedList hashes an ordered list by folding TaggedListCons from the back.
// The empty list hashes to ZeroDigest.
func TaggedList(h HashFn, tag string, list []Digest) Digest {
	acc := ZeroDigest
	for i := len(list) - 1; i >= 0; i-- {
		acc = TaggedListCons(h, tag, list[i], acc)
	}
	return acc
}
