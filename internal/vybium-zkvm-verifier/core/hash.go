package core

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/blake2b"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
)

// Names of the supported hash functions. Receipts carry one of these in
// their hashfn field and the circuit registry keys its control ID tables by them.
const (
	HashSha256    = "sha-256"
	HashPoseidon2 = "poseidon2"
	HashBlake2b   = "blake2b"
)

// HashFn is a hash function usable for seals, Merkle trees and tagged structs
type HashFn interface {
	// Name returns the registry name of the hash function
	Name() string

	// HashBytes hashes an arbitrary byte string
	HashBytes(data []byte) Digest

	// HashPair hashes two digests, left then right
	HashPair(a, b Digest) Digest
}

var (
	// Sha256 is the SHA-256 hash function. Claims and verifier parameters are
	// always digested with it.
	Sha256 HashFn = sha256Fn{}

	// Blake2b is BLAKE2b with a 256-bit output
	Blake2b HashFn = blake2bFn{}

	// Poseidon2 is the field-friendly hash used by recursion programs
	Poseidon2 HashFn = poseidon2Fn{}
)

var suites = map[string]HashFn{
	HashSha256:    Sha256,
	HashPoseidon2: Poseidon2,
	HashBlake2b:   Blake2b,
}

// Suite returns the hash function registered under name
func Suite(name string) (HashFn, bool) {
	h, ok := suites[name]
	return h, ok
}

// DefaultSuites returns a fresh map of every supported hash function, keyed by name.
// Callers may trim it to restrict which seals a verifier context accepts.
func DefaultSuites() map[string]HashFn {
	out := make(map[string]HashFn, len(suites))
	for name, h := range suites {
		out[name] = h
	}
	return out
}

// SuiteNames returns the supported hash function names in sorted order
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type sha256Fn struct{}

func (sha256Fn) Name() string { return HashSha256 }

func (sha256Fn) HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

func (sha256Fn) HashPair(a, b Digest) Digest {
	h := sha256.New()
	h.Write(a[:])
	h.Write(b[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

type blake2bFn struct{}

func (blake2bFn) Name() string { return HashBlake2b }

func (blake2bFn) HashBytes(data []byte) Digest {
	return blake2b.Sum256(data)
}

func (blake2bFn) HashPair(a, b Digest) Digest {
	buf := make([]byte, 0, 2*DigestSize)
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)
	return blake2b.Sum256(buf)
}

// poseidon2Fn hashes over the field: input bytes are packed four at a time
// into field elements (always below the modulus), prefixed with the byte length,
// and absorbed with the variable-length sponge.
type poseidon2Fn struct{}

func (poseidon2Fn) Name() string { return HashPoseidon2 }

func (poseidon2Fn) HashBytes(data []byte) Digest {
	elements := make([]field.Element, 0, 1+(len(data)+3)/4)
	elements = append(elements, field.New(uint64(len(data))))
	for i := 0; i < len(data); i += 4 {
		var value uint64
		for j := 0; j < 4 && i+j < len(data); j++ {
			value |= uint64(data[i+j]) << (8 * j)
		}
		elements = append(elements, field.New(value))
	}
	return digestFromElements(hash.HashVarlen(elements))
}

func (poseidon2Fn) HashPair(a, b Digest) Digest {
	elements := make([]field.Element, 0, 2*DigestWords)
	for _, w := range a.Words() {
		elements = append(elements, field.New(uint64(w)))
	}
	for _, w := range b.Words() {
		elements = append(elements, field.New(uint64(w)))
	}
	return digestFromElements(hash.HashVarlen(elements))
}

// digestFromElements serializes sponge output little-endian, 8 bytes per
// element, keeping the first DigestSize bytes
func digestFromElements(out hash.Digest) Digest {
	var d Digest
	var buf [8]byte
	offset := 0
	for _, elem := range out {
		if offset >= DigestSize {
			break
		}
		binary.LittleEndian.PutUint64(buf[:], elem.Value())
		offset += copy(d[offset:], buf[:])
	}
	return d
}
