package comparators

import (
	"bytes"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// HashSize is the byte size of a Hash.
const HashSize = 32

// Hash is a fixed-size key type, trimmed from the teacher's
// EVM-oriented common.Hash down to the one thing an ordered container
// needs from it: a comparable, fixed-width byte array.
type Hash [HashSize]byte

// Compare orders two hashes lexicographically by byte value.
func (h *Hash) Compare(other *Hash) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash) String() string {
	return fmt.Sprintf("%x", h[:])
}

// HashComparator is an aatree.Comparator for Hash keys.
type HashComparator struct{}

// Compare implements aatree.Comparator.
func (HashComparator) Compare(a, b *Hash) int {
	return a.Compare(b)
}

// SumKeccak256 hashes data with Keccak-256, the way the teacher's
// GetKeccak256Hash does, and returns the result as a Hash key.
func SumKeccak256(data []byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var res Hash
	copy(res[:], hasher.Sum(nil))
	return res
}
