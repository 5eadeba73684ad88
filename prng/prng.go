// Package prng provides the injected cryptographic randomness source used by
// every probabilistic algorithm in gophe: prime search, scalar sampling, and
// the various decryption-correctness retry loops. Every source is an XOF
// (extendable output function) over blake3, either keyed for deterministic,
// reproducible test runs or seeded from crypto/rand for production use.
package prng

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/zeebo/blake3"
)

// KeySize is the length in bytes of a PRNG seed.
const KeySize = 32

// Source is a cryptographically seeded reader. It is safe to Read from
// repeatedly; it is not safe for concurrent use by multiple goroutines.
type Source struct {
	key []byte
	xof *blake3.Hasher
	out *blake3.Digest
}

// New returns a Source seeded from crypto/rand. Use this in production code.
func New() (*Source, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("prng: seeding from crypto/rand: %w", err)
	}
	return NewKeyed(key)
}

// NewKeyed returns a Source seeded deterministically from key. Tests use this
// to obtain reproducible "random" key material and ciphertexts.
func NewKeyed(key []byte) (*Source, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("prng: key must not be empty")
	}
	h := blake3.New()
	if _, err := h.Write(key); err != nil {
		return nil, fmt.Errorf("prng: priming hasher: %w", err)
	}
	stored := make([]byte, len(key))
	copy(stored, key)
	return &Source{key: stored, xof: h}, nil
}

// Read fills p with pseudorandom bytes drawn from the XOF stream.
func (s *Source) Read(p []byte) (int, error) {
	if s.out == nil {
		s.out = s.xof.Digest()
	}
	return s.out.Read(p)
}

// Reset rewinds the stream to the state immediately after seeding, so the
// same byte sequence can be reproduced from the start.
func (s *Source) Reset() {
	h := blake3.New()
	_, _ = h.Write(s.key)
	s.xof = h
	s.out = nil
}

// Bytes returns n pseudorandom bytes.
func (s *Source) Bytes(n int) []byte {
	b := make([]byte, n)
	_, _ = s.Read(b)
	return b
}

// Int returns a uniform pseudorandom integer in [0, bitLen) bits, i.e. with
// at most bitLen significant bits.
func (s *Source) Int(bitLen int) *big.Int {
	if bitLen <= 0 {
		return big.NewInt(0)
	}
	nBytes := (bitLen + 7) / 8
	b := s.Bytes(nBytes)
	excess := uint(nBytes*8 - bitLen)
	if excess > 0 {
		b[0] &= byte(0xFF >> excess)
	}
	return new(big.Int).SetBytes(b)
}

// IntRange returns a uniform pseudorandom integer in [low, high).
func (s *Source) IntRange(low, high *big.Int) *big.Int {
	span := new(big.Int).Sub(high, low)
	if span.Sign() <= 0 {
		return new(big.Int).Set(low)
	}
	bitLen := span.BitLen()
	for {
		candidate := s.Int(bitLen)
		if candidate.Cmp(span) < 0 {
			return candidate.Add(candidate, low)
		}
	}
}

// OddCandidate returns a uniform pseudorandom odd integer with exactly bits
// significant bits (top bit set, bottom bit set), suitable as a prime
// candidate.
func (s *Source) OddCandidate(bits int) *big.Int {
	n := s.Int(bits)
	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	return n
}
