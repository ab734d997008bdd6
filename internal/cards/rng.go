package cards

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Source yields uniformly distributed 64-bit words for shuffling.
type Source interface {
	Uint64() uint64
}

const seededDomain = "monoblackjack/shoe/v1"

// SeededSource is a deterministic byte stream derived from
// sha256(seed || counter). The same seed yields the same shuffles on every
// platform and Go release, which math/rand does not promise.
type SeededSource struct {
	seed    [32]byte
	counter uint64
	buf     [32]byte
	bufPos  int
}

func NewSeededSource(seed uint64) *SeededSource {
	var in [len(seededDomain) + 8]byte
	copy(in[:], seededDomain)
	binary.LittleEndian.PutUint64(in[len(seededDomain):], seed)
	return &SeededSource{seed: sha256.Sum256(in[:]), bufPos: 32}
}

func (r *SeededSource) read(p []byte) {
	for len(p) > 0 {
		if r.bufPos >= len(r.buf) {
			r.refill()
		}
		n := copy(p, r.buf[r.bufPos:])
		r.bufPos += n
		p = p[n:]
	}
}

func (r *SeededSource) refill() {
	var in [32 + 8]byte
	copy(in[:32], r.seed[:])
	binary.LittleEndian.PutUint64(in[32:], r.counter)
	r.counter++
	r.buf = sha256.Sum256(in[:])
	r.bufPos = 0
}

func (r *SeededSource) Uint64() uint64 {
	var b [8]byte
	r.read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func NewCryptoSource() CryptoSource { return CryptoSource{} }

func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand only fails when the platform has no entropy source.
		panic(fmt.Sprintf("cards: read crypto random: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Uniform returns a uniform value in [0, n) using rejection sampling so no
// residue class is favoured. n must be > 0.
func Uniform(src Source, n uint64) uint64 {
	if n == 0 {
		panic("cards: Uniform with n == 0")
	}
	if n&(n-1) == 0 {
		return src.Uint64() & (n - 1)
	}
	// Reject the top partial block of [0, 2^64).
	limit := ^uint64(0) - (^uint64(0)%n+1)%n
	for {
		v := src.Uint64()
		if v <= limit {
			return v % n
		}
	}
}

// Shuffle is an in-place Fisher-Yates shuffle of deck driven by src.
func Shuffle(deck []Card, src Source) {
	for i := len(deck) - 1; i > 0; i-- {
		j := int(Uniform(src, uint64(i)+1))
		deck[i], deck[j] = deck[j], deck[i]
	}
}
