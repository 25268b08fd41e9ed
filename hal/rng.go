package hal

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	mrand "math/rand/v2"
)

// NewEntropyRNG reads words from r, little-endian, the way firmware RNG
// protocols hand out bytes. A nil r uses crypto/rand.
func NewEntropyRNG(r io.Reader) RNG {
	if r == nil {
		r = rand.Reader
	}
	return &entropyRNG{r: r}
}

type entropyRNG struct {
	r   io.Reader
	buf [bits.UintSize / 8]byte
}

func (g *entropyRNG) Uint() (uint, error) {
	if _, err := io.ReadFull(g.r, g.buf[:]); err != nil {
		return 0, fmt.Errorf("%w: rng: %v", ErrUnavailable, err)
	}
	if bits.UintSize == 32 {
		return uint(binary.LittleEndian.Uint32(g.buf[:])), nil
	}
	return uint(binary.LittleEndian.Uint64(g.buf[:])), nil
}

// NewSeededRNG returns a deterministic PCG generator.
func NewSeededRNG(seed uint64) RNG {
	return &seededRNG{r: mrand.New(mrand.NewPCG(seed, 0))}
}

type seededRNG struct {
	r *mrand.Rand
}

func (g *seededRNG) Uint() (uint, error) {
	return uint(g.r.Uint64()), nil
}
