// Package rng builds the random number generators the simulation runs on.
// Each worker needs its own generator, so the constructors return one
// independently seeded PCG per worker.
//
// Package rngは、シミュレーションが使う乱数生成器を作ります。ワーカー毎に
// 専用の生成器が必要な為、コンストラクタはワーカー毎に独立してシードされた
// PCGを返します。
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/sw965/omw/mathx/randx"
	"math/rand/v2"
)

var ErrInvalidRngCount = errors.New("rng count must be at least 1")

// NewSeed returns a seed drawn from the operating system's entropy source.
//
// NewSeedは、OSのエントロピー源から得たシードを返します。
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewSeededPCGs returns n generators derived from one seed. The same seed
// and the same n always produce the same streams, which makes a run
// reproducible. Stream i is seeded with (seed, i).
//
// NewSeededPCGsは、1つのシードからn個の生成器を導出します。同じシードと
// 同じnからは常に同じ乱数列が得られる為、実行を再現できます。
// i番目の生成器は(seed, i)でシードされます。
func NewSeededPCGs(seed uint64, n int) ([]*rand.Rand, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRngCount, n)
	}

	rngs := make([]*rand.Rand, n)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewPCG(seed, uint64(i)))
	}
	return rngs, nil
}

// NewPCGs returns n generators seeded from the global seed source.
//
// NewPCGsは、グローバルなシード源からシードされたn個の生成器を返します。
func NewPCGs(n int) ([]*rand.Rand, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRngCount, n)
	}
	return randx.NewPCGs(n), nil
}
