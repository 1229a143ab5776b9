package rng_test

import (
	"errors"
	"testing"

	"github.com/sw965/monty/rng"
)

func TestNewSeed(t *testing.T) {
	n := 10
	seeds := make(map[uint64]bool, n)
	for i := 0; i < n; i++ {
		seed, err := rng.NewSeed()
		if err != nil {
			t.Fatalf("予期せぬエラーが発生した: %v", err)
		}
		seeds[seed] = true
	}

	if len(seeds) < 2 {
		t.Errorf("シードが毎回同じ値になっている: %v", seeds)
	}
}

func TestNewSeededPCGs(t *testing.T) {
	seed := uint64(42)
	n := 4

	rngsA, err := rng.NewSeededPCGs(seed, n)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	rngsB, err := rng.NewSeededPCGs(seed, n)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}

	if len(rngsA) != n || len(rngsB) != n {
		t.Fatalf("len: want: %d, got: %d, %d", n, len(rngsA), len(rngsB))
	}

	// 同じシードからは同じ乱数列が得られる
	drawN := 5
	for i := 0; i < n; i++ {
		for j := 0; j < drawN; j++ {
			a := rngsA[i].Uint64()
			b := rngsB[i].Uint64()
			if a != b {
				t.Fatalf("rngs[%d]の%d番目の値が再現されていない: %d != %d", i, j, a, b)
			}
		}
	}

	// ストリーム毎に異なる乱数列が得られる
	rngsC, err := rng.NewSeededPCGs(seed, 2)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}
	same := true
	for j := 0; j < drawN; j++ {
		if rngsC[0].Uint64() != rngsC[1].Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Errorf("異なるストリームが同じ乱数列を生成している")
	}
}

func TestNewSeededPCGsInvalidCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{
			name: "異常_0",
			n:    0,
		},
		{
			name: "異常_負数",
			n:    -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Helper()
			_, err := rng.NewSeededPCGs(1, tc.n)
			if err == nil {
				t.Fatalf("エラーを期待したが、nilが返された")
			}
			if !errors.Is(err, rng.ErrInvalidRngCount) {
				t.Errorf("期待されるエラー型が埋め込まれていません。want: %v, got: %v", rng.ErrInvalidRngCount, errors.Unwrap(err))
			}
		})
	}
}

func TestNewPCGs(t *testing.T) {
	n := 3
	rngs, err := rng.NewPCGs(n)
	if err != nil {
		t.Fatalf("予期せぬエラーが発生した: %v", err)
	}

	if len(rngs) != n {
		t.Fatalf("len: want: %d, got: %d", n, len(rngs))
	}
	for i, r := range rngs {
		if r == nil {
			t.Errorf("rngs[%d]がnil", i)
		}
	}

	_, err = rng.NewPCGs(0)
	if err == nil {
		t.Fatalf("エラーを期待したが、nilが返された")
	}
	if !errors.Is(err, rng.ErrInvalidRngCount) {
		t.Errorf("期待されるエラー型が埋め込まれていません。want: %v, got: %v", rng.ErrInvalidRngCount, errors.Unwrap(err))
	}
}
