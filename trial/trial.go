// Package trial runs complete Monty Hall trials. One trial resolves both
// strategies against the same arrangement, the same initial pick and the
// same opened door, so the two results are directly comparable.
//
// Package trialは、モンティ・ホールの試行を最後まで実行します。1回の試行では、
// 同じ配置・同じ最初の選択・同じ開けられたドアに対して両方の戦略を解決する為、
// 2つの結果を直接比較できます。
package trial

import (
	"errors"
	"fmt"
	"github.com/sw965/monty/montyhall"
	"github.com/sw965/omw/parallel"
	"math/rand/v2"
)

var (
	ErrInvalidTrialCount = errors.New("trial count must be at least 1")
	ErrNoRngs            = errors.New("rngs list must not be empty")
)

type ArrangementFunc func(*rand.Rand) (montyhall.Arrangement, error)
type PickFunc func(*rand.Rand) (montyhall.Door, error)
type RevealFunc func(montyhall.Arrangement, montyhall.Door, *rand.Rand) (montyhall.Door, error)
type FinalPickFunc func(montyhall.Strategy, montyhall.Door, montyhall.Door) (montyhall.Door, error)
type JudgeFunc func(montyhall.Arrangement, montyhall.Door) (montyhall.Outcome, error)

// Trial is the record of one play-through. The arrangement is only used
// for judging and is not part of the record.
//
// Trialは、1回の試行の記録です。配置は判定にのみ使われ、記録には含まれません。
type Trial struct {
	InitialPick   montyhall.Door
	OpenedDoor    montyhall.Door
	StayPick      montyhall.Door
	SwitchPick    montyhall.Door
	StayOutcome   montyhall.Outcome
	SwitchOutcome montyhall.Outcome
}

// Engine bundles the stage functions of one trial. Replacing a field
// fixes or biases that stage, which is mainly useful in tests.
//
// Engineは、試行を構成する各段階の関数を束ねます。フィールドを差し替える事で、
// その段階を固定したり偏らせたり出来ます。主にテストで役立ちます。
type Engine struct {
	ArrangementFunc ArrangementFunc
	PickFunc        PickFunc
	RevealFunc      RevealFunc
	FinalPickFunc   FinalPickFunc
	JudgeFunc       JudgeFunc
}

// NewEngine creates an engine that plays the standard game.
//
// NewEngineは、標準的なゲームを実行するエンジンを作成します。
func NewEngine() Engine {
	return Engine{
		ArrangementFunc: montyhall.RandomArrangement,
		PickFunc:        montyhall.RandomPick,
		RevealFunc:      montyhall.RevealDecoy,
		FinalPickFunc:   montyhall.FinalPick,
		JudgeFunc:       montyhall.Judge,
	}
}

func (e Engine) Validate() error {
	if e.ArrangementFunc == nil {
		return fmt.Errorf("ArrangementFunc must not be nil")
	}
	if e.PickFunc == nil {
		return fmt.Errorf("PickFunc must not be nil")
	}
	if e.RevealFunc == nil {
		return fmt.Errorf("RevealFunc must not be nil")
	}
	if e.FinalPickFunc == nil {
		return fmt.Errorf("FinalPickFunc must not be nil")
	}
	if e.JudgeFunc == nil {
		return fmt.Errorf("JudgeFunc must not be nil")
	}
	return nil
}

// Play runs one trial: set up the doors, pick one, open a decoy, resolve
// both strategies against the same opened door, and judge each final pick.
//
// Playは、1回の試行を実行します。ドアを設定し、1つを選び、ハズレを開け、
// 同じ開けられたドアに対して両戦略を解決し、それぞれの最終選択を判定します。
func (e Engine) Play(rng *rand.Rand) (Trial, error) {
	if err := e.Validate(); err != nil {
		return Trial{}, err
	}
	return e.play(rng)
}

func (e Engine) play(rng *rand.Rand) (Trial, error) {
	arrangement, err := e.ArrangementFunc(rng)
	if err != nil {
		return Trial{}, err
	}

	pick, err := e.PickFunc(rng)
	if err != nil {
		return Trial{}, err
	}

	opened, err := e.RevealFunc(arrangement, pick, rng)
	if err != nil {
		return Trial{}, err
	}

	stayPick, err := e.FinalPickFunc(montyhall.Stay, pick, opened)
	if err != nil {
		return Trial{}, err
	}

	switchPick, err := e.FinalPickFunc(montyhall.Switch, pick, opened)
	if err != nil {
		return Trial{}, err
	}

	stayOutcome, err := e.JudgeFunc(arrangement, stayPick)
	if err != nil {
		return Trial{}, err
	}

	switchOutcome, err := e.JudgeFunc(arrangement, switchPick)
	if err != nil {
		return Trial{}, err
	}

	return Trial{
		InitialPick:   pick,
		OpenedDoor:    opened,
		StayPick:      stayPick,
		SwitchPick:    switchPick,
		StayOutcome:   stayOutcome,
		SwitchOutcome: switchOutcome,
	}, nil
}

// Playouts runs n independent trials and returns them in trial order.
// The trials are distributed among len(rngs) workers, and each worker
// uses only its own rng, so the rngs must not share state.
//
// Playoutsは、n回の独立な試行を実行し、試行順に返します。
// 試行はlen(rngs)個のワーカーに分配され、各ワーカーは自分専用のrngだけを
// 使う為、rngsは状態を共有してはいけません。
func (e Engine) Playouts(n int, rngs []*rand.Rand) ([]Trial, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, n)
	}

	p := len(rngs)
	if p == 0 {
		return nil, ErrNoRngs
	}

	trials := make([]Trial, n)
	err := parallel.For(n, p, func(workerId, idx int) error {
		t, err := e.play(rngs[workerId])
		if err != nil {
			return err
		}
		trials[idx] = t
		return nil
	})
	return trials, err
}
