// Package montyhall implements the Monty Hall game: one prize is hidden
// behind one of three doors, the contestant picks a door, the host opens
// a decoy door, and the stay / switch strategies are judged against the
// same setup.
//
// Package montyhallはモンティ・ホール・ゲームを実装します。3つのドアの
// いずれかに景品が隠され、コンテスタントがドアを選び、司会者がハズレの
// ドアを開け、「維持」と「乗り換え」の両戦略を同じ状況で判定します。
package montyhall

import (
	"errors"
	"fmt"
	"github.com/sw965/omw/mathx/randx"
	"math/rand/v2"
)

var (
	ErrInvalidDoor        = errors.New("door must be 1, 2, or 3")
	ErrInvalidArrangement = errors.New("arrangement must contain exactly one prize and two decoys")
	ErrInvalidStrategy    = errors.New("strategy must be stay or switch")
	ErrInvalidOutcome     = errors.New("outcome must be win or lose")
	ErrSameDoor           = errors.New("initial pick and opened door must be different")
)

const DoorN = 3

// Door identifies one of the three doors. The zero value is not a valid door.
//
// Doorは3つのドアのいずれかを識別します。ゼロ値は有効なドアではありません。
type Door int

const (
	NoDoor Door = iota
	Door1
	Door2
	Door3
)

func (d Door) Validate() error {
	if d < Door1 || d > Door3 {
		return fmt.Errorf("%w: got %d", ErrInvalidDoor, int(d))
	}
	return nil
}

// Index converts a door to a 0-based array index. The door must be valid.
//
// Indexは、ドアを0始まりの配列インデックスに変換します。ドアは有効でなければなりません。
func (d Door) Index() int {
	return int(d) - 1
}

// Doors returns the three doors in ascending order.
//
// Doorsは、3つのドアを昇順で返します。
func Doors() []Door {
	return []Door{Door1, Door2, Door3}
}

// Content is what a door hides. The zero value means the door is not set up.
//
// Contentは、ドアの後ろに隠されているものを表します。ゼロ値は未設定を意味します。
type Content int

const (
	NoContent Content = iota
	Decoy
	Prize
)

func (c Content) String() string {
	switch c {
	case Decoy:
		return "DECOY"
	case Prize:
		return "PRIZE"
	default:
		return fmt.Sprintf("Content(%d)", int(c))
	}
}

// Arrangement assigns a content to each door, indexed by Door.Index.
//
// Arrangementは、各ドアへの内容の割り当てを表します。Door.Indexで添字付けされます。
type Arrangement [DoorN]Content

// Validate checks that exactly one door hides the prize and the other two hide decoys.
//
// Validateは、ちょうど1つのドアに景品が、残り2つにハズレが割り当てられている事を確認します。
func (a Arrangement) Validate() error {
	prizeN := 0
	decoyN := 0
	for _, c := range a {
		switch c {
		case Prize:
			prizeN++
		case Decoy:
			decoyN++
		}
	}
	if prizeN != 1 || decoyN != DoorN-1 {
		return fmt.Errorf("%w: got %v", ErrInvalidArrangement, a)
	}
	return nil
}

// Content returns what the given door hides.
//
// Contentは、指定したドアの後ろに隠されているものを返します。
func (a Arrangement) Content(d Door) (Content, error) {
	if err := d.Validate(); err != nil {
		return NoContent, err
	}
	return a[d.Index()], nil
}

// PrizeDoor returns the door that hides the prize.
//
// PrizeDoorは、景品が隠されているドアを返します。
func (a Arrangement) PrizeDoor() (Door, error) {
	if err := a.Validate(); err != nil {
		return NoDoor, err
	}
	for _, d := range Doors() {
		if a[d.Index()] == Prize {
			return d, nil
		}
	}
	// Validateを通過していれば、景品は必ず存在する
	panic("BUG: 有効なArrangementに景品のドアが存在しません")
}

// Strategy is the contestant's decision after the host opened a door.
// Stay keeps the initial pick, Switch moves to the remaining closed door.
//
// Strategyは、司会者がドアを開けた後のコンテスタントの意思決定です。
// Stayは最初の選択を維持し、Switchは残った閉じたドアに乗り換えます。
type Strategy int

const (
	NoStrategy Strategy = iota
	Stay
	Switch
)

func (s Strategy) Validate() error {
	if s != Stay && s != Switch {
		return fmt.Errorf("%w: got %d", ErrInvalidStrategy, int(s))
	}
	return nil
}

func (s Strategy) String() string {
	switch s {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Strategies returns the two strategies in the order they are reported.
//
// Strategiesは、集計時の並び順で2つの戦略を返します。
func Strategies() []Strategy {
	return []Strategy{Stay, Switch}
}

// Outcome is the result of one strategy in one trial. The zero value means not judged yet.
//
// Outcomeは、1回の試行における1つの戦略の結果です。ゼロ値は未判定を意味します。
type Outcome int

const (
	NoOutcome Outcome = iota
	Lose
	Win
)

func (o Outcome) Validate() error {
	if o != Lose && o != Win {
		return fmt.Errorf("%w: got %d", ErrInvalidOutcome, int(o))
	}
	return nil
}

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "LOSE"
	case Win:
		return "WIN"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RandomArrangement places the prize behind a uniformly random door
// and decoys behind the other two.
//
// RandomArrangementは、一様ランダムに選んだドアの後ろに景品を置き、
// 残りの2つのドアにハズレを置きます。
func RandomArrangement(rng *rand.Rand) (Arrangement, error) {
	prizeDoor, err := randx.Choice(Doors(), rng)
	if err != nil {
		return Arrangement{}, err
	}
	a := Arrangement{Decoy, Decoy, Decoy}
	a[prizeDoor.Index()] = Prize
	return a, nil
}

// RandomPick returns the contestant's initial pick, chosen uniformly
// among the three doors with no knowledge of the arrangement.
//
// RandomPickは、コンテスタントの最初の選択を返します。配置の情報を
// 一切使わず、3つのドアから一様ランダムに選びます。
func RandomPick(rng *rand.Rand) (Door, error) {
	return randx.Choice(Doors(), rng)
}

// RevealDecoy returns the door the host opens. The host never opens the
// picked door and never opens the prize door. If the pick is the prize
// door, the two remaining decoys are equally likely. If the pick is a
// decoy, the one remaining decoy is opened with probability 1.
//
// RevealDecoyは、司会者が開けるドアを返します。司会者はコンテスタントが
// 選んだドアと景品のドアを決して開けません。選んだドアが景品の場合、
// 残り2つのハズレが等確率で選ばれます。選んだドアがハズレの場合、
// 残った唯一のハズレを確率1で開けます。
func RevealDecoy(a Arrangement, pick Door, rng *rand.Rand) (Door, error) {
	if err := a.Validate(); err != nil {
		return NoDoor, err
	}
	if err := pick.Validate(); err != nil {
		return NoDoor, err
	}

	candidates := make([]Door, 0, DoorN-1)
	for _, d := range Doors() {
		if d == pick || a[d.Index()] == Prize {
			continue
		}
		candidates = append(candidates, d)
	}

	switch len(candidates) {
	case 1:
		// 選んだドアがハズレならば、開けられるドアは1つに定まる
		return candidates[0], nil
	case 2:
		return randx.Choice(candidates, rng)
	default:
		panic("BUG: 有効なArrangementでハズレ候補の数が1でも2でもありません")
	}
}

// FinalPick resolves a strategy to the contestant's final door.
// Stay returns the initial pick. Switch returns the one door that is
// neither the initial pick nor the opened door.
//
// FinalPickは、戦略をコンテスタントの最終的なドアに解決します。
// Stayは最初の選択をそのまま返します。Switchは、最初の選択でも
// 開けられたドアでもない唯一のドアを返します。
func FinalPick(s Strategy, pick, opened Door) (Door, error) {
	if err := s.Validate(); err != nil {
		return NoDoor, err
	}
	if err := pick.Validate(); err != nil {
		return NoDoor, err
	}
	if err := opened.Validate(); err != nil {
		return NoDoor, err
	}
	if pick == opened {
		return NoDoor, fmt.Errorf("%w: got %d", ErrSameDoor, int(pick))
	}

	if s == Stay {
		return pick, nil
	}

	for _, d := range Doors() {
		if d != pick && d != opened {
			return d, nil
		}
	}
	// pick != opened ならば、残りのドアは必ず1つ存在する
	panic("BUG: 乗り換え先のドアが存在しません")
}

// Judge returns Win if the final pick hides the prize, otherwise Lose.
//
// Judgeは、最終的に選んだドアに景品があればWinを、なければLoseを返します。
func Judge(a Arrangement, finalPick Door) (Outcome, error) {
	if err := a.Validate(); err != nil {
		return NoOutcome, err
	}
	c, err := a.Content(finalPick)
	if err != nil {
		return NoOutcome, err
	}
	if c == Prize {
		return Win, nil
	}
	return Lose, nil
}
