// Package crosstab tallies trial results into a strategy × outcome
// contingency table with row-normalized proportions and Wilson score
// confidence intervals for the win rates.
//
// Package crosstabは、試行結果を戦略×結果のクロス集計表にまとめます。
// 各行は割合に正規化され、勝率にはWilsonスコア信頼区間が付きます。
package crosstab

import (
	"errors"
	"fmt"
	"github.com/sw965/monty/montyhall"
	"github.com/sw965/monty/trial"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"math"
)

var (
	ErrNoObservations          = errors.New("observations list must not be empty")
	ErrInvalidObservationCount = errors.New("observation count must be at least 1")
	ErrInvalidWinCount         = errors.New("win count must be between 0 and the observation count")
	ErrInvalidConfidence       = errors.New("confidence must be greater than 0 and less than 1")
)

const DefaultConfidence = 0.95

// Observation is one strategy's result in one trial. Every trial
// contributes two observations, one per strategy.
//
// Observationは、1回の試行における1つの戦略の結果です。
// 1回の試行からは、戦略毎に1つずつ、2つのObservationが得られます。
type Observation struct {
	Strategy montyhall.Strategy
	Outcome  montyhall.Outcome
}

// Observations flattens trials into observations, preserving trial order.
// Each trial yields its stay observation followed by its switch observation.
//
// Observationsは、試行順を保ったまま試行をObservationに展開します。
// 各試行からは、維持の結果、乗り換えの結果の順で2つが得られます。
func Observations(trials []trial.Trial) []Observation {
	obs := make([]Observation, 0, 2*len(trials))
	for _, t := range trials {
		obs = append(obs,
			Observation{Strategy: montyhall.Stay, Outcome: t.StayOutcome},
			Observation{Strategy: montyhall.Switch, Outcome: t.SwitchOutcome},
		)
	}
	return obs
}

// Row is one strategy's line in the contingency table. WinRate and
// LoseRate are each rounded to two decimals, halves away from zero,
// so the two may sum to 1.01 at a rounding boundary. WinLow and
// WinHigh are the unrounded Wilson bounds for the win rate.
//
// Rowは、クロス集計表の1行です。WinRateとLoseRateはそれぞれ小数第2位に
// 丸められます（偶数丸めではなく四捨五入）。丸めの境界では2つの合計が
// 1.01になる事があります。WinLowとWinHighは丸めていないWilson区間です。
type Row struct {
	Strategy montyhall.Strategy
	Wins     int
	Losses   int
	WinRate  float32
	LoseRate float32
	WinLow   float64
	WinHigh  float64
}

// N returns the number of observations behind the row.
func (r Row) N() int {
	return r.Wins + r.Losses
}

// Summary is the full contingency table. Rows are ordered stay first,
// then switch.
//
// Summaryは、クロス集計表の全体です。行は維持、乗り換えの順に並びます。
type Summary struct {
	Confidence float64
	Rows       []Row
}

// Summarize tallies observations into a Summary. Observations of the
// same strategy form one row regardless of their order in the input.
//
// Summarizeは、ObservationをSummaryに集計します。同じ戦略のObservationは、
// 入力中の並び順に関わらず1つの行にまとめられます。
func Summarize(obs []Observation) (Summary, error) {
	if len(obs) == 0 {
		return Summary{}, ErrNoObservations
	}

	indicatorsByStrategy := map[montyhall.Strategy][]float64{}
	for i, o := range obs {
		if err := o.Strategy.Validate(); err != nil {
			return Summary{}, fmt.Errorf("observations[%d]: %w", i, err)
		}
		if err := o.Outcome.Validate(); err != nil {
			return Summary{}, fmt.Errorf("observations[%d]: %w", i, err)
		}

		indicator := 0.0
		if o.Outcome == montyhall.Win {
			indicator = 1.0
		}
		indicatorsByStrategy[o.Strategy] = append(indicatorsByStrategy[o.Strategy], indicator)
	}

	rows := make([]Row, 0, len(indicatorsByStrategy))
	for _, s := range montyhall.Strategies() {
		indicators, ok := indicatorsByStrategy[s]
		if !ok {
			continue
		}

		n := len(indicators)
		wins := int(floats.Sum(indicators))
		winLow, winHigh, err := WilsonCI(wins, n, DefaultConfidence)
		if err != nil {
			return Summary{}, err
		}

		rows = append(rows, Row{
			Strategy: s,
			Wins:     wins,
			Losses:   n - wins,
			WinRate:  roundedRate(wins, n),
			LoseRate: roundedRate(n-wins, n),
			WinLow:   winLow,
			WinHigh:  winHigh,
		})
	}

	return Summary{Confidence: DefaultConfidence, Rows: rows}, nil
}

// count*100/n を先に計算する事で、0.005のような2進数で表現出来ない
// 境界値を経由せずに丸められる
func roundedRate(count, n int) float32 {
	return float32(math.Round(float64(count)*100.0/float64(n)) / 100.0)
}

// WilsonCI returns the Wilson score interval for a binomial proportion
// of wins out of n at the given confidence level.
//
// WilsonCIは、n回中wins回の二項比率に対するWilsonスコア区間を、
// 指定された信頼水準で返します。
func WilsonCI(wins, n int, confidence float64) (float64, float64, error) {
	if n < 1 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidObservationCount, n)
	}
	if wins < 0 || wins > n {
		return 0, 0, fmt.Errorf("%w: got %d out of %d", ErrInvalidWinCount, wins, n)
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, 0, fmt.Errorf("%w: got %g", ErrInvalidConfidence, confidence)
	}

	// 両側区間なので、(1+confidence)/2 の分位点を z に使う
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile((1 + confidence) / 2)

	nf := float64(n)
	pHat := float64(wins) / nf
	z2 := z * z

	den := 1 + z2/nf
	center := pHat + z2/(2*nf)
	half := z * math.Sqrt(pHat*(1-pHat)/nf+z2/(4*nf*nf))

	// 数値誤差で[0, 1]の外に出る事があるので、クランプする
	low := math.Max(0, (center-half)/den)
	high := math.Min(1, (center+half)/den)

	// 全敗なら下限は正確に0、全勝なら上限は正確に1になる
	if wins == 0 {
		low = 0
	}
	if wins == n {
		high = 1
	}
	return low, high, nil
}
