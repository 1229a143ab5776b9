package crosstab

import (
	"fmt"
	"github.com/sw965/monty/montyhall"
	"github.com/sw965/monty/trial"
	"io"
	"strings"
)

// FprintTrial writes one trial as a two-row strategy × outcome table.
func FprintTrial(w io.Writer, t trial.Trial) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s  %s\n", "strategy", "outcome")
	fmt.Fprintf(&b, "%-8s  %s\n", montyhall.Stay, t.StayOutcome)
	fmt.Fprintf(&b, "%-8s  %s\n", montyhall.Switch, t.SwitchOutcome)
	_, err := io.WriteString(w, b.String())
	return err
}

// Fprint writes the row-normalized contingency table.
func (s Summary) Fprint(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s  %5s  %5s\n", "", montyhall.Lose, montyhall.Win)
	for _, r := range s.Rows {
		fmt.Fprintf(&b, "%-8s  %5.2f  %5.2f\n", r.Strategy, r.LoseRate, r.WinRate)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FprintCI writes one line per row with the win counts and the Wilson
// interval of the win rate.
func (s Summary) FprintCI(w io.Writer) error {
	var b strings.Builder
	for _, r := range s.Rows {
		fmt.Fprintf(&b, "%-8s  %d/%d wins, %.0f%% CI [%.3f, %.3f]\n",
			r.Strategy, r.Wins, r.N(), s.Confidence*100, r.WinLow, r.WinHigh)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
