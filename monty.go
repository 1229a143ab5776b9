// Package monty holds the shared constants of the Monty Hall simulator.
//
// Package montyは、モンティ・ホール・シミュレータの共有定数を保持します。
package monty

// Version is the semantic version of the module.
var Version = "0.1.0"

// Theoretical win rates. Staying wins only when the initial pick was the
// prize door, which happens in one of three cases. Switching wins in the
// other two.
//
// 理論上の勝率。維持が勝つのは最初の選択が景品のドアだった場合のみで、
// これは3回に1回起こります。乗り換えは残りの2回で勝ちます。
const (
	StayWinRate   = 1.0 / 3.0
	SwitchWinRate = 2.0 / 3.0
)
