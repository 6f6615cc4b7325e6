package engine

import (
	"testing"

	"muninn/pkg/rules"
)

func mustBoard(t *testing.T, fen string) *rules.Board {
	t.Helper()
	board, err := rules.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return board
}

func TestEvaluateCheckmateExact(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())

	// Fool's mate, White to move and mated.
	whiteMated := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if got := ev.Evaluate(whiteMated); got != -MateScore {
		t.Errorf("white mated: Evaluate = %d, want %d", got, -MateScore)
	}

	// Scholar's mate, Black to move and mated.
	blackMated := mustBoard(t, "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNBQK1NR b KQkq - 0 4")
	if got := ev.Evaluate(blackMated); got != MateScore {
		t.Errorf("black mated: Evaluate = %d, want %d", got, MateScore)
	}
}

func TestEvaluateDrawnPositionsZero(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	cases := []struct {
		name string
		fen  string
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
		{"insufficient material", "k7/8/8/8/8/8/8/5B1K w - - 0 1"},
	}
	for _, tc := range cases {
		if got := ev.Evaluate(mustBoard(t, tc.fen)); got != 0 {
			t.Errorf("%s: Evaluate = %d, want 0", tc.name, got)
		}
	}
}

func TestEvaluateStartPosition(t *testing.T) {
	// Material and piece-square terms cancel by symmetry; what remains is
	// White's 20 legal moves times the mobility weight.
	board := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if got := NewEvaluator(DefaultWeights()).Evaluate(board); got != 200 {
		t.Errorf("Evaluate(start) = %d, want 200", got)
	}
}

func TestEvaluateMaterialImbalance(t *testing.T) {
	ev := NewEvaluator(DefaultWeights())
	// Start position with the black queen removed.
	board := mustBoard(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if got := ev.Evaluate(board); got < 800 {
		t.Errorf("Evaluate with queen odds = %d, want at least 800", got)
	}
}

func TestEvaluateLeavesBoardUntouched(t *testing.T) {
	board := mustBoard(t, "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	before := board.FEN()
	NewEvaluator(DefaultWeights()).Evaluate(board)
	if board.FEN() != before {
		t.Errorf("Evaluate mutated the board: %q", board.FEN())
	}
}
