package engine

import (
	chess "github.com/notnil/chess"

	"muninn/pkg/rules"
)

// Evaluator scores a position statically, with no look-ahead. Positive
// scores always favor White regardless of who is to move.
type Evaluator struct {
	w Weights
}

// NewEvaluator returns an Evaluator using the given weights.
func NewEvaluator(w Weights) *Evaluator {
	return &Evaluator{w: w}
}

// Evaluate returns the static score of the current position.
//
// The mobility term enumerates every legal move, which makes a single call
// as expensive as a movegen pass. The search pays this at every leaf, so
// this function dominates total search cost.
func (ev *Evaluator) Evaluate(b *rules.Board) int {
	if b.IsCheckmate() {
		// The side to move has no answer to check and has lost.
		if b.SideToMove() == chess.White {
			return -ev.w.MateScore
		}
		return ev.w.MateScore
	}
	if b.IsStalemate() || b.IsInsufficientMaterial() {
		return 0
	}

	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := b.PieceAt(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := ev.w.PieceValues[piece.Type()]
		switch piece.Type() {
		case chess.Pawn:
			if piece.Color() == chess.White {
				value += ev.w.PawnTable[sq]
			} else {
				value += ev.w.PawnTable[rules.MirrorSquare(sq)]
			}
		case chess.Knight:
			if piece.Color() == chess.White {
				value += ev.w.KnightTable[sq]
			} else {
				value += ev.w.KnightTable[rules.MirrorSquare(sq)]
			}
		}
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}

	mobility := len(b.LegalMoves()) * ev.w.MobilityWeight
	if b.SideToMove() == chess.White {
		score += mobility
	} else {
		score -= mobility
	}
	return score
}
