package engine

import (
	chess "github.com/notnil/chess"
)

// Infinity bounds the alpha/beta window. It is strictly larger than any
// score Evaluate can produce, mate scores included.
const Infinity = 1 << 30

// MateScore is the sentinel magnitude for a delivered checkmate. Every
// achievable material+positional+mobility sum stays below it, so mate
// always dominates ordinary evaluations.
const MateScore = 20000

// Weights is the immutable configuration of the evaluator and the move
// orderer. Substituting a different Weights swaps the heuristic without
// touching the search.
type Weights struct {
	// PieceValues holds centipawn material values per piece type.
	PieceValues map[chess.PieceType]int
	// PawnTable and KnightTable are per-square positional bonuses from
	// White's point of view; Black looks them up vertically mirrored.
	PawnTable   [64]int
	KnightTable [64]int
	// MobilityWeight scores each legal move of the side to move.
	MobilityWeight int
	// CheckBonus and PromoBonus only affect move ordering.
	CheckBonus int
	PromoBonus int
	// MateScore is returned, signed, for checkmated positions.
	MateScore int
}

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

// DefaultWeights returns the stock heuristic configuration.
func DefaultWeights() Weights {
	return Weights{
		PieceValues: map[chess.PieceType]int{
			chess.Pawn:   100,
			chess.Knight: 320,
			chess.Bishop: 330,
			chess.Rook:   500,
			chess.Queen:  900,
			chess.King:   20000,
		},
		PawnTable:      pawnTable,
		KnightTable:    knightTable,
		MobilityWeight: 10,
		CheckBonus:     50,
		PromoBonus:     800,
		MateScore:      MateScore,
	}
}
