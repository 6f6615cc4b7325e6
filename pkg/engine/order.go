package engine

import (
	"sort"

	chess "github.com/notnil/chess"

	"muninn/pkg/rules"
)

// Orderer ranks legal moves so the candidates most likely to be best are
// searched first. Ordering only affects how much the search can prune, never
// which score it settles on.
type Orderer struct {
	w Weights
}

// NewOrderer returns an Orderer using the given weights.
func NewOrderer(w Weights) *Orderer {
	return &Orderer{w: w}
}

type scoredMove struct {
	move     *chess.Move
	priority int
}

// Order returns the legal moves of the current position in descending
// priority. The board is left exactly as it was found.
func (o *Orderer) Order(b *rules.Board) []*chess.Move {
	moves := b.LegalMoves()
	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		scored[i] = scoredMove{move: mv, priority: o.priority(b, mv)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})
	ordered := make([]*chess.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// priority scores a single candidate: captures by MVV-LVA, a flat bonus for
// checks, a large bonus for promotions so they outrank ordinary captures.
func (o *Orderer) priority(b *rules.Board, mv *chess.Move) int {
	priority := 0
	if mv.HasTag(chess.Capture) {
		if victim := b.PieceAt(mv.S2()); victim != chess.NoPiece {
			priority += 10 * o.w.PieceValues[victim.Type()]
		}
		if attacker := b.PieceAt(mv.S1()); attacker != chess.NoPiece {
			priority -= o.w.PieceValues[attacker.Type()]
		}
	}
	if b.GivesCheck(mv) {
		priority += o.w.CheckBonus
	}
	if mv.Promo() != chess.NoPieceType {
		priority += o.w.PromoBonus
	}
	return priority
}
