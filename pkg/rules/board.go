// Package rules adapts github.com/notnil/chess into the narrow contract the
// search core consumes: legal moves, reversible move application and the
// terminal/status predicates. The search never touches the chess package
// for anything but the Move and Piece value types.
package rules

import (
	"fmt"

	chess "github.com/notnil/chess"
)

// Board is a single mutable position shared by an entire search. Push and
// Pop must stay balanced on every path; the searcher applies a move before
// descending and undoes it before returning, including on pruning breaks.
type Board struct {
	pos     *chess.Position
	history []*chess.Position
	moves   []*chess.Move
}

// NewBoard returns a Board rooted at the given position.
func NewBoard(pos *chess.Position) *Board {
	return &Board{pos: pos}
}

// FromFEN returns a Board rooted at the position described by fen.
func FromFEN(fen string) (*Board, error) {
	update, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("rules: parse fen %q: %w", fen, err)
	}
	return NewBoard(chess.NewGame(update).Position()), nil
}

// Position returns the current position.
func (b *Board) Position() *chess.Position {
	return b.pos
}

// FEN returns the current position in FEN notation.
func (b *Board) FEN() string {
	return b.pos.String()
}

// LegalMoves returns the legal moves in the current position, unordered.
func (b *Board) LegalMoves() []*chess.Move {
	return b.pos.ValidMoves()
}

// Push applies mv to the current position. The previous position is kept so
// Pop can restore it exactly.
func (b *Board) Push(mv *chess.Move) {
	b.history = append(b.history, b.pos)
	b.moves = append(b.moves, mv)
	b.pos = b.pos.Update(mv)
}

// Pop reverses the most recent Push and returns the move it applied.
// Popping past the root is a contract violation by the caller.
func (b *Board) Pop() *chess.Move {
	if len(b.history) == 0 {
		panic("rules: Pop without matching Push")
	}
	last := len(b.history) - 1
	b.pos = b.history[last]
	mv := b.moves[last]
	b.history = b.history[:last]
	b.moves = b.moves[:last]
	return mv
}

// SideToMove returns the color to move in the current position.
func (b *Board) SideToMove() chess.Color {
	return b.pos.Turn()
}

// InCheck reports whether the side to move is in check. The move generator
// tags checking moves as it produces them, so this reads the tag of the
// last applied move; at the root of the stack no move has been applied and
// the answer is false, which is the only case the searcher relies on.
func (b *Board) InCheck() bool {
	if len(b.moves) == 0 {
		return false
	}
	return b.moves[len(b.moves)-1].HasTag(chess.Check)
}

// GivesCheck reports whether mv would put the opponent in check. The move
// is applied and undone locally so the caller's position is untouched.
func (b *Board) GivesCheck(mv *chess.Move) bool {
	b.Push(mv)
	defer b.Pop()
	return b.InCheck()
}

// IsCheckmate reports whether the side to move is checkmated.
func (b *Board) IsCheckmate() bool {
	return b.pos.Status() == chess.Checkmate
}

// IsStalemate reports whether the position is stalemate.
func (b *Board) IsStalemate() bool {
	return b.pos.Status() == chess.Stalemate
}

// IsInsufficientMaterial reports whether neither side can force mate:
// bare kings, a lone minor piece, or bishops all on one square color.
func (b *Board) IsInsufficientMaterial() bool {
	knights := 0
	darkBishops, lightBishops := 0, 0
	board := b.pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch board.Piece(sq).Type() {
		case chess.NoPieceType, chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			if (int(sq.File())+int(sq.Rank()))%2 == 0 {
				darkBishops++
			} else {
				lightBishops++
			}
		default:
			// Pawns, rooks and queens are always mating material.
			return false
		}
	}
	bishops := darkBishops + lightBishops
	if knights+bishops <= 1 {
		return true
	}
	return knights == 0 && (darkBishops == 0 || lightBishops == 0)
}

// IsTerminal reports whether the game is over in the current position.
func (b *Board) IsTerminal() bool {
	return b.IsCheckmate() || b.IsStalemate() || b.IsInsufficientMaterial()
}

// PieceAt returns the piece on sq, or chess.NoPiece.
func (b *Board) PieceAt(sq chess.Square) chess.Piece {
	return b.pos.Board().Piece(sq)
}

// MirrorSquare reflects sq vertically, so a1 maps to a8. Positional tables
// are stored from White's point of view and looked up mirrored for Black.
func MirrorSquare(sq chess.Square) chess.Square {
	return sq ^ 56
}
