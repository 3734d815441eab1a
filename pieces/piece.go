/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package pieces holds the movement rules for the six chess piece kinds.
// Each kind is a small value implementing the Piece interface; the board
// package drives them through BoardView without either package importing
// the other's concrete types.
package pieces

import (
	"github.com/frankkopp/chessrulesgo/types"
)

// BoardView is the slice of board.Board that piece rules need in order to
// generate moves. It is satisfied structurally by board.Board so this
// package never imports board - board imports pieces instead.
type BoardView interface {
	// PieceAt returns the piece on sq and true, or (nil, false) if sq is
	// empty or out of bounds.
	PieceAt(sq types.Square) (Piece, bool)

	// IsInBounds reports whether the signed coordinate pair lies on the
	// board (0..7 on each axis).
	IsInBounds(x, y int) bool

	// IsLastRankFor reports whether sq is the promotion rank for color
	// (rank 8 for White, rank 1 for Black).
	IsLastRankFor(color types.Color, sq types.Square) bool

	// IsOnLeftEdge / IsOnRightEdge report whether sq sits on the a-file
	// or h-file respectively.
	IsOnLeftEdge(sq types.Square) bool
	IsOnRightEdge(sq types.Square) bool

	// SquareAccepts reports whether a piece of color may move onto sq:
	// true when sq is empty or holds an opponent piece.
	SquareAccepts(sq types.Square, color types.Color) bool

	// LastMove returns the most recent history entry, if any.
	LastMove() (types.MoveRecord, bool)
}

// PlacedPiece names a piece kind/color that a move places on a square,
// independent of any live Piece value - used to describe promotion
// outcomes in SideEffects without the pieces package depending on board.
type PlacedPiece struct {
	Kind   types.PieceKind
	Color  types.Color
	Square types.Square
}

// Piece is the capability set every piece kind implements. Variants map
// one-to-one with types.PieceKind; none of them hold any state beyond
// their own color.
type Piece interface {
	// Kind returns the piece's kind.
	Kind() types.PieceKind

	// Color returns the piece's color.
	Color() types.Color

	// IsOpponent reports whether c is the opposing color.
	IsOpponent(c types.Color) bool

	// AllPseudoMoves returns every destination the piece could move to
	// from "from" by its own movement rules, ignoring whether the move
	// would leave the mover's king in check.
	AllPseudoMoves(b BoardView, from types.Square) []types.Square

	// CapturesOnMove returns the squares that would be vacated of an
	// opposing piece if the piece moved from "from" to "to". Usually
	// [to] when occupied, empty for a quiet move; pawns additionally
	// report the en-passant victim's square.
	CapturesOnMove(b BoardView, from, to types.Square) []types.Square

	// SideEffectsOnMove returns pieces to place as a consequence of the
	// move beyond the primary relocation - currently only pawn
	// promotion to Queen.
	SideEffectsOnMove(b BoardView, from, to types.Square) []PlacedPiece
}

// basePiece factors the Color/IsOpponent bookkeeping shared by every
// variant so each kind's file only implements movement.
type basePiece struct {
	color types.Color
}

func (p basePiece) Color() types.Color { return p.color }

func (p basePiece) IsOpponent(c types.Color) bool { return c != p.color }
