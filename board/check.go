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

package board

import (
	"github.com/frankkopp/chessrulesgo/pieces"
	"github.com/frankkopp/chessrulesgo/types"
)

// GameState is the status a board reports for the side to move.
// Checkmate and Stalemate are terminal; InPlay and Check are not.
type GameState int

const (
	InPlay GameState = iota
	Check
	Checkmate
	Stalemate
)

// isAttackedBy reports whether any piece of color attacks sq. Used both
// for IsInCheck and for the strict-castling king-path check.
//
// Pawns need special handling: AllPseudoMoves only reports a pawn's
// diagonal as a move when an opponent actually occupies it, since a pawn
// cannot advance diagonally onto an empty square. An attacked square must
// count as attacked whether or not anything currently sits on it (the
// whole point of the strict-castling king-path check is empty transit
// squares), so pawns are probed with PawnAttackSquares instead of
// AllPseudoMoves.
func (b Board) isAttackedBy(color types.Color, sq types.Square) bool {
	for origin := types.Square(0); int(origin) < types.SqLength; origin++ {
		p, ok := b.PieceAt(origin)
		if !ok || p.Color() != color {
			continue
		}
		if p.Kind() == types.Pawn {
			for _, dest := range pieces.PawnAttackSquares(origin, color) {
				if dest == sq {
					return true
				}
			}
			continue
		}
		for _, dest := range p.AllPseudoMoves(b, origin) {
			if dest == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether color's king sits on a square attacked by
// any opposing piece. A color with no king on the board is never in
// check.
func (b Board) IsInCheck(color types.Color) bool {
	kingSq, ok := b.kingSquare(color)
	if !ok {
		return false
	}
	return b.isAttackedBy(color.Flip(), kingSq)
}

// LegalMovesFor concatenates PossibleMoves over every square color owns
// a piece on.
func (b Board) LegalMovesFor(color types.Color) []MoveCandidate {
	var moves []MoveCandidate
	for sq := types.Square(0); int(sq) < types.SqLength; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok || p.Color() != color {
			continue
		}
		for _, to := range b.PossibleMoves(sq) {
			moves = append(moves, MoveCandidate{From: sq, To: to})
		}
	}
	return moves
}

// MoveCandidate is a single (from, to) legal move, as produced by
// LegalMovesFor.
type MoveCandidate struct {
	From types.Square
	To   types.Square
}

// IsCheckmated reports whether color is in check with no legal
// response.
func (b Board) IsCheckmated(color types.Color) bool {
	return b.IsInCheck(color) && len(b.LegalMovesFor(color)) == 0
}

// IsStalemate reports whether color is not in check but has no legal
// move.
func (b Board) IsStalemate(color types.Color) bool {
	return !b.IsInCheck(color) && len(b.LegalMovesFor(color)) == 0
}

// IsDraw reports whether either color has no legal move available,
// whether or not that color is in check. It mirrors the engine this was
// ported from, which does not distinguish stalemate from the side to
// move being checkmated; IsStalemate and IsCheckmated are provided
// separately for callers that need the distinction.
func (b Board) IsDraw() bool {
	return len(b.LegalMovesFor(types.White)) == 0 || len(b.LegalMovesFor(types.Black)) == 0
}

// State reports the board's current terminal status from the active
// turn's perspective: Checkmate/Stalemate take precedence over a plain
// Check, which takes precedence over InPlay.
func (b Board) State() GameState {
	turn := b.ActiveTurn()
	if b.IsCheckmated(turn) {
		return Checkmate
	}
	if b.IsStalemate(turn) {
		return Stalemate
	}
	if b.IsInCheck(turn) {
		return Check
	}
	return InPlay
}
