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

package pieces

import "github.com/frankkopp/chessrulesgo/types"

// Pawn is the only piece whose movement and capture rules differ: it
// steps forward but captures diagonally, may double-step from its
// starting rank, may capture en passant, and promotes on reaching the
// far rank.
type Pawn struct{ basePiece }

func (p Pawn) Kind() types.PieceKind { return types.Pawn }

// startingRank is the rank from which a pawn of color may double-step.
func startingRank(color types.Color) types.Rank {
	if color == types.White {
		return types.Rank2
	}
	return types.Rank7
}

func (p Pawn) AllPseudoMoves(b BoardView, from types.Square) []types.Square {
	var moves []types.Square
	dir := p.color.MoveDirection()
	x, y := int(from.FileOf()), int(from.RankOf())

	// forward steps, blocked by any occupant
	if b.IsInBounds(x, y+dir) {
		oneAhead := types.NewSquare(x, y+dir)
		if _, occupied := b.PieceAt(oneAhead); !occupied {
			moves = append(moves, oneAhead)
			if from.RankOf() == startingRank(p.color) && b.IsInBounds(x, y+2*dir) {
				twoAhead := types.NewSquare(x, y+2*dir)
				if _, occupied := b.PieceAt(twoAhead); !occupied {
					moves = append(moves, twoAhead)
				}
			}
		}
	}

	// diagonal captures
	for _, dx := range [2]int{-1, 1} {
		if !b.IsInBounds(x+dx, y+dir) {
			continue
		}
		dest := types.NewSquare(x+dx, y+dir)
		if occupant, occupied := b.PieceAt(dest); occupied && occupant.IsOpponent(p.color) {
			moves = append(moves, dest)
		}
	}

	if ep, ok := p.enPassantTarget(b, from); ok {
		moves = append(moves, ep)
	}

	return moves
}

// enPassantTarget reports the square a pawn at "from" may move to in
// order to capture en passant, if the last move was an adjacent pawn's
// double step landing on this pawn's rank.
func (p Pawn) enPassantTarget(b BoardView, from types.Square) (types.Square, bool) {
	last, ok := b.LastMove()
	if !ok || !last.IsPawnDoubleStep() {
		return types.SqNone, false
	}
	if last.To.RankOf() != from.RankOf() {
		return types.SqNone, false
	}
	fileDiff := int(last.To.FileOf()) - int(from.FileOf())
	if fileDiff != 1 && fileDiff != -1 {
		return types.SqNone, false
	}
	dir := p.color.MoveDirection()
	target := types.NewSquare(int(last.To.FileOf()), int(from.RankOf())+dir)
	return target, true
}

// PawnAttackSquares returns the (at most two) squares a pawn of color on
// "from" threatens diagonally, regardless of whether anything occupies
// them. AllPseudoMoves only reports a diagonal as a move once an
// opponent is actually standing on it - check detection and the
// strict-castling king-path test both need to know what a pawn threatens
// even when the square in question is empty, so they use this instead.
func PawnAttackSquares(from types.Square, color types.Color) []types.Square {
	var attacks []types.Square
	dir := color.MoveDirection()
	x, y := int(from.FileOf()), int(from.RankOf())
	for _, dx := range [2]int{-1, 1} {
		nx, ny := x+dx, y+dir
		if nx < 0 || nx >= types.BoardDimension || ny < 0 || ny >= types.BoardDimension {
			continue
		}
		attacks = append(attacks, types.NewSquare(nx, ny))
	}
	return attacks
}

func (p Pawn) CapturesOnMove(b BoardView, from, to types.Square) []types.Square {
	captures := capturesIfOccupied(b, to)
	if ep, ok := p.enPassantTarget(b, from); ok && ep == to {
		victim := types.NewSquare(int(to.FileOf()), int(from.RankOf()))
		captures = append(captures, victim)
	}
	return captures
}

func (p Pawn) SideEffectsOnMove(b BoardView, from, to types.Square) []PlacedPiece {
	if b.IsLastRankFor(p.color, to) {
		return []PlacedPiece{{Kind: types.Queen, Color: p.color, Square: to}}
	}
	return nil
}
