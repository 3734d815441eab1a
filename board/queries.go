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

// PieceAt returns the piece on sq and true, or (nil, false) if sq is
// empty or out of bounds.
func (b Board) PieceAt(sq types.Square) (pieces.Piece, bool) {
	if !sq.IsValid() {
		return nil, false
	}
	p := b.squares[sq]
	return p, p != nil
}

// IsInBounds reports whether the signed coordinate pair lies on the
// board.
func (b Board) IsInBounds(x, y int) bool {
	return x >= 0 && x < types.BoardDimension && y >= 0 && y < types.BoardDimension
}

// IsLastRankFor reports whether sq is the promotion rank for color.
func (b Board) IsLastRankFor(color types.Color, sq types.Square) bool {
	if color == types.White {
		return sq.RankOf() == types.Rank8
	}
	return sq.RankOf() == types.Rank1
}

// IsOnLeftEdge reports whether sq sits on the a-file.
func (b Board) IsOnLeftEdge(sq types.Square) bool { return sq.FileOf() == types.FileA }

// IsOnRightEdge reports whether sq sits on the h-file.
func (b Board) IsOnRightEdge(sq types.Square) bool { return sq.FileOf() == types.FileH }

// SquareAccepts reports whether a piece of color may move onto sq: true
// iff sq is empty or holds an opponent's piece. An empty square
// returning true is relied on by every slider and stepper's move
// generation.
func (b Board) SquareAccepts(sq types.Square, color types.Color) bool {
	occupant, ok := b.PieceAt(sq)
	if !ok {
		return true
	}
	return occupant.IsOpponent(color)
}

// ActiveTurn is White when the history holds an even number of moves.
func (b Board) ActiveTurn() types.Color {
	if len(b.history)%2 == 0 {
		return types.White
	}
	return types.Black
}

// LastMove returns the most recently applied move, if any.
func (b Board) LastMove() (types.MoveRecord, bool) {
	if len(b.history) == 0 {
		return types.MoveRecord{}, false
	}
	return b.history[len(b.history)-1], true
}

// History returns the full ordered move log. Callers must not mutate
// the returned slice.
func (b Board) History() []types.MoveRecord {
	return b.history
}

// kingSquare locates color's king, if it exists on the board.
func (b Board) kingSquare(color types.Color) (types.Square, bool) {
	for sq := types.Square(0); int(sq) < types.SqLength; sq++ {
		p, ok := b.PieceAt(sq)
		if ok && p.Kind() == types.King && p.Color() == color {
			return sq, true
		}
	}
	return types.SqNone, false
}
