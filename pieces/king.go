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

// King moves one square in any direction. Castling destinations are not
// produced here - the board adds them, since they depend on rook
// squares and check state rather than anything the king itself knows.
type King struct{ basePiece }

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func (p King) Kind() types.PieceKind { return types.King }

func (p King) AllPseudoMoves(b BoardView, from types.Square) []types.Square {
	var moves []types.Square
	x, y := int(from.FileOf()), int(from.RankOf())
	for _, off := range kingOffsets {
		nx, ny := x+off[0], y+off[1]
		if !b.IsInBounds(nx, ny) {
			continue
		}
		dest := types.NewSquare(nx, ny)
		if b.SquareAccepts(dest, p.color) {
			moves = append(moves, dest)
		}
	}
	return moves
}

func (p King) CapturesOnMove(b BoardView, from, to types.Square) []types.Square {
	return capturesIfOccupied(b, to)
}

func (p King) SideEffectsOnMove(b BoardView, from, to types.Square) []PlacedPiece {
	return nil
}
