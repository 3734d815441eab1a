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

// Queen combines the Rook and Bishop movement patterns.
type Queen struct{ basePiece }

func (p Queen) Kind() types.PieceKind { return types.Queen }

func (p Queen) AllPseudoMoves(b BoardView, from types.Square) []types.Square {
	moves := OrthogonalWalker(b, from, p.color)
	moves = append(moves, DiagonalWalker(b, from, p.color)...)
	return moves
}

func (p Queen) CapturesOnMove(b BoardView, from, to types.Square) []types.Square {
	return capturesIfOccupied(b, to)
}

func (p Queen) SideEffectsOnMove(b BoardView, from, to types.Square) []PlacedPiece {
	return nil
}
