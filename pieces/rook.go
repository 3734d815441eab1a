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

// Rook moves any number of squares along a file or rank.
type Rook struct{ basePiece }

func (p Rook) Kind() types.PieceKind { return types.Rook }

func (p Rook) AllPseudoMoves(b BoardView, from types.Square) []types.Square {
	return OrthogonalWalker(b, from, p.color)
}

func (p Rook) CapturesOnMove(b BoardView, from, to types.Square) []types.Square {
	return capturesIfOccupied(b, to)
}

func (p Rook) SideEffectsOnMove(b BoardView, from, to types.Square) []PlacedPiece {
	return nil
}
