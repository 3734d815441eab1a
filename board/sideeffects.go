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

// PlacedPiece names a piece kind/color a move places on a square, beyond
// the mover's own relocation - currently only pawn promotion.
type PlacedPiece = pieces.PlacedPiece

// SideEffects reports what a successful MovePiece changed beyond moving
// the piece from "from" to "to": squares vacated of a captured piece
// (which may include an en-passant victim distinct from the
// destination) and pieces spawned by the move (promotion).
type SideEffects struct {
	Captured []types.Square
	Spawned  []PlacedPiece
}

// IsEmpty reports whether the move produced no side effects at all -
// the value MovePiece returns for a rejected, illegal move.
func (s SideEffects) IsEmpty() bool {
	return len(s.Captured) == 0 && len(s.Spawned) == 0
}
