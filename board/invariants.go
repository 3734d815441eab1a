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
	"github.com/frankkopp/chessrulesgo/assert"
	"github.com/frankkopp/chessrulesgo/types"
)

// kingCount returns how many of color's king sit on the board.
// kingSquare and IsInCheck both assume the answer is at most one.
func (b Board) kingCount(color types.Color) int {
	n := 0
	for sq := types.Square(0); int(sq) < types.SqLength; sq++ {
		if p, ok := b.PieceAt(sq); ok && p.Kind() == types.King && p.Color() == color {
			n++
		}
	}
	return n
}

// assertSingleKingPerColor guards the invariant kingSquare/IsInCheck rely
// on without checking themselves: a color with two kings makes "the"
// king square ambiguous. No-op unless built with the debug build tag.
func assertSingleKingPerColor(b Board) {
	if !assert.DEBUG {
		return
	}
	assert.Assert(b.kingCount(types.White) <= 1, "white must not have more than one king on the board, has %d", b.kingCount(types.White))
	assert.Assert(b.kingCount(types.Black) <= 1, "black must not have more than one king on the board, has %d", b.kingCount(types.Black))
}
