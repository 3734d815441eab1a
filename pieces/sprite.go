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

// spriteIndex is the front-end sprite sheet layout this engine was
// paired with. Not used by any rule, kept only so a reimplemented UI
// has somewhere authoritative to read it from.
var spriteIndex = map[types.Color]map[types.PieceKind]int{
	types.White: {
		types.Pawn: 6, types.Knight: 9, types.Bishop: 8,
		types.Rook: 7, types.Queen: 11, types.King: 10,
	},
	types.Black: {
		types.Pawn: 0, types.Knight: 3, types.Bishop: 2,
		types.Rook: 1, types.Queen: 5, types.King: 4,
	},
}

// SpriteIndex returns the sprite sheet index a front-end should use to
// draw a piece of kind/color. It is a pure lookup table, not part of
// any rule computation.
func SpriteIndex(kind types.PieceKind, color types.Color) int {
	return spriteIndex[color][kind]
}
