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
	"strings"

	"github.com/frankkopp/chessrulesgo/types"
)

// StringBoard renders the board as an 8x8 ASCII grid, rank 8 at the
// top, each piece shown by its character (uppercase White, lowercase
// Black) per types.PieceKind.Char.
func (b Board) StringBoard() string {
	var sb strings.Builder
	sep := "+---+---+---+---+---+---+---+---+\n"
	sb.WriteString(sep)
	for rank := types.Rank8; rank >= types.Rank1; rank-- {
		sb.WriteString("|")
		for file := types.FileA; file <= types.FileH; file++ {
			p, ok := b.PieceAt(types.SquareOf(file, rank))
			ch := " "
			if ok {
				ch = p.Kind().Char()
				if p.Color() == types.Black {
					ch = strings.ToLower(ch)
				}
			}
			sb.WriteString(" " + ch + " |")
		}
		sb.WriteString("\n")
		sb.WriteString(sep)
	}
	return sb.String()
}

// String renders the board and whose turn it is.
func (b Board) String() string {
	return b.StringBoard() + b.ActiveTurn().Str() + " to move\n"
}
