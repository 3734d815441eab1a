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

import (
	"fmt"

	"github.com/frankkopp/chessrulesgo/types"
)

// Build constructs the Piece variant for kind/color. It is the single
// place that knows how to turn a (kind, color) pair into a concrete
// piece value, so callers that seed or deserialize boards never
// reference the individual variant types.
func Build(kind types.PieceKind, color types.Color) Piece {
	base := basePiece{color: color}
	switch kind {
	case types.Pawn:
		return Pawn{base}
	case types.Knight:
		return Knight{base}
	case types.Bishop:
		return Bishop{base}
	case types.Rook:
		return Rook{base}
	case types.Queen:
		return Queen{base}
	case types.King:
		return King{base}
	default:
		panic(fmt.Sprintf("pieces.Build: invalid piece kind %v", kind))
	}
}
