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

var orthogonalDirections = [4]types.Direction{types.East, types.West, types.North, types.South}

var diagonalDirections = [4]types.Direction{types.Northeast, types.Southeast, types.Southwest, types.Northwest}

// castRay walks the board one square at a time from origin in direction d,
// stopping at the board edge, the first own piece (excluded), or the
// first opponent piece (included).
func castRay(b BoardView, origin types.Square, color types.Color, d types.Direction) []types.Square {
	var moves []types.Square
	sq := origin
	for {
		sq = sq.To(d)
		if !sq.IsValid() {
			break
		}
		occupant, ok := b.PieceAt(sq)
		if !ok {
			moves = append(moves, sq)
			continue
		}
		if occupant.IsOpponent(color) {
			moves = append(moves, sq)
		}
		break
	}
	return moves
}

// OrthogonalWalker collects the four straight rays (right, left, up,
// down) from origin, each stopping at the edge, an opponent (inclusive)
// or an own piece (exclusive).
func OrthogonalWalker(b BoardView, origin types.Square, color types.Color) []types.Square {
	var moves []types.Square
	for _, d := range orthogonalDirections {
		moves = append(moves, castRay(b, origin, color, d)...)
	}
	return moves
}

// DiagonalWalker collects the four diagonal rays from origin with the
// same stopping semantics as OrthogonalWalker.
func DiagonalWalker(b BoardView, origin types.Square, color types.Color) []types.Square {
	var moves []types.Square
	for _, d := range diagonalDirections {
		moves = append(moves, castRay(b, origin, color, d)...)
	}
	return moves
}
