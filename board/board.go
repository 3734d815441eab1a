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

// Package board holds the square-to-piece mapping and the move history,
// and composes the pieces package's movement rules into the engine's
// legal-move and check/mate/draw surface.
package board

import (
	"github.com/frankkopp/chessrulesgo/logging"
	"github.com/frankkopp/chessrulesgo/pieces"
	"github.com/frankkopp/chessrulesgo/types"
)

var log = logging.GetLog("board")

// Board maps each of the 64 squares to at most one piece and keeps the
// ordered history of moves applied to it. The zero value is an empty
// board with no history, the same board Empty returns; FromPieces and
// Standard build populated ones.
type Board struct {
	squares [types.SqLength]pieces.Piece
	history []types.MoveRecord
}

// Width is the number of files on the board.
func (b Board) Width() int { return types.BoardDimension }

// Length is the number of ranks on the board.
func (b Board) Length() int { return types.BoardDimension }
