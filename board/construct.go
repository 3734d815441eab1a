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
	"github.com/frankkopp/chessrulesgo/pieces"
	"github.com/frankkopp/chessrulesgo/types"
)

// Seed names a piece to place on a board under construction.
type Seed struct {
	Kind   types.PieceKind
	Color  types.Color
	Square types.Square
}

// AlgebraicSeed is a Seed spelled with an algebraic square name, for
// callers building a position from human-readable input.
type AlgebraicSeed struct {
	Kind  types.PieceKind
	Color types.Color
	At    string
}

// Empty returns a board with no pieces and no history.
func Empty() Board {
	return Board{}
}

// FromPieces seeds an empty board with seeds, in order; if two seeds
// name the same square the last one wins.
func FromPieces(seeds []Seed) Board {
	b := Empty()
	bySquare := make(map[types.Square]Seed, len(seeds))
	for _, s := range seeds {
		b.squares[s.Square] = pieces.Build(s.Kind, s.Color)
		bySquare[s.Square] = s
	}
	if assert.DEBUG {
		for sq, s := range bySquare {
			p, ok := b.PieceAt(sq)
			assert.Assert(ok && p.Kind() == s.Kind && p.Color() == s.Color,
				"seed %v %v at %v must be readable back from its own square", s.Color, s.Kind, sq)
		}
	}
	assertSingleKingPerColor(b)
	return b
}

// FromAlgebraic is FromPieces for callers with algebraic square names.
// It fails fast on the first unparseable square.
func FromAlgebraic(seeds []AlgebraicSeed) (Board, error) {
	converted := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		sq, err := types.ParseSquare(s.At)
		if err != nil {
			return Board{}, err
		}
		converted = append(converted, Seed{Kind: s.Kind, Color: s.Color, Square: sq})
	}
	return FromPieces(converted), nil
}

// standardSeeds is the back rank piece order, queen on the d-file.
var standardSeeds = [8]types.PieceKind{
	types.Rook, types.Knight, types.Bishop, types.Queen,
	types.King, types.Bishop, types.Knight, types.Rook,
}

// Standard returns a board set up for the start of a game.
func Standard() Board {
	b := Empty()
	for file := types.FileA; file <= types.FileH; file++ {
		b.squares[types.SquareOf(file, types.Rank1)] = pieces.Build(standardSeeds[file], types.White)
		b.squares[types.SquareOf(file, types.Rank2)] = pieces.Build(types.Pawn, types.White)
		b.squares[types.SquareOf(file, types.Rank7)] = pieces.Build(types.Pawn, types.Black)
		b.squares[types.SquareOf(file, types.Rank8)] = pieces.Build(standardSeeds[file], types.Black)
	}
	assertSingleKingPerColor(b)
	return b
}
