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
	"github.com/frankkopp/chessrulesgo/config"
	"github.com/frankkopp/chessrulesgo/pieces"
	"github.com/frankkopp/chessrulesgo/types"
)

// PossibleMoves returns the fully legal destinations for the piece on
// from: its pseudo moves, filtered to those that do not leave the
// mover's own king in check, plus castling destinations when from holds
// a king that is not currently in check.
func (b Board) PossibleMoves(from types.Square) []types.Square {
	piece, ok := b.PieceAt(from)
	if !ok {
		return nil
	}

	var legal []types.Square
	for _, to := range piece.AllPseudoMoves(b, from) {
		if !b.wouldBeInCheckAfter(from, to, piece.Color()) {
			legal = append(legal, to)
		}
	}

	if piece.Kind() == types.King && !b.IsInCheck(piece.Color()) {
		legal = append(legal, b.castlingSquares(from, piece.Color())...)
	}

	return legal
}

// wouldBeInCheckAfter reports whether force-moving from->to on a clone
// of b (bypassing legality checks, history and side effects) leaves
// color's king in check.
func (b Board) wouldBeInCheckAfter(from, to types.Square, color types.Color) bool {
	clone := b.Clone()
	clone.squares[to] = clone.squares[from]
	clone.squares[from] = nil
	return clone.IsInCheck(color)
}

// IsLegalMove reports whether from holds a piece belonging to the
// active turn and to is among its PossibleMoves.
func (b Board) IsLegalMove(from, to types.Square) bool {
	piece, ok := b.PieceAt(from)
	if !ok || piece.Color() != b.ActiveTurn() {
		return false
	}
	for _, candidate := range b.PossibleMoves(from) {
		if candidate == to {
			return true
		}
	}
	return false
}

// MovePiece validates from->to and, if legal, applies it: the captured
// squares (including an en-passant victim) are cleared, the move is
// recorded in history, the piece relocates to "to", and any spawned
// pieces (promotion) are placed. An illegal move is a no-op that
// returns an empty SideEffects - the board is left untouched.
func (b *Board) MovePiece(from, to types.Square) SideEffects {
	if !b.IsLegalMove(from, to) {
		return SideEffects{}
	}

	mover, _ := b.PieceAt(from)
	captured := mover.CapturesOnMove(b, from, to)
	spawned := mover.SideEffectsOnMove(b, from, to)
	historyBefore := len(b.history)

	b.squares[from] = nil
	for _, sq := range captured {
		b.squares[sq] = nil
	}
	b.history = append(b.history, types.MoveRecord{Kind: mover.Kind(), From: from, To: to})
	b.squares[to] = mover
	for _, sp := range spawned {
		b.squares[sp.Square] = pieces.Build(sp.Kind, sp.Color)
	}

	assert.Assert(len(b.history) == historyBefore+1, "history must grow by exactly one record per move, had %d, now %d", historyBefore, len(b.history))
	if assert.DEBUG {
		// Promotion overwrites "to" with a spawned piece of a different
		// kind, so only color is guaranteed to survive at the
		// destination - kind is mover's own unless a spawn replaced it.
		p, stillAtTo := b.PieceAt(to)
		_, stillAtFrom := b.PieceAt(from)
		assert.Assert(stillAtTo && p.Color() == mover.Color(),
			"a piece of color %v must be readable back from destination %v", mover.Color(), to)
		assert.Assert(!stillAtFrom, "origin square %v must be vacated after a move", from)
	}
	assertSingleKingPerColor(*b)

	log.Debugf("moved %v %v->%v, captured=%v spawned=%v", mover.Kind(), from, to, captured, spawned)

	return SideEffects{Captured: captured, Spawned: spawned}
}

// castlingSquares returns the castling destinations available to the
// king on from, gated only on a same-color rook standing on the a-file
// or h-file square of the king's current rank (its home corner while the
// king is on its home rank) - unless config.Settings.Rules.StrictCastling is set, in
// which case the squares between king and rook must be empty, neither
// piece may have moved yet, and the king may not cross or land on an
// attacked square.
func (b Board) castlingSquares(from types.Square, color types.Color) []types.Square {
	homeRank := from.RankOf()
	var squares []types.Square

	tryCastle := func(rookFile, passedFile, destFile types.File) {
		rookSq := types.SquareOf(rookFile, homeRank)
		rook, ok := b.PieceAt(rookSq)
		if !ok || rook.Kind() != types.Rook || rook.Color() != color {
			return
		}
		dest := types.SquareOf(destFile, homeRank)
		if config.Settings.Rules.StrictCastling {
			passedSq := types.SquareOf(passedFile, homeRank)
			if !b.strictCastlingAllowed(from, rookSq, dest, passedSq, color) {
				return
			}
		}
		squares = append(squares, dest)
	}

	tryCastle(types.FileA, types.FileD, types.FileC)
	tryCastle(types.FileH, types.FileF, types.FileG)

	return squares
}

// strictCastlingAllowed checks the three conditions the base rule
// leaves open: the squares between king and rook must be clear, neither
// the king nor the rook may have moved, and the king may not pass
// through or land on an attacked square. The king's starting square
// itself is not checked here - PossibleMoves only calls castlingSquares
// when the king is not already in check.
func (b Board) strictCastlingAllowed(kingSq, rookSq, dest, passedSq types.Square, color types.Color) bool {
	for _, record := range b.history {
		if record.From == kingSq || record.From == rookSq || record.To == kingSq || record.To == rookSq {
			return false
		}
	}

	lo, hi := kingSq, rookSq
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo + 1; sq < hi; sq++ {
		if _, occupied := b.PieceAt(sq); occupied {
			return false
		}
	}

	attacker := color.Flip()
	if b.isAttackedBy(attacker, passedSq) || b.isAttackedBy(attacker, dest) {
		return false
	}

	return true
}
