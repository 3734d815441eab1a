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

// Package concurrent wraps board.Board for the callers mentioned in its
// concurrency note: the board itself is single-threaded, so anyone
// wanting concurrent access has to bring their own mutual exclusion.
// SafeBoard is that guard.
package concurrent

import (
	"sync"

	"github.com/frankkopp/chessrulesgo/board"
	"github.com/frankkopp/chessrulesgo/pieces"
	"github.com/frankkopp/chessrulesgo/types"
)

// SafeBoard guards a board.Board with a RWMutex, allowing concurrent
// readers (piece_at, possible_moves, ...) while serializing writers
// (move_piece).
type SafeBoard struct {
	mu sync.RWMutex
	b  board.Board
}

// NewSafeBoard wraps an already-constructed board.Board.
func NewSafeBoard(b board.Board) *SafeBoard {
	return &SafeBoard{b: b}
}

// PieceAt is board.Board.PieceAt under a read lock.
func (s *SafeBoard) PieceAt(sq types.Square) (pieces.Piece, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.PieceAt(sq)
}

// PossibleMoves is board.Board.PossibleMoves under a read lock.
func (s *SafeBoard) PossibleMoves(from types.Square) []types.Square {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.PossibleMoves(from)
}

// IsLegalMove is board.Board.IsLegalMove under a read lock.
func (s *SafeBoard) IsLegalMove(from, to types.Square) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.IsLegalMove(from, to)
}

// ActiveTurn is board.Board.ActiveTurn under a read lock.
func (s *SafeBoard) ActiveTurn() types.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.ActiveTurn()
}

// IsInCheck is board.Board.IsInCheck under a read lock.
func (s *SafeBoard) IsInCheck(color types.Color) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.IsInCheck(color)
}

// IsCheckmated is board.Board.IsCheckmated under a read lock.
func (s *SafeBoard) IsCheckmated(color types.Color) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.IsCheckmated(color)
}

// IsDraw is board.Board.IsDraw under a read lock.
func (s *SafeBoard) IsDraw() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.IsDraw()
}

// LastMove is board.Board.LastMove under a read lock.
func (s *SafeBoard) LastMove() (types.MoveRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.LastMove()
}

// Snapshot returns a cloned, unguarded copy of the current board for
// callers that need to run a batch of read-only queries without
// re-acquiring the lock per call.
func (s *SafeBoard) Snapshot() board.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.b.Clone()
}

// MovePiece is board.Board.MovePiece under a write lock.
func (s *SafeBoard) MovePiece(from, to types.Square) board.SideEffects {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.MovePiece(from, to)
}
