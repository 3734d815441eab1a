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

// Package perft counts the leaf nodes of the legal move tree to a given
// depth - a regression tool for move generation rather than a rule of
// the game itself. A bug in any piece's move rules typically shows up
// as a wrong node count long before it shows up as a wrong game.
package perft

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chessrulesgo/board"
	"github.com/frankkopp/chessrulesgo/logging"
)

var log = logging.GetLog("perft")

// Perft counts the number of leaf positions reachable from b by playing
// out every legal move to the given depth. Perft(b, 0) is 1 by
// definition - the position itself is the single leaf.
func Perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, mv := range b.LegalMovesFor(b.ActiveTurn()) {
		clone := b.Clone()
		clone.MovePiece(mv.From, mv.To)
		nodes += Perft(clone, depth-1)
	}
	return nodes
}

// ParallelPerft is Perft with the first ply's moves fanned out across
// goroutines, bounded to maxConcurrency in flight at once via a
// semaphore. Useful once depth grows large enough that the single
// threaded walk becomes the bottleneck; the result is identical to
// Perft's for the same (b, depth).
func ParallelPerft(ctx context.Context, b board.Board, depth int, maxConcurrency int64) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}

	sem := semaphore.NewWeighted(maxConcurrency)
	moves := b.LegalMovesFor(b.ActiveTurn())

	var wg sync.WaitGroup
	var mu sync.Mutex
	var total uint64
	var firstErr error

	for _, mv := range moves {
		if err := sem.Acquire(ctx, 1); err != nil {
			firstErr = err
			break
		}
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			clone := b.Clone()
			clone.MovePiece(mv.From, mv.To)
			n := Perft(clone, depth-1)
			mu.Lock()
			total += n
			mu.Unlock()
		}()
	}

	wg.Wait()
	if firstErr != nil {
		log.Errorf("parallel perft aborted: %v", firstErr)
		return 0, firstErr
	}
	return total, nil
}
