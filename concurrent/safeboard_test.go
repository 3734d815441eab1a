package concurrent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessrulesgo/board"
	"github.com/frankkopp/chessrulesgo/types"
)

func TestSafeBoardConcurrentReadsDuringWrite(t *testing.T) {
	sb := NewSafeBoard(board.Standard())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sb.PossibleMoves(types.SqE2)
		}()
	}

	from, err := types.ParseSquare("e2")
	assert.NoError(t, err)
	to, err := types.ParseSquare("e4")
	assert.NoError(t, err)

	effects := sb.MovePiece(from, to)
	wg.Wait()

	assert.True(t, effects.IsEmpty())
	assert.Equal(t, types.Black, sb.ActiveTurn())
}
