package perft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessrulesgo/board"
)

func TestPerftDepthZeroIsOne(t *testing.T) {
	assert.Equal(t, uint64(1), Perft(board.Standard(), 0))
}

func TestPerftDepthOneFromStandardStart(t *testing.T) {
	assert.Equal(t, uint64(20), Perft(board.Standard(), 1))
}

func TestPerftDepthTwoFromStandardStart(t *testing.T) {
	assert.Equal(t, uint64(400), Perft(board.Standard(), 2))
}

func TestParallelPerftMatchesSequential(t *testing.T) {
	want := Perft(board.Standard(), 2)
	got, err := ParallelPerft(context.Background(), board.Standard(), 2, 4)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
