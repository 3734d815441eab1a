package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessrulesgo/config"
	"github.com/frankkopp/chessrulesgo/types"
)

func sq(t *testing.T, s string) types.Square {
	t.Helper()
	square, err := types.ParseSquare(s)
	assert.NoError(t, err)
	return square
}

func TestInitialTurnAndAlternation(t *testing.T) {
	b := Standard()
	assert.Equal(t, types.White, b.ActiveTurn())

	b.MovePiece(sq(t, "e2"), sq(t, "e4"))
	assert.Equal(t, types.Black, b.ActiveTurn())

	b.MovePiece(sq(t, "e7"), sq(t, "e5"))
	assert.Equal(t, types.White, b.ActiveTurn())
}

func TestRejectOutOfTurnMove(t *testing.T) {
	b := Standard()
	effects := b.MovePiece(sq(t, "e7"), sq(t, "e5"))
	assert.True(t, effects.IsEmpty())
	p, ok := b.PieceAt(sq(t, "e7"))
	assert.True(t, ok)
	assert.Equal(t, types.Pawn, p.Kind())
	assert.Equal(t, types.White, b.ActiveTurn())
}

func TestScholarLikeCheckmate(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "a6")},
		{Kind: types.Pawn, Color: types.White, Square: sq(t, "a7")},
		{Kind: types.Pawn, Color: types.White, Square: sq(t, "b6")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "a8")},
	})

	b.MovePiece(sq(t, "b6"), sq(t, "b7"))
	assert.True(t, b.IsCheckmated(types.Black))
}

func TestEnPassantCapture(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "e8")},
		{Kind: types.Pawn, Color: types.White, Square: sq(t, "c4")},
		{Kind: types.Pawn, Color: types.Black, Square: sq(t, "b7")},
	})

	b.MovePiece(sq(t, "c4"), sq(t, "c5"))
	b.MovePiece(sq(t, "b7"), sq(t, "b5"))

	moves := b.PossibleMoves(sq(t, "c5"))
	assert.Contains(t, moves, sq(t, "b6"))

	effects := b.MovePiece(sq(t, "c5"), sq(t, "b6"))
	assert.Equal(t, []types.Square{sq(t, "b5")}, effects.Captured)

	_, stillThere := b.PieceAt(sq(t, "b5"))
	assert.False(t, stillThere)

	mover, ok := b.PieceAt(sq(t, "b6"))
	assert.True(t, ok)
	assert.Equal(t, types.Pawn, mover.Kind())
	assert.Equal(t, types.White, mover.Color())
}

func TestPromotionToQueen(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "e8")},
		{Kind: types.Pawn, Color: types.White, Square: sq(t, "a7")},
	})

	effects := b.MovePiece(sq(t, "a7"), sq(t, "a8"))

	mover, ok := b.PieceAt(sq(t, "a8"))
	assert.True(t, ok)
	assert.Equal(t, types.Queen, mover.Kind())
	assert.Equal(t, types.White, mover.Color())
	assert.Equal(t, []PlacedPiece{{Kind: types.Queen, Color: types.White, Square: sq(t, "a8")}}, effects.Spawned)
}

func TestStalemate(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "h1")},
		{Kind: types.Pawn, Color: types.Black, Square: sq(t, "h2")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "g3")},
	})

	assert.False(t, b.IsCheckmated(types.White))
	assert.False(t, b.IsInCheck(types.White))
	assert.True(t, b.IsDraw())
	assert.True(t, b.IsStalemate(types.White))
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.Bishop, Color: types.White, Square: sq(t, "e2")},
		{Kind: types.Rook, Color: types.Black, Square: sq(t, "e3")},
	})

	assert.Empty(t, b.PossibleMoves(sq(t, "e2")))
}

func TestCastlingOffered(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.Rook, Color: types.White, Square: sq(t, "a1")},
		{Kind: types.Rook, Color: types.White, Square: sq(t, "h1")},
	})

	moves := b.PossibleMoves(sq(t, "e1"))
	assert.Contains(t, moves, sq(t, "c1"))
	assert.Contains(t, moves, sq(t, "g1"))
}

func TestStrictCastlingBlockedByPawnControlledTransitSquare(t *testing.T) {
	original := config.Settings.Rules.StrictCastling
	config.Settings.Rules.StrictCastling = true
	defer func() { config.Settings.Rules.StrictCastling = original }()

	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.Rook, Color: types.White, Square: sq(t, "h1")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "e8")},
		{Kind: types.Pawn, Color: types.Black, Square: sq(t, "g2")},
	})

	moves := b.PossibleMoves(sq(t, "e1"))
	assert.NotContains(t, moves, sq(t, "g1"),
		"f1 is controlled by the black pawn on g2 even though f1 is empty, so the king may not pass through it")
}

func TestStrictCastlingAllowedWithClearUnattackedPath(t *testing.T) {
	original := config.Settings.Rules.StrictCastling
	config.Settings.Rules.StrictCastling = true
	defer func() { config.Settings.Rules.StrictCastling = original }()

	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.Rook, Color: types.White, Square: sq(t, "h1")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "e8")},
	})

	moves := b.PossibleMoves(sq(t, "e1"))
	assert.Contains(t, moves, sq(t, "g1"))
}

func TestPieceAtCoordinatesMatchStoredSquare(t *testing.T) {
	b := Standard()
	for file := types.FileA; file <= types.FileH; file++ {
		square := types.SquareOf(file, types.Rank2)
		p, ok := b.PieceAt(square)
		assert.True(t, ok)
		assert.Equal(t, types.Pawn, p.Kind())
	}
}

func TestLegalMoveNeverLeavesMoverInCheck(t *testing.T) {
	b := Standard()
	b.MovePiece(sq(t, "e2"), sq(t, "e4"))
	assert.False(t, b.IsInCheck(types.White))
}

func TestCapturesOnMoveIncludesOccupiedDestination(t *testing.T) {
	b := FromPieces([]Seed{
		{Kind: types.King, Color: types.White, Square: sq(t, "e1")},
		{Kind: types.King, Color: types.Black, Square: sq(t, "e8")},
		{Kind: types.Rook, Color: types.White, Square: sq(t, "a1")},
		{Kind: types.Pawn, Color: types.Black, Square: sq(t, "a7")},
	})
	moves := b.PossibleMoves(sq(t, "a1"))
	assert.Contains(t, moves, sq(t, "a7"))

	effects := b.MovePiece(sq(t, "a1"), sq(t, "a7"))
	assert.Equal(t, []types.Square{sq(t, "a7")}, effects.Captured)
}
