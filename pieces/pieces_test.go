package pieces

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessrulesgo/types"
)

func TestRookRayStopsAtOwnAndCapturesOpponent(t *testing.T) {
	b := newFakeBoard().
		put(types.SqA4, Build(types.Pawn, types.White)).
		put(types.SqH1, Build(types.Pawn, types.Black))
	rook := Build(types.Rook, types.White)

	moves := rook.AllPseudoMoves(b, types.SqA1)

	assert.Contains(t, moves, types.SqA2, "squares before an own piece are reachable")
	assert.Contains(t, moves, types.SqA3, "squares before an own piece are reachable")
	assert.NotContains(t, moves, types.SqA4, "own piece blocks without being included")
	assert.NotContains(t, moves, types.SqA5)
	assert.Contains(t, moves, types.SqH1, "opponent piece is included as the final square")
	assert.NotContains(t, moves, types.SqA1)
}

func TestBishopDiagonalRay(t *testing.T) {
	b := newFakeBoard()
	bishop := Build(types.Bishop, types.White)
	moves := bishop.AllPseudoMoves(b, types.SqD4)
	assert.Contains(t, moves, types.SqA1)
	assert.Contains(t, moves, types.SqH8)
	assert.Contains(t, moves, types.SqG1)
	assert.Contains(t, moves, types.SqA7)
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	b := newFakeBoard()
	queen := Build(types.Queen, types.White)
	moves := queen.AllPseudoMoves(b, types.SqD1)
	assert.Contains(t, moves, types.SqD8, "orthogonal reach")
	assert.Contains(t, moves, types.SqA4, "diagonal reach")
}

func TestKnightLShapesFromCorner(t *testing.T) {
	b := newFakeBoard()
	knight := Build(types.Knight, types.White)
	moves := knight.AllPseudoMoves(b, types.SqA1)
	assert.ElementsMatch(t, []types.Square{types.SqB3, types.SqC2}, moves)
}

func TestKnightCannotLandOnOwnPiece(t *testing.T) {
	b := newFakeBoard().put(types.SqB3, Build(types.Pawn, types.White))
	knight := Build(types.Knight, types.White)
	moves := knight.AllPseudoMoves(b, types.SqA1)
	assert.NotContains(t, moves, types.SqB3)
	assert.Contains(t, moves, types.SqC2)
}

func TestKingOneStepEachDirection(t *testing.T) {
	b := newFakeBoard()
	king := Build(types.King, types.White)
	moves := king.AllPseudoMoves(b, types.SqE4)
	assert.Len(t, moves, 8)
}

func TestPawnSingleAndDoubleStepFromStartingRank(t *testing.T) {
	b := newFakeBoard()
	pawn := Build(types.Pawn, types.White)
	moves := pawn.AllPseudoMoves(b, types.SqE2)
	assert.ElementsMatch(t, []types.Square{types.SqE3, types.SqE4}, moves)
}

func TestPawnBlockedCannotDoubleStepOrStep(t *testing.T) {
	b := newFakeBoard().put(types.SqE3, Build(types.Pawn, types.Black))
	pawn := Build(types.Pawn, types.White)
	moves := pawn.AllPseudoMoves(b, types.SqE2)
	assert.Empty(t, moves)
}

func TestPawnDiagonalCaptureOnlyOnOpponent(t *testing.T) {
	b := newFakeBoard().
		put(types.SqD3, Build(types.Pawn, types.Black)).
		put(types.SqF3, Build(types.Pawn, types.White))
	pawn := Build(types.Pawn, types.White)
	moves := pawn.AllPseudoMoves(b, types.SqE2)
	assert.Contains(t, moves, types.SqD3)
	assert.NotContains(t, moves, types.SqF3, "cannot capture an own piece diagonally")
}

func TestPawnEnPassantTargetAndCapture(t *testing.T) {
	b := newFakeBoard().
		put(types.SqB5, Build(types.Pawn, types.Black)).
		withLastMove(types.MoveRecord{Kind: types.Pawn, From: types.SqB7, To: types.SqB5})
	pawn := Build(types.Pawn, types.White)

	moves := pawn.AllPseudoMoves(b, types.SqC5)
	assert.Contains(t, moves, types.SqB6)

	captures := pawn.CapturesOnMove(b, types.SqC5, types.SqB6)
	assert.ElementsMatch(t, []types.Square{types.SqB5}, captures)
}

func TestPawnPromotionSideEffect(t *testing.T) {
	b := newFakeBoard()
	pawn := Build(types.Pawn, types.White)
	effects := pawn.SideEffectsOnMove(b, types.SqA7, types.SqA8)
	assert.Equal(t, []PlacedPiece{{Kind: types.Queen, Color: types.White, Square: types.SqA8}}, effects)
}

func TestPawnAttackSquaresIgnoresOccupancy(t *testing.T) {
	attacks := PawnAttackSquares(types.SqE2, types.White)
	assert.ElementsMatch(t, []types.Square{types.SqD3, types.SqF3}, attacks,
		"a pawn threatens both forward diagonals whether or not anything occupies them")
}

func TestPawnAttackSquaresClampedAtBoardEdge(t *testing.T) {
	attacks := PawnAttackSquares(types.SqA2, types.White)
	assert.ElementsMatch(t, []types.Square{types.SqB3}, attacks, "off-board diagonal is dropped, not wrapped")
}

func TestSpriteIndexMatchesFrontEndLayout(t *testing.T) {
	assert.Equal(t, 6, SpriteIndex(types.Pawn, types.White))
	assert.Equal(t, 0, SpriteIndex(types.Pawn, types.Black))
	assert.Equal(t, 10, SpriteIndex(types.King, types.White))
	assert.Equal(t, 4, SpriteIndex(types.King, types.Black))
}
