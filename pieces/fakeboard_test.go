package pieces

import "github.com/frankkopp/chessrulesgo/types"

// fakeBoard is a minimal BoardView used to unit test piece rules in
// isolation from the board package.
type fakeBoard struct {
	occupants map[types.Square]Piece
	last      *types.MoveRecord
}

func newFakeBoard() *fakeBoard {
	return &fakeBoard{occupants: map[types.Square]Piece{}}
}

func (f *fakeBoard) put(sq types.Square, p Piece) *fakeBoard {
	f.occupants[sq] = p
	return f
}

func (f *fakeBoard) withLastMove(m types.MoveRecord) *fakeBoard {
	f.last = &m
	return f
}

func (f *fakeBoard) PieceAt(sq types.Square) (Piece, bool) {
	p, ok := f.occupants[sq]
	return p, ok
}

func (f *fakeBoard) IsInBounds(x, y int) bool {
	return x >= 0 && x < types.BoardDimension && y >= 0 && y < types.BoardDimension
}

func (f *fakeBoard) IsLastRankFor(color types.Color, sq types.Square) bool {
	if color == types.White {
		return sq.RankOf() == types.Rank8
	}
	return sq.RankOf() == types.Rank1
}

func (f *fakeBoard) IsOnLeftEdge(sq types.Square) bool  { return sq.FileOf() == types.FileA }
func (f *fakeBoard) IsOnRightEdge(sq types.Square) bool { return sq.FileOf() == types.FileH }

func (f *fakeBoard) SquareAccepts(sq types.Square, color types.Color) bool {
	occupant, ok := f.PieceAt(sq)
	if !ok {
		return true
	}
	return occupant.IsOpponent(color)
}

func (f *fakeBoard) LastMove() (types.MoveRecord, bool) {
	if f.last == nil {
		return types.MoveRecord{}, false
	}
	return *f.last, true
}
