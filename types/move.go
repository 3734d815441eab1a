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

package types

// MoveRecord is a single entry of a board's move history: which kind of
// piece moved, and between which two squares. History is the only thing
// that needs to survive a move - it is what en-passant detection and
// turn parity are computed from.
type MoveRecord struct {
	Kind PieceKind
	From Square
	To   Square
}

// IsPawnDoubleStep reports whether this record is a pawn advancing two
// ranks in one move - the trigger condition for offering en-passant to
// the opponent on the very next move.
func (m MoveRecord) IsPawnDoubleStep() bool {
	if m.Kind != Pawn {
		return false
	}
	diff := int(m.From.RankOf()) - int(m.To.RankOf())
	return diff == 2 || diff == -2
}

// String renders the record in plain coordinate form, e.g. "e2e4".
func (m MoveRecord) String() string {
	return m.From.String() + m.To.String()
}
