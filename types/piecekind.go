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

// PieceKind is a set of constants for the six chess piece kinds.
type PieceKind int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	PkNone   PieceKind = 0
	King     PieceKind = 1
	Pawn     PieceKind = 2
	Knight   PieceKind = 3
	Bishop   PieceKind = 4
	Rook     PieceKind = 5
	Queen    PieceKind = 6
	PkLength PieceKind = 7
)

// array of string labels for piece kinds
var pieceKindToString = [PkLength]string{"NONE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// Str returns a string representation of a piece kind
func (pk PieceKind) Str() string {
	return pieceKindToString[pk]
}

// array of single char labels for piece kinds
var pieceKindToChar = string("-KPNBRQ")

// Char returns a single char string representation of a piece kind
func (pk PieceKind) Char() string {
	return string(pieceKindToChar[pk])
}

// IsValid checks if pk is one of the six defined piece kinds
func (pk PieceKind) IsValid() bool {
	return pk > PkNone && pk < PkLength
}
