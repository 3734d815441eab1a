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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRecordString(t *testing.T) {
	m := MoveRecord{Kind: Pawn, From: SqE2, To: SqE4}
	assert.Equal(t, "e2e4", m.String())
}

func TestMoveRecordIsPawnDoubleStep(t *testing.T) {
	assert.True(t, MoveRecord{Kind: Pawn, From: SqC2, To: SqC4}.IsPawnDoubleStep())
	assert.True(t, MoveRecord{Kind: Pawn, From: SqB7, To: SqB5}.IsPawnDoubleStep())
	assert.False(t, MoveRecord{Kind: Pawn, From: SqC2, To: SqC3}.IsPawnDoubleStep())
	assert.False(t, MoveRecord{Kind: Knight, From: SqB1, To: SqC3}.IsPawnDoubleStep())
}
