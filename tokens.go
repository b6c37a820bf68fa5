// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput ends a run: the stream cannot be split into commands
// any more.
var ErrMalformedInput = errors.New("malformed input")

// tokenReader splits the input into (command, value) pairs. A command is a
// single non-space byte; the value is an optionally signed decimal integer
// that ends at the first non-digit, so "k5m1" reads as two pairs.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// skipSpace returns the first non-space byte.
func (tr *tokenReader) skipSpace() (byte, error) {
	for {
		b, err := tr.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(b) {
			return b, nil
		}
	}
}

// next returns the next pair, or io.EOF when the input ends cleanly
// between pairs.
func (tr *tokenReader) next() (byte, int64, error) {
	cmd, err := tr.skipSpace()
	if err != nil {
		return 0, 0, err
	}

	value, err := tr.readValue()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad value after command %c: %v", ErrMalformedInput, cmd, err)
	}
	return cmd, value, nil
}

func (tr *tokenReader) readValue() (int64, error) {
	b, err := tr.skipSpace()
	if err == io.EOF {
		return 0, errors.New("unexpected end of input")
	}
	if err != nil {
		return 0, err
	}

	digits := make([]byte, 0, 20)
	if b == '-' || b == '+' {
		digits = append(digits, b)
		if b, err = tr.r.ReadByte(); err != nil {
			if err == io.EOF {
				return 0, errors.New("unexpected end of input")
			}
			return 0, err
		}
	}
	if !isDigit(b) {
		return 0, fmt.Errorf("expected a digit, got %q", b)
	}

	for {
		digits = append(digits, b)
		b, err = tr.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if !isDigit(b) {
			// Start of the next token.
			if err := tr.r.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
	}

	return strconv.ParseInt(string(digits), 10, 64)
}
