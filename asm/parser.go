// This file is part of svim - https://github.com/Masked-Avus/svim
//
// Copyright 2023 Masked Avus
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

package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Masked-Avus/svim/vm"
	"github.com/pkg/errors"
)

const (
	commentChar   = '#'
	keywordPrefix = '.'
	kwInit        = "INIT"
)

// Kind classifies assembly errors.
type Kind int

const (
	// ErrSyntax marks unknown tokens, misplaced keywords and tokens of
	// the wrong class for the current parse state.
	ErrSyntax Kind = iota
	// ErrConversion marks operands that are not integers or do not fit
	// 32 bits.
	ErrConversion
	// ErrBadOperand marks negative operands on non-PUSH instructions and
	// index operands outside their store's range.
	ErrBadOperand
	// ErrMalformed marks programs that end while operands are still owed.
	ErrMalformed
)

// Error is an assembly error pointing at the offending source line.
// Assembly aborts at the first one.
type Error struct {
	Name string // source name as given to Assemble
	Line int    // 1-based line number
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

type entryState int

const (
	entryNone entryState = iota
	entryExpecting
	entryFound
)

// parser tracks the expected inline operand count: 0 means the next token
// must be an instruction or keyword, a positive value means the next token
// must be an integer literal. A negative value is unreachable.
type parser struct {
	name  string
	line  int
	last  vm.Cell // opcode of the last parsed instruction
	want  int     // inline operands still owed by last
	start int
	entry entryState
	code  []vm.Cell
}

const initialCap = 100

func newParser(name string) *parser {
	return &parser{name: name, last: -1, code: make([]vm.Cell, 0, initialCap)}
}

func (p *parser) errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Name: p.name, Line: p.line, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		line := strings.ToUpper(s.Text())
		if n := strings.IndexByte(line, commentChar); n >= 0 {
			line = line[:n]
		}
		for _, tok := range strings.Fields(line) {
			if err := p.token(tok); err != nil {
				return err
			}
		}
	}
	if err := s.Err(); err != nil {
		return errors.Wrapf(err, "%s:%d: read failed", p.name, p.line)
	}
	if p.want != 0 {
		return p.errorf(ErrMalformed, "expected %d remaining operand(s) after last parsed instruction", p.want)
	}
	if p.entry == entryExpecting {
		return p.errorf(ErrSyntax, "instruction not found after .%s declaration: an entry point must follow it", kwInit)
	}
	return nil
}

func (p *parser) token(tok string) error {
	switch {
	case tok[0] == keywordPrefix:
		return p.keyword(tok[1:])
	case p.want == 0:
		return p.instruction(tok)
	case p.want > 0:
		return p.operand(tok)
	}
	// guards against a negative operand count, which no state above can
	// produce
	return p.errorf(ErrSyntax, "parser operand tracker in unknown state")
}

func (p *parser) keyword(name string) error {
	if !alphabetic(name) {
		return p.errorf(ErrSyntax, "expected keyword after %q", string(keywordPrefix))
	}
	if name != kwInit {
		return p.errorf(ErrSyntax, "unexpected token %q found", string(keywordPrefix)+name)
	}
	if p.entry != entryNone {
		return p.errorf(ErrSyntax, "duplicate entry point defined: only one .%s per program is allowed", kwInit)
	}
	p.entry = entryExpecting
	return nil
}

func (p *parser) instruction(tok string) error {
	if !identifier(tok) {
		return p.errorf(ErrSyntax, "expected instruction, got %q", tok)
	}
	op, ok := vm.Lookup(tok)
	if !ok {
		return p.errorf(ErrSyntax, "token %q is not a valid instruction", tok)
	}
	p.code = append(p.code, op)
	if p.entry == entryExpecting {
		p.start = len(p.code) - 1
		p.entry = entryFound
	}
	p.last = op
	p.want = vm.Arity(op)
	return nil
}

func (p *parser) operand(tok string) error {
	if c := tok[0]; c != '-' && !digit(c) {
		return p.errorf(ErrSyntax, "expected integer, got %q", tok)
	}
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return p.errorf(ErrConversion, "operand %q falls out of the range of a 32-bit integer", tok)
		}
		return p.errorf(ErrConversion, "operand %q is not a convertable integer", tok)
	}
	v := vm.Cell(n)
	if err := p.validate(v); err != nil {
		return err
	}
	p.code = append(p.code, v)
	p.want--
	return nil
}

// validate applies the static operand checks for the instruction currently
// collecting operands. Note that for CALL the check fires while one operand
// is still owed, i.e. on the argument count, mirroring the reference
// assembler.
func (p *parser) validate(v vm.Cell) error {
	switch {
	case v < 0 && p.last != vm.OpPush:
		return p.errorf(ErrBadOperand,
			"use of negative value %d with non-PUSH instruction: operands for other instructions must be non-negative", v)
	case p.last == vm.OpCall && p.want == 1:
		return p.checkRange(v, vm.MaxLocals, "local")
	case p.last == vm.OpLpush || p.last == vm.OpLstore:
		return p.checkRange(v, vm.MaxLocals, "local")
	case p.last == vm.OpGpush || p.last == vm.OpGstore:
		return p.checkRange(v, vm.MaxGlobals, "global")
	}
	return nil
}

func (p *parser) checkRange(index vm.Cell, max int, store string) error {
	if index < 0 || int(index) >= max {
		return p.errorf(ErrBadOperand,
			"%s) index operand %d strays outside range of %s values (range: 0-%d)",
			vm.Name(p.last), index, store, max)
	}
	return nil
}

func digit(c byte) bool {
	return c >= '0' && c <= '9'
}

func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < 'A' || c > 'Z') && c != '_' {
			return false
		}
	}
	return true
}

// identifier reports whether s is shaped like a mnemonic: a letter
// followed by letters, underscores or digits.
func identifier(s string) bool {
	if c := s[0]; c < 'A' || c > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if c := s[i]; (c < 'A' || c > 'Z') && c != '_' && !digit(c) {
			return false
		}
	}
	return true
}
