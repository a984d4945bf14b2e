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

package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/Masked-Avus/svim/internal/svi"
	"github.com/pkg/errors"
)

// Sink receives everything the interpreter reports: printed values, trace
// output, bytecode listings and invalid opcode diagnostics. An Instance
// owns its sink for its lifetime and invokes it synchronously.
type Sink interface {
	// Value emits a single runtime value (the PRINT opcode).
	Value(v Cell)
	// Instruction logs the instruction at index together with its inline
	// operands. Values that are not opcodes are skipped.
	Instruction(index int, code []Cell)
	// Array dumps an integer array under a label such as "Stack",
	// "Globals" or "Locals".
	Array(label string, a []Cell)
	// Listing dumps the complete assembled bytecode as a human readable
	// audit, one "index: value" line per non-negative entry.
	Listing(code []Cell)
	// InvalidOpcode reports a bytecode value that is not an opcode.
	InvalidOpcode(op Cell)
}

const indent = "    "

// LogSink is a Sink writing plain text to an io.Writer. The first write
// error sticks: later calls become no-ops and Err reports it.
type LogSink struct {
	w *svi.ErrWriter
}

// NewSink returns a LogSink writing to w. NewSink(os.Stdout) is the console
// sink.
func NewSink(w io.Writer) *LogSink {
	return &LogSink{w: svi.NewErrWriter(w)}
}

// Err returns the first write error encountered, if any.
func (s *LogSink) Err() error {
	return s.w.Err
}

func (s *LogSink) Value(v Cell) {
	fmt.Fprintf(s.w, "%d\n", v)
}

func (s *LogSink) Instruction(index int, code []Cell) {
	op := code[index]
	if op < 0 || int(op) >= len(opcodes) {
		return
	}
	fmt.Fprintf(s.w, "Instruction %s (%d): Index %d\n", opcodes[op], op, index)
	if n := arities[op]; n > 0 && index+n < len(code) {
		io.WriteString(s.w, indent+"Next: ")
		for k := 1; k <= n; k++ {
			if k > 1 {
				io.WriteString(s.w, ",")
			}
			fmt.Fprintf(s.w, "%d", code[index+k])
		}
		io.WriteString(s.w, "\n")
	}
}

func (s *LogSink) Array(label string, a []Cell) {
	fmt.Fprintf(s.w, "%s\n\t%s=[", indent, label)
	for i, v := range a {
		if i > 0 {
			io.WriteString(s.w, ",")
		}
		fmt.Fprintf(s.w, "%d=%d", i, v)
	}
	io.WriteString(s.w, "]\n\n")
}

func (s *LogSink) Listing(code []Cell) {
	io.WriteString(s.w, "\n\tSource Code Values\n\t---------\n")
	for i, v := range code {
		if v >= 0 {
			fmt.Fprintf(s.w, "\t%d: %d\n", i, v)
		}
	}
	io.WriteString(s.w, "\n")
}

func (s *LogSink) InvalidOpcode(op Cell) {
	fmt.Fprintf(s.w, "Invalid operation code %q\n", fmt.Sprintf("%d", op))
}

// FileSink is a LogSink bound to a file it owns for its lifetime.
type FileSink struct {
	LogSink
	f *os.File
}

// NewFileSink creates or truncates the named file and returns a sink
// writing to it. The caller must Close it when done.
func NewFileSink(name string) (*FileSink, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open output file %q", name)
	}
	return &FileSink{LogSink: LogSink{w: svi.NewErrWriter(f)}, f: f}, nil
}

// Close closes the underlying file and returns the first error seen on it,
// write errors included.
func (s *FileSink) Close() error {
	err := s.f.Close()
	if s.w.Err != nil {
		return s.w.Err
	}
	return errors.Wrapf(err, "could not close output file %q", s.f.Name())
}
