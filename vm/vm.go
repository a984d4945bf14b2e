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
	"io"
	"os"
)

// stackCap is the initial operand stack capacity. The stack grows past it
// freely.
const stackCap = 100

// frame is a single call record. Frames live by value on the call stack;
// locals are a fixed inline array, zeroed on frame creation.
type frame struct {
	ret    int
	locals [MaxLocals]Cell
}

// Option interface
type Option func(*Instance) error

// Output sets the value sink.
func Output(s Sink) Option {
	return func(i *Instance) error { i.sink = s; return nil }
}

// Input sets the reader HALT consumes its keystroke from.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.input = r; return nil }
}

// Trace enables or disables trace mode: a disassembly line before each
// instruction, a stack and locals snapshot after it, and a stack, globals
// and locals dump on exit.
func Trace(on bool) Option {
	return func(i *Instance) error { i.trace = on; return nil }
}

// Instance represents a svim VM instance.
type Instance struct {
	PC       int
	code     []Cell
	data     []Cell
	globals  []Cell
	frames   []frame
	sink     Sink
	input    io.Reader
	trace    bool
	insCount int64
}

// New creates a new svim Virtual Machine instance for the given program.
// start is the entry point declared by the assembler; a negative value runs
// from index 0. The call stack starts with a synthetic main frame whose
// return index equals the program length, so a top-level RET ends execution
// naturally.
func New(code []Cell, start int, opts ...Option) (*Instance, error) {
	if start < 0 {
		start = 0
	}
	i := &Instance{
		PC:      start,
		code:    code,
		data:    make([]Cell, 0, stackCap),
		globals: make([]Cell, MaxGlobals),
		frames:  []frame{{ret: len(code)}},
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.sink == nil {
		i.sink = NewSink(os.Stdout)
	}
	if i.input == nil {
		i.input = os.Stdin
	}
	return i, nil
}

// SetOptions sets or changes options of the VM instance.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// Push pushes the argument on top of the operand stack.
func (i *Instance) Push(v Cell) {
	i.data = append(i.data, v)
}

// Pop pops the value on top of the operand stack and returns it. Popping an
// empty stack panics; inside Run such panics surface as runtime faults.
func (i *Instance) Pop() Cell {
	v := i.data[len(i.data)-1]
	i.data = i.data[:len(i.data)-1]
	return v
}

// Data returns the operand stack, bottom first. Value changes will be
// reflected in the instance's stack, but reslicing will not affect it.
func (i *Instance) Data() []Cell {
	return i.data
}

// Depth returns the operand stack depth.
func (i *Instance) Depth() int {
	return len(i.data)
}

// Globals returns the global store. It is shared by all call frames and
// always MaxGlobals long.
func (i *Instance) Globals() []Cell {
	return i.globals
}

// Locals returns the current frame's local slots, or nil if the call stack
// is empty (i.e. after a top-level RET).
func (i *Instance) Locals() []Cell {
	if len(i.frames) == 0 {
		return nil
	}
	return i.frames[len(i.frames)-1].locals[:]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// DumpCode writes the assembled bytecode listing to the value sink.
func (i *Instance) DumpCode() {
	i.sink.Listing(i.code)
}
