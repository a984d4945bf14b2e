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

import "github.com/pkg/errors"

// need faults unless the operand stack holds at least n values.
func (i *Instance) need(op Cell, n int) {
	if len(i.data) < n {
		panic(errors.Errorf("%s: stack underflow: expected %d elements on the stack, found %d",
			opcodes[op], n, len(i.data)))
	}
}

// next reads the inline operand at PC and advances past it.
func (i *Instance) next(op Cell) Cell {
	if i.PC >= len(i.code) {
		panic(errors.Errorf("%s: operand index %d out of range of bytecode (%d cells)",
			opcodes[op], i.PC, len(i.code)))
	}
	v := i.code[i.PC]
	i.PC++
	return v
}

// target reads a branch or call destination and faults unless it is a valid
// instruction index.
func (i *Instance) target(op Cell) int {
	address := i.next(op)
	if address < 0 || int(address) >= len(i.code) {
		panic(errors.Errorf("%s: target %d out of range of bytecode (%d cells)",
			opcodes[op], address, len(i.code)))
	}
	return int(address)
}

// local reads a local slot index operand and faults unless it is in range.
func (i *Instance) local(op Cell) int {
	index := i.next(op)
	if index < 0 || index >= MaxLocals {
		panic(errors.Errorf("%s: index %d out of range of local value storage (locals count: %d)",
			opcodes[op], index, MaxLocals))
	}
	return int(index)
}

// global reads a global slot index operand and faults unless it is in range.
func (i *Instance) global(op Cell) int {
	index := i.next(op)
	if index < 0 || index >= MaxGlobals {
		panic(errors.Errorf("%s: index %d out of range of global value storage (globals count: %d)",
			opcodes[op], index, MaxGlobals))
	}
	return int(index)
}

func (i *Instance) denominator(op Cell) Cell {
	b := i.Pop()
	if b == 0 {
		panic(errors.Errorf("%s: attempted to divide by 0", opcodes[op]))
	}
	return b
}

// compare pushes 1 if ok, else 0.
func (i *Instance) compare(ok bool) {
	if ok {
		i.Push(1)
	} else {
		i.Push(0)
	}
}

// exitProtocol emits the final stack, globals and locals snapshots in trace
// mode.
func (i *Instance) exitProtocol() {
	if i.trace {
		i.sink.Array("Stack", i.Data())
		i.sink.Array("Globals", i.Globals())
		i.sink.Array("Locals", i.Locals())
	}
}

// Run executes the program until an EXIT opcode, a top-level RET, or the
// instruction pointer running past the end of the program.
//
// Runtime faults (stack underflow, division by zero, out of range indices
// and targets, unknown opcodes) abort execution with a non-nil error. The
// error message carries the PC of the faulting instruction; the PC is left
// where the fault occurred.
func (i *Instance) Run() (err error) {
	pc := i.PC // index of the instruction being executed
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "fault @pc=%d/%d, stack %d, frames %d",
					pc, len(i.code), len(i.data), len(i.frames))
			default:
				panic(e)
			}
		}
	}()
	i.insCount = 0
	for i.PC < len(i.code) {
		if i.trace {
			i.sink.Instruction(i.PC, i.code)
		}
		pc = i.PC
		op := i.code[i.PC]
		i.PC++
		switch op {
		case OpAdd:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.Push(a + b)
		case OpSub:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.Push(a - b)
		case OpMul:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.Push(a * b)
		case OpDiv:
			i.need(op, 2)
			b := i.denominator(op)
			a := i.Pop()
			i.Push(a / b)
		case OpMod:
			i.need(op, 2)
			b := i.denominator(op)
			a := i.Pop()
			i.Push(a % b)
		case OpInc:
			i.need(op, 1)
			i.data[len(i.data)-1]++
		case OpDec:
			i.need(op, 1)
			i.data[len(i.data)-1]--
		case OpNeg:
			i.need(op, 1)
			i.data[len(i.data)-1] = -i.data[len(i.data)-1]
		case OpLt:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.compare(a < b)
		case OpGt:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.compare(a > b)
		case OpEq:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.compare(a == b)
		case OpLeq:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.compare(a <= b)
		case OpGeq:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.compare(a >= b)
		case OpNeq:
			i.need(op, 2)
			b, a := i.Pop(), i.Pop()
			i.compare(a != b)
		case OpBr:
			i.PC = i.target(op)
		case OpBrt:
			// the target is read before the condition is popped
			t := i.target(op)
			i.need(op, 1)
			if i.Pop() != 0 {
				i.PC = t
			}
		case OpBrf:
			t := i.target(op)
			i.need(op, 1)
			if i.Pop() == 0 {
				i.PC = t
			}
		case OpPush:
			i.Push(i.next(op))
		case OpLpush:
			n := i.local(op)
			i.Push(i.frames[len(i.frames)-1].locals[n])
		case OpGpush:
			i.Push(i.globals[i.global(op)])
		case OpLstore:
			i.need(op, 1)
			n := i.local(op)
			i.frames[len(i.frames)-1].locals[n] = i.Pop()
		case OpGstore:
			i.need(op, 1)
			i.globals[i.global(op)] = i.Pop()
		case OpDup:
			i.need(op, 1)
			i.Push(i.data[len(i.data)-1])
		case OpDup2:
			i.need(op, 2)
			under, top := i.data[len(i.data)-2], i.data[len(i.data)-1]
			i.Push(under)
			i.Push(top)
		case OpSwap:
			i.need(op, 2)
			i.data[len(i.data)-1], i.data[len(i.data)-2] = i.data[len(i.data)-2], i.data[len(i.data)-1]
		case OpOver:
			i.need(op, 2)
			i.Push(i.data[len(i.data)-2])
		case OpPrint:
			i.need(op, 1)
			i.sink.Value(i.Pop())
		case OpPop:
			i.need(op, 1)
			i.Pop()
		case OpTurn:
			i.need(op, 3)
			n := len(i.data)
			i.data[n-3], i.data[n-2], i.data[n-1] = i.data[n-2], i.data[n-1], i.data[n-3]
		case OpHalt:
			// pause until a keystroke; EOF resumes as well
			var b [1]byte
			i.input.Read(b[:])
		case OpCall:
			dest := i.target(op)
			argc := int(i.next(op))
			i.need(op, argc)
			// arguments land in pop order: the last value pushed by the
			// caller becomes locals[0]
			f := frame{ret: i.PC}
			for n := 0; n < argc; n++ {
				f.locals[n] = i.Pop()
			}
			i.frames = append(i.frames, f)
			i.PC = dest
		case OpRet:
			// values left on the operand stack are the return values
			i.PC = i.frames[len(i.frames)-1].ret
			i.frames = i.frames[:len(i.frames)-1]
		case OpExit:
			i.insCount++
			i.exitProtocol()
			return nil
		default:
			i.sink.InvalidOpcode(op)
			return errors.Errorf("invalid opcode %d @pc=%d", op, i.PC-1)
		}
		if i.trace {
			i.sink.Array("Stack", i.Data())
			i.sink.Array("Locals", i.Locals())
		}
		i.insCount++
	}
	i.exitProtocol()
	return nil
}
