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

// Package vm implements the svim virtual machine.
//
// The VM executes a flat sequence of signed 32-bit cells in which opcodes
// and their inline operands share the same array. State consists of an
// operand stack, a store of MaxGlobals shared globals, and a stack of call
// frames each holding a return index and MaxLocals local slots. Execution
// starts at the entry index declared by the assembler and runs until an
// EXIT opcode, a top-level RET, or the instruction pointer passing the end
// of the program.
//
// Supported opcodes (stack effect on the left of the arrow; x is under y):
//
//	opcode	arity	stack		description
//	ADD	0	xy-z		z = x+y
//	SUB	0	xy-z		z = x-y
//	MUL	0	xy-z		z = x*y
//	DIV	0	xy-z		z = x/y, truncated toward zero. Faults if y is 0
//	MOD	0	xy-z		z = x%y. Faults if y is 0
//	INC	0	x-y		y = x+1
//	DEC	0	x-y		y = x-1
//	NEG	0	x-y		y = -x
//	LT	0	xy-z		z = 1 if x < y, else 0
//	GT	0	xy-z		z = 1 if x > y, else 0
//	EQ	0	xy-z		z = 1 if x == y, else 0
//	LEQ	0	xy-z		z = 1 if x <= y, else 0
//	GEQ	0	xy-z		z = 1 if x >= y, else 0
//	NEQ	0	xy-z		z = 1 if x != y, else 0
//	BR	1	-		jump to the inline target
//	BRT	1	x-		jump to the inline target if x != 0
//	BRF	1	x-		jump to the inline target if x == 0
//	PUSH	1	-x		push the inline value
//	LPUSH	1	-x		push local slot n of the current frame
//	GPUSH	1	-x		push global slot n
//	LSTORE	1	x-		store x in local slot n of the current frame
//	GSTORE	1	x-		store x in global slot n
//	DUP	0	x-xx		duplicate the top of the stack
//	DUP2	0	xy-xyxy		duplicate the top two values in order
//	SWAP	0	xy-yx		swap the top two values
//	OVER	0	xy-xyx		push a copy of the value under the top
//	PRINT	0	x-		pop x and emit it through the value sink
//	POP	0	x-		discard the top of the stack
//	TURN	0	xyz-yzx		rotate the bottom of the top three to the top
//	HALT	0	-		pause until one character of input
//	CALL	2	args-		call the function at the inline destination
//	RET	0	-		return to the caller's return index
//	EXIT	0	-		end the program
//
// CALL reads a destination and an argument count, pushes a frame whose
// return index points past both operands, and pops the arguments into the
// new frame's locals in pop order: the last argument pushed becomes
// locals[0], the one before it locals[1], and so on. Callers therefore push
// arguments in reverse of the callee's local indexing. RET does not touch
// the operand stack; whatever the callee left there is the return value.
//
// Booleans are plain cells: comparison opcodes produce 0 or 1, while BRT
// and BRF accept any non-zero cell as true.
//
// The interpreter is strictly single threaded and has no suspension points.
// Output goes through the Sink interface injected at construction; HALT
// blocks on the injected input reader.
package vm
