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

// Package demo holds the built-in, pre-assembled demo programs. Each entry
// carries a name, a starting instruction index and the bytecode sequence;
// programs are addressable by name and by index.
package demo

import "github.com/Masked-Avus/svim/vm"

// Program is a pre-assembled bytecode program.
type Program struct {
	Name  string
	Start int
	Code  []vm.Cell
}

var programs = []Program{
	{
		Name:  "basics",
		Start: 0,
		Code: []vm.Cell{
			// PUSH, ADD, SUB, MUL, DIV, MOD, PRINT
			vm.OpPush, 8, // entry point (0)
			vm.OpPush, 7,
			vm.OpAdd,
			vm.OpPush, 5,
			vm.OpSub,
			vm.OpPush, 2,
			vm.OpMul,
			vm.OpPush, 4,
			vm.OpDiv,
			vm.OpPrint,
			vm.OpPush, 5,
			vm.OpPush, 2,
			vm.OpMod,
			vm.OpPrint,

			// HALT
			vm.OpHalt,

			// LT
			vm.OpPush, 5,
			vm.OpPush, 10,
			vm.OpLt,
			vm.OpPrint,

			// EQ
			vm.OpPush, 10,
			vm.OpPush, 10,
			vm.OpEq,
			vm.OpPrint,

			// GT
			vm.OpPush, 10,
			vm.OpPush, 8,
			vm.OpGt,
			vm.OpPrint,

			// DUP
			vm.OpPush, 100,
			vm.OpDup,
			vm.OpMul,
			vm.OpPrint,

			// DUP2
			vm.OpPush, 200,
			vm.OpPush, 2,
			vm.OpDup2,
			vm.OpDiv,
			vm.OpPrint,
			vm.OpMul,
			vm.OpPrint,

			// OVER, SWAP, POP, NEG
			vm.OpPush, 300,
			vm.OpPush, 3,
			vm.OpOver,
			vm.OpLt,
			vm.OpSwap,
			vm.OpPop,
			vm.OpNeg,
			vm.OpPrint,

			// TURN
			vm.OpPush, 1,
			vm.OpPush, 2,
			vm.OpPush, 3,
			vm.OpTurn,
			vm.OpPrint,
			vm.OpPrint,
			vm.OpPrint,

			// LEQ
			vm.OpPush, 400,
			vm.OpDup,
			vm.OpLeq,
			vm.OpPrint,
			vm.OpPush, 400,
			vm.OpPush, 500,
			vm.OpLeq,
			vm.OpPrint,

			// GEQ
			vm.OpPush, 600,
			vm.OpDup,
			vm.OpGeq,
			vm.OpPrint,
			vm.OpPush, 600,
			vm.OpPush, 500,
			vm.OpGeq,
			vm.OpPrint,

			// NEQ
			vm.OpPush, 600,
			vm.OpPush, 700,
			vm.OpNeq,
			vm.OpPrint,

			// LSTORE, LPUSH
			vm.OpPush, 8,
			vm.OpLstore, 0,
			vm.OpPush, 7,
			vm.OpLpush, 0,
			vm.OpAdd,
			vm.OpPush, 7,
			vm.OpLstore, 1,
			vm.OpLpush, 1,
			vm.OpAdd,
			vm.OpPrint,

			// GSTORE, GPUSH
			vm.OpPush, 1000,
			vm.OpGstore, 0,
			vm.OpGpush, 0,
			vm.OpGpush, 0,
			vm.OpMul,
			vm.OpPrint,

			// EXIT
			vm.OpExit,
		},
	},
	{
		Name:  "branches",
		Start: 0,
		Code: []vm.Cell{
			// BR
			vm.OpBr, 4, // 0, 1    entry point
			vm.OpPush, 6, // 2, 3    skipped

			// BRT
			vm.OpPush, 8, // 4, 5
			vm.OpPush, 7, // 6, 7
			vm.OpDup2,    // 8
			vm.OpNeq,     // 9
			vm.OpBrt, 13, // 10, 11
			vm.OpSub,   // 12       skipped
			vm.OpAdd,   // 13
			vm.OpPrint, // 14

			// BRF
			vm.OpPush, 20, // 15, 16
			vm.OpPush, 40, // 17, 18
			vm.OpDup2,    // 19
			vm.OpEq,      // 20
			vm.OpBrf, 24, // 21, 22
			vm.OpDiv,   // 23       skipped
			vm.OpMul,   // 24
			vm.OpPrint, // 25
		},
	},
	{
		// do-while loop printing 1 through 10
		Name:  "loop",
		Start: 0,
		Code: []vm.Cell{
			// max_iterations = 10
			vm.OpPush, 10, // 0, 1    entry point
			vm.OpLstore, 0, // 2, 3

			// i = 0
			vm.OpPush, 0, // 4, 5
			vm.OpLstore, 1, // 6, 7

			// do-while (i < max_iterations)
			vm.OpLpush, 1, // 8, 9
			vm.OpInc, // 10

			vm.OpDup,   // 11
			vm.OpDup,   // 12
			vm.OpPrint, // 13
			vm.OpLstore, 1, // 14, 15

			vm.OpLpush, 0, // 16, 17
			vm.OpLt, // 18

			vm.OpBrt, 8, // 19, 20
		},
	},
	{
		Name:  "func_double",
		Start: 0,
		Code: []vm.Cell{
			// function: main()
			vm.OpPush, 100,
			vm.OpCall, 7, 1,

			vm.OpPrint,
			vm.OpExit,

			// function: double(n) -- n arrives in local 0
			vm.OpLpush, 0,
			vm.OpPush, 2,
			vm.OpMul,
			vm.OpRet,
		},
	},
	{
		Name:  "factorial_5",
		Start: 0,
		Code: []vm.Cell{
			// function: main()
			// x = 5
			vm.OpPush, 5, // 0, 1
			// y = factorial(x)
			vm.OpCall, 7, 1, // 2, 3, 4
			// print(y)
			vm.OpPrint, // 5
			vm.OpExit,  // 6

			// function: factorial(n)
			// result = 1
			vm.OpPush, 1, // 7, 8
			vm.OpLstore, 1, // 9, 10
			// i = 2
			vm.OpPush, 2, // 11, 12
			vm.OpLstore, 2, // 13, 14
			// i <= n
			vm.OpLpush, 2, // 15, 16
			vm.OpLpush, 0, // 17, 18
			vm.OpLeq,     // 19
			vm.OpBrf, 36, // 20, 21
			// result *= i
			vm.OpLpush, 1, // 22, 23
			vm.OpLpush, 2, // 24, 25
			vm.OpMul, // 26
			vm.OpLstore, 1, // 27, 28
			// ++i
			vm.OpLpush, 2, // 29, 30
			vm.OpInc, // 31
			vm.OpLstore, 2, // 32, 33
			// jump back to "i <= n"
			vm.OpBr, 15, // 34, 35
			// return result
			vm.OpLpush, 1, // 36, 37
			vm.OpRet, // 38
		},
	},
	{
		Name:  "fibonacci_10",
		Start: 0,
		Code: []vm.Cell{
			// n = 10
			vm.OpPush, 10, // 0, 1
			vm.OpLstore, 0, // 2, 3

			// num1 = 0
			vm.OpPush, 0, // 4, 5
			vm.OpLstore, 1, // 6, 7

			// num2 = 1
			vm.OpPush, 1, // 8, 9
			vm.OpLstore, 2, // 10, 11

			// next_num = num2
			vm.OpLpush, 2, // 12, 13
			vm.OpLstore, 3, // 14, 15

			// count = 1
			vm.OpPush, 1, // 16, 17
			vm.OpLstore, 4, // 18, 19

			// count <= n
			vm.OpLpush, 4, // 20, 21
			vm.OpLpush, 0, // 22, 23
			vm.OpLeq,     // 24
			vm.OpBrt, 28, // 25, 26
			vm.OpExit, // 27

			// print(num2)
			vm.OpLpush, 2, // 28, 29
			vm.OpPrint, // 30

			// num1 = num2
			vm.OpLpush, 2, // 31, 32
			vm.OpLstore, 1, // 33, 34

			// num2 = next_num
			vm.OpLpush, 3, // 35, 36
			vm.OpLstore, 2, // 37, 38

			// next_num = num1 + num2
			vm.OpLpush, 1, // 39, 40
			vm.OpLpush, 2, // 41, 42
			vm.OpAdd, // 43
			vm.OpLstore, 3, // 44, 45

			// ++count
			vm.OpLpush, 4, // 46, 47
			vm.OpInc, // 48
			vm.OpLstore, 4, // 49, 50

			// back to top of loop
			vm.OpBr, 20, // 51, 52
		},
	},
}

// Programs returns the demo program table in index order. The returned
// slice is shared; callers must copy a program's Code before mutating it.
func Programs() []Program {
	return programs
}

// Find returns the named demo program, or nil if there is none.
func Find(name string) *Program {
	for n := range programs {
		if programs[n].Name == name {
			return &programs[n]
		}
	}
	return nil
}

// At returns the demo program at the given table index, or nil if the
// index is out of range.
func At(index int) *Program {
	if index < 0 || index >= len(programs) {
		return nil
	}
	return &programs[index]
}
