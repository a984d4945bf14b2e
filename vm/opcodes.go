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

// Cell is the raw type of every value the VM manipulates: opcodes, inline
// operands, stack slots, globals and locals all share it.
type Cell int32

// Fixed storage limits. These are part of the bytecode contract: the
// assembler validates index operands against them and the interpreter sizes
// its stores with them.
const (
	// MaxGlobals is the number of slots in the shared global store.
	MaxGlobals = 100
	// MaxLocals is the number of local slots in each call frame.
	MaxLocals = 10
)

// SVIM Virtual Machine Opcodes. The declaration order is the numeric
// encoding: these constants, the name table and the arity table below must
// stay in lockstep.
const (
	OpAdd Cell = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpInc
	OpDec
	OpNeg
	OpLt
	OpGt
	OpEq
	OpLeq
	OpGeq
	OpNeq
	OpBr
	OpBrt
	OpBrf
	OpPush
	OpLpush
	OpGpush
	OpLstore
	OpGstore
	OpDup
	OpDup2
	OpSwap
	OpOver
	OpPrint
	OpPop
	OpTurn
	OpHalt
	OpCall
	OpRet
	OpExit
)

var opcodes = [...]string{
	"ADD",
	"SUB",
	"MUL",
	"DIV",
	"MOD",
	"INC",
	"DEC",
	"NEG",
	"LT",
	"GT",
	"EQ",
	"LEQ",
	"GEQ",
	"NEQ",
	"BR",
	"BRT",
	"BRF",
	"PUSH",
	"LPUSH",
	"GPUSH",
	"LSTORE",
	"GSTORE",
	"DUP",
	"DUP2",
	"SWAP",
	"OVER",
	"PRINT",
	"POP",
	"TURN",
	"HALT",
	"CALL",
	"RET",
	"EXIT",
}

// arities[op] is the count of inline operands following op in the
// instruction stream. Not to be confused with the number of stack values an
// opcode consumes.
var arities = [...]int{
	OpBr:     1,
	OpBrt:    1,
	OpBrf:    1,
	OpPush:   1,
	OpLpush:  1,
	OpGpush:  1,
	OpLstore: 1,
	OpGstore: 1,
	OpCall:   2,
	OpExit:   0,
}

var opcodeIndex = make(map[string]Cell)

func init() {
	for i, v := range opcodes {
		opcodeIndex[v] = Cell(i)
	}
}

// Name returns the canonical mnemonic for op, or the empty string if op is
// not a valid opcode.
func Name(op Cell) string {
	if op < 0 || int(op) >= len(opcodes) {
		return ""
	}
	return opcodes[op]
}

// Arity returns the number of inline operands op expects, or -1 if op is
// not a valid opcode.
func Arity(op Cell) int {
	if op < 0 || int(op) >= len(arities) {
		return -1
	}
	return arities[op]
}

// Lookup resolves a mnemonic to its opcode.
func Lookup(name string) (op Cell, ok bool) {
	op, ok = opcodeIndex[name]
	return op, ok
}
