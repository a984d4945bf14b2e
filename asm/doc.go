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

// Package asm assembles svim source text into VM bytecode.
//
// Source is line oriented and case insensitive: every line is uppercased
// before tokenizing, so "push", "Push" and "PUSH" are the same mnemonic.
// Tokens are separated by spaces, tabs or carriage returns and must be
// whole fields: a mnemonic glued to its operand ("PUSH5") is a syntax
// error, not two tokens. A '#' starts a comment running to the end of the
// line.
//
// The assembler tracks how many inline operands the last instruction still
// expects. When none are owed, the next token must be an instruction
// mnemonic or a keyword; otherwise it must be an integer literal, and each
// literal parsed decrements the count. Leftover expected operands at end of
// file make the program malformed.
//
// Integer literals are decimal with an optional leading '-'. Literals must
// fit a signed 32-bit integer. A negative literal is only legal as the
// operand of PUSH; every other instruction rejects it. Index operands are
// checked against their stores as they are emitted: LPUSH and LSTORE
// against the local range, GPUSH and GSTORE against the global range.
// Branch targets are only required to be non-negative here; full range
// checking happens at runtime.
//
// Keywords are prefixed with a '.'. The only keyword is .INIT, which marks
// the next instruction parsed as the program's entry point:
//
//	PUSH 100	# data setup, runs only when branched to
//	.INIT
//	PUSH 8		# execution starts here
//	PRINT
//	EXIT
//
// Declaring .INIT twice is an error, as is ending the file with a pending
// .INIT. Without .INIT the entry point is index 0.
//
// Assembly stops at the first error. Errors are *Error values carrying the
// source name, the offending line number and a Kind classifying the
// failure.
package asm
