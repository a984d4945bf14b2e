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

package vm_test

import (
	"testing"

	"github.com/Masked-Avus/svim/vm"
)

func TestVM_pushPop(t *testing.T) {
	i, err := vm.New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := i.Depth(); d != 0 {
		t.Fatalf("expected empty stack, depth %d", d)
	}
	i.Push(4)
	i.Push(7)
	if d := i.Depth(); d != 2 {
		t.Fatalf("expected depth 2, got %d", d)
	}
	if v := i.Pop(); v != 7 {
		t.Fatalf("expected 7, got %d", v)
	}
	if v := i.Pop(); v != 4 {
		t.Fatalf("expected 4, got %d", v)
	}
}

func TestVM_stores(t *testing.T) {
	i, err := vm.New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(i.Globals()); n != vm.MaxGlobals {
		t.Errorf("expected %d globals, got %d", vm.MaxGlobals, n)
	}
	if n := len(i.Locals()); n != vm.MaxLocals {
		t.Errorf("expected %d locals, got %d", vm.MaxLocals, n)
	}
	for n, v := range i.Globals() {
		if v != 0 {
			t.Fatalf("global %d not zeroed: %d", n, v)
		}
	}
	for n, v := range i.Locals() {
		if v != 0 {
			t.Fatalf("local %d not zeroed: %d", n, v)
		}
	}
}

func TestVM_negativeStart(t *testing.T) {
	i, err := vm.New(C{vm.OpExit}, -1)
	if err != nil {
		t.Fatal(err)
	}
	if i.PC != 0 {
		t.Fatalf("expected PC 0, got %d", i.PC)
	}
}

func TestVM_names(t *testing.T) {
	if n := vm.Name(vm.OpAdd); n != "ADD" {
		t.Errorf("expected ADD, got %q", n)
	}
	if n := vm.Name(99); n != "" {
		t.Errorf("expected empty name, got %q", n)
	}
	if op, ok := vm.Lookup("DUP2"); !ok || op != vm.OpDup2 {
		t.Errorf("DUP2 lookup failed: %d, %v", op, ok)
	}
	if _, ok := vm.Lookup("FROB"); ok {
		t.Error("FROB should not resolve")
	}
}

func TestVM_arities(t *testing.T) {
	for _, test := range []struct {
		op vm.Cell
		n  int
	}{
		{vm.OpAdd, 0}, {vm.OpNeg, 0}, {vm.OpDup2, 0}, {vm.OpTurn, 0},
		{vm.OpHalt, 0}, {vm.OpRet, 0}, {vm.OpExit, 0},
		{vm.OpBr, 1}, {vm.OpBrt, 1}, {vm.OpBrf, 1}, {vm.OpPush, 1},
		{vm.OpLpush, 1}, {vm.OpGpush, 1}, {vm.OpLstore, 1}, {vm.OpGstore, 1},
		{vm.OpCall, 2},
		{99, -1},
	} {
		if n := vm.Arity(test.op); n != test.n {
			t.Errorf("%s (%d): expected arity %d, got %d", vm.Name(test.op), test.op, test.n, n)
		}
	}
}
