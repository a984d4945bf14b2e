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

package demo_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/Masked-Avus/svim/demo"
	"github.com/Masked-Avus/svim/vm"
)

// runDemo runs the named demo program on a copy of its bytecode and returns
// the values it printed.
func runDemo(t *testing.T, name string) []int {
	t.Helper()
	p := demo.Find(name)
	if p == nil {
		t.Fatalf("demo %q not found", name)
	}
	code := make([]vm.Cell, len(p.Code))
	copy(code, p.Code)

	var out bytes.Buffer
	i, err := vm.New(code, p.Start,
		vm.Output(vm.NewSink(&out)),
		vm.Input(strings.NewReader("\n"))) // feeds HALT
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatalf("%s: %v", name, err)
	}

	var values []int
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			t.Fatalf("%s: unexpected output line %q", name, line)
		}
		values = append(values, v)
	}
	return values
}

func checkValues(t *testing.T, name string, got, expected []int) {
	t.Helper()
	diff := len(got) != len(expected)
	if !diff {
		for n := range expected {
			if got[n] != expected[n] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%s: expected output %v, got %v", name, expected, got)
	}
}

func TestDemo_basics(t *testing.T) {
	checkValues(t, "basics", runDemo(t, "basics"),
		[]int{5, 1, 1, 1, 1, 10000, 100, 400, -1, 1, 3, 2, 1, 1, 1, 1, 1, 22, 1000000})
}

func TestDemo_branches(t *testing.T) {
	checkValues(t, "branches", runDemo(t, "branches"), []int{15, 800})
}

func TestDemo_loop(t *testing.T) {
	checkValues(t, "loop", runDemo(t, "loop"),
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
}

func TestDemo_funcDouble(t *testing.T) {
	checkValues(t, "func_double", runDemo(t, "func_double"), []int{200})
}

func TestDemo_factorial(t *testing.T) {
	checkValues(t, "factorial_5", runDemo(t, "factorial_5"), []int{120})
}

func TestDemo_fibonacci(t *testing.T) {
	checkValues(t, "fibonacci_10", runDemo(t, "fibonacci_10"),
		[]int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55})
}

func TestDemo_lookup(t *testing.T) {
	if p := demo.Find("no_such_demo"); p != nil {
		t.Errorf("unexpected demo %q", p.Name)
	}
	if p := demo.At(-1); p != nil {
		t.Error("negative index should not resolve")
	}
	if p := demo.At(len(demo.Programs())); p != nil {
		t.Error("out of range index should not resolve")
	}
	for n, p := range demo.Programs() {
		if q := demo.At(n); q == nil || q.Name != p.Name {
			t.Errorf("index %d: expected %q", n, p.Name)
		}
		if q := demo.Find(p.Name); q == nil || q.Start != p.Start {
			t.Errorf("name %q: lookup failed", p.Name)
		}
	}
}

// every demo program must disassemble into known opcodes with their full
// operand count
func TestDemo_wellFormed(t *testing.T) {
	for _, p := range demo.Programs() {
		for pc := 0; pc < len(p.Code); {
			op := p.Code[pc]
			n := vm.Arity(op)
			if n < 0 {
				t.Errorf("%s: invalid opcode %d at index %d", p.Name, op, pc)
				break
			}
			if pc+1+n > len(p.Code) {
				t.Errorf("%s: truncated instruction %s at index %d", p.Name, vm.Name(op), pc)
				break
			}
			pc += 1 + n
		}
		if p.Start < 0 || (len(p.Code) > 0 && p.Start >= len(p.Code)) {
			t.Errorf("%s: starting index %d out of range", p.Name, p.Start)
		}
	}
}
