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
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/Masked-Avus/svim/vm"
	"github.com/pkg/errors"
)

func TestSink_value(t *testing.T) {
	var b bytes.Buffer
	s := vm.NewSink(&b)
	s.Value(42)
	s.Value(-7)
	if got := b.String(); got != "42\n-7\n" {
		t.Errorf("expected %q, got %q", "42\n-7\n", got)
	}
}

func TestSink_array(t *testing.T) {
	var b bytes.Buffer
	s := vm.NewSink(&b)
	s.Array("Stack", C{5, -3, 8})
	if got := b.String(); !strings.Contains(got, "Stack=[0=5,1=-3,2=8]") {
		t.Errorf("unexpected array dump %q", got)
	}
	b.Reset()
	s.Array("Locals", nil)
	if got := b.String(); !strings.Contains(got, "Locals=[]") {
		t.Errorf("unexpected empty dump %q", got)
	}
}

func TestSink_instruction(t *testing.T) {
	var b bytes.Buffer
	s := vm.NewSink(&b)
	code := C{vm.OpPush, 8, vm.OpCall, 7, 1, vm.OpAdd, 99}

	s.Instruction(0, code)
	got := b.String()
	if !strings.Contains(got, "Instruction PUSH (17): Index 0") || !strings.Contains(got, "Next: 8") {
		t.Errorf("unexpected PUSH log %q", got)
	}

	b.Reset()
	s.Instruction(2, code)
	got = b.String()
	if !strings.Contains(got, "Instruction CALL (30): Index 2") || !strings.Contains(got, "Next: 7,1") {
		t.Errorf("unexpected CALL log %q", got)
	}

	b.Reset()
	s.Instruction(5, code)
	if got = b.String(); !strings.Contains(got, "Instruction ADD (0): Index 5") {
		t.Errorf("unexpected ADD log %q", got)
	}

	// values that are not opcodes are skipped
	b.Reset()
	s.Instruction(6, code)
	if got = b.String(); got != "" {
		t.Errorf("expected no output for a non-opcode, got %q", got)
	}
}

// The listing preserves the program's integer sequence exactly, modulo the
// header and the skipped negative entries.
func TestSink_listingRoundTrip(t *testing.T) {
	var b bytes.Buffer
	code := C{vm.OpPush, 8, vm.OpPush, -3, vm.OpAdd, vm.OpPrint, vm.OpExit}
	vm.NewSink(&b).Listing(code)

	got := make(map[int]vm.Cell)
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimSpace(line)
		idx, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(idx)
		if err != nil {
			continue
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			t.Fatalf("bad listing line %q", line)
		}
		got[n] = vm.Cell(v)
	}
	for n, v := range code {
		switch want, ok := got[n], v >= 0; {
		case ok && (want != v):
			t.Errorf("index %d: expected %d, got %d", n, v, want)
		case !ok && want != 0:
			t.Errorf("index %d: negative entry %d should be skipped", n, v)
		}
	}
}

func TestSink_invalidOpcode(t *testing.T) {
	var b bytes.Buffer
	vm.NewSink(&b).InvalidOpcode(35)
	if got := b.String(); got != "Invalid operation code \"35\"\n" {
		t.Errorf("unexpected report %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSink_stickyError(t *testing.T) {
	s := vm.NewSink(failWriter{})
	s.Value(1)
	if s.Err() == nil {
		t.Fatal("expected a write error")
	}
	s.Value(2)
	if s.Err() == nil {
		t.Fatal("error should stick")
	}
}
