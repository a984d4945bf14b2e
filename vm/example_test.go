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
	"os"
	"strings"

	"github.com/Masked-Avus/svim/asm"
	"github.com/Masked-Avus/svim/vm"
)

// Shows how to assemble a source snippet and run it against the console
// sink.
func ExampleInstance_Run() {
	source := `
		PUSH 8
		PUSH 7
		ADD
		PRINT

		PUSH 100
		CALL 13 1	# double(100)
		PRINT
		EXIT

		LPUSH 0		# double
		PUSH 2
		MUL
		RET
	`
	code, start, err := asm.Assemble("example", strings.NewReader(source))
	if err != nil {
		panic(err)
	}
	i, err := vm.New(code, start, vm.Output(vm.NewSink(os.Stdout)))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}
	// Output:
	// 15
	// 200
}
