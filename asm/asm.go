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

package asm

import (
	"io"
	"os"

	"github.com/Masked-Avus/svim/vm"
	"github.com/pkg/errors"
)

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting bytecode and starting instruction index.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (code []vm.Cell, start int, err error) {
	p := newParser(name)
	if err = p.parse(r); err != nil {
		return nil, 0, err
	}
	return p.code, p.start, nil
}

// AssembleFile assembles the named source file.
func AssembleFile(name string) (code []vm.Cell, start int, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return Assemble(name, f)
}
