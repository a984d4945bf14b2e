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

package main

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	sourceExt    = ".svim"
	outputSuffix = "_Output.txt"
	dumpSuffix   = "_ParsedSourceDump.txt"
)

// checkSourceName validates a source file name: letters, digits and
// underscores only, with exactly one '.' marking the .svim extension.
func checkSourceName(name string) error {
	if len(name) < len(sourceExt)+1 {
		return errors.Errorf(
			"invalid input file name %q: svim files need at least one character before the %q extension", name, sourceExt)
	}
	dot := -1
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c == '.':
			if dot >= 0 {
				return errors.Errorf(
					"invalid character in source file name %q: only one '.' is allowed, separating the file extension", name)
			}
			dot = i
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return errors.Errorf(
				"invalid character %q in source file name %q: only letters, digits and '_' are allowed", c, name)
		}
	}
	if dot < 0 {
		return errors.Errorf("file extension could not be found in %q: perhaps a '.' is missing", name)
	}
	if name[dot:] != sourceExt {
		return errors.Errorf("incorrect file extension on %q: target files must end in %q", name, sourceExt)
	}
	return nil
}

// outputName derives an output file name from the input file name by
// replacing the .svim extension with the given suffix.
func outputName(src, suffix string) string {
	return strings.TrimSuffix(src, sourceExt) + suffix
}
