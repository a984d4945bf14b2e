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

// The svim command assembles and runs svim programs.
//
// Usage:
//
//	svim option source_file|example_program
//
//	-h	print available options (no extra argument necessary)
//	-c	assemble and run source_file, outputting to the console
//	-f	assemble and run source_file, outputting to a file
//	-d	assemble source_file without running, writing the bytecode
//		listing to a file
//	-e	run the named built-in example program, outputting to the
//		console in trace mode
//
// Source files must carry the .svim extension, and their names may only
// contain letters, digits and underscores besides the single '.' before
// the extension.
//
// -f writes the execution log to source_Output.txt and -d writes the
// bytecode listing to source_ParsedSourceDump.txt, both derived from the
// source file name. -d only assembles and does not run the program; -f
// and -e run with trace output enabled, -c without.
//
// For console runs the terminal is switched to raw input so that the HALT
// instruction resumes on a single keystroke.
//
// Exit codes: 0 on success, 2 when the source file or demo program does
// not exist, 11 on a parse error or invalid file name, 87 on invalid
// command line arguments, 110 when the source file cannot be opened for
// another reason or the output file cannot be written, 186 on an invalid
// command execution state, -1 when the script itself faults, and -2 on
// unknown errors.
package main
