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
	"fmt"
	"os"

	"github.com/Masked-Avus/svim/asm"
	"github.com/Masked-Avus/svim/demo"
	"github.com/Masked-Avus/svim/vm"
	"github.com/pkg/errors"
)

// Exit codes reported to the OS.
const (
	statusOK          = 0
	statusNotFound    = 2
	statusParseError  = 11
	statusBadArgs     = 87
	statusOpenError   = 110
	statusBadState    = 186
	statusExecFailure = -1
	statusUnknown     = -2
)

type command struct {
	name string
	arg  string
	desc string
	run  func(arg string) int
}

var commands []command

func init() {
	commands = []command{
		{"-h", "", "print available options (no 'source_file' necessary)", runHelp},
		{"-c", "source_file", "run 'source_file,' outputting to console", runConsole},
		{"-f", "source_file", "run 'source_file,' outputting to file", runToFile},
		{"-d", "source_file", "parse 'source_file' without running, outputting parsed contents to file", runDump},
		{"-e", "example_program", "run example_program, outputting to console in trace mode", runDemo},
	}
}

func usage() {
	fmt.Println("Command line format: svim option source_file|example_program")
	for _, c := range commands {
		fmt.Printf("\t%s (%s)\n", c.name, c.desc)
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "Invalid number of command line arguments (minimum = 1; maximum = 2).")
		return statusBadArgs
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if c.arg == "" {
			return c.run("")
		}
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Too few command line arguments given for operation.")
			return statusBadArgs
		}
		return c.run(args[1])
	}
	fmt.Fprintf(os.Stderr, "Invalid application option %q given. Enter %q to show available options.\n",
		args[0], commands[0].name)
	return statusBadArgs
}

func runHelp(string) int {
	usage()
	return statusOK
}

// assemble validates the source name, assembles the file and maps failures
// to exit codes.
func assemble(src string) (code []vm.Cell, start, status int) {
	if err := checkSourceName(src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, 0, statusParseError
	}
	code, start, err := asm.AssembleFile(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		switch cause := errors.Cause(err).(type) {
		case *asm.Error:
			return nil, 0, statusParseError
		default:
			if os.IsNotExist(cause) {
				return nil, 0, statusNotFound
			}
			return nil, 0, statusOpenError
		}
	}
	return code, start, statusOK
}

// execute runs the program against the given sink and maps runtime faults
// to exit codes.
func execute(code []vm.Cell, start int, trace bool, sink vm.Sink) int {
	i, err := vm.New(code, start,
		vm.Output(sink),
		vm.Input(os.Stdin),
		vm.Trace(trace))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return statusBadState
	}
	if err = i.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return statusExecFailure
	}
	if trace {
		i.DumpCode()
	}
	return statusOK
}

func runConsole(src string) int {
	code, start, status := assemble(src)
	if status != statusOK {
		return status
	}
	// raw terminal input so that HALT resumes on a single keystroke
	if restore, err := setRawIO(); err == nil {
		defer restore()
	}
	return execute(code, start, false, vm.NewSink(os.Stdout))
}

func runToFile(src string) int {
	code, start, status := assemble(src)
	if status != statusOK {
		return status
	}
	sink, err := vm.NewFileSink(outputName(src, outputSuffix))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return statusOpenError
	}
	status = execute(code, start, true, sink)
	if err = sink.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if status == statusOK {
			status = statusOpenError
		}
	}
	return status
}

func runDump(src string) int {
	code, _, status := assemble(src)
	if status != statusOK {
		return status
	}
	sink, err := vm.NewFileSink(outputName(src, dumpSuffix))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return statusOpenError
	}
	sink.Listing(code)
	if err = sink.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return statusOpenError
	}
	return statusOK
}

func runDemo(name string) int {
	p := demo.Find(name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Application does not contain demo program %q.\n", name)
		fmt.Fprintln(os.Stderr, "Example programs available (enter name in command line to run):")
		for _, d := range demo.Programs() {
			fmt.Fprintf(os.Stderr, "    %s\n", d.Name)
		}
		return statusNotFound
	}
	// run a copy so the table keeps its pre-assembled code intact
	code := make([]vm.Cell, len(p.Code))
	copy(code, p.Code)
	if restore, err := setRawIO(); err == nil {
		defer restore()
	}
	return execute(code, p.Start, true, vm.NewSink(os.Stdout))
}
