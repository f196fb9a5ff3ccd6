// Copyright 2025 Naren Yellavula
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
	"bufio"
	"io"
	"os"

	"github.com/ansel1/merry"
)

// readScriptFile reads ops from path. "-" reads standard input.
func readScriptFile(path string) ([]Op, error) {
	if path == "-" {
		return readScript(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, merry.Prependf(err, "script %s not found", path)
		}
		return nil, merry.Wrap(err)
	}
	defer file.Close()

	ops, err := readScript(file)
	if err != nil {
		return nil, merry.WithValue(err, "file", path)
	}
	return ops, nil
}

// readScript scans r line by line so parse errors keep their line numbers
func readScript(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lineOps, err := parseOpsFrom([]string{scanner.Text()}, lineNo)
		if err != nil {
			return nil, err
		}
		ops = append(ops, lineOps...)
	}

	if err := scanner.Err(); err != nil {
		return nil, merry.Wrap(err)
	}
	return ops, nil
}
