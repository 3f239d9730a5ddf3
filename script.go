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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/mattn/go-shellwords"
)

// ScriptCommand is one operation read from a script file
type ScriptCommand struct {
	Line int
	Name string // canonical name: insert, delete, print, search, height, count
	Args []int
}

var scriptAliases = map[string]string{
	"insert": "insert", "i": "insert", "add": "insert",
	"delete": "delete", "d": "delete", "remove": "delete", "rm": "delete",
	"print": "print", "p": "print",
	"search": "search", "s": "search", "find": "search",
	"height": "height",
	"count":  "count",
}

// commands that take one or more integers, the rest take none
var scriptNeedsArgs = map[string]bool{
	"insert": true,
	"delete": true,
	"search": true,
}

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

// parseInts converts every word to an integer
func parseInts(words []string) ([]int, error) {
	values := make([]int, 0, len(words))
	for _, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", w)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseScript reads one command per line. Blank lines and everything after
// a '#' are ignored.
func ParseScript(r io.Reader) ([]ScriptCommand, error) {
	var commands []ScriptCommand

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		words, err := splitCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if len(words) == 0 {
			continue
		}

		name, ok := scriptAliases[strings.ToLower(words[0])]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", lineNo, words[0])
		}

		args, err := parseInts(words[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if scriptNeedsArgs[name] && len(args) == 0 {
			return nil, fmt.Errorf("line %d: %s needs at least one integer", lineNo, name)
		}
		if !scriptNeedsArgs[name] && len(args) != 0 {
			return nil, fmt.Errorf("line %d: %s takes no arguments", lineNo, name)
		}

		commands = append(commands, ScriptCommand{Line: lineNo, Name: name, Args: args})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return commands, nil
}

// RunScript applies the commands to tree, writing any output to out. With
// verify set the tree's invariants are checked after every change.
func RunScript(tree *avl.Tree[int], commands []ScriptCommand, out io.Writer, verify bool) error {
	for _, cmd := range commands {
		switch cmd.Name {
		case "insert":
			tree.InsertAll(cmd.Args...)
		case "delete":
			for _, v := range cmd.Args {
				tree.Remove(v)
			}
		case "print":
			if err := tree.Display(out); err != nil {
				return err
			}
		case "search":
			for _, v := range cmd.Args {
				if tree.Contains(v) {
					fmt.Fprintf(out, "%d: found\n", v)
				} else {
					fmt.Fprintf(out, "%d: not found\n", v)
				}
			}
		case "height":
			fmt.Fprintf(out, "height: %d\n", tree.Height())
		case "count":
			fmt.Fprintf(out, "count: %d\n", tree.Count())
		}

		if verify && (cmd.Name == "insert" || cmd.Name == "delete") {
			if err := tree.Verify(); err != nil {
				return fmt.Errorf("line %d: %w", cmd.Line, err)
			}
		}
	}
	return nil
}

func runScriptFile(path string, out io.Writer, verify bool) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("script file not found: %s", path)
		}
		return err
	}
	defer file.Close()

	commands, err := ParseScript(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return RunScript(avl.New[int](), commands, out, verify)
}
