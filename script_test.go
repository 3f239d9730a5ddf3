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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
)

// TestSplitCommand verifies that splitCommand correctly tokenizes a script line.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2 3", []string{"insert", "1", "2", "3"}},
		{"  delete\t7 ", []string{"delete", "7"}},
		{`search "42"`, []string{"search", "42"}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if strings.Join(parts, "|") != strings.Join(tc.expected, "|") {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
		}
	}
}

func TestParseScript(t *testing.T) {
	script := `
# build a small tree
insert 20 10 30
i 25 35     # alias
rm 20
print
search 25 20
height
count
`
	commands, err := ParseScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	want := "insert insert delete print search height count"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("commands = %q; want %q", got, want)
	}
	if commands[0].Line != 3 || len(commands[0].Args) != 3 {
		t.Errorf("first command = %+v", commands[0])
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		errMsg string
	}{
		{"unknown command", "insert 1\nbalance\n", "line 2: unknown command"},
		{"bad integer", "insert 1 two\n", `line 1: not an integer: "two"`},
		{"missing argument", "delete\n", "line 1: delete needs at least one integer"},
		{"extra argument", "print 5\n", "line 1: print takes no arguments"},
		{"unbalanced quote", `insert "1` + "\n", "line 1: failed to parse command"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tc.script))
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("ParseScript error = %v; want it to contain %q", err, tc.errMsg)
			}
		})
	}
}

func TestRunScript(t *testing.T) {
	commands, err := ParseScript(strings.NewReader("insert 20 10 30 25 35\ndelete 20\nsearch 20 25\nheight\ncount\nprint\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	tree := avl.New[int]()
	var out bytes.Buffer
	if err := RunScript(tree, commands, &out, true); err != nil {
		t.Fatalf("RunScript: %v", err)
	}

	for _, want := range []string{"20: not found\n", "25: found\n", "height: 3\n", "count: 4\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	got := tree.Keys()
	if len(got) != 4 || got[0] != 10 || got[1] != 25 || got[2] != 30 || got[3] != 35 {
		t.Errorf("keys = %v; want [10 25 30 35]", got)
	}
}

func TestRunScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.txt")
	if err := os.WriteFile(path, []byte("print\ninsert 1\nprint\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runScriptFile(path, &out, true); err != nil {
		t.Fatalf("runScriptFile: %v", err)
	}
	if !strings.HasPrefix(out.String(), avl.EmptyIndicator+"\n") {
		t.Errorf("first print should show the empty tree:\n%s", out.String())
	}

	if err := runScriptFile(filepath.Join(t.TempDir(), "missing.txt"), &out, false); err == nil {
		t.Errorf("expected error for a missing script")
	}
}
