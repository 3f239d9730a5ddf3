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
	"strings"
	"testing"

	"github.com/cybrota/avltree/avl"
)

func runMenu(t *testing.T, tree *avl.Tree[int], input string) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewLineMenu(tree, NewRenderCache(0), strings.NewReader(input), &out, false)
	if err := menu.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	return out.String()
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input    string
		expected MenuChoice
	}{
		{"1", ChoiceInsert},
		{" 2 ", ChoiceDelete},
		{"3", ChoicePrint},
		{"4", ChoiceExit},
		{"0", ChoiceInvalid},
		{"5", ChoiceInvalid},
		{"-1", ChoiceInvalid},
		{"print", ChoiceInvalid},
		{"", ChoiceInvalid},
	}

	for _, tc := range tests {
		if got := parseChoice(tc.input); got != tc.expected {
			t.Errorf("parseChoice(%q) = %v; want %v", tc.input, got, tc.expected)
		}
	}
}

func TestLineMenuInsertDeletePrint(t *testing.T) {
	tree := avl.New[int]()
	input := strings.Join([]string{
		"1", "10",
		"1", "20",
		"1", "30",
		"1", "20", // duplicate
		"2", "99", // absent
		"3",
		"4",
	}, "\n") + "\n"

	out := runMenu(t, tree, input)

	if got := tree.Keys(); len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("tree keys = %v; want [10 20 30]", got)
	}
	if !strings.Contains(out, "20 is already in the tree.") {
		t.Errorf("duplicate insert not reported:\n%s", out)
	}
	if !strings.Contains(out, "99 is not in the tree.") {
		t.Errorf("absent delete not reported:\n%s", out)
	}
	// rendering is indented by one space
	if !strings.Contains(out, "\n   20\n") || !strings.Contains(out, "\n 10 30") {
		t.Errorf("rendering missing from output:\n%s", out)
	}
}

func TestLineMenuInvalidInputNeverReachesTree(t *testing.T) {
	tree := avl.New[int]()
	input := "7\nabc\n1\nseven\n2\n\n4\n"

	out := runMenu(t, tree, input)

	if strings.Count(out, "Invalid choice, try again!") != 2 {
		t.Errorf("expected two invalid choice messages:\n%s", out)
	}
	if !strings.Contains(out, `not an integer: "seven"`) {
		t.Errorf("bad integer not reported:\n%s", out)
	}
	if !strings.Contains(out, `not an integer: ""`) {
		t.Errorf("empty integer not reported:\n%s", out)
	}
	if !tree.IsEmpty() || tree.Revision() != 0 {
		t.Errorf("tree changed by invalid input: %v", tree.Keys())
	}
}

func TestLineMenuEmptyPrintAndEOF(t *testing.T) {
	tree := avl.New[int]()
	out := runMenu(t, tree, "3\n")

	if !strings.Contains(out, " "+avl.EmptyIndicator+"\n") {
		t.Errorf("empty indicator missing:\n%s", out)
	}
	// four options are listed each time the menu is shown
	if strings.Count(out, "Choose an option: ") != 2 {
		t.Errorf("menu should be shown twice before EOF:\n%s", out)
	}
}

func TestLineMenuEOFWhileReadingInteger(t *testing.T) {
	tree := avl.New[int]()
	runMenu(t, tree, "1\n")
	if !tree.IsEmpty() {
		t.Errorf("tree should stay empty")
	}
}
