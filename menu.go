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
	"strconv"
	"strings"

	"github.com/cybrota/avltree/avl"
	"github.com/patrickmn/go-cache"
)

// MenuChoice is one of the numbered menu entries
type MenuChoice int

const (
	ChoiceInvalid MenuChoice = iota
	ChoiceInsert
	ChoiceDelete
	ChoicePrint
	ChoiceExit
)

var menuOptions = []string{
	"Insert a number into the AVL tree",
	"Delete a number from the AVL tree",
	"Print the AVL tree",
	"Exit",
}

// parseChoice maps the user's answer to a menu entry; anything that is not
// one of the listed numbers is ChoiceInvalid.
func parseChoice(answer string) MenuChoice {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(menuOptions) {
		return ChoiceInvalid
	}
	return MenuChoice(n)
}

// LineMenu is the line-oriented interactive menu: it prompts for an entry,
// reads integers and forwards them to the tree.
type LineMenu struct {
	tree        *avl.Tree[int]
	renderCache *cache.Cache
	scanner     *bufio.Scanner
	out         io.Writer
	showStats   bool
}

func NewLineMenu(tree *avl.Tree[int], rc *cache.Cache, in io.Reader, out io.Writer, showStats bool) *LineMenu {
	return &LineMenu{
		tree:        tree,
		renderCache: rc,
		scanner:     bufio.NewScanner(in),
		out:         out,
		showStats:   showStats,
	}
}

// Run loops until the user picks Exit or the input ends.
func (m *LineMenu) Run() error {
	for {
		m.printMenu()
		answer, err := m.readLine()
		if err == io.EOF {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch parseChoice(answer) {
		case ChoiceInvalid:
			fmt.Fprintf(m.out, "%sInvalid choice, try again!%s\n", Warning, Reset)
		case ChoiceInsert:
			value, err := m.readInt("Enter an integer to insert: ")
			if err == io.EOF {
				return nil
			}
			if err != nil {
				fmt.Fprintf(m.out, "%s%v%s\n", Error, err, Reset)
				continue
			}
			if m.tree.Insert(value) {
				fmt.Fprintf(m.out, "%sInserted %d.%s\n", Green, value, Reset)
			} else {
				fmt.Fprintf(m.out, "%d is already in the tree.\n", value)
			}
		case ChoiceDelete:
			value, err := m.readInt("Enter an integer to delete: ")
			if err == io.EOF {
				return nil
			}
			if err != nil {
				fmt.Fprintf(m.out, "%s%v%s\n", Error, err, Reset)
				continue
			}
			if m.tree.Remove(value) {
				fmt.Fprintf(m.out, "%sDeleted %d.%s\n", Green, value, Reset)
			} else {
				fmt.Fprintf(m.out, "%d is not in the tree.\n", value)
			}
		case ChoicePrint:
			m.printTree()
		case ChoiceExit:
			return nil
		}
	}
}

func (m *LineMenu) printMenu() {
	fmt.Fprintln(m.out, strings.Repeat("-", 40))
	for i, option := range menuOptions {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
	}
	fmt.Fprint(m.out, "Choose an option: ")
}

func (m *LineMenu) printTree() {
	fmt.Fprintln(m.out)
	for _, line := range GetOrRender(m.renderCache, m.tree) {
		fmt.Fprintf(m.out, " %s\n", line)
	}
	if m.showStats && !m.tree.IsEmpty() {
		fmt.Fprintf(m.out, "\n %s(%s)%s\n", Info, treeStats(m.tree), Reset)
	}
	fmt.Fprintln(m.out)
}

func (m *LineMenu) readLine() (string, error) {
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.scanner.Text(), nil
}

func (m *LineMenu) readInt(prompt string) (int, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.readLine()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", strings.TrimSpace(line))
	}
	return value, nil
}

// treeStats is the one-line summary shown under a rendering
func treeStats(tree *avl.Tree[int]) string {
	return fmt.Sprintf("%d keys, height %d", tree.Count(), tree.Height())
}
