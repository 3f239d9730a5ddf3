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
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/avltree/avl"
)

func newTestModel(t *testing.T) (Model, *avl.Tree[int]) {
	t.Helper()
	tree := avl.New[int]()
	m := InitialModel(tree, NewRenderCache(renderCacheExpiration), defaultConfig())
	m.copy = func(string) error { return nil }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model), tree
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+y":
		msg = tea.KeyMsg{Type: tea.KeyCtrlY}
	case "f1":
		msg = tea.KeyMsg{Type: tea.KeyF1}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModelInsertAndDelete(t *testing.T) {
	m, tree := newTestModel(t)

	m, _ = press(m, "1")
	if m.pending != ChoiceInsert {
		t.Fatalf("pending = %v; want insert", m.pending)
	}
	m.input.SetValue("20 10 30 10")
	m, _ = press(m, "enter")

	if m.pending != ChoiceInvalid {
		t.Errorf("input should close after submit")
	}
	if got := tree.Keys(); len(got) != 3 {
		t.Errorf("keys = %v; want 3 keys", got)
	}
	if !strings.Contains(m.status, "Inserted 20, 10, 30") || !strings.Contains(m.status, "10 already present") {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.treeView.View(), "20") {
		t.Errorf("tree view should show the new root")
	}

	m, _ = press(m, "2")
	m.input.SetValue("20 99")
	m, _ = press(m, "enter")
	if tree.Contains(20) || tree.Count() != 2 {
		t.Errorf("20 should be removed, keys = %v", tree.Keys())
	}
	if !strings.Contains(m.status, "99 not in the tree") {
		t.Errorf("status = %q", m.status)
	}
}

func TestModelRejectsInvalidIntegers(t *testing.T) {
	m, tree := newTestModel(t)

	m, _ = press(m, "1")
	m.input.SetValue("5 six 7")
	m, _ = press(m, "enter")

	if !tree.IsEmpty() {
		t.Errorf("no value may reach the tree, got %v", tree.Keys())
	}
	if !m.statusError || !strings.Contains(m.status, `"six"`) {
		t.Errorf("status = %q (error=%v)", m.status, m.statusError)
	}
	if m.pending != ChoiceInsert {
		t.Errorf("input should stay open after an error")
	}

	m, _ = press(m, "esc")
	if m.pending != ChoiceInvalid {
		t.Errorf("esc should close the input")
	}
}

func TestModelEnterRunsSelectedAction(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, "enter")
	if m.pending != ChoiceInsert {
		t.Errorf("first action should be insert, pending = %v", m.pending)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(m, "4")
	if cmd == nil {
		t.Fatalf("exit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("exit should quit")
	}
}

func TestModelClipboard(t *testing.T) {
	m, tree := newTestModel(t)
	tree.InsertAll(2, 1, 3)

	var copied string
	m.copy = func(text string) error {
		copied = text
		return nil
	}

	m, cmd := press(m, "ctrl+y")
	if cmd == nil {
		t.Fatalf("ctrl+y should return a command")
	}
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	if copied != strings.Join(tree.Render(), "\n") {
		t.Errorf("copied %q", copied)
	}
	if m.statusError {
		t.Errorf("status = %q", m.status)
	}

	updated, _ = m.Update(clipboardMsg{err: errors.New("no clipboard")})
	m = updated.(Model)
	if !m.statusError {
		t.Errorf("failed copy should be reported")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, "f1")
	if !m.showingHelp {
		t.Fatalf("f1 should show the usage guide")
	}
	m, _ = press(m, "esc")
	if m.showingHelp {
		t.Errorf("esc should leave the usage guide")
	}
}

func TestModelView(t *testing.T) {
	fresh := InitialModel(avl.New[int](), NewRenderCache(renderCacheExpiration), nil)
	if fresh.View() != "Initializing..." {
		t.Errorf("view before the first resize = %q", fresh.View())
	}

	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Actions") || !strings.Contains(view, avl.EmptyIndicator) {
		t.Errorf("unexpected view:\n%s", view)
	}
}
