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

package avl

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// EmptyIndicator is what an empty tree renders as.
const EmptyIndicator = "<empty tree>"

// minCellWidth is the narrowest column a key is centered in
const minCellWidth = 3

// Renderer draws the shape of a Tree as lines of text, root first, with
// '/' and '\' connectors between levels. It never modifies the tree.
type Renderer[T cmp.Ordered] struct {
	// Format turns a key into the text drawn for it. fmt.Sprint when nil.
	Format func(T) string

	// Empty is the only line produced for a tree without nodes.
	Empty string
}

// NewRenderer returns a Renderer using fmt.Sprint and EmptyIndicator.
func NewRenderer[T cmp.Ordered]() *Renderer[T] {
	return &Renderer[T]{
		Format: func(key T) string { return fmt.Sprint(key) },
		Empty:  EmptyIndicator,
	}
}

// Render draws the tree with the default renderer.
func (tree *Tree[T]) Render() []string {
	return NewRenderer[T]().Lines(tree)
}

// Display writes the default rendering of the tree to w.
func (tree *Tree[T]) Display(w io.Writer) error {
	return NewRenderer[T]().Write(w, tree)
}

// Lines returns the rendering of tree, one string per output line.
func (r *Renderer[T]) Lines(tree *Tree[T]) []string {
	if tree == nil || tree.root == nil {
		return []string{r.Empty}
	}
	rows := formatGrid(r.grid(tree.root))
	trimRowsLeft(rows)
	return rows
}

// Write renders tree to w, newline terminated.
func (r *Renderer[T]) Write(w io.Writer, tree *Tree[T]) error {
	for _, line := range r.Lines(tree) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// cell is one slot of the display grid
type cell struct {
	value   string
	present bool // false for a slot with no node under it
}

// grid lays the tree over a perfect binary tree of the same height: row d
// has 2^d cells, and every slot without a node, including all slots below
// a missing one, is an absent cell.
func (r *Renderer[T]) grid(root *Node[T]) [][]cell {
	format := r.Format
	if format == nil {
		format = func(key T) string { return fmt.Sprint(key) }
	}

	maxDepth := root.Height()
	rows := make([][]cell, maxDepth)
	level := []*Node[T]{root}

	for depth := 0; depth < maxDepth; depth++ {
		row := make([]cell, len(level))
		for i, n := range level {
			if n != nil {
				row[i] = cell{value: format(n.key), present: true}
			}
		}
		rows[depth] = row

		// the deepest row is only leaves and gaps
		if depth == maxDepth-1 {
			break
		}

		next := make([]*Node[T], 0, 2*len(level))
		for _, n := range level {
			if n == nil {
				next = append(next, nil, nil)
				continue
			}
			next = append(next, n.left, n.right)
		}
		level = next
	}
	return rows
}

// formatGrid turns the grid into text, working from the deepest row up to
// the root, then reverses the result so the root comes first.
func formatGrid(grid [][]cell) []string {
	cellWidth := minCellWidth
	for _, row := range grid {
		for _, c := range row {
			if w := runewidth.StringWidth(c.value); c.present && w > cellWidth {
				cellWidth = w
			}
		}
	}
	// odd widths let a key sit exactly in the middle
	if cellWidth%2 == 0 {
		cellWidth++
	}

	rowCount := len(grid)
	rowElemCount := 1 << (rowCount - 1)

	// spaces in front of the first cell of the current row
	leftPad := 0

	var result []string
	var row strings.Builder

	for r := 0; r < rowCount; r++ {
		gridRow := grid[rowCount-r-1]

		// number of connector lines up to the next row, also the offset
		// between this row's cells and their parents
		space := (1<<r)*(cellWidth+1)/2 - 1

		row.Reset()
		for c := 0; c < rowElemCount; c++ {
			if c == 0 {
				row.WriteString(spaces(leftPad))
			} else {
				row.WriteString(spaces(2*leftPad + 1))
			}

			if !gridRow[c].present {
				row.WriteString(spaces(cellWidth))
				continue
			}

			// uneven padding goes on the outside: left for a left
			// child, right for a right child
			value := gridRow[c].value
			longPadding := cellWidth - runewidth.StringWidth(value)
			shortPadding := longPadding / 2
			longPadding -= shortPadding

			if c%2 == 1 {
				row.WriteString(spaces(shortPadding))
				row.WriteString(value)
				row.WriteString(spaces(longPadding))
			} else {
				row.WriteString(spaces(longPadding))
				row.WriteString(value)
				row.WriteString(spaces(shortPadding))
			}
		}
		result = append(result, row.String())

		if rowElemCount == 1 {
			break
		}

		// connectors close in on the parent by one column per line
		leftSpace := space + 1
		rightSpace := space - 1
		for i := 0; i < space; i++ {
			row.Reset()
			for c := 0; c < rowElemCount; c++ {
				if c%2 == 0 {
					if c == 0 {
						row.WriteString(spaces(leftSpace))
					} else {
						row.WriteString(spaces(2*leftSpace + 1))
					}
					row.WriteByte(connector(gridRow[c].present, '/'))
					row.WriteString(spaces(rightSpace + 1))
				} else {
					row.WriteString(spaces(rightSpace))
					row.WriteByte(connector(gridRow[c].present, '\\'))
				}
			}
			result = append(result, row.String())
			leftSpace++
			rightSpace--
		}

		leftPad += space + 1
		rowElemCount /= 2
	}

	slices.Reverse(result)
	return result
}

func connector(present bool, slash byte) byte {
	if present {
		return slash
	}
	return ' '
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

// trimRowsLeft removes the leading spaces every row has in common, so at
// least one row starts at column zero.
func trimRowsLeft(rows []string) {
	if len(rows) == 0 {
		return
	}
	minSpace := -1
	for _, row := range rows {
		n := len(row) - len(strings.TrimLeft(row, " "))
		if n == 0 {
			return
		}
		if minSpace < 0 || n < minSpace {
			minSpace = n
		}
	}
	for i := range rows {
		rows[i] = rows[i][minSpace:]
	}
}
