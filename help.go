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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown returns the usage guide as raw markdown. The full-screen menu
// renders it with glamour, the usage command with go-term-markdown.
func usageMarkdown() string {
	return fmt.Sprintf(`
 **avltree %s**

A self-balancing binary search tree you can grow, prune and look at.
Every insert and delete keeps the tree height-balanced and the tree is drawn
as ASCII art after each change you ask to see.

Built with Go %s

# 1. Interactive menu
* **1** insert one or more integers (separate them with spaces)
* **2** delete one or more integers
* **3** print the tree
* **4** exit

Use `+"`avltree run --plain`"+` for the line-oriented menu.

# 2. Full-screen keys
* **enter** run the selected action or confirm the numbers typed
* **esc** leave the input field, or quit
* **ctrl+y** copy the current drawing to the clipboard
* **f1** toggle this guide

# 3. Other commands
* `+"`avltree print 5 3 8`"+` draw a tree built from the given values
* `+"`avltree script ops.txt --verify`"+` run a file of insert/delete/print/search/height lines
* `+"`avltree bench --ops 100000`"+` randomized stress run with invariant checks
* `+"`avltree settings`"+` show the configuration in ~/.avltree.yaml

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
