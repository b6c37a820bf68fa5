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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **querytree %s**

Answers order-statistics queries over a stream of integer commands. Values are kept in a
balanced search tree that also counts subtree sizes, so every query costs O(log n).

Built with Go %s

# 1. Commands
Commands are read from stdin (or --input) as a command character followed by a signed 64-bit integer.

* **k V** insert V. Values are unique, inserting one twice is reported.
* **m N** print the N-th smallest value (N starts at 1).
* **n V** print how many stored values are smaller than V.
* **c V** print 1 when V is stored, 0 otherwise. Enable with *commands.contains* in the config.

Results are printed separated by single spaces. Failed commands are reported on stderr and the run continues.
A command without a number, a value that is not a number or one that overflows int64 is malformed input: the run stops there and exits with status 1.

# 2. Example
    echo "k 3 k 1 k 2 m 1 n 3" | querytree
    1 2

# 3. Configuration
Settings live in ~/%s. Run *querytree config* to create and print it.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), configFileName)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
