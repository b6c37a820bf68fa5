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
	"fmt"
	"io"

	"github.com/golang/glog"
)

// RunStats summarizes one interpreter run.
type RunStats struct {
	Commands    int
	Failures    int
	CacheHits   int
	FilterSkips int
}

// Interpreter reads command pairs and applies them to an OrderedSet.
// Operation errors are reported on the diagnostic stream and do not stop
// the run.
type Interpreter struct {
	set      OrderedSet
	commands *CommandRegistry
	cache    *QueryCache
	filter   *MembershipFilter
	palette  *Palette
	stats    RunStats
}

// NewInterpreter wires set with the cache, filter and command set described
// by cfg. The membership filter only sees values inserted through the
// interpreter, so it is left out when set already holds values.
func NewInterpreter(set OrderedSet, cfg *Config, palette *Palette) *Interpreter {
	in := &Interpreter{
		set:      set,
		commands: NewCommandRegistry(cfg.Commands),
		cache:    NewQueryCache(cfg.Cache),
		palette:  palette,
	}
	if cfg.Commands.Contains && set.Len() == 0 {
		in.filter = NewMembershipFilter(cfg.Filter)
	}
	return in
}

// Execute runs a single command and returns its printable result.
func (in *Interpreter) Execute(cmd byte, arg int64) (string, error) {
	h, err := in.commands.Lookup(cmd)
	if err != nil {
		return "", err
	}
	return h.Execute(in, arg)
}

// Run processes r until it ends. Results go to out and one line per failed
// command goes to diag. It returns an error only when r is malformed or a
// stream fails.
func (in *Interpreter) Run(r io.Reader, out, diag io.Writer) error {
	tr := newTokenReader(r)
	for {
		cmd, arg, err := tr.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		in.stats.Commands++
		result, err := in.Execute(cmd, arg)
		if err != nil {
			in.stats.Failures++
			glog.V(2).Infof("command %c %d failed: %v", cmd, arg, err)
			if _, werr := fmt.Fprintln(diag, in.palette.Error(err.Error())); werr != nil {
				return fmt.Errorf("failed to write diagnostic: %w", werr)
			}
			continue
		}

		if result == "" {
			continue
		}
		if _, err := io.WriteString(out, result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
}

// Stats returns the counters of the runs so far.
func (in *Interpreter) Stats() RunStats {
	stats := in.stats
	stats.CacheHits = in.cache.Hits()
	if in.filter != nil {
		stats.FilterSkips = in.filter.Skipped()
	}
	return stats
}
