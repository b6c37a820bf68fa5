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
	"strconv"
)

// ErrUnrecognizedCommand is reported for a command byte with no handler.
var ErrUnrecognizedCommand = errors.New("unexpected command")

// CommandHandler executes one interpreter command. Execute returns the text
// to print, empty for commands without output.
type CommandHandler interface {
	Command() byte
	Execute(in *Interpreter, arg int64) (string, error)
}

// CommandRegistry maps command bytes to handlers.
type CommandRegistry struct {
	handlers map[byte]CommandHandler
}

// NewCommandRegistry registers the standard commands, plus the membership
// command when enabled in cfg.
func NewCommandRegistry(cfg CommandsConfig) *CommandRegistry {
	registry := &CommandRegistry{handlers: make(map[byte]CommandHandler)}

	registry.Register(insertCommand{})
	registry.Register(nthSmallestCommand{})
	registry.Register(smallerCountCommand{})
	if cfg.Contains {
		registry.Register(containsCommand{})
	}

	return registry
}

// Register adds h, replacing any handler for the same command byte.
func (cr *CommandRegistry) Register(h CommandHandler) {
	cr.handlers[h.Command()] = h
}

// Lookup finds the handler for cmd.
func (cr *CommandRegistry) Lookup(cmd byte) (CommandHandler, error) {
	h, ok := cr.handlers[cmd]
	if !ok {
		return nil, fmt.Errorf("%w %c", ErrUnrecognizedCommand, cmd)
	}
	return h, nil
}

// k <value>
type insertCommand struct{}

func (insertCommand) Command() byte { return 'k' }

func (insertCommand) Execute(in *Interpreter, value int64) (string, error) {
	if err := in.set.Insert(value); err != nil {
		return "", err
	}
	in.cache.Invalidate()
	if in.filter != nil {
		in.filter.Add(value)
	}
	return "", nil
}

// m <n>
type nthSmallestCommand struct{}

func (nthSmallestCommand) Command() byte { return 'm' }

func (c nthSmallestCommand) Execute(in *Interpreter, n int64) (string, error) {
	if v, ok := in.cache.Get(c.Command(), n); ok {
		return formatResult(v), nil
	}
	v, err := in.set.NthSmallest(n)
	if err != nil {
		return "", err
	}
	in.cache.Put(c.Command(), n, v)
	return formatResult(v), nil
}

// n <value>
type smallerCountCommand struct{}

func (smallerCountCommand) Command() byte { return 'n' }

func (c smallerCountCommand) Execute(in *Interpreter, value int64) (string, error) {
	if v, ok := in.cache.Get(c.Command(), value); ok {
		return formatResult(v), nil
	}
	count := in.set.NumberOfSmallerValues(value)
	in.cache.Put(c.Command(), value, count)
	return formatResult(count), nil
}

// c <value>, prints 1 when stored and 0 otherwise.
type containsCommand struct{}

func (containsCommand) Command() byte { return 'c' }

func (containsCommand) Execute(in *Interpreter, value int64) (string, error) {
	if in.filter != nil && !in.filter.MayContain(value) {
		return formatResult(0), nil
	}
	if in.set.Contains(value) {
		return formatResult(1), nil
	}
	return formatResult(0), nil
}

// Query results are separated by a single trailing space.
func formatResult(v int64) string {
	return strconv.FormatInt(v, 10) + " "
}
