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
)

func TestRunCommandWithInputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "commands.txt")
	if err := os.WriteFile(input, []byte("k 3 k 2 k 1 m 1 x 0 n 3\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"run", "--input", input, "--config", filepath.Join(dir, "absent.yaml")})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned %v", err)
	}
	if want := "1 2 "; out.String() != want {
		t.Errorf("stdout = %q; want %q", out.String(), want)
	}
	if !strings.Contains(errOut.String(), "unexpected command x") {
		t.Errorf("stderr = %q; want the unrecognized command report", errOut.String())
	}
}

func TestRunCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCommand()
	cmd.SetArgs([]string{"run", "-i", filepath.Join(dir, "nope.txt"), "--config", filepath.Join(dir, "absent.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a missing input file")
	}
}

func TestConfigCommandCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "querytree.yaml")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"config", "--config", path})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "newly created") {
		t.Errorf("output = %q; want the creation notice", out.String())
	}
	if !strings.Contains(out.String(), "expiration: 5m0s") {
		t.Errorf("output = %q; want the cache expiration", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned %v", err)
	}
	if strings.TrimSpace(out.String()) != version {
		t.Errorf("version output = %q; want %q", out.String(), version)
	}
}
