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
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenInputReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	content := "k 1 k 2 m 2"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	for _, progress := range []bool{false, true} {
		var bar bytes.Buffer
		r, closeFn, err := openInput(path, progress, &bar)
		if err != nil {
			t.Fatalf("openInput(progress=%v): %v", progress, err)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if err := closeFn(); err != nil {
			t.Errorf("close failed: %v", err)
		}
		if string(data) != content {
			t.Errorf("read %q; want %q", data, content)
		}
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	_, _, err := openInput(filepath.Join(t.TempDir(), "absent.txt"), false, io.Discard)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestOpenInputStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		r, closeFn, err := openInput(path, true, io.Discard)
		if err != nil {
			t.Fatalf("openInput(%q): %v", path, err)
		}
		if r != os.Stdin {
			t.Errorf("openInput(%q) did not return stdin", path)
		}
		if err := closeFn(); err != nil {
			t.Errorf("close of stdin input failed: %v", err)
		}
	}
}
