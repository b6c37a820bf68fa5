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
	"strings"
	"testing"
)

func TestHelpMessageMentionsMalformedInput(t *testing.T) {
	msg := getHelpMessage()
	if !strings.Contains(msg, "malformed") {
		t.Errorf("usage guide does not explain what happens on malformed input")
	}
	if !strings.Contains(msg, version) {
		t.Errorf("usage guide does not show version %s", version)
	}
}
