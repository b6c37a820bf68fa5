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

import "testing"

func TestMembershipFilterNoFalseNegatives(t *testing.T) {
	f := NewMembershipFilter(defaultConfig.Filter)
	values := []int64{0, 1, -1, 42, -2345, 1 << 62, -1 << 63}
	for _, v := range values {
		f.Add(v)
	}
	for _, v := range values {
		if !f.MayContain(v) {
			t.Errorf("MayContain(%d) = false for an added value", v)
		}
	}
	if f.Skipped() != 0 {
		t.Errorf("Skipped() = %d; want 0", f.Skipped())
	}
}

func TestMembershipFilterSkipsAbsentValues(t *testing.T) {
	f := NewMembershipFilter(FilterConfig{ExpectedItems: 1000, FalsePositiveRate: 0.001})
	for v := int64(0); v < 100; v++ {
		f.Add(v)
	}

	negatives := 0
	for v := int64(1000); v < 2000; v++ {
		if !f.MayContain(v) {
			negatives++
		}
	}
	// With a 0.1% false positive rate nearly all of these are rejected.
	if negatives < 990 {
		t.Errorf("filter rejected only %d of 1000 absent values", negatives)
	}
	if f.Skipped() != negatives {
		t.Errorf("Skipped() = %d; want %d", f.Skipped(), negatives)
	}
}
