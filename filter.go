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
	"encoding/binary"

	"github.com/willf/bloom"
)

// MembershipFilter is a Bloom filter over inserted values. A negative
// answer is definitive, so membership lookups for absent values can skip the
// tree walk.
type MembershipFilter struct {
	bf      *bloom.BloomFilter
	skipped int
}

func NewMembershipFilter(cfg FilterConfig) *MembershipFilter {
	return &MembershipFilter{
		bf: bloom.NewWithEstimates(cfg.ExpectedItems, cfg.FalsePositiveRate),
	}
}

func filterKey(value int64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(value))
	return buf[:]
}

func (f *MembershipFilter) Add(value int64) {
	f.bf.Add(filterKey(value))
}

// MayContain reports false only for values that were never added.
func (f *MembershipFilter) MayContain(value int64) bool {
	if f.bf.Test(filterKey(value)) {
		return true
	}
	f.skipped++
	return false
}

// Skipped returns how many lookups were answered by the filter alone.
func (f *MembershipFilter) Skipped() int {
	return f.skipped
}
