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

//go:generate mockgen -source ordered_set.go -destination ordered_set_mocks.go -package main

// OrderedSet is the order-statistics structure the interpreter drives.
// *ostree.Tree implements it.
type OrderedSet interface {
	Insert(value int64) error
	NthSmallest(n int64) (int64, error)
	NumberOfSmallerValues(value int64) int64
	Contains(value int64) bool
	Len() int64
}
