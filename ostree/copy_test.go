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

package ostree

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClone(t *testing.T) {
	Convey("Given a tree and its clone", t, func() {
		original := buildTree(t, scenario)
		copied := original.Clone()

		Convey("The clone answers the same queries", func() {
			So(copied.Values(), ShouldResemble, original.Values())
			So(copied.Height(), ShouldEqual, original.Height())
			So(invariantsHold(copied), ShouldBeTrue)
		})

		Convey("Inserting into the clone leaves the original alone", func() {
			So(copied.Insert(0), ShouldBeNil)
			So(copied.Len(), ShouldEqual, int64(14))
			So(original.Len(), ShouldEqual, int64(13))
			So(original.Contains(0), ShouldBeFalse)
			So(original.NumberOfSmallerValues(3), ShouldEqual, int64(7))
			So(copied.NumberOfSmallerValues(3), ShouldEqual, int64(8))
			v, _ := original.NthSmallest(6)
			So(v, ShouldEqual, int64(1))
		})

		Convey("No node is shared", func() {
			So(copied.root, ShouldNotPointTo, original.root)
			So(copied.root.left, ShouldNotPointTo, original.root.left)
		})
	})

	Convey("Cloning an empty tree gives an empty tree", t, func() {
		So(New().Clone().Len(), ShouldEqual, int64(0))
	})
}

func TestCopyFrom(t *testing.T) {
	Convey("CopyFrom replaces the receiver's contents", t, func() {
		dst := buildTree(t, []int64{1000, 2000})
		src := buildTree(t, scenario)
		dst.CopyFrom(src)
		So(dst.Values(), ShouldResemble, src.Values())
		So(dst.Contains(1000), ShouldBeFalse)

		So(src.Insert(7), ShouldBeNil)
		So(dst.Contains(7), ShouldBeFalse)
	})

	Convey("Copying a tree onto itself is a no-op", t, func() {
		tree := buildTree(t, scenario)
		root := tree.root
		tree.CopyFrom(tree)
		So(tree.root, ShouldPointTo, root)
		So(tree.Len(), ShouldEqual, int64(13))
	})
}

func TestMoveAndSwap(t *testing.T) {
	Convey("Move hands the structure over and empties the source", t, func() {
		src := buildTree(t, scenario)
		dst := src.Move()
		So(src.Len(), ShouldEqual, int64(0))
		So(src.Height(), ShouldEqual, int64(0))
		So(dst.Len(), ShouldEqual, int64(13))
		So(invariantsHold(dst), ShouldBeTrue)

		So(src.Insert(5), ShouldBeNil)
		So(dst.Contains(5), ShouldBeFalse)
	})

	Convey("Swap exchanges contents", t, func() {
		a := buildTree(t, []int64{1, 2})
		b := buildTree(t, []int64{9})
		a.Swap(b)
		So(a.Values(), ShouldResemble, []int64{9})
		So(b.Values(), ShouldResemble, []int64{1, 2})
	})
}
