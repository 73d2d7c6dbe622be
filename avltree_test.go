// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"testing"

	"golang.org/x/exp/constraints"

	"avltree"
)

// stop at the first structural defect, dumping the offending tree
func verifyTree[K constraints.Ordered, V any](t *testing.T, tree *avltree.Tree[K, V]) {
	t.Helper()
	if !tree.CheckUp() {
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("inconsistent up pointers")
	}
	if !tree.CheckBalance() {
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("incorrect balance tags")
	}
	if !tree.CheckOrder() {
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatal("keys out of order")
	}
}

func TestListShort(t *testing.T) {
	addList := []int{
		4201, 1254, 8608, 1639, 8950,
		6740,
	}
	doList(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []int{
		1720, 506, 8382, 6774, 1247,
		1250, 1264, 1258, 1255, 2247,
		2004, 2194, 2644, 2169, 8133,
		2136, 9651, 4079, 1042, 3579,
		3630, 1427, 5843, 9549, 5433,
		1274, 9034, 4724, 6179, 5072,
		9272, 4030, 4205, 3363, 8582,
		1720, 506, 8382, 6774, 1042,

		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
		1042, 1042, 1042, 1042, 1042,
	}
	doList(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []int{
		8133, 2136, 9651, 4079, 1042,
		3579, 3630, 1427, 5843, 9549,
		5433, 1274, 9034, 4724, 6179,
		5072, 9272, 4030, 4205, 3363,
		8582, 1720, 506, 8382, 6774,
		3088, 2329, 9039, 6703, 1027,
		7297, 6063, 4156, 1005, 982,
		3065, 2553, 795, 8426, 2377,
		877, 9085, 5918, 2581, 7797,
		3028, 5880, 3061, 5212, 6539,
		1320, 3581, 3334, 4348, 2934,
		8342, 8814, 8736, 1353, 3082,
		9620, 56, 5063, 1245, 7066,
		7435, 2999, 7803, 1303, 1697,
		17, 4314, 9926, 7587, 2531,
		8123, 5693, 7495, 9975, 5465,
		4342, 7958, 7138, 9382, 672,
		5402, 204, 2397, 2712, 938,
		9610, 3611, 2140, 4289, 9271,
		4786, 4145, 1066, 4366, 6716,
		8579, 1012, 5935, 8278, 5761,
		1871, 6257, 2649, 8643, 1239,
		3416, 6146, 7127, 9517, 5788,
		9025, 6880, 9064, 4849, 4503,
		4898, 6815, 8811, 6745, 6907,
		7503, 9869, 5491, 9940, 5955,
		3764, 3254, 8048, 5339, 2406,
		3137, 251, 486, 4202, 1844,
		1741, 7154, 4286, 5160, 9472,
		2998, 1935, 4758, 6478, 9572,
	}
	doList(t, addList)
}

// build the tree from the whole list, delete an initial slice, then
// the remainder; the structural invariants are checked after every
// single mutation, not just at the end of a batch
func doList(t *testing.T, addList []int) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[int]struct{})

		tree := avltree.New[int, string]()
		for _, key := range addList {
			tree.Insert(key, fmt.Sprintf("data:%04d", key))
			verifyTree(t, tree)
		}

		for _, key := range addList {
			value, ok := tree.Lookup(key)
			if !ok {
				t.Fatalf("lookup missed key: %d", key)
			}
			if ev := fmt.Sprintf("data:%04d", key); value != ev {
				t.Fatalf("lookup returned: %q  expected: %q", value, ev)
			}
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete missed key: %d", key)
			}
			verifyTree(t, tree)
			if _, ok := tree.Lookup(key); ok {
				t.Fatalf("deleted key still present: %d", key)
			}
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete missed key: %d", key)
			}
			verifyTree(t, tree)
		}
		if !tree.IsEmpty() {
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if 0 != tree.Count() {
			t.Fatalf("remaining count not zero: %d", tree.Count())
		}
	}
}

func makeKey() int {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	return int(binary.BigEndian.Uint32(b)) % 10000
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avltree.New[int, string]()
	d := make([]int, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, fmt.Sprintf("data:%04d", key))
	}
	verifyTree(t, tree)

	for _, key := range d {
		tree.Delete(key)
		verifyTree(t, tree)
	}

	// add back a test value
	const testKey = 500
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)
	verifyTree(t, tree)

	// check that the test value is searchable
	value, ok := tree.Lookup(testKey)
	if !ok {
		t.Fatalf("could not find test key: %d", testKey)
	}
	if testValue != value {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", value, testValue)
	}

	// delete the test value and check it is no longer in the tree
	if !tree.Delete(testKey) {
		t.Fatalf("test key not deleted: %d", testKey)
	}
	if value, ok := tree.Lookup(testKey); ok {
		t.Fatalf("test key not deleted and contains: %q", value)
	}
}

// a second key type to make sure ordering is not tied to integers
func TestStringKeys(t *testing.T) {
	addList := []string{
		"eel", "ant", "fox", "bee", "goat",
		"cat", "donkey",
	}

	tree := avltree.New[string, int]()
	for i, key := range addList {
		tree.Insert(key, i)
		verifyTree(t, tree)
	}

	for i, key := range addList {
		value, ok := tree.Lookup(key)
		if !ok {
			t.Fatalf("lookup missed key: %q", key)
		}
		if i != value {
			t.Fatalf("lookup returned: %d  expected: %d", value, i)
		}
	}

	for _, key := range addList {
		if !tree.Delete(key) {
			t.Fatalf("delete missed key: %q", key)
		}
		verifyTree(t, tree)
	}
	if !tree.IsEmpty() {
		t.Fatal("remaining nodes")
	}
}
