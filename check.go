// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K constraints.Ordered, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckBalance - verify the AVL height bound and that every balance
// tag is exactly the height difference of its subtrees
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

func checkBalance[K constraints.Ordered, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, okl := checkBalance(p.left)
	hr, okr := checkBalance(p.right)
	if !okl || !okr {
		return 0, false
	}
	d := hl - hr
	if d < -1 || d > 1 {
		fmt.Printf("height bound broken at node: %v  left: %d  right: %d\n", p.key, hl, hr)
		return 0, false
	}
	if balance(d) != p.balance {
		fmt.Printf("stale balance at node: %v  actual: %d  expected: %d\n", p.key, p.balance, d)
		return 0, false
	}
	if hr > hl {
		hl = hr
	}
	return 1 + hl, true
}

// CheckOrder - verify that an in-order walk yields strictly
// increasing keys and that the node count matches
func (tree *Tree[K, V]) CheckOrder() bool {
	keys := appendKeys(tree.root, make([]K, 0, tree.count))
	for i := 1; i < len(keys); i += 1 {
		if keys[i-1] >= keys[i] {
			fmt.Printf("out of order keys: %v and %v\n", keys[i-1], keys[i])
			return false
		}
	}
	return len(keys) == tree.count
}

func appendKeys[K constraints.Ordered, V any](p *Node[K, V], keys []K) []K {
	if nil == p {
		return keys
	}
	keys = appendKeys(p.left, keys)
	keys = append(keys, p.key)
	return appendKeys(p.right, keys)
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K constraints.Ordered, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	hl := height(p.left)
	hr := height(p.right)
	if hr > hl {
		hl = hr
	}
	return 1 + hl
}
