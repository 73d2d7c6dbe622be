// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

import (
	"golang.org/x/exp/constraints"
)

// lean of a node: exact height(left) - height(right)
// no other values can occur in a valid tree
type balance int8

const (
	rightHeavy balance = -1
	balanced   balance = 0
	leftHeavy  balance = +1
)

// Node - a node in the tree
type Node[K constraints.Ordered, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance balance
}

// allocate a new node, reuses reclaimed nodes if any are available
//
// the pool is per-tree so no locking is needed; a tree is already
// restricted to one accessor at a time
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		return &Node[K, V]{
			key:     key,
			value:   value,
			balance: balanced,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.balance = balanced
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in a pool
func (tree *Tree[K, V]) freeNode(p *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	p.up = tree.pool // use as free list pointer

	p.left = nil
	p.right = nil
	p.key = zeroKey
	p.value = zeroValue
	p.balance = balanced
	tree.freeNodes += 1

	tree.pool = p
}
