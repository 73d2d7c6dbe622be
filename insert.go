// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Insert - add a key and its associated value to the tree
//
// an existing node with an equal key has its value overwritten in
// place; returns true if a new node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	p, exact := tree.locate(key)
	if nil == p { // empty tree
		tree.root = tree.newNode(key, value)
		tree.count = 1
		return true
	}
	if exact {
		p.value = value
		return false
	}

	n := tree.newNode(key, value)
	n.up = p
	if key < p.key {
		p.left = n
	} else {
		p.right = n
	}
	tree.count += 1
	tree.retraceInsert(n)
	return true
}

// walk upward from a newly attached leaf adjusting balance tags
//
// a parent that was leaning away from the insertion absorbs the
// growth; a parent already leaning toward it is rebalanced with a
// single rotation (outside case) or a double rotation (inside case)
// which restores the pre-insertion subtree height, so at most one
// rotation happens per insertion
func (tree *Tree[K, V]) retraceInsert(n *Node[K, V]) {
	current := n
	for nil != current.up {
		parent := current.up
		if current == parent.left {
			// left branch has grown
			switch parent.balance {
			case leftHeavy:
				if rightHeavy == current.balance {
					tree.rotateLeftRight(parent)
				} else {
					tree.rotateRight(parent)
				}
				return
			case rightHeavy:
				parent.balance = balanced
				return
			default:
				parent.balance = leftHeavy
			}
		} else {
			// right branch has grown
			switch parent.balance {
			case rightHeavy:
				if leftHeavy == current.balance {
					tree.rotateRightLeft(parent)
				} else {
					tree.rotateLeft(parent)
				}
				return
			case leftHeavy:
				parent.balance = balanced
				return
			default:
				parent.balance = rightHeavy
			}
		}
		current = parent
	}
}
