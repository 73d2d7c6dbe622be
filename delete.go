// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Delete - remove the node with a specific key from the tree
//
// a missing key is a defined no-op; returns true if a node was
// removed
func (tree *Tree[K, V]) Delete(key K) bool {
	p, exact := tree.locate(key)
	if !exact {
		return false
	}

	if nil != p.left && nil != p.right {
		tree.deleteInner(p)
	} else {
		tree.deleteOuter(p)
	}
	tree.count -= 1
	return true
}

// internal: two children case
//
// the in-order successor is unlinked from its slot and its key and
// value are copied over the located node, so the located node object
// itself survives the deletion
func (tree *Tree[K, V]) deleteInner(p *Node[K, V]) {
	successor := p.right
	for nil != successor.left {
		successor = successor.left
	}

	// the successor has no left child; its right child, if any,
	// takes over its slot
	parent := successor.up
	leftShrunk := successor == parent.left
	if leftShrunk {
		parent.left = successor.right
	} else { // successor is p.right itself
		parent.right = successor.right
	}
	if nil != successor.right {
		successor.right.up = parent
	}

	p.key = successor.key
	p.value = successor.value
	tree.freeNode(successor)
	tree.retraceDelete(parent, leftShrunk)
}

// internal: zero or one child case
//
// a node with one child has a leaf child, so either way the slot
// loses one level of height and the ancestors must be retraced
func (tree *Tree[K, V]) deleteOuter(p *Node[K, V]) {
	child := p.left
	if nil == child {
		child = p.right
	}

	parent := p.up
	if nil != child {
		child.up = parent
	}
	if nil == parent { // deleting the root
		tree.root = child
		tree.freeNode(p)
		return
	}

	leftShrunk := p == parent.left
	if leftShrunk {
		parent.left = child
	} else {
		parent.right = child
	}
	tree.freeNode(p)
	tree.retraceDelete(parent, leftShrunk)
}

// walk upward from the parent of an unlinked node; leftShrunk records
// which of p's subtrees has lost one level of height
//
// unlike the insert retrace this can cascade: a rotation here only
// preserves the subtree height when a single rotation's pivot was
// exactly balanced, in every other case the subtree shrinks and the
// walk continues from the new subtree root
func (tree *Tree[K, V]) retraceDelete(p *Node[K, V], leftShrunk bool) {
	for nil != p {
		if leftShrunk {
			switch p.balance {
			case balanced:
				p.balance = rightHeavy
				return
			case leftHeavy:
				p.balance = balanced
			default: // right side is now two levels deeper
				p1 := p.right
				if leftHeavy == p1.balance {
					p = tree.rotateRightLeft(p)
				} else if balanced == p1.balance {
					tree.rotateLeft(p)
					return
				} else {
					p = tree.rotateLeft(p)
				}
			}
		} else {
			switch p.balance {
			case balanced:
				p.balance = leftHeavy
				return
			case rightHeavy:
				p.balance = balanced
			default: // left side is now two levels deeper
				p1 := p.left
				if rightHeavy == p1.balance {
					p = tree.rotateLeftRight(p)
				} else if balanced == p1.balance {
					tree.rotateRight(p)
					return
				} else {
					p = tree.rotateRight(p)
				}
			}
		}

		parent := p.up
		if nil == parent {
			return
		}
		leftShrunk = p == parent.left
		p = parent
	}
}
