// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// internal: put n in old's slot, either a child slot of old's parent
// or the tree root
func (tree *Tree[K, V]) replaceChild(old *Node[K, V], n *Node[K, V]) {
	up := old.up
	n.up = up
	if nil == up {
		tree.root = n
	} else if old == up.left {
		up.left = n
	} else {
		up.right = n
	}
}

// rotateLeft - single rotation of the subtree rooted at p
//
// p's right child becomes the subtree root, p becomes its left child
// and the former left child of the pivot is reattached as p's right
// child; returns the new subtree root
//
// only the two balance tags involved are recomputed, keyed on the
// pivot's tag at entry: a balanced pivot occurs only on the delete
// path and leaves the subtree height unchanged
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	orphan := p1.left

	tree.replaceChild(p, p1)
	p1.left = p
	p.up = p1
	p.right = orphan
	if nil != orphan {
		orphan.up = p
	}

	if balanced == p1.balance {
		p.balance = rightHeavy
		p1.balance = leftHeavy
	} else {
		p.balance = balanced
		p1.balance = balanced
	}
	return p1
}

// rotateRight - mirror of rotateLeft
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	orphan := p1.right

	tree.replaceChild(p, p1)
	p1.right = p
	p.up = p1
	p.left = orphan
	if nil != orphan {
		orphan.up = p
	}

	if balanced == p1.balance {
		p.balance = leftHeavy
		p1.balance = rightHeavy
	} else {
		p.balance = balanced
		p1.balance = balanced
	}
	return p1
}

// rotateLeftRight - double rotation: left around p's left child then
// right around p; returns the new subtree root
//
// the single rotation tables cannot see the inner grandchild that
// ends up holding the subtree, so all three tags are retagged here
// from the grandchild's lean at entry
func (tree *Tree[K, V]) rotateLeftRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p2 := p1.right
	b := p2.balance

	tree.rotateLeft(p1)
	tree.rotateRight(p)

	switch b {
	case leftHeavy:
		p.balance = rightHeavy
		p1.balance = balanced
	case rightHeavy:
		p.balance = balanced
		p1.balance = leftHeavy
	default:
		p.balance = balanced
		p1.balance = balanced
	}
	p2.balance = balanced
	return p2
}

// rotateRightLeft - mirror of rotateLeftRight: right around p's right
// child then left around p
func (tree *Tree[K, V]) rotateRightLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p2 := p1.left
	b := p2.balance

	tree.rotateRight(p1)
	tree.rotateLeft(p)

	switch b {
	case leftHeavy:
		p.balance = balanced
		p1.balance = rightHeavy
	case rightHeavy:
		p.balance = leftHeavy
		p1.balance = balanced
	default:
		p.balance = balanced
		p1.balance = balanced
	}
	p2.balance = balanced
	return p2
}
