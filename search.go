// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// internal: three way search used by all of the public operations
//
// returns nil for an empty tree; otherwise the node matching key with
// exact true, or with exact false the leaf-most node visited, i.e.
// the node that would be the parent if key were attached now
func (tree *Tree[K, V]) locate(key K) (*Node[K, V], bool) {
	p := tree.root
	if nil == p {
		return nil, false
	}
	for {
		switch {
		case key < p.key:
			if nil == p.left {
				return p, false
			}
			p = p.left
		case key > p.key:
			if nil == p.right {
				return p, false
			}
			p = p.right
		default:
			return p, true
		}
	}
}
