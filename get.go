// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avltree

// Lookup - find the value stored for a specific key
//
// the second return is false if the key is not present; in that case
// the first return is the zero value of V and must not be used
func (tree *Tree[K, V]) Lookup(key K) (V, bool) {
	p, exact := tree.locate(key)
	if !exact {
		var zeroValue V
		return zeroValue, false
	}
	return p.value, true
}
