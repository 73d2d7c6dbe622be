// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avltree - an AVL balanced binary search tree with parent
// pointers, generic over an ordered key type
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs, reworked here as an
// iterative retrace over the parent pointers.
//
// This version allows for data associated with a key, which can be
// overwritten by an insert with the same key.  Lookup of a missing
// key and delete of a missing key are not errors.
package avltree
