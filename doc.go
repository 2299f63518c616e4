// Package avl implements a balanced binary search tree (AVL) with
// parent pointers, so the nodes can be walked in sorted order in both
// directions without an external stack.
//
// The balancing algorithm follows the classic description by Niklaus
// Wirth in Algorithms + Data Structures = Programs: insertion performs
// at most one single or double rotation, removal may rotate once per
// level on the way back to the root.
//
// A tree is not safe for concurrent use, guard it with a mutex or keep
// it confined to one goroutine.
package avl
