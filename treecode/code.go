// Package treecode implements the binary path-code contract the
// space-graph builder treats as an external collaborator (spec.md §6): a
// compact bit-string path identifier plus the binary tree container keyed
// by those codes.
//
// A Code encodes the root as the single sentinel bit "1". Each Append
// shifts the existing bits left and ORs in 0 (left) or 1 (right), so the
// path from the root reads, most significant bit to least, oldest step
// first; the sentinel bit lets Length() recover the path's depth without a
// separate length field, which is the standard technique for a
// variable-depth bit-string counter.
package treecode

import (
	"errors"
	"math/big"
)

// Direction is one step of a path code.
type Direction int

const (
	Left Direction = iota
	Right
)

// Errors returned while navigating or comparing codes.
var (
	ErrNotDescendant = errors.New("treecode: code is not a descendant of the given ancestor")
)

// Code is an immutable binary path identifier.
type Code struct {
	bits *big.Int
}

// Root returns the code of the tree's root: the empty path.
func Root() Code {
	return Code{bits: big.NewInt(1)}
}

// Append returns the code obtained by taking one more step in dir.
func (c Code) Append(dir Direction) Code {
	next := new(big.Int).Lsh(c.bits, 1)
	if dir == Right {
		next.Or(next, big.NewInt(1))
	}
	return Code{bits: next}
}

// Length returns the number of steps from the root (0 for the root).
func (c Code) Length() int {
	return c.bits.BitLen() - 1
}

// Eql reports whether c and other identify the same path.
func (c Code) Eql(other Code) bool {
	return c.bits.Cmp(other.bits) == 0
}

// Key returns a stable string suitable for use as a map key.
func (c Code) Key() string {
	return c.bits.Text(2)
}

// String renders the code as its binary text, sentinel bit included.
func (c Code) String() string {
	return "0b" + c.bits.Text(2)
}

// bitAt returns the direction taken at the given depth (0-indexed from the
// root). depth must be < c.Length().
func (c Code) bitAt(depth int) Direction {
	pos := c.Length() - 1 - depth
	if c.bits.Bit(pos) == 1 {
		return Right
	}
	return Left
}

// IsAncestorOf reports whether c is a prefix of other (c == other is also
// considered an ancestor of itself).
func (c Code) IsAncestorOf(other Code) bool {
	if other.Length() < c.Length() {
		return false
	}
	shifted := new(big.Int).Rsh(other.bits, uint(other.Length()-c.Length()))
	return shifted.Cmp(c.bits) == 0
}

// NextStepTowards returns the direction to take from c in order to move
// towards other, which must have c as an ancestor (or be c itself, which
// is an error: there is no next step).
func (c Code) NextStepTowards(other Code) (Direction, error) {
	if !c.IsAncestorOf(other) || c.Length() >= other.Length() {
		return Left, ErrNotDescendant
	}
	return other.bitAt(c.Length()), nil
}

// LCA returns the lowest common ancestor of a and b: the longest shared
// prefix of their bit-strings, computed by walking both codes towards the
// root in lock-step until they coincide.
func LCA(a, b Code) Code {
	ab := new(big.Int).Set(a.bits)
	bb := new(big.Int).Set(b.bits)
	for ab.BitLen() > bb.BitLen() {
		ab.Rsh(ab, 1)
	}
	for bb.BitLen() > ab.BitLen() {
		bb.Rsh(bb, 1)
	}
	for ab.Cmp(bb) != 0 {
		ab.Rsh(ab, 1)
		bb.Rsh(bb, 1)
	}
	return Code{bits: ab}
}
