// Package tx3 holds the types exchanged with the transaction compiler: the
// generic expression tree, canonical asset totals, input queries and the
// ledger contract the compiler resolves inputs against.
package tx3

import (
	"bytes"
	"math/big"
)

// Expression is a node of the generic expression tree produced from datums.
type Expression interface {
	isExpression()
}

// Int is an integer leaf. Values are kept within the signed 128-bit range.
type Int struct {
	Value *big.Int
}

// Bytes is a byte string leaf.
type Bytes []byte

// Struct is a constructor application with positional fields.
type Struct struct {
	Constructor uint64
	Fields      []Expression
}

// List is an ordered sequence of expressions.
type List []Expression

// Pair is a single key/value entry of a Map.
type Pair struct {
	Key   Expression
	Value Expression
}

// Map is an ordered key/value collection. Order is preserved as decoded.
type Map []Pair

func (Int) isExpression() {}
func (Bytes) isExpression() {}
func (Struct) isExpression() {}
func (List) isExpression() {}
func (Map) isExpression() {}

// Equal reports whether two expression trees are structurally identical.
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Int:
		y, ok := b.(Int)
		if !ok {
			return false
		}
		if x.Value == nil || y.Value == nil {
			return x.Value == nil && y.Value == nil
		}
		return x.Value.Cmp(y.Value) == 0
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case Struct:
		y, ok := b.(Struct)
		return ok && x.Constructor == y.Constructor && equalAll(x.Fields, y.Fields)
	case List:
		y, ok := b.(List)
		return ok && equalAll(x, y)
	case Map:
		y, ok := b.(Map)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i].Key, y[i].Key) || !Equal(x[i].Value, y[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalAll(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
