package rangestr

import "strconv"

// Bound is an optional int64 endpoint. The zero value is Unbounded.
type Bound struct {
	Value int64
	Valid bool
}

var Unbounded Bound

func At(v int64) Bound {
	return Bound{Value: v, Valid: true}
}

func (b Bound) String() string {
	if !b.Valid {
		return "none"
	}
	return strconv.FormatInt(b.Value, 10)
}

// orElse returns b, or other if b is unset.
func (b Bound) orElse(other Bound) Bound {
	if b.Valid {
		return b
	}
	return other
}

func maxBound(a, b Bound) Bound {
	if !a.Valid || (b.Valid && b.Value > a.Value) {
		return b
	}
	return a
}

func minBound(a, b Bound) Bound {
	if !a.Valid || (b.Valid && b.Value < a.Value) {
		return b
	}
	return a
}
