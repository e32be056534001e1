package rangestr

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultDelimiter = "-"
	exclusionMarker  = "^"
)

// Token is a single comma-separated element of a range expression.
// Low is inclusive and High is exclusive; either may be unset when the
// expression omits it.
type Token struct {
	Inclusive bool
	Low, High Bound
}

// ParseToken parses one element such as "3", "0-5", "7-", "-9" or "^2-4".
// Reversed endpoints are swapped, so "5-1" covers 1 through 5.
func ParseToken(src, delimiter string) (Token, error) {
	if delimiter == "" {
		return Token{}, invalidf("empty delimiter")
	}

	body := strings.TrimSpace(src)
	t := Token{Inclusive: !strings.HasPrefix(body, exclusionMarker)}
	if !t.Inclusive {
		body = body[len(exclusionMarker):]
	}

	i := strings.Index(body, delimiter)
	if i < 0 {
		n, err := parseInt(body)
		if err != nil {
			return Token{}, invalidf("%q", src)
		}
		high, ok := exclusiveEnd(n)
		if !ok {
			return Token{}, invalidf("%q: endpoint out of range", src)
		}
		t.Low, t.High = At(n), high
		return t, nil
	}

	if strings.LastIndex(body, delimiter) != i {
		return Token{}, invalidf("%q: %q can't appear more than once", src, delimiter)
	}

	left := strings.TrimSpace(body[:i])
	right := strings.TrimSpace(body[i+len(delimiter):])
	if left == "" && right == "" {
		return Token{}, invalidf("%q: both endpoints omitted", src)
	}

	if left != "" {
		n, err := parseInt(left)
		if err != nil {
			return Token{}, invalidf("%q: bad lower endpoint %q", src, left)
		}
		t.Low = At(n)
	}
	if right != "" {
		n, err := parseInt(right)
		if err != nil {
			return Token{}, invalidf("%q: bad upper endpoint %q", src, right)
		}
		high, ok := exclusiveEnd(n)
		if !ok {
			return Token{}, invalidf("%q: endpoint out of range", src)
		}
		t.High = high
	}

	if t.Low.Valid && t.High.Valid && t.Low.Value >= t.High.Value {
		high, ok := exclusiveEnd(t.Low.Value)
		if !ok {
			return Token{}, invalidf("%q: endpoint out of range", src)
		}
		t.Low, t.High = At(t.High.Value-1), high
	}

	return t, nil
}

// exclusiveEnd turns the inclusive endpoint n into an exclusive one. It
// fails for math.MaxInt64, which has no successor.
func exclusiveEnd(n int64) (Bound, bool) {
	if n == math.MaxInt64 {
		return Unbounded, false
	}
	return At(n + 1), true
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
