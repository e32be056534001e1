package rangestr

import (
	"sort"
)

// Interval is the half-open integer range [Low, High).
type Interval struct {
	Low, High int64
}

func (r Interval) empty() bool { return r.Low >= r.High }

// RangeSet is a set of integers kept as sorted, disjoint, non-adjacent
// intervals. The zero value is an empty set.
type RangeSet []Interval

// Locate searches for the interval r with r.Low <= n <= r.High. Note that
// High is matched too, so a value sitting on an exclusive end is reported as
// found; AddRange and DeleteRange depend on this to see touching intervals.
//
// If no such interval exists, index is where n would be inserted.
func (s RangeSet) Locate(n int64) (found bool, index int) {
	i := sort.Search(len(s), func(i int) bool { return s[i].High >= n })
	return i < len(s) && s[i].Low <= n, i
}

// replace removes count intervals at index i and inserts additions in
// their place. Empty additions are dropped; the additions slice itself is
// left untouched.
func (s *RangeSet) replace(i, count int, additions ...Interval) {
	kept := additions[:0:0]
	for _, r := range additions {
		if !r.empty() {
			kept = append(kept, r)
		}
	}
	additions = kept

	n := len(additions)
	switch {
	case n < count:
		copy((*s)[i:], additions)
		*s = append((*s)[:i+n], (*s)[i+count:]...)
	case n > count:
		tail := len(*s) - (i + count)
		*s = append(*s, additions[count:]...)
		copy((*s)[i+n:], (*s)[i+count:i+count+tail])
		copy((*s)[i:], additions)
	default:
		copy((*s)[i:], additions)
	}
}

func (s *RangeSet) Add(single int64) {
	s.AddRange(single, single+1)
}

// AddRange adds [low, high) to s, merging it with every interval it
// overlaps or touches.
func (s *RangeSet) AddRange(low, high int64) {
	if low >= high {
		return
	}

	foundLow, i := s.Locate(low)
	foundHigh, j := s.Locate(high)

	r := Interval{low, high}
	if foundLow {
		r.Low = (*s)[i].Low
	}
	if foundHigh {
		r.High = (*s)[j].High
		j++
	}

	s.replace(i, j-i, r)
}

func (s *RangeSet) AddInterval(r Interval) {
	s.AddRange(r.Low, r.High)
}

func (s *RangeSet) Delete(single int64) {
	s.DeleteRange(single, single+1)
}

// DeleteRange removes [low, high) from s. An interval may be split in two,
// shrunk from either side or dropped entirely.
func (s *RangeSet) DeleteRange(low, high int64) {
	if len(*s) == 0 || low >= high {
		return
	}

	foundLow, i := s.Locate(low)
	foundHigh, j := s.Locate(high)

	var r1, r2 Interval
	if foundLow {
		r1 = Interval{(*s)[i].Low, low}
	}
	if foundHigh {
		r2 = Interval{high, (*s)[j].High}
		j++
	}

	s.replace(i, j-i, r1, r2)
}

func (s *RangeSet) DeleteInterval(r Interval) {
	s.DeleteRange(r.Low, r.High)
}

// Crop restricts s to the window [lower, upper). An unset Bound leaves that
// side of s alone.
func (s *RangeSet) Crop(lower, upper Bound) {
	if len(*s) == 0 {
		return
	}

	if lower.Valid {
		found, i := s.Locate(lower.Value)
		if found {
			s.replace(0, i+1, Interval{lower.Value, (*s)[i].High})
		} else {
			s.replace(0, i)
		}
	}

	if upper.Valid {
		found, j := s.Locate(upper.Value)
		if found {
			s.replace(j, len(*s)-j, Interval{(*s)[j].Low, upper.Value})
		} else {
			s.replace(j, len(*s)-j)
		}
	}
}

// Contains reports whether n is in s.
func (s RangeSet) Contains(n int64) bool {
	found, i := s.Locate(n)
	return found && n < s[i].High
}

// Count returns the number of integers in s.
func (s RangeSet) Count() int64 {
	var n int64
	for _, r := range s {
		n += r.High - r.Low
	}
	return n
}

func (s RangeSet) Len() int {
	return len(s)
}

func (s RangeSet) Equal(t RangeSet) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

func (s RangeSet) Clone() RangeSet {
	if s == nil {
		return nil
	}
	return append(make(RangeSet, 0, len(s)), s...)
}

func (s *RangeSet) Reset() {
	*s = nil
}

func (s RangeSet) String() string {
	return Format(s, DefaultDelimiter)
}
