package rangestr

import "iter"

// Values returns the integers of s in ascending order. The sequence is
// lazy and may be ranged over any number of times.
func (s RangeSet) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, r := range s {
			for n := r.Low; n < r.High; n++ {
				if !yield(n) {
					return
				}
			}
		}
	}
}

func (s RangeSet) Intervals() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// AppendValues appends the integers of s to dst.
func (s RangeSet) AppendValues(dst []int64) []int64 {
	for n := range s.Values() {
		dst = append(dst, n)
	}
	return dst
}

// Ints parses src and returns its integers. Any error is reported here,
// never while the sequence is being consumed. The sequence reads its own
// copy of the parsed set.
func Ints(src string, opts ...Option) (iter.Seq[int64], error) {
	s, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return s.Clone().Values(), nil
}
