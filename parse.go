package rangestr

import (
	"strings"

	"go.uber.org/zap"
)

// Parse builds the RangeSet described by src, a comma-separated list of
// elements applied from left to right. Inclusive elements are added, and
// elements starting with "^" are removed from what has been built so far.
//
// All errors wrap ErrInvalidRange.
func Parse(src string, opts ...Option) (RangeSet, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return ParseWith(src, o)
}

// ParseWith is like Parse but takes the options as a struct.
func ParseWith(src string, o Options) (RangeSet, error) {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	b := builder{lower: o.Lower}
	if o.Upper.Valid {
		upper, ok := exclusiveEnd(o.Upper.Value)
		if !ok {
			return nil, invalidf("upper bound %d out of range", o.Upper.Value)
		}
		b.upper = upper
	}

	first := true
	for _, elem := range strings.Split(src, ",") {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}

		t, err := ParseToken(elem, o.Delimiter)
		if err != nil {
			return nil, err
		}

		ok := true
		switch {
		case t.Inclusive:
			ok = b.include(t)
		case first && o.ImplicitInclusion:
			ok = b.includeAround(t)
		default:
			b.exclude(t)
		}
		if !ok {
			return nil, invalidf("%q: endpoint is missing", elem)
		}

		logger.Debug("applied range element",
			zap.String("element", elem),
			zap.Bool("inclusive", t.Inclusive),
			zap.Stringer("low", t.Low),
			zap.Stringer("high", t.High),
			zap.Stringer("result", b.set),
		)
		first = false
	}

	return b.set, nil
}

// builder folds tokens into a RangeSet. upper is exclusive. include and
// includeAround report false when an endpoint can't be resolved.
type builder struct {
	set          RangeSet
	lower, upper Bound
}

func (b *builder) include(t Token) bool {
	low := maxBound(t.Low, b.lower)
	high := minBound(t.High, b.upper)
	if !low.Valid || !high.Valid {
		return false
	}
	b.set.AddRange(low.Value, high.Value)
	return true
}

// includeAround adds the universe minus t, for a leading exclusion when
// implicit inclusion is on.
func (b *builder) includeAround(t Token) bool {
	low := t.Low.orElse(b.lower)
	high := t.High.orElse(b.upper)
	for _, side := range [2][2]Bound{{b.lower, low}, {high, b.upper}} {
		l, u := side[0], side[1]
		if !l.Valid && !u.Valid {
			continue
		}
		if !l.Valid || !u.Valid {
			return false
		}
		l, u = maxBound(l, b.lower), minBound(u, b.upper)
		b.set.AddRange(l.Value, u.Value)
	}
	return true
}

func (b *builder) exclude(t Token) {
	if t.Low.Valid && t.High.Valid {
		b.set.DeleteRange(t.Low.Value, t.High.Value)
		return
	}
	// "^a-" keeps everything below a, "^-b" keeps everything above b.
	b.set.Crop(t.High, t.Low)
}
