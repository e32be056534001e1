package rangestr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	cases := map[string]struct {
		src, delimiter string
		want           Token
	}{
		"pair":              {"0-5", "-", Token{true, At(0), At(6)}},
		"lower only":        {"0-", "-", Token{true, At(0), Unbounded}},
		"upper only":        {"-5", "-", Token{true, Unbounded, At(6)}},
		"negative single":   {"-5", "..", Token{true, At(-5), At(-4)}},
		"negative pair":     {"-5..-1", "..", Token{true, At(-5), At(0)}},
		"single":            {"7", "-", Token{true, At(7), At(8)}},
		"exclusion":         {"^0-5", "-", Token{false, At(0), At(6)}},
		"exclusion single":  {"^3", "-", Token{false, At(3), At(4)}},
		"reversed":          {"5-1", "-", Token{true, At(1), At(6)}},
		"spaces":            {" 2 - 4 ", "-", Token{true, At(2), At(5)}},
		"explicit sign":     {"+3", "..", Token{true, At(3), At(4)}},
		"same endpoints":    {"4-4", "-", Token{true, At(4), At(5)}},
		"exclusion omitted": {"^-9", "-", Token{false, Unbounded, At(10)}},
		"max lower only":    {"9223372036854775807-", "-", Token{true, At(math.MaxInt64), Unbounded}},
		"min single":        {"-9223372036854775808", "..", Token{true, At(math.MinInt64), At(math.MinInt64 + 1)}},
		"near max":          {"9223372036854775806", "-", Token{true, At(math.MaxInt64 - 1), At(math.MaxInt64)}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseToken(tc.src, tc.delimiter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTokenErrors(t *testing.T) {
	cases := map[string]struct {
		src, delimiter string
	}{
		"empty":             {"", "-"},
		"marker only":       {"^", "-"},
		"delimiter only":    {"-", "-"},
		"delimiter twice":   {"-5-0", "-"},
		"long delimiter":    {"-5..0..5", ".."},
		"bad lower":         {"x-1", "-"},
		"bad upper":         {"1-y", "-"},
		"bad single":        {"1..2", "-"},
		"empty delimiter":   {"1", ""},
		"overflowing value": {"99999999999999999999", "-"},
		"max single":        {"9223372036854775807", "-"},
		"max exclusion":     {"^9223372036854775807", "-"},
		"max upper":         {"0-9223372036854775807", "-"},
		"max reversed":      {"9223372036854775807-1", "-"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.src, tc.delimiter)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
