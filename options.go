package rangestr

import "go.uber.org/zap"

// Options controls how Parse resolves a range expression.
type Options struct {
	// Lower and Upper are the inclusive bounds of the universe. They fill in
	// omitted endpoints and clamp inclusive elements.
	Lower, Upper Bound

	// Delimiter separates the two endpoints of an element. Default: "-".
	Delimiter string

	// ImplicitInclusion makes a leading exclusion start from the whole
	// universe instead of from the empty set.
	ImplicitInclusion bool

	// Logger receives a debug entry per applied element. Nil disables logging.
	Logger *zap.Logger
}

// Option is a functional option for Parse and Ints.
type Option func(*Options)

func defaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

func WithLower(n int64) Option {
	return func(o *Options) { o.Lower = At(n) }
}

func WithUpper(n int64) Option {
	return func(o *Options) { o.Upper = At(n) }
}

func WithDelimiter(d string) Option {
	return func(o *Options) { o.Delimiter = d }
}

func WithImplicitInclusion(enabled bool) Option {
	return func(o *Options) { o.ImplicitInclusion = enabled }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
