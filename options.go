package airp

// NonFinitePolicy selects how NaN and infinite floats are rendered.
// JSON has no representation for them, so every policy is a fallback.
type NonFinitePolicy uint8

const (
	// NonFiniteNull renders null. The output stays valid JSON.
	NonFiniteNull NonFinitePolicy = iota
	// NonFiniteString renders the quoted strings "NaN", "+Inf" and "-Inf".
	NonFiniteString
	// NonFiniteLiteral renders the bare tokens nan, inf and -inf.
	// The output is not valid JSON.
	NonFiniteLiteral
)

// Option configures a single render call.
type Option func(*options)

type options struct {
	legacyEscaping bool
	nonFinite      NonFinitePolicy
	newline        bool
}

// WithLegacyEscaping escapes only '"', '\\' and '/' in strings and keys
// and writes every other byte as is, including control characters.
// The output may then not be valid JSON.
func WithLegacyEscaping() Option {
	return func(o *options) { o.legacyEscaping = true }
}

// WithNonFinite sets how NaN and ±Inf are rendered. The default is
// NonFiniteNull.
func WithNonFinite(p NonFinitePolicy) Option {
	return func(o *options) { o.nonFinite = p }
}

// WithNewline makes an Encoder terminate each document with '\n'.
// Render and Append ignore it.
func WithNewline() Option {
	return func(o *options) { o.newline = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
