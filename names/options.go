package names

// Options configures a new name.
type Options struct {
	// Delimiter separates components. Default: DefaultDelimiter.
	Delimiter rune
}

// Option is a functional option for the name constructors.
type Option func(*Options)

func defaultOptions() Options {
	return Options{Delimiter: DefaultDelimiter}
}

// WithDelimiter sets the delimiter character. It must be a single valid
// character other than EscapeCharacter.
func WithDelimiter(r rune) Option {
	return func(opts *Options) {
		opts.Delimiter = r
	}
}

func buildOptions(op string, opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkDelimiter(op, o.Delimiter); err != nil {
		return Options{}, err
	}
	return o, nil
}
