package sortkit

type options struct {
	ascending  bool
	inPlace    bool
	buildIndex bool
	gap        *int
	pivot      PivotStrategy
	logger     *Logger
}

// Option configures a sort or dispatch call.
//
// Options irrelevant to the chosen algorithm (e.g. WithGap outside shell
// sort) are ignored; the configuration surface is shared so callers can
// forward one option set through Sort.
type Option func(*options)

// Ascending sorts smallest-first. This is the default direction.
func Ascending() Option {
	return func(o *options) {
		o.ascending = true
	}
}

// Descending sorts largest-first.
func Descending() Option {
	return func(o *options) {
		o.ascending = false
	}
}

// InPlace mutates the caller's slice instead of sorting a copy.
//
// For merge sort, which always needs auxiliary space, InPlace means the
// result is written back through the caller's slice rather than that extra
// space is avoided.
func InPlace() Option {
	return func(o *options) {
		o.inPlace = true
	}
}

// BuildIndex additionally returns the index array: the permutation of
// original positions such that sorted[k] == original[index[k]].
func BuildIndex() Option {
	return func(o *options) {
		o.buildIndex = true
	}
}

// WithGap seeds the shell sort gap sequence. The gap must be in [1, len];
// shell sort fails with ErrInvalidGap otherwise. Without this option a
// halving sequence starting at len/2 is used.
func WithGap(gap int) Option {
	return func(o *options) {
		o.gap = &gap
	}
}

// WithPivotStrategy selects the quick sort pivot rule. The default is
// PivotFirst.
func WithPivotStrategy(strategy PivotStrategy) Option {
	return func(o *options) {
		o.pivot = strategy
	}
}

// WithLogger configures structured debug logging for sort calls.
//
// If nil is passed, the noop logger is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{
		ascending: true,
		pivot:     PivotFirst,
		logger:    NoopLogger(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
