package pointfield

// Option configures a FieldType.
type Option func(*options)

type options struct {
	logger *Logger
}

// WithLogger injects the logger used for trace notices (dropped unused
// fields, ignored boosts). If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
