package persistent

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	pageSize int
}

func newDefaultListOptions() listOptions {
	return listOptions{
		pageSize: 0,
	}
}

// WithPageSize option configures the number of nodes allocated at once
// when the list arena grows.
//
// The zero value configures the arena default.
func WithPageSize(size int) Option {
	return funcOption(func(opts *listOptions) {
		if size < 0 {
			panic("persistent: invalid page size")
		}
		opts.pageSize = size
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
