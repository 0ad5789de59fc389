package queue

// Option is a queue configuration option.
type Option interface {
	apply(*queueOptions)
}

type queueOptions struct {
	pageSize int
}

func newDefaultQueueOptions() queueOptions {
	return queueOptions{
		pageSize: 0,
	}
}

// WithPageSize option configures the number of nodes allocated at once
// when the queue grows.
//
// The zero value configures the arena default.
func WithPageSize(size int) Option {
	return funcOption(func(opts *queueOptions) {
		if size < 0 {
			panic("queue: invalid page size")
		}
		opts.pageSize = size
	})
}

type funcOption func(*queueOptions)

func (o funcOption) apply(opts *queueOptions) {
	o(opts)
}
