// Package options provides the functional-option plumbing decoder.New
// applies its WithCatalog/WithLogger options through (internal/options
// is kept generic over T rather than hardcoded to *decoder.Decoder so a
// second option-configured constructor can reuse it without duplicating
// this file). Every option this codec defines is built with NoError,
// since neither WithCatalog nor WithLogger can fail; Apply still
// reports an error per option so a future option that can fail doesn't
// need a second code path.
package options

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a functional option that wraps a configuration function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps fn, which cannot fail, as an Option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
