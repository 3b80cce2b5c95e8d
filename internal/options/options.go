// Package options implements generic functional options.
package options

// Option configures a target of type T and may reject the configuration.
type Option[T any] func(T) error

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
