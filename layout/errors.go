package layout

import "errors"

var (
	// ErrInvalidConstruction is returned when a composite node is built
	// without a seed child.
	ErrInvalidConstruction = errors.New("layout: composite node requires a seed child")

	// ErrEmptyInput is returned when a builder is given nothing to cluster.
	ErrEmptyInput = errors.New("layout: builder input is empty")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("layout: invalid configuration")

	// ErrUnknownOption is returned when a configuration key is not recognized.
	ErrUnknownOption = errors.New("layout: unknown option")
)
