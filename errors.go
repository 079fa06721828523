package ej309plot

import "fmt"

// LoadError reports a failure to load one of the input tables.
type LoadError struct {
	Filename string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error reading %q: %v", e.Filename, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
