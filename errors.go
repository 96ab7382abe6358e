package voronoi1d

import "fmt"

// ErrInvalidSeedCount indicates a non-positive seed count.
type ErrInvalidSeedCount struct {
	Count int
}

func (e *ErrInvalidSeedCount) Error() string {
	return fmt.Sprintf("invalid seed count: %d (must be >= 1)", e.Count)
}

// ErrUnknownInitMethod indicates an initialization method name that
// ParseInitMethod does not recognize.
type ErrUnknownInitMethod struct {
	Name string
}

func (e *ErrUnknownInitMethod) Error() string {
	return fmt.Sprintf("unknown init method: %q (want %q or %q)", e.Name, InitRandom, InitQuantile)
}
