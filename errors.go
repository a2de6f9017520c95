package sortkit

import "fmt"

// ErrInvalidGap indicates a shell sort gap outside [1, len].
type ErrInvalidGap struct {
	Gap int
	Len int
}

func (e *ErrInvalidGap) Error() string {
	return fmt.Sprintf("invalid gap %d: must be in [1, %d]", e.Gap, e.Len)
}

// ErrInvalidPivot indicates an unsupported quick sort pivot strategy.
type ErrInvalidPivot struct {
	Strategy PivotStrategy
}

func (e *ErrInvalidPivot) Error() string {
	return fmt.Sprintf("invalid pivot strategy: %d", int(e.Strategy))
}

// ErrUnknownMethod indicates a sort method name outside the supported set.
type ErrUnknownMethod struct {
	Name string
}

func (e *ErrUnknownMethod) Error() string {
	return fmt.Sprintf("unknown sort method: %q", e.Name)
}
