package maze

import (
	"errors"
	"fmt"
)

var (
	ErrSizeTooSmall     = errors.New("maze size below minimum")
	ErrEvenSize         = errors.New("maze size must be odd")
	ErrGenerationFailed = errors.New("maze generation failed")
)

// GenerationError reports that no attempt produced two endpoint candidates
type GenerationError struct {
	Size     int
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("maze generation failed for size %d after %d attempts", e.Size, e.Attempts)
}

func (e *GenerationError) Unwrap() error {
	return ErrGenerationFailed
}
