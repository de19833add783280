package shaping

import (
	"errors"
	"fmt"

	"github.com/vfg2006/district-heatmap/pkg/runErrors"
)

var ErrNoCounties = errors.New("no county with valid geometry to cache")

// ShapingError é um erro com contexto adicional para a montagem do cache
type ShapingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ShapingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ShapingError) Unwrap() error {
	return e.Err
}

func (e *ShapingError) ErrorCode() string {
	return e.Code
}

func NewShapingError(err error, details string) *ShapingError {
	return &ShapingError{
		Err:     err,
		Code:    runErrors.ErrInvalidInput,
		Details: details,
	}
}
