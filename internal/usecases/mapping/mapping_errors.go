package mapping

import (
	"errors"
	"fmt"

	"github.com/vfg2006/district-heatmap/pkg/runErrors"
)

// Erros específicos para o contexto de mapeamento
var (
	// Erros de configuração da projeção
	ErrDegenerateBounds = errors.New("bounding box must have positive width and height")
	ErrInvalidViewbox   = errors.New("viewbox must have positive width and height")
	ErrInvalidMode      = errors.New("invalid projection mode")
	ErrEmptyGeometry    = errors.New("no geometry to compute bounds from")

	// Erros de geometria
	ErrEmptyRing        = errors.New("ring has too few coordinates")
	ErrDegenerateRing   = errors.New("ring area is below tolerance")
	ErrSelfIntersection = errors.New("ring is self-intersecting")
	ErrMissingGeometry  = errors.New("county has no geometry")
)

// MappingError é um erro com contexto adicional para o mapeamento
type MappingError struct {
	Err     error  // Erro base
	Code    string // Código de erro da execução
	County  string // Condado envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *MappingError) Error() string {
	msg := e.Err.Error()
	if e.County != "" {
		msg = fmt.Sprintf("%s: %s", e.County, msg)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *MappingError) Unwrap() error {
	return e.Err
}

// ErrorCode retorna o código usado para o código de saída do processo
func (e *MappingError) ErrorCode() string {
	return e.Code
}

// IsGeometryError verifica se o erro indica geometria malformada
func IsGeometryError(err error) bool {
	return errors.Is(err, ErrEmptyRing) ||
		errors.Is(err, ErrDegenerateRing) ||
		errors.Is(err, ErrSelfIntersection) ||
		errors.Is(err, ErrMissingGeometry)
}

// NewConfigError cria um erro de configuração da projeção
func NewConfigError(err error, details string) *MappingError {
	return &MappingError{
		Err:     err,
		Code:    runErrors.ErrInvalidConfig,
		Details: details,
	}
}

// NewGeometryError cria um erro de geometria para um condado
func NewGeometryError(err error, county string, details string) *MappingError {
	return &MappingError{
		Err:     err,
		Code:    runErrors.ErrInvalidInput,
		County:  county,
		Details: details,
	}
}
