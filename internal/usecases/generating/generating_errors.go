package generating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/district-heatmap/pkg/runErrors"
)

// Erros específicos para o contexto de geração
var (
	ErrNoDistrictCounties  = errors.New("no district county could be rendered")
	ErrGeometryUnavailable = errors.New("no county geometry source available")
	ErrRenderPage          = errors.New("error rendering heat map page")
)

// GenerateError é um erro com a etapa da geração em que ocorreu
type GenerateError struct {
	Err     error  // Erro base
	Code    string // Código de erro da execução
	Stage   string // Etapa da geração
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GenerateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *GenerateError) Unwrap() error {
	return e.Err
}

// ErrorCode retorna o código usado para o código de saída do processo
func (e *GenerateError) ErrorCode() string {
	return e.Code
}

// NewGenerateError cria um novo GenerateError
func NewGenerateError(err error, stage string, details string) *GenerateError {
	return &GenerateError{
		Err:     err,
		Code:    codeFor(err),
		Stage:   stage,
		Details: details,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrGeometryUnavailable):
		return runErrors.ErrMissingInput
	case errors.Is(err, ErrNoDistrictCounties):
		return runErrors.ErrInvalidInput
	default:
		return runErrors.ErrInternal
	}
}
