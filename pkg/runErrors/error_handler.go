package runErrors

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Códigos de erro da execução
const (
	// Erros de entrada
	ErrMissingInput = "IN_001" // Arquivo de entrada ausente
	ErrInvalidInput = "IN_002" // Registro ou arquivo de entrada inválido

	// Erros de configuração
	ErrInvalidConfig = "CFG_001" // Configuração inválida (bounding box degenerado, viewbox, modo)

	// Erros de saída
	ErrOutputWrite = "OUT_001" // Falha ao gravar o artefato

	// Erros internos
	ErrInternal = "RUN_001" // Erro inesperado
)

// Mapeamento de códigos de erro para códigos de saída do processo (sysexits.h)
var exitCodeMap = map[string]int{
	ErrMissingInput:  66, // EX_NOINPUT
	ErrInvalidInput:  65, // EX_DATAERR
	ErrInvalidConfig: 78, // EX_CONFIG
	ErrOutputWrite:   73, // EX_CANTCREAT
	ErrInternal:      70, // EX_SOFTWARE
}

// Coder é implementado pelos erros tipados dos casos de uso
type Coder interface {
	ErrorCode() string
}

// RunError representa um erro padronizado de execução
type RunError struct {
	Code    string `json:"code"`              // Código de erro para o operador
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e RunError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e RunError) ErrorCode() string {
	return e.Code
}

// ExitCode retorna o código de saída do processo para o código de erro
func ExitCode(code string) int {
	exitCode, exists := exitCodeMap[code]
	if !exists {
		return exitCodeMap[ErrInternal]
	}
	return exitCode
}

// CodeOf extrai o código de um erro tipado em qualquer ponto da cadeia
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var coder Coder
	if errors.As(err, &coder) {
		if code := coder.ErrorCode(); code != "" {
			return code
		}
	}

	return ErrInternal
}

// FromError cria um erro de execução a partir de um erro Go
func FromError(err error, code string) RunError {
	if err == nil {
		return RunError{
			Code:    ErrInternal,
			Message: "unknown error",
		}
	}

	return RunError{
		Code:    code,
		Message: err.Error(),
	}
}

// WriteError escreve o erro padronizado para o operador e retorna o código de saída
func WriteError(w io.Writer, err error) int {
	runErr := FromError(err, CodeOf(err))
	fmt.Fprintln(w, runErr.Error())
	return ExitCode(runErr.Code)
}
