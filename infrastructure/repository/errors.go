package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vfg2006/district-heatmap/pkg/runErrors"
)

var (
	ErrInputNotFound = errors.New("input file not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrOutputWrite   = errors.New("could not write output")
)

// FileError identifica o arquivo (e a linha, quando houver) que interrompeu a execução
type FileError struct {
	Err     error
	Code    string
	File    string
	Row     int
	Details string
}

func (e *FileError) Error() string {
	location := e.File
	if e.Row > 0 {
		location = fmt.Sprintf("%s row %d", e.File, e.Row)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", location, e.Err, e.Details)
	}
	return fmt.Sprintf("%s: %s", location, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) ErrorCode() string {
	return e.Code
}

func newNotFoundError(file string) *FileError {
	return &FileError{Err: ErrInputNotFound, Code: runErrors.ErrMissingInput, File: file}
}

// newReadError separa arquivo ausente de arquivo ilegível (permissão, diretório)
func newReadError(file string, err error) *FileError {
	if errors.Is(err, fs.ErrNotExist) {
		return newNotFoundError(file)
	}
	return newInvalidInputError(file, 0, "read file: %v", err)
}

func newInvalidInputError(file string, row int, format string, args ...any) *FileError {
	return &FileError{
		Err:     ErrInvalidInput,
		Code:    runErrors.ErrInvalidInput,
		File:    file,
		Row:     row,
		Details: fmt.Sprintf(format, args...),
	}
}

func newOutputError(file string, err error) *FileError {
	return &FileError{Err: ErrOutputWrite, Code: runErrors.ErrOutputWrite, File: file, Details: err.Error()}
}

// IsNotFound indica que um arquivo de entrada não existe
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInputNotFound)
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newReadError(path, err)
	}
	return data, nil
}
