package repository

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// table é uma planilha já lida: cabeçalho na primeira linha
type table struct {
	file string
	rows [][]string
}

// readTable lê CSV ou, pela extensão .xlsx, a planilha informada (ou a primeira)
func readTable(path, sheet string) (*table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readWorkbook(path, sheet)
	}

	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte(utf8BOM))))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, newInvalidInputError(path, parseErr.Line, "%v", parseErr.Err)
		}
		return nil, newInvalidInputError(path, 0, "%v", err)
	}

	return &table{file: path, rows: rows}, nil
}

func readWorkbook(path, sheet string) (*table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, newReadError(path, err)
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newInvalidInputError(path, 0, "open workbook: %v", err)
	}
	defer workbook.Close()

	if sheet == "" {
		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			return nil, newInvalidInputError(path, 0, "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, newInvalidInputError(path, 0, "read sheet %q: %v", sheet, err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	return &table{file: path, rows: rows}, nil
}

// column procura o primeiro nome de coluna presente no cabeçalho, sem diferenciar maiúsculas
func (t *table) column(names ...string) (int, bool) {
	if len(t.rows) == 0 {
		return 0, false
	}

	for _, name := range names {
		for i, header := range t.rows[0] {
			if strings.EqualFold(strings.TrimSpace(header), strings.TrimSpace(name)) {
				return i, true
			}
		}
	}

	return 0, false
}

// each percorre as linhas de dados com o número da linha no arquivo (cabeçalho = 1)
func (t *table) each(fn func(row int, cells []string) error) error {
	for i := 1; i < len(t.rows); i++ {
		if blank(t.rows[i]) {
			continue
		}
		if err := fn(i+1, t.rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func cell(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[index])
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDollars aceita "1234", "$1,234" e "1234.50"; vazio vale zero
func parseDollars(value string) (int64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0, nil
	}

	if amount, err := strconv.ParseInt(cleaned, 10, 64); err == nil {
		return amount, nil
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.Errorf("invalid sales value %q", value)
	}

	if math.Abs(amount) >= math.MaxInt64 {
		return 0, errors.Errorf("sales value %q out of range", value)
	}

	return int64(math.Round(amount)), nil
}
