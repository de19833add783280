package repository

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/domain"
)

type SalesRepository interface {
	LoadSales() (*domain.SalesTable, error)
}

type salesRepository struct {
	cfg config.Input
}

func NewSalesRepository(cfg config.Input) SalesRepository {
	return &salesRepository{
		cfg: cfg,
	}
}

// LoadSales lê a tabela principal e aplica o arquivo do distrito por cima dela
func (s *salesRepository) LoadSales() (*domain.SalesTable, error) {
	sales := domain.NewSalesTable()

	records, err := s.readSales(s.cfg.SalesFile, s.cfg.SalesSheet)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		sales.Set(record)
	}

	if s.cfg.SalesOverrideFile == "" {
		return sales, nil
	}

	overrides, err := s.readSales(s.cfg.SalesOverrideFile, "")
	if err != nil {
		if IsNotFound(err) {
			logrus.WithField("file", s.cfg.SalesOverrideFile).Warn("Arquivo de vendas do distrito não encontrado, usando apenas a tabela principal")
			return sales, nil
		}
		return nil, err
	}

	for _, record := range overrides {
		if previous, ok := sales.Record(record.County); ok && previous.Amount != record.Amount {
			logrus.WithFields(logrus.Fields{
				"county":   record.County,
				"previous": previous.Amount,
				"amount":   record.Amount,
			}).Debug("Venda substituída pelo arquivo do distrito")
		}
		sales.Set(record)
	}

	return sales, nil
}

func (s *salesRepository) readSales(path, sheet string) ([]domain.SalesRecord, error) {
	t, err := readTable(path, sheet)
	if err != nil {
		return nil, err
	}

	countyColumn, ok := t.column(s.cfg.SalesCountyColumn)
	if !ok {
		return nil, newInvalidInputError(path, 1, "missing county column %q", s.cfg.SalesCountyColumn)
	}

	valueColumn, ok := t.column(s.cfg.SalesValueColumns...)
	if !ok {
		return nil, newInvalidInputError(path, 1, "missing sales column (expected one of %s)",
			strings.Join(s.cfg.SalesValueColumns, ", "))
	}

	records := make([]domain.SalesRecord, 0, len(t.rows))
	err = t.each(func(row int, cells []string) error {
		county := domain.CountyName(cell(cells, countyColumn))
		if county == "" {
			return newInvalidInputError(path, row, "missing county name")
		}

		amount, err := parseDollars(cell(cells, valueColumn))
		if err != nil {
			return newInvalidInputError(path, row, "county %s: %v", county, err)
		}
		if amount < 0 {
			return newInvalidInputError(path, row, "county %s: negative sales value %d", county, amount)
		}

		records = append(records, domain.SalesRecord{
			County: county,
			Amount: amount,
			Source: path,
			Row:    row,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":     path,
		"counties": len(records),
	}).Debug("Tabela de vendas carregada")

	return records, nil
}
