package repository

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/district-heatmap/internal/domain"
	"github.com/vfg2006/district-heatmap/pkg/utils"
)

// CountyCacheRepository guarda os paths SVG já projetados de todos os condados do estado
type CountyCacheRepository interface {
	LoadCache() ([]*domain.County, error)
	SaveCache(counties []*domain.County) error
}

type countyCacheRepository struct {
	path string
}

func NewCountyCacheRepository(path string) CountyCacheRepository {
	return &countyCacheRepository{
		path: path,
	}
}

type cacheEntry struct {
	Name    string `json:"name"`
	FIPS    string `json:"fips"`
	SVGPath string `json:"svg_path"`
}

func (r *countyCacheRepository) LoadCache() ([]*domain.County, error) {
	data, err := readInput(r.path)
	if err != nil {
		return nil, err
	}

	var entries map[string]cacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, newInvalidInputError(r.path, 0, "decode county cache: %v", err)
	}

	counties := make([]*domain.County, 0, len(entries))
	for key, entry := range entries {
		name := entry.Name
		if name == "" {
			name = key
		}
		if entry.SVGPath == "" {
			logrus.WithFields(logrus.Fields{"file": r.path, "county": name}).Warn("Condado sem path no cache")
		}

		counties = append(counties, &domain.County{
			Name:    domain.CountyName(name),
			FIPS:    entry.FIPS,
			SVGPath: entry.SVGPath,
		})
	}

	sort.Slice(counties, func(i, j int) bool {
		return counties[i].Name < counties[j].Name
	})

	return counties, nil
}

// SaveCache grava {nome: {name, fips, svg_path}} com as chaves ordenadas
func (r *countyCacheRepository) SaveCache(counties []*domain.County) error {
	entries := make(map[string]cacheEntry, len(counties))
	for _, county := range counties {
		if county.SVGPath == "" {
			continue
		}
		entries[county.Name] = cacheEntry{
			Name:    county.Name,
			FIPS:    county.FIPS,
			SVGPath: county.SVGPath,
		}
	}

	data, err := utils.PrettyJSON(entries)
	if err != nil {
		return newOutputError(r.path, err)
	}

	if err := utils.WriteFileAtomic(r.path, data, 0o644); err != nil {
		return newOutputError(r.path, err)
	}

	return nil
}
