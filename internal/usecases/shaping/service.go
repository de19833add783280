package shaping

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/vfg2006/district-heatmap/infrastructure/repository"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/domain"
	"github.com/vfg2006/district-heatmap/internal/usecases/mapping"
	"github.com/vfg2006/district-heatmap/pkg/log"
)

type Service struct {
	cfg                   *config.Config
	countyShapeRepository repository.CountyShapeRepository
	countyCacheRepository repository.CountyCacheRepository
	artifactRepository    repository.ArtifactRepository
}

func NewService(
	cfg *config.Config,
	countyShapeRepo repository.CountyShapeRepository,
	countyCacheRepo repository.CountyCacheRepository,
	artifactRepo repository.ArtifactRepository,
) CacheBuilder {
	return &Service{
		cfg:                   cfg,
		countyShapeRepository: countyShapeRepo,
		countyCacheRepository: countyCacheRepo,
		artifactRepository:    artifactRepo,
	}
}

// BuildCache projeta todos os condados do estado em modo fit, grava o cache de paths
// e a listagem numerada dos condados
func (s *Service) BuildCache(ctx context.Context) (*Result, error) {
	logger := log.ForContext(ctx)

	counties, err := s.countyShapeRepository.LoadCountyShapes()
	if err != nil {
		return nil, errors.Wrap(err, "load county shapes")
	}

	result := &Result{
		CacheFile:   s.cfg.Input.CountyCacheFile,
		ListingFile: s.cfg.Shapes.ListingFile,
		Expected:    s.cfg.Shapes.ExpectedCount,
	}

	valid := make([]*domain.County, 0, len(counties))
	for _, county := range counties {
		if err := mapping.ValidateGeometry(county.Name, county.Geometry, s.cfg.Geometry.MinRingArea); err != nil {
			logger.WithField("county", county.Name).WithError(err).Warn("Condado fora do cache")
			result.Skipped = append(result.Skipped, county.Name)
			continue
		}
		valid = append(valid, county)
	}

	if len(valid) == 0 {
		return nil, NewShapingError(ErrNoCounties, s.cfg.Input.CountiesGeoJSON)
	}

	projection, err := s.newProjection(valid)
	if err != nil {
		return nil, errors.Wrap(err, "build projection")
	}

	for _, county := range valid {
		county.SVGPath = projection.Path(county.Geometry, s.cfg.Shapes.Precision)
	}

	if err := s.countyCacheRepository.SaveCache(valid); err != nil {
		return nil, errors.Wrap(err, "save county cache")
	}
	result.Counties = len(valid)

	if s.cfg.Shapes.ListingFile != "" {
		listing := Listing(s.cfg.Shapes.StateName, valid)
		if err := s.artifactRepository.Save(s.cfg.Shapes.ListingFile, []byte(listing)); err != nil {
			return nil, errors.Wrap(err, "save county listing")
		}
	}

	if result.Expected > 0 && result.Counties != result.Expected {
		logger.WithFields(log.Fields{
			"counties": result.Counties,
			"expected": result.Expected,
			"skipped":  strings.Join(result.Skipped, ", "),
		}).Warn("Quantidade de condados diferente da esperada")
	}

	return result, nil
}

func (s *Service) newProjection(counties []*domain.County) (*mapping.Projection, error) {
	var (
		bbox mapping.BoundingBox
		err  error
	)

	if len(s.cfg.Projection.Bounds) > 0 {
		bbox, err = mapping.BoundingBoxFromSlice(s.cfg.Projection.Bounds)
	} else {
		geometries := make([]*geom.MultiPolygon, 0, len(counties))
		for _, county := range counties {
			geometries = append(geometries, county.Geometry)
		}
		bbox, err = mapping.BoundsOf(geometries...)
	}
	if err != nil {
		return nil, err
	}

	projection, err := mapping.NewProjection(
		bbox,
		mapping.Viewbox{Width: s.cfg.Projection.ViewboxWidth, Height: s.cfg.Projection.ViewboxHeight},
		mapping.ModeFit,
	)
	if err != nil {
		return nil, err
	}

	return projection.Simplify(s.cfg.Shapes.Simplify), nil
}

// Listing monta a lista numerada, ex: "  1. Adair County (FIPS: 21001)"
func Listing(stateName string, counties []*domain.County) string {
	entries := make([]string, 0, len(counties))
	for _, county := range counties {
		entries = append(entries, fmt.Sprintf("%s County (FIPS: %s)", county.Name, county.FIPS))
	}
	sort.Strings(entries)

	var sb strings.Builder
	title := strings.TrimSpace(stateName + " Counties")
	fmt.Fprintf(&sb, "%s (%d total):\n", title, len(entries))
	sb.WriteString(strings.Repeat("=", 40))
	sb.WriteString("\n\n")
	for i, entry := range entries {
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, entry)
	}

	return sb.String()
}
