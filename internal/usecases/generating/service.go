package generating

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/vfg2006/district-heatmap/infrastructure/repository"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/domain"
	"github.com/vfg2006/district-heatmap/internal/render"
	"github.com/vfg2006/district-heatmap/internal/usecases/mapping"
	"github.com/vfg2006/district-heatmap/pkg/log"
	"github.com/vfg2006/district-heatmap/pkg/utils"
)

const (
	SourceGeoJSON = "geojson"
	SourceCache   = "cache"

	legendStops = 5
)

type Service struct {
	cfg                   *config.Config
	districtRepository    repository.DistrictRepository
	salesRepository       repository.SalesRepository
	countyShapeRepository repository.CountyShapeRepository
	countyCacheRepository repository.CountyCacheRepository
	artifactRepository    repository.ArtifactRepository
}

// NewService cria uma nova instância do serviço de geração
func NewService(
	cfg *config.Config,
	districtRepo repository.DistrictRepository,
	salesRepo repository.SalesRepository,
	countyShapeRepo repository.CountyShapeRepository,
	countyCacheRepo repository.CountyCacheRepository,
	artifactRepo repository.ArtifactRepository,
) Generator {
	return &Service{
		cfg:                   cfg,
		districtRepository:    districtRepo,
		salesRepository:       salesRepo,
		countyShapeRepository: countyShapeRepo,
		countyCacheRepository: countyCacheRepo,
		artifactRepository:    artifactRepo,
	}
}

func (s *Service) Generate(ctx context.Context) (*Result, error) {
	logger := log.ForContext(ctx)
	result := &Result{
		RunID:      log.GetCorrelationID(ctx),
		OutputFile: s.cfg.Output.File,
	}

	district, err := s.districtRepository.LoadDistrict()
	if err != nil {
		return nil, errors.Wrap(err, "load district")
	}
	logger.WithFields(log.Fields{
		"district": district.Name,
		"counties": len(district.RenderedMembers()),
	}).Info("Distrito carregado")

	sales, err := s.salesRepository.LoadSales()
	if err != nil {
		return nil, errors.Wrap(err, "load sales")
	}
	logger.WithField("counties", sales.Len()).Info("Vendas carregadas")

	shapes, source, err := s.loadShapes(logger)
	if err != nil {
		return nil, err
	}
	result.Source = source

	counties := s.selectCounties(logger, district, shapes, sales, result)
	if len(counties) == 0 {
		return nil, NewGenerateError(ErrNoDistrictCounties, "select", fmt.Sprintf("%d listed, %d skipped", len(district.RenderedMembers()), len(result.Skipped)))
	}

	var projection *mapping.Projection
	if source == SourceGeoJSON {
		projection, err = s.newProjection(counties)
		if err != nil {
			return nil, errors.Wrap(err, "build projection")
		}
	}

	scale := mapping.NewColorScale(maxSales(counties))
	if scale.Max == 0 {
		logger.Info("Todas as vendas do distrito são zero, o mapa ficará branco")
	}

	heatMap := s.newHeatMap(counties, projection, scale)

	if projection != nil {
		boundaries, err := s.loadBoundaries(logger, projection)
		if err != nil {
			return nil, err
		}
		heatMap.Boundaries = boundaries
	} else {
		logger.Debug("Paths do cache já projetados, sem contorno do distrito")
	}

	page, err := render.Render(heatMap)
	if err != nil {
		return nil, NewGenerateError(ErrRenderPage, "render", err.Error())
	}

	if err := s.artifactRepository.Save(s.cfg.Output.File, page); err != nil {
		return nil, errors.Wrap(err, "save heat map")
	}

	result.Rendered = len(counties)
	result.Bytes = len(page)
	result.MaxSales = scale.Max
	result.MinSales = minSales(counties)
	for _, county := range counties {
		result.TotalSales += county.Sales
	}

	return result, nil
}

// loadShapes prefere o GeoJSON dos condados e recorre ao cache de paths quando ele não existe
func (s *Service) loadShapes(logger log.Logger) ([]*domain.County, string, error) {
	if s.cfg.Input.CountiesGeoJSON != "" {
		counties, err := s.countyShapeRepository.LoadCountyShapes()
		if err == nil {
			return counties, SourceGeoJSON, nil
		}
		if !repository.IsNotFound(err) {
			return nil, "", errors.Wrap(err, "load county shapes")
		}
		logger.WithField("file", s.cfg.Input.CountiesGeoJSON).Warn("GeoJSON dos condados não encontrado, usando o cache de paths")
	}

	counties, err := s.countyCacheRepository.LoadCache()
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, "", NewGenerateError(ErrGeometryUnavailable, "shapes",
				fmt.Sprintf("neither %q nor %q found", s.cfg.Input.CountiesGeoJSON, s.cfg.Input.CountyCacheFile))
		}
		return nil, "", errors.Wrap(err, "load county cache")
	}

	return counties, SourceCache, nil
}

// selectCounties cruza o distrito com a geometria e as vendas. Condados sem geometria
// válida ficam de fora; condados sem venda entram com zero.
func (s *Service) selectCounties(
	logger log.Logger,
	district *domain.District,
	shapes []*domain.County,
	sales *domain.SalesTable,
	result *Result,
) []*domain.County {
	index := make(map[string]*domain.County, len(shapes))
	for _, shape := range shapes {
		// Nomes se repetem entre estados (Clark, Madison), o FIPS desempata
		if !district.InState(shape.FIPS) {
			continue
		}
		index[domain.CountyKey(shape.Name)] = shape
	}

	members := district.RenderedMembers()
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	counties := make([]*domain.County, 0, len(members))
	for _, member := range members {
		countyLogger := logger.WithField("county", member.Name)

		shape, ok := index[domain.CountyKey(member.Name)]
		if !ok || !shape.HasGeometry() {
			countyLogger.Warn("Condado do distrito sem geometria, ignorado")
			result.Skipped = append(result.Skipped, member.Name)
			continue
		}

		if !shape.Projected() {
			if err := mapping.ValidateGeometry(member.Name, shape.Geometry, s.cfg.Geometry.MinRingArea); err != nil {
				countyLogger.WithError(err).Warn("Geometria inválida, condado ignorado")
				result.Skipped = append(result.Skipped, member.Name)
				continue
			}
		}

		amount, ok := sales.Lookup(member.Name)
		if !ok {
			countyLogger.Warn("Condado sem venda registrada, usando zero")
			result.MissingSales = append(result.MissingSales, member.Name)
		}

		counties = append(counties, &domain.County{
			Name:       shape.Name,
			FIPS:       shape.FIPS,
			Geometry:   shape.Geometry,
			SVGPath:    shape.SVGPath,
			Sales:      amount,
			Membership: member.Membership,
		})
	}

	return counties
}

// newProjection usa MAP_BOUNDS quando configurado, senão o retângulo dos condados desenhados
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
		mapping.Mode(s.cfg.Projection.Mode),
	)
	if err != nil {
		return nil, err
	}

	return projection.Simplify(s.cfg.Projection.Simplify), nil
}

func (s *Service) loadBoundaries(logger log.Logger, projection *mapping.Projection) ([]string, error) {
	if s.cfg.Input.DistrictGeoJSON == "" {
		return nil, nil
	}

	boundary, err := s.countyShapeRepository.LoadDistrictBoundary()
	if err != nil {
		if repository.IsNotFound(err) {
			logger.WithField("file", s.cfg.Input.DistrictGeoJSON).Info("Contorno do distrito não encontrado, mapa sem contorno")
			return nil, nil
		}
		return nil, errors.Wrap(err, "load district boundary")
	}

	return projection.Project(boundary, s.cfg.Projection.Precision), nil
}

func (s *Service) newHeatMap(counties []*domain.County, projection *mapping.Projection, scale mapping.ColorScale) *domain.HeatMap {
	page := s.cfg.Page

	heatMap := &domain.HeatMap{
		Title:         page.Title,
		Heading:       page.Heading,
		Description:   page.DescriptionParagraphs(),
		FontURL:       page.FontURL,
		FontFamily:    page.FontFamily,
		ViewboxWidth:  s.cfg.Projection.ViewboxWidth,
		ViewboxHeight: s.cfg.Projection.ViewboxHeight,
		Counties:      make([]domain.RenderedCounty, 0, len(counties)),
		Legend: domain.Legend{
			Title:    page.LegendTitle,
			MinLabel: utils.FormatDollars(0),
			MaxLabel: utils.FormatDollars(scale.Max),
			Note:     page.SourceNote,
		},
	}

	for _, stop := range scale.Stops(legendStops) {
		heatMap.Legend.Stops = append(heatMap.Legend.Stops, stop.Hex())
	}

	for _, county := range counties {
		path := county.SVGPath
		if projection != nil {
			path = projection.Path(county.Geometry, s.cfg.Projection.Precision)
		}

		heatMap.Counties = append(heatMap.Counties, domain.RenderedCounty{
			Name:       county.Name,
			FIPS:       county.FIPS,
			Sales:      county.Sales,
			Membership: county.Membership,
			Path:       path,
			Fill:       scale.Colorize(county.Sales).Hex(),
			Tooltip:    county.Tooltip(),
		})
	}

	return heatMap
}

func maxSales(counties []*domain.County) int64 {
	var max int64
	for _, county := range counties {
		if county.Sales > max {
			max = county.Sales
		}
	}
	return max
}

func minSales(counties []*domain.County) int64 {
	if len(counties) == 0 {
		return 0
	}
	min := counties[0].Sales
	for _, county := range counties[1:] {
		if county.Sales < min {
			min = county.Sales
		}
	}
	return min
}
