package generating

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/vfg2006/district-heatmap/infrastructure/repository"
	"github.com/vfg2006/district-heatmap/infrastructure/repository/mocks"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/domain"
	"github.com/vfg2006/district-heatmap/pkg/log"
	"github.com/vfg2006/district-heatmap/pkg/runErrors"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Input: config.Input{
			CountiesGeoJSON: "census-data/ky_counties.geojson",
			CountyCacheFile: "ky_counties.json",
			DistrictGeoJSON: "census-data/district6.geojson",
			StateFIPS:       "21",
		},
		Output: config.Output{File: "kentucky-district6-embeddable.html"},
		Projection: config.Projection{
			ViewboxWidth:  1000,
			ViewboxHeight: 500,
			Mode:          config.ProjectionModeStretch,
			Precision:     1,
		},
		Geometry: config.Geometry{MinRingArea: 1e-9},
		Page: config.Page{
			Title:       "Kentucky 6th Congressional District - Soybean Sales Heat Map",
			Heading:     "Kentucky 6th Congressional District - Agricultural Significance of Soybeans",
			Description: "Soybeans matter.\n\nRotations improve soil health.",
			LegendTitle: "Soybean Sales (2022)*",
			SourceNote:  "*US Census of Agriculture",
		},
	}
}

func square(minLon, minLat, size float64) *geom.MultiPolygon {
	return geom.NewMultiPolygon(geom.XY).MustSetCoords([][][]geom.Coord{{{
		{minLon, minLat + size},
		{minLon + size, minLat + size},
		{minLon + size, minLat},
		{minLon, minLat},
		{minLon, minLat + size},
	}}})
}

func bowtie() *geom.MultiPolygon {
	return geom.NewMultiPolygon(geom.XY).MustSetCoords([][][]geom.Coord{{{
		{-84.0, 38.0}, {-83.8, 38.2}, {-83.8, 38.0}, {-84.0, 38.1}, {-84.0, 38.0},
	}}})
}

func district6() *domain.District {
	return &domain.District{
		Name:      "Kentucky 6th Congressional District",
		StateFIPS: "21",
		Members: []domain.DistrictMember{
			{Name: "Mercer", Membership: domain.MembershipFull},
			{Name: "Anderson", Membership: domain.MembershipPartial},
			{Name: "Bath", Membership: domain.MembershipPartial},
			{Name: "Boyle", Membership: domain.MembershipExcluded},
		},
	}
}

func countyShapes() []*domain.County {
	return []*domain.County{
		{Name: "Anderson", FIPS: "21005", Geometry: square(-85.1, 37.9, 0.2)},
		{Name: "Bath", FIPS: "21011"},
		{Name: "Boyle", FIPS: "21021", Geometry: square(-85.0, 37.5, 0.2)},
		{Name: "Mercer", FIPS: "21167", Geometry: square(-84.9, 37.7, 0.2)},
	}
}

func salesTable(amounts map[string]int64) *domain.SalesTable {
	sales := domain.NewSalesTable()
	for county, amount := range amounts {
		sales.Set(domain.SalesRecord{County: county, Amount: amount})
	}
	return sales
}

func notFound(file string) error {
	return &repository.FileError{Err: repository.ErrInputNotFound, Code: runErrors.ErrMissingInput, File: file}
}

type generatorMocks struct {
	district *mocks.MockDistrictRepository
	sales    *mocks.MockSalesRepository
	shapes   *mocks.MockCountyShapeRepository
	cache    *mocks.MockCountyCacheRepository
	artifact *mocks.MockArtifactRepository
}

func newGenerator(t *testing.T, cfg *config.Config) (Generator, *generatorMocks) {
	ctrl := gomock.NewController(t)
	m := &generatorMocks{
		district: mocks.NewMockDistrictRepository(ctrl),
		sales:    mocks.NewMockSalesRepository(ctrl),
		shapes:   mocks.NewMockCountyShapeRepository(ctrl),
		cache:    mocks.NewMockCountyCacheRepository(ctrl),
		artifact: mocks.NewMockArtifactRepository(ctrl),
	}
	return NewService(cfg, m.district, m.sales, m.shapes, m.cache, m.artifact), m
}

func TestService_Generate(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		cfg      func() *config.Config
		setup    func(m *generatorMocks, page *[]byte)
		validate func(t *testing.T, result *Result, page string, err error)
	}{
		{
			name: "Gera o mapa com tooltip, membro parcial e venda ausente",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 10_516_000, "Boyle": 99}), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(countyShapes(), nil)
				m.shapes.EXPECT().LoadDistrictBoundary().Return(nil, notFound("census-data/district6.geojson"))
				m.artifact.EXPECT().
					Save("kentucky-district6-embeddable.html", gomock.Any()).
					DoAndReturn(func(path string, content []byte) error {
						*page = content
						return nil
					})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				require.NoError(t, err)
				assert.Equal(t, SourceGeoJSON, result.Source)
				assert.Equal(t, 2, result.Rendered)
				assert.Equal(t, []string{"Bath"}, result.Skipped)
				assert.Equal(t, []string{"Anderson"}, result.MissingSales)
				assert.Equal(t, int64(10_516_000), result.MaxSales)
				assert.Equal(t, int64(0), result.MinSales)
				assert.Equal(t, int64(10_516_000), result.TotalSales)
				assert.Equal(t, len(page), result.Bytes)

				assert.Contains(t, page, `data-tooltip="Mercer: $10,516,000"`)
				assert.Contains(t, page, `data-tooltip="Anderson: $0"`)
				assert.Contains(t, page, `class="county district-county partial"`)
				assert.Contains(t, page, `fill="#ffffff"`)
				assert.Contains(t, page, "<span>$10,516,000</span>")
				assert.NotContains(t, page, "Boyle", "condado excluído não é desenhado")
				assert.NotContains(t, page, "district-boundaries")
				assert.Less(t, strings.Index(page, `data-county="Anderson"`), strings.Index(page, `data-county="Mercer"`))
			},
		},
		{
			name: "Cantos do retângulo dos condados viram os cantos do viewbox",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(&domain.District{Members: []domain.DistrictMember{
					{Name: "Mercer", Membership: domain.MembershipFull},
				}}, nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 1}), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return([]*domain.County{
					{Name: "Mercer", FIPS: "21167", Geometry: square(-85, 37.5, 0.5)},
				}, nil)
				m.shapes.EXPECT().LoadDistrictBoundary().Return(square(-85, 37.5, 0.5), nil)
				m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, content []byte) error {
					*page = content
					return nil
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				require.NoError(t, err)
				assert.Contains(t, page, `d="M 0.0,0.0 L 1000.0,0.0 L 1000.0,500.0 L 0.0,500.0 L 0.0,0.0 Z"`)
				assert.Contains(t, page, `<path class="district-boundary" d="M 0.0,0.0 L 1000.0,0.0 L 1000.0,500.0 L 0.0,500.0 L 0.0,0.0 Z"/>`)
			},
		},
		{
			name: "Condado homônimo de outro estado não substitui o do distrito",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				shapes := append(countyShapes(), &domain.County{Name: "Mercer", FIPS: "39107", Geometry: square(-84.8, 40.4, 0.3)})

				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 10_516_000}), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(shapes, nil)
				m.shapes.EXPECT().LoadDistrictBoundary().Return(nil, notFound("district6.geojson"))
				m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, content []byte) error {
					*page = content
					return nil
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, result.Rendered)
				assert.Contains(t, page, `data-fips="21167"`)
				assert.NotContains(t, page, `data-fips="39107"`)
			},
		},
		{
			name: "Geometria que se cruza é ignorada",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				shapes := countyShapes()
				shapes[0].Geometry = bowtie()

				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 5, "Anderson": 10}), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(shapes, nil)
				m.shapes.EXPECT().LoadDistrictBoundary().Return(nil, notFound("district6.geojson"))
				m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, content []byte) error {
					*page = content
					return nil
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"Anderson", "Bath"}, result.Skipped)
				assert.Equal(t, 1, result.Rendered)
				assert.Equal(t, int64(5), result.MaxSales, "o máximo considera só os condados desenhados")
				assert.NotContains(t, page, `data-county="Anderson"`)
			},
		},
		{
			name: "Sem GeoJSON usa o cache de paths",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 10_516_000, "Anderson": 100}), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(nil, notFound("census-data/ky_counties.geojson"))
				m.cache.EXPECT().LoadCache().Return([]*domain.County{
					{Name: "Anderson", FIPS: "21005", SVGPath: "M 1.00,1.00 L 2.00,1.00 L 2.00,2.00 Z"},
					{Name: "Mercer", FIPS: "21167", SVGPath: "M 5.00,5.00 L 6.00,5.00 L 6.00,6.00 Z"},
				}, nil)
				m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, content []byte) error {
					*page = content
					return nil
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				require.NoError(t, err)
				assert.Equal(t, SourceCache, result.Source)
				assert.Contains(t, page, `d="M 5.00,5.00 L 6.00,5.00 L 6.00,6.00 Z"`)
				assert.Equal(t, []string{"Bath"}, result.Skipped)
			},
		},
		{
			name: "Sem GeoJSON e sem cache é erro de entrada ausente",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(nil), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(nil, notFound("census-data/ky_counties.geojson"))
				m.cache.EXPECT().LoadCache().Return(nil, notFound("ky_counties.json"))
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, ErrGeometryUnavailable))
				assert.Equal(t, runErrors.ErrMissingInput, runErrors.CodeOf(err))
				assert.Contains(t, err.Error(), "ky_counties.json")
			},
		},
		{
			name: "Todas as vendas zero pintam o mapa de branco",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 0, "Anderson": 0}), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(countyShapes(), nil)
				m.shapes.EXPECT().LoadDistrictBoundary().Return(nil, notFound("district6.geojson"))
				m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, content []byte) error {
					*page = content
					return nil
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(0), result.MaxSales)
				assert.Equal(t, 2, strings.Count(page, `fill="#ffffff"`))
			},
		},
		{
			name: "Venda inválida interrompe a geração",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(nil, &repository.FileError{
					Err:     repository.ErrInvalidInput,
					Code:    runErrors.ErrInvalidInput,
					File:    "kentucky-soybean-sales-2022.csv",
					Row:     7,
					Details: "county Bath: negative sales value -1",
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				assert.Equal(t, runErrors.ErrInvalidInput, runErrors.CodeOf(err))
				assert.Contains(t, err.Error(), "kentucky-soybean-sales-2022.csv row 7")
			},
		},
		{
			name: "MAP_BOUNDS degenerado é erro de configuração",
			cfg: func() *config.Config {
				cfg := testConfig()
				cfg.Projection.Bounds = []float64{-85, 37, -85, 38}
				return cfg
			},
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(nil), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(countyShapes(), nil)
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				assert.Equal(t, runErrors.ErrInvalidConfig, runErrors.CodeOf(err))
				assert.Equal(t, 78, runErrors.ExitCode(runErrors.CodeOf(err)))
			},
		},
		{
			name: "Nenhum condado do distrito desenhável",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(nil), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return([]*domain.County{{Name: "Boyle", Geometry: square(-85, 37, 1)}}, nil)
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				assert.True(t, errors.Is(err, ErrNoDistrictCounties))
				assert.Equal(t, runErrors.ErrInvalidInput, runErrors.CodeOf(err))
			},
		},
		{
			name: "Falha ao gravar a página",
			cfg:  testConfig,
			setup: func(m *generatorMocks, page *[]byte) {
				m.district.EXPECT().LoadDistrict().Return(district6(), nil)
				m.sales.EXPECT().LoadSales().Return(salesTable(nil), nil)
				m.shapes.EXPECT().LoadCountyShapes().Return(countyShapes(), nil)
				m.shapes.EXPECT().LoadDistrictBoundary().Return(nil, notFound("district6.geojson"))
				m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&repository.FileError{
					Err:  repository.ErrOutputWrite,
					Code: runErrors.ErrOutputWrite,
					File: "kentucky-district6-embeddable.html",
				})
			},
			validate: func(t *testing.T, result *Result, page string, err error) {
				assert.True(t, errors.Is(err, repository.ErrOutputWrite))
				assert.Equal(t, 73, runErrors.ExitCode(runErrors.CodeOf(err)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, m := newGenerator(t, tt.cfg())

			var page []byte
			tt.setup(m, &page)

			result, err := generator.Generate(context.Background())
			tt.validate(t, result, string(page), err)
		})
	}
}

func TestService_Generate_Deterministic(t *testing.T) {
	generator, m := newGenerator(t, testConfig())

	var pages [][]byte
	m.district.EXPECT().LoadDistrict().Return(district6(), nil).Times(2)
	m.sales.EXPECT().LoadSales().Return(salesTable(map[string]int64{"Mercer": 10_516_000, "Anderson": 5_258_000}), nil).Times(2)
	m.shapes.EXPECT().LoadCountyShapes().DoAndReturn(func() ([]*domain.County, error) {
		return countyShapes(), nil
	}).Times(2)
	m.shapes.EXPECT().LoadDistrictBoundary().Return(square(-85.1, 37.7, 0.4), nil).Times(2)
	m.artifact.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, content []byte) error {
		pages = append(pages, content)
		return nil
	}).Times(2)

	ctx, runID := log.WithCorrelationID(context.Background())
	first, err := generator.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, runID, first.RunID)

	_, err = generator.Generate(context.Background())
	require.NoError(t, err)

	require.Len(t, pages, 2)
	if diff := cmp.Diff(string(pages[0]), string(pages[1])); diff != "" {
		t.Errorf("páginas diferentes entre execuções (-primeira +segunda):\n%s", diff)
	}
}
