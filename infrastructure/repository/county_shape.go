package repository

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type CountyShapeRepository interface {
	// LoadCountyShapes retorna os condados do estado configurado, ordenados por nome
	LoadCountyShapes() ([]*domain.County, error)
	// LoadDistrictBoundary retorna o contorno do distrito para o traçado sobre o mapa
	LoadDistrictBoundary() (*geom.MultiPolygon, error)
}

type countyShapeRepository struct {
	cfg config.Input
}

func NewCountyShapeRepository(cfg config.Input) CountyShapeRepository {
	return &countyShapeRepository{
		cfg: cfg,
	}
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties featureProperties `json:"properties"`
	Geometry   *featureGeometry  `json:"geometry"`
}

// featureProperties segue os atributos dos arquivos TIGER/Line do Census
type featureProperties struct {
	Name     string `json:"NAME"`
	NameLSAD string `json:"NAMELSAD"`
	GEOID    string `json:"GEOID"`
	StateFP  string `json:"STATEFP"`
}

type featureGeometry struct {
	Type        string              `json:"type"`
	Coordinates jsoniter.RawMessage `json:"coordinates"`
}

func (r *countyShapeRepository) LoadCountyShapes() ([]*domain.County, error) {
	collection, err := readFeatureCollection(r.cfg.CountiesGeoJSON)
	if err != nil {
		return nil, err
	}

	counties := make([]*domain.County, 0, len(collection.Features))
	for i, f := range collection.Features {
		if !r.inState(f.Properties) {
			continue
		}

		name := f.Properties.Name
		if name == "" {
			name = domain.CountyName(f.Properties.NameLSAD)
		}
		if name == "" {
			return nil, newInvalidInputError(r.cfg.CountiesGeoJSON, 0, "feature %d has no NAME or NAMELSAD", i)
		}

		geometry, err := decodeGeometry(f.Geometry)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"file":   r.cfg.CountiesGeoJSON,
				"county": name,
			}).WithError(err).Warn("Geometria do condado ignorada")
		}

		counties = append(counties, &domain.County{
			Name:     name,
			FIPS:     f.Properties.GEOID,
			Geometry: geometry,
		})
	}

	sort.SliceStable(counties, func(i, j int) bool {
		return counties[i].Name < counties[j].Name
	})

	logrus.WithFields(logrus.Fields{
		"file":     r.cfg.CountiesGeoJSON,
		"counties": len(counties),
		"state":    r.cfg.StateFIPS,
	}).Debug("Geometria dos condados carregada")

	return counties, nil
}

func (r *countyShapeRepository) LoadDistrictBoundary() (*geom.MultiPolygon, error) {
	collection, err := readFeatureCollection(r.cfg.DistrictGeoJSON)
	if err != nil {
		return nil, err
	}

	boundary := geom.NewMultiPolygon(geom.XY)
	for i, f := range collection.Features {
		geometry, err := decodeGeometry(f.Geometry)
		if err != nil {
			return nil, newInvalidInputError(r.cfg.DistrictGeoJSON, 0, "feature %d: %v", i, err)
		}
		for j := 0; j < geometry.NumPolygons(); j++ {
			if err := boundary.Push(geometry.Polygon(j)); err != nil {
				return nil, newInvalidInputError(r.cfg.DistrictGeoJSON, 0, "feature %d: %v", i, err)
			}
		}
	}

	return boundary, nil
}

// inState filtra pelo STATEFP, ou pelo prefixo do GEOID quando o atributo não existe
func (r *countyShapeRepository) inState(props featureProperties) bool {
	if r.cfg.StateFIPS == "" {
		return true
	}

	state := props.StateFP
	if state == "" && len(props.GEOID) >= 2 {
		state = props.GEOID[:2]
	}

	return state == "" || state == r.cfg.StateFIPS
}

func readFeatureCollection(path string) (*featureCollection, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	var collection featureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, newInvalidInputError(path, 0, "decode GeoJSON: %v", err)
	}

	if collection.Type != "" && collection.Type != "FeatureCollection" {
		return nil, newInvalidInputError(path, 0, "expected a FeatureCollection, got %s", collection.Type)
	}

	return &collection, nil
}

// decodeGeometry converte Polygon e MultiPolygon em MultiPolygon XY, mantendo os buracos
func decodeGeometry(g *featureGeometry) (*geom.MultiPolygon, error) {
	if g == nil || len(g.Coordinates) == 0 {
		return nil, fmt.Errorf("feature has no geometry")
	}

	var polygons [][][][]float64
	switch g.Type {
	case "Polygon":
		var polygon [][][]float64
		if err := json.Unmarshal(g.Coordinates, &polygon); err != nil {
			return nil, fmt.Errorf("decode polygon: %w", err)
		}
		polygons = [][][][]float64{polygon}
	case "MultiPolygon":
		if err := json.Unmarshal(g.Coordinates, &polygons); err != nil {
			return nil, fmt.Errorf("decode multipolygon: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported geometry type %s", g.Type)
	}

	coords := make([][][]geom.Coord, 0, len(polygons))
	for _, polygon := range polygons {
		rings := make([][]geom.Coord, 0, len(polygon))
		for _, ring := range polygon {
			points := make([]geom.Coord, 0, len(ring))
			for _, position := range ring {
				if len(position) < 2 {
					return nil, fmt.Errorf("position with %d values", len(position))
				}
				points = append(points, geom.Coord{position[0], position[1]})
			}
			rings = append(rings, points)
		}
		coords = append(coords, rings)
	}

	return geom.NewMultiPolygon(geom.XY).SetCoords(coords)
}
