package mapping

import "github.com/twpayne/go-geom"

// kentuckyBounds é o enquadramento do estado usado pelo mapa do site
var kentuckyBounds = BoundingBox{
	MinLon: -89.571203,
	MinLat: 36.497058,
	MaxLon: -81.964788,
	MaxLat: 39.147732,
}

func multiPolygon(polygons ...[][]geom.Coord) *geom.MultiPolygon {
	coords := make([][][]geom.Coord, 0, len(polygons))
	coords = append(coords, polygons...)
	return geom.NewMultiPolygon(geom.XY).MustSetCoords(coords)
}

func rectangle(minX, minY, maxX, maxY float64) []geom.Coord {
	return []geom.Coord{
		{minX, maxY},
		{maxX, maxY},
		{maxX, minY},
		{minX, minY},
		{minX, maxY},
	}
}

func linearRing(coords ...geom.Coord) *geom.LinearRing {
	return geom.NewLinearRing(geom.XY).MustSetCoords(coords)
}
