package mapping

import (
	"fmt"
	"math"
	"sort"

	"github.com/twpayne/go-geom"
)

// ValidateGeometry verifica todos os anéis de um condado
func ValidateGeometry(county string, mp *geom.MultiPolygon, minArea float64) error {
	if mp == nil || mp.NumPolygons() == 0 {
		return NewGeometryError(ErrMissingGeometry, county, "")
	}

	for i := 0; i < mp.NumPolygons(); i++ {
		polygon := mp.Polygon(i)
		if polygon.NumLinearRings() == 0 {
			return NewGeometryError(ErrEmptyRing, county, fmt.Sprintf("polygon %d has no rings", i))
		}
		for j := 0; j < polygon.NumLinearRings(); j++ {
			if err := ValidateRing(polygon.LinearRing(j), minArea); err != nil {
				return NewGeometryError(err, county, fmt.Sprintf("polygon %d ring %d", i, j))
			}
		}
	}

	return nil
}

// ValidateRing exige ao menos 4 coordenadas (anel fechado), área acima da tolerância
// e nenhum cruzamento entre segmentos não adjacentes
func ValidateRing(ring *geom.LinearRing, minArea float64) error {
	if ring == nil || ring.NumCoords() < 4 {
		return ErrEmptyRing
	}

	if math.Abs(ring.Area()) <= minArea {
		return ErrDegenerateRing
	}

	if selfIntersects(ring.Coords()) {
		return ErrSelfIntersection
	}

	return nil
}

type segment struct {
	index int
	a, b  geom.Coord
	minX  float64
	maxX  float64
	minY  float64
	maxY  float64
}

// selfIntersects procura cruzamentos próprios entre segmentos. Toques colineares e
// vértices compartilhados ficam dentro da tolerância.
func selfIntersects(coords []geom.Coord) bool {
	n := len(coords)
	if !coords[0].Equal(geom.XY, coords[n-1]) {
		coords = append(coords[:n:n], coords[0])
		n++
	}

	segments := make([]segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		a, b := coords[i], coords[i+1]
		segments = append(segments, segment{
			index: i,
			a:     a,
			b:     b,
			minX:  math.Min(a.X(), b.X()),
			maxX:  math.Max(a.X(), b.X()),
			minY:  math.Min(a.Y(), b.Y()),
			maxY:  math.Max(a.Y(), b.Y()),
		})
	}
	count := len(segments)

	// Varredura em x: só compara segmentos cujas projeções em x se sobrepõem
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].minX < segments[j].minX
	})

	for i := range segments {
		s := segments[i]
		for j := i + 1; j < len(segments) && segments[j].minX <= s.maxX; j++ {
			o := segments[j]
			if adjacent(s.index, o.index, count) {
				continue
			}
			if o.maxY < s.minY || o.minY > s.maxY {
				continue
			}
			if properlyCross(s.a, s.b, o.a, o.b) {
				return true
			}
		}
	}

	return false
}

func adjacent(i, j, count int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d <= 1 || d == count-1
}

func properlyCross(p1, p2, q1, q2 geom.Coord) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)
	return d1*d2 < 0 && d3*d4 < 0
}

func orientation(a, b, c geom.Coord) float64 {
	v := (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
