package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom"
)

func TestValidateRing(t *testing.T) {
	tests := []struct {
		name     string
		ring     *geom.LinearRing
		expected error
	}{
		{
			name:     "Quadrado válido",
			ring:     linearRing(rectangle(0, 0, 1, 1)...),
			expected: nil,
		},
		{
			name:     "Poucas coordenadas",
			ring:     linearRing(geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{0, 0}),
			expected: ErrEmptyRing,
		},
		{
			name:     "Pontos colineares sem área",
			ring:     linearRing(geom.Coord{0, 0}, geom.Coord{1, 1}, geom.Coord{2, 2}, geom.Coord{0, 0}),
			expected: ErrDegenerateRing,
		},
		{
			name:     "Gravata borboleta se cruza",
			ring:     linearRing(geom.Coord{0, 0}, geom.Coord{2, 2}, geom.Coord{2, 0}, geom.Coord{0, 1}, geom.Coord{0, 0}),
			expected: ErrSelfIntersection,
		},
		{
			name:     "Anel não fechado é fechado antes da verificação",
			ring:     linearRing(geom.Coord{0, 0}, geom.Coord{4, 0}, geom.Coord{4, 4}, geom.Coord{0, 4}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRing(tt.ring, 1e-9)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.expected), "esperado %v, recebido %v", tt.expected, err)
		})
	}
}

func TestValidateGeometry(t *testing.T) {
	withHole := multiPolygon([][]geom.Coord{rectangle(0, 0, 10, 10), rectangle(4, 4, 6, 6)})
	assert.NoError(t, ValidateGeometry("Mercer", withHole, 1e-9))

	err := ValidateGeometry("Bath", nil, 1e-9)
	assert.True(t, errors.Is(err, ErrMissingGeometry))
	assert.True(t, IsGeometryError(err))
	assert.Contains(t, err.Error(), "Bath")

	bowtie := multiPolygon([][]geom.Coord{{{0, 0}, {2, 2}, {2, 0}, {0, 1}, {0, 0}}})
	err = ValidateGeometry("Anderson", bowtie, 1e-9)
	assert.True(t, errors.Is(err, ErrSelfIntersection))
	assert.Contains(t, err.Error(), "Anderson: ring is self-intersecting: polygon 0 ring 0")
}
