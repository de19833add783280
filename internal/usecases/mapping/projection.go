// Package mapping converte geometria geográfica em paths SVG e vendas em cores
package mapping

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/vfg2006/district-heatmap/pkg/utils"
)

type Mode string

const (
	// ModeStretch escala cada eixo separadamente: os cantos do bounding box caem
	// exatamente nos cantos do viewbox
	ModeStretch Mode = "stretch"
	// ModeFit usa uma única escala e centraliza, preservando a proporção
	ModeFit Mode = "fit"
)

// BoundingBox em coordenadas geográficas
type BoundingBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

func (b BoundingBox) Width() float64 {
	return b.MaxLon - b.MinLon
}

func (b BoundingBox) Height() float64 {
	return b.MaxLat - b.MinLat
}

func (b BoundingBox) Valid() bool {
	return b.Width() > 0 && b.Height() > 0 &&
		!math.IsInf(b.Width(), 0) && !math.IsInf(b.Height(), 0)
}

// BoundingBoxFromSlice monta o bounding box a partir de minLon,minLat,maxLon,maxLat
func BoundingBoxFromSlice(values []float64) (BoundingBox, error) {
	if len(values) != 4 {
		return BoundingBox{}, NewConfigError(ErrDegenerateBounds, fmt.Sprintf("expected 4 values, got %d", len(values)))
	}
	return BoundingBox{MinLon: values[0], MinLat: values[1], MaxLon: values[2], MaxLat: values[3]}, nil
}

// BoundsOf calcula o menor retângulo que contém todas as geometrias
func BoundsOf(geometries ...*geom.MultiPolygon) (BoundingBox, error) {
	bounds := geom.NewBounds(geom.XY)
	for _, g := range geometries {
		if g == nil || g.Empty() {
			continue
		}
		bounds.Extend(g)
	}

	if bounds.IsEmpty() {
		return BoundingBox{}, NewConfigError(ErrEmptyGeometry, "")
	}

	return BoundingBox{
		MinLon: bounds.Min(0),
		MinLat: bounds.Min(1),
		MaxLon: bounds.Max(0),
		MaxLat: bounds.Max(1),
	}, nil
}

type Viewbox struct {
	Width  float64
	Height float64
}

// Projection é a transformação afim bounding box -> viewbox, com o eixo vertical invertido.
// É calculada uma vez por execução e reutilizada para todos os condados e anéis.
type Projection struct {
	bbox    BoundingBox
	view    Viewbox
	mode    Mode
	scale   float64
	offsetX float64
	offsetY float64

	tolerance float64 // simplificação em unidades do viewbox, 0 desliga
}

func NewProjection(bbox BoundingBox, view Viewbox, mode Mode) (*Projection, error) {
	if !bbox.Valid() {
		return nil, NewConfigError(ErrDegenerateBounds, fmt.Sprintf("got %gx%g", bbox.Width(), bbox.Height()))
	}

	if view.Width <= 0 || view.Height <= 0 {
		return nil, NewConfigError(ErrInvalidViewbox, fmt.Sprintf("got %gx%g", view.Width, view.Height))
	}

	p := &Projection{bbox: bbox, view: view, mode: mode}

	switch mode {
	case ModeStretch:
	case ModeFit:
		p.scale = math.Min(view.Width/bbox.Width(), view.Height/bbox.Height())
		p.offsetX = (view.Width - bbox.Width()*p.scale) / 2
		p.offsetY = (view.Height - bbox.Height()*p.scale) / 2
	default:
		return nil, NewConfigError(ErrInvalidMode, string(mode))
	}

	return p, nil
}

// Simplify liga a simplificação Douglas-Peucker dos anéis já projetados
func (p *Projection) Simplify(tolerance float64) *Projection {
	if tolerance < 0 {
		tolerance = 0
	}
	p.tolerance = tolerance
	return p
}

func (p *Projection) Bounds() BoundingBox {
	return p.bbox
}

func (p *Projection) Viewbox() Viewbox {
	return p.view
}

// Point projeta (lon, lat) para coordenadas do viewbox
func (p *Projection) Point(lon, lat float64) (float64, float64) {
	if p.mode == ModeFit {
		x := (lon-p.bbox.MinLon)*p.scale + p.offsetX
		y := p.view.Height - ((lat-p.bbox.MinLat)*p.scale + p.offsetY)
		return x, y
	}

	// Divide antes de multiplicar para que os cantos caiam exatamente em 0 e W/H
	x := (lon - p.bbox.MinLon) / p.bbox.Width() * p.view.Width
	y := (p.bbox.MaxLat - lat) / p.bbox.Height() * p.view.Height
	return x, y
}

// RingPath gera "M x,y L x,y ... Z" para um anel
func (p *Projection) RingPath(ring *geom.LinearRing, precision int) string {
	if ring == nil || ring.NumCoords() == 0 {
		return ""
	}

	flat := p.projectRing(ring)

	var sb strings.Builder
	last := ""
	for i := 0; i+1 < len(flat); i += 2 {
		point := formatCoord(flat[i], precision) + "," + formatCoord(flat[i+1], precision)
		if point == last {
			continue
		}

		if sb.Len() == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(point)
		last = point
	}
	sb.WriteString(" Z")

	return sb.String()
}

// projectRing devolve as coordenadas projetadas em sequência x,y, simplificadas
// quando há tolerância. Um anel que ficaria com menos de 4 pontos é mantido inteiro.
func (p *Projection) projectRing(ring *geom.LinearRing) []float64 {
	flat := make([]float64, 0, ring.NumCoords()*2)
	for i := 0; i < ring.NumCoords(); i++ {
		c := ring.Coord(i)
		x, y := p.Point(c.X(), c.Y())
		flat = append(flat, x, y)
	}

	if p.tolerance <= 0 || len(flat) < 8 {
		return flat
	}

	kept := xy.SimplifyFlatCoords(flat, p.tolerance, 2)
	if len(kept) < 4 {
		return flat
	}

	simplified := make([]float64, 0, len(kept)*2)
	for _, i := range kept {
		simplified = append(simplified, flat[i*2], flat[i*2+1])
	}
	return simplified
}

// Project retorna um path SVG por anel (externos e buracos), na ordem da geometria
func (p *Projection) Project(mp *geom.MultiPolygon, precision int) []string {
	if mp == nil {
		return nil
	}

	paths := make([]string, 0, mp.NumPolygons())
	for i := 0; i < mp.NumPolygons(); i++ {
		polygon := mp.Polygon(i)
		for j := 0; j < polygon.NumLinearRings(); j++ {
			if path := p.RingPath(polygon.LinearRing(j), precision); path != "" {
				paths = append(paths, path)
			}
		}
	}

	return paths
}

// Path junta os paths de todos os anéis em um único atributo d
func (p *Projection) Path(mp *geom.MultiPolygon, precision int) string {
	return strings.Join(p.Project(mp, precision), " ")
}

func formatCoord(v float64, precision int) string {
	return strconv.FormatFloat(utils.RoundTo(v, precision), 'f', precision, 64)
}
