package mapping

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Escala de verde: branco -> verde floresta escuro
const (
	Hue            = 120.0
	minSaturation  = 60.0
	maxSaturation  = 90.0
	startLightness = 80.0
	endLightness   = 15.0
)

// Color em HSL, com saturação e luminosidade em porcentagem
type Color struct {
	H float64
	S float64
	L float64
}

var (
	White        = Color{H: 0, S: 0, L: 100}
	DarkestGreen = Color{H: Hue, S: maxSaturation, L: endLightness}
)

// Hex retorna a cor no formato #rrggbb
func (c Color) Hex() string {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

// CSS retorna a cor no formato hsl() do CSS
func (c Color) CSS() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", c.H, c.S, c.L)
}

// ColorScale mapeia vendas em [0, Max] para a escala de verde. Max <= 0 pinta tudo de branco.
type ColorScale struct {
	Max int64
}

func NewColorScale(max int64) ColorScale {
	if max < 0 {
		max = 0
	}
	return ColorScale{Max: max}
}

// Intensity retorna value/Max limitado a [0, 1]
func (s ColorScale) Intensity(value int64) float64 {
	if s.Max <= 0 || value <= 0 {
		return 0
	}
	return math.Min(1, float64(value)/float64(s.Max))
}

// Colorize: zero é branco, Max é o verde mais escuro, e a luminosidade nunca aumenta com o valor
func (s ColorScale) Colorize(value int64) Color {
	if s.Max <= 0 || value <= 0 {
		return White
	}
	return colorAt(s.Intensity(value))
}

// Stops retorna n cores para o gradiente da legenda: branco seguido de n-1 pontos
// com intensidade igualmente espaçada de 0 a 1
func (s ColorScale) Stops(n int) []Color {
	if n < 3 {
		n = 3
	}

	stops := make([]Color, 0, n)
	stops = append(stops, White)
	for k := 0; k < n-1; k++ {
		stops = append(stops, colorAt(float64(k)/float64(n-2)))
	}

	return stops
}

// Colorize é o atalho para uma escala de um único uso
func Colorize(value, max int64) Color {
	return NewColorScale(max).Colorize(value)
}

func colorAt(intensity float64) Color {
	return Color{
		H: Hue,
		S: math.Min(maxSaturation, minSaturation+intensity*(maxSaturation-minSaturation)),
		L: math.Max(endLightness, startLightness-intensity*(startLightness-endLightness)),
	}
}
