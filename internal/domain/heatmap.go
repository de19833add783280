package domain

// RenderedCounty é um condado pronto para o SVG
type RenderedCounty struct {
	Name       string
	FIPS       string
	Sales      int64
	Membership Membership
	Path       string
	Fill       string
	Tooltip    string
}

// Legend descreve a escala de cores exibida abaixo do mapa
type Legend struct {
	Title    string
	Stops    []string // cores hex, da menor para a maior venda
	MinLabel string
	MaxLabel string
	Note     string // fonte dos dados
}

// HeatMap é o modelo de visualização da página gerada
type HeatMap struct {
	Title         string
	Heading       string
	Description   []string
	FontURL       string
	FontFamily    string
	ViewboxWidth  float64
	ViewboxHeight float64
	Counties      []RenderedCounty
	Boundaries    []string
	Legend        Legend
}

// HasPartial indica se algum condado é membro parcial do distrito
func (h *HeatMap) HasPartial() bool {
	for _, county := range h.Counties {
		if county.Membership == MembershipPartial {
			return true
		}
	}
	return false
}
