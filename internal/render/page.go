// Package render monta a página HTML autocontida com o mapa SVG
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/district-heatmap/internal/domain"
)

//go:embed templates/heatmap.html.tmpl
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/heatmap.html.tmpl"))

const defaultFontFamily = "Arial, sans-serif"

type pageView struct {
	Title         string
	Heading       string
	Description   []string
	FontURL       string
	FontFamily    template.CSS
	Width         string
	Height        string
	AspectPercent template.CSS
	Counties      []countyView
	Boundaries    []string
	Legend        legendView
	HasPartial    bool
}

type countyView struct {
	domain.RenderedCounty
	Partial bool
}

type legendView struct {
	Title    string
	Gradient template.CSS
	MinLabel string
	MaxLabel string
	Note     string
}

// Render gera a página. A saída depende apenas do modelo: sem horários nem ids aleatórios.
func Render(heatMap *domain.HeatMap) ([]byte, error) {
	if heatMap == nil {
		return nil, errors.New("render: nil heat map")
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageView(heatMap)); err != nil {
		return nil, errors.Wrap(err, "render heat map page")
	}

	return buf.Bytes(), nil
}

func newPageView(heatMap *domain.HeatMap) pageView {
	view := pageView{
		Title:         heatMap.Title,
		Heading:       heatMap.Heading,
		Description:   heatMap.Description,
		FontURL:       heatMap.FontURL,
		FontFamily:    template.CSS(cssFontFamily(heatMap.FontFamily)),
		Width:         formatNumber(heatMap.ViewboxWidth),
		Height:        formatNumber(heatMap.ViewboxHeight),
		AspectPercent: template.CSS(formatNumber(heatMap.ViewboxHeight / heatMap.ViewboxWidth * 100)),
		Counties:      make([]countyView, 0, len(heatMap.Counties)),
		Boundaries:    heatMap.Boundaries,
		HasPartial:    heatMap.HasPartial(),
		Legend: legendView{
			Title:    heatMap.Legend.Title,
			Gradient: template.CSS(strings.Join(heatMap.Legend.Stops, ", ")),
			MinLabel: heatMap.Legend.MinLabel,
			MaxLabel: heatMap.Legend.MaxLabel,
			Note:     heatMap.Legend.Note,
		},
	}

	if view.Heading == "" {
		view.Heading = view.Title
	}

	for _, county := range heatMap.Counties {
		view.Counties = append(view.Counties, countyView{
			RenderedCounty: county,
			Partial:        county.Membership == domain.MembershipPartial,
		})
	}

	return view
}

// cssFontFamily mantém apenas caracteres válidos em uma lista de fontes
func cssFontFamily(family string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune(" ,'\"-_", r):
			return r
		}
		return -1
	}, family)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return defaultFontFamily
	}
	return cleaned
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
