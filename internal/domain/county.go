// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/vfg2006/district-heatmap/pkg/utils"
)

// Membership indica como um condado pertence ao distrito
type Membership string

const (
	MembershipFull     Membership = "full"
	MembershipPartial  Membership = "partial"
	MembershipExcluded Membership = "excluded"
)

// ParseMembership converte o valor do arquivo do distrito. Vazio equivale a full.
func ParseMembership(value string) (Membership, error) {
	switch Membership(strings.ToLower(strings.TrimSpace(value))) {
	case "", MembershipFull:
		return MembershipFull, nil
	case MembershipPartial:
		return MembershipPartial, nil
	case MembershipExcluded:
		return MembershipExcluded, nil
	default:
		return "", fmt.Errorf("invalid membership: %s", value)
	}
}

// Rendered indica se o condado entra no mapa
func (m Membership) Rendered() bool {
	return m == MembershipFull || m == MembershipPartial
}

type County struct {
	Name       string
	FIPS       string
	Geometry   *geom.MultiPolygon // coordenadas geográficas (lon, lat)
	SVGPath    string             // preenchido quando a geometria já vem projetada do cache
	Sales      int64
	Membership Membership
}

// HasGeometry indica se existe ao menos um anel para projetar
func (c *County) HasGeometry() bool {
	if c.Geometry != nil && c.Geometry.NumPolygons() > 0 {
		return true
	}
	return c.SVGPath != ""
}

// Projected indica se a geometria veio pronta do cache de paths
func (c *County) Projected() bool {
	return c.Geometry == nil && c.SVGPath != ""
}

// Tooltip retorna o texto exibido ao passar o mouse, ex: "Mercer: $10,516,000"
func (c *County) Tooltip() string {
	return fmt.Sprintf("%s: %s", c.Name, utils.FormatDollars(c.Sales))
}

// CountyKey normaliza nomes vindos de CSV, YAML e GeoJSON
func CountyKey(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, " County")
	return strings.ToLower(strings.TrimSpace(name))
}

// CountyName remove o sufixo " County" usado pelo NAMELSAD do Census
func CountyName(name string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), " County"))
}
