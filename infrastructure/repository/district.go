package repository

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/domain"
	"gopkg.in/yaml.v3"
)

type DistrictRepository interface {
	LoadDistrict() (*domain.District, error)
}

type districtRepository struct {
	cfg config.Input
}

func NewDistrictRepository(cfg config.Input) DistrictRepository {
	return &districtRepository{
		cfg: cfg,
	}
}

// districtFile é o formato do arquivo YAML do distrito
type districtFile struct {
	Name      string         `yaml:"name"`
	StateFIPS string         `yaml:"state_fips"`
	Counties  []districtItem `yaml:"counties"`
}

// districtItem aceita tanto "- Bourbon" quanto "- {name: Anderson, membership: partial}"
type districtItem struct {
	Name       string `yaml:"name"`
	Membership string `yaml:"membership"`
	line       int
}

func (d *districtItem) UnmarshalYAML(node *yaml.Node) error {
	d.line = node.Line

	if node.Kind == yaml.ScalarNode {
		d.Name = node.Value
		return nil
	}

	type plain districtItem
	var item plain
	if err := node.Decode(&item); err != nil {
		return err
	}
	d.Name = item.Name
	d.Membership = item.Membership
	return nil
}

// LoadDistrict lê o YAML do distrito. Sem DISTRICT_FILE, todos os condados do
// arquivo de vendas do distrito entram como membros completos.
func (r *districtRepository) LoadDistrict() (*domain.District, error) {
	if r.cfg.DistrictFile == "" {
		return r.districtFromSales()
	}

	data, err := readInput(r.cfg.DistrictFile)
	if err != nil {
		return nil, err
	}

	var file districtFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, newInvalidInputError(r.cfg.DistrictFile, 0, "%v", err)
	}

	district := &domain.District{
		Name:      file.Name,
		StateFIPS: file.StateFIPS,
		Members:   make([]domain.DistrictMember, 0, len(file.Counties)),
	}
	if district.StateFIPS == "" {
		district.StateFIPS = r.cfg.StateFIPS
	}

	seen := make(map[string]int, len(file.Counties))
	for _, item := range file.Counties {
		name := domain.CountyName(item.Name)
		if name == "" {
			return nil, newInvalidInputError(r.cfg.DistrictFile, item.line, "county without name")
		}

		key := domain.CountyKey(name)
		if line, ok := seen[key]; ok {
			return nil, newInvalidInputError(r.cfg.DistrictFile, item.line, "county %s already listed at row %d", name, line)
		}
		seen[key] = item.line

		membership, err := domain.ParseMembership(item.Membership)
		if err != nil {
			return nil, newInvalidInputError(r.cfg.DistrictFile, item.line, "county %s: %v", name, err)
		}

		district.Members = append(district.Members, domain.DistrictMember{
			Name:       name,
			Membership: membership,
		})
	}

	if len(district.RenderedMembers()) == 0 {
		return nil, newInvalidInputError(r.cfg.DistrictFile, 0, "district has no counties to render")
	}

	logrus.WithFields(logrus.Fields{
		"district": district.Name,
		"counties": len(district.Members),
	}).Debug("Distrito carregado")

	return district, nil
}

func (r *districtRepository) districtFromSales() (*domain.District, error) {
	path := r.cfg.SalesOverrideFile
	if path == "" {
		return nil, newNotFoundError("district file")
	}

	t, err := readTable(path, "")
	if err != nil {
		return nil, err
	}

	countyColumn, ok := t.column(r.cfg.SalesCountyColumn)
	if !ok {
		return nil, newInvalidInputError(path, 1, "missing county column %q", r.cfg.SalesCountyColumn)
	}

	district := &domain.District{
		Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		StateFIPS: r.cfg.StateFIPS,
	}

	seen := make(map[string]struct{})
	err = t.each(func(row int, cells []string) error {
		name := domain.CountyName(cell(cells, countyColumn))
		if name == "" {
			return newInvalidInputError(path, row, "missing county name")
		}
		if _, ok := seen[domain.CountyKey(name)]; ok {
			return nil
		}
		seen[domain.CountyKey(name)] = struct{}{}

		district.Members = append(district.Members, domain.DistrictMember{
			Name:       name,
			Membership: domain.MembershipFull,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(district.Members) == 0 {
		return nil, newInvalidInputError(path, 0, "district has no counties to render")
	}

	return district, nil
}
