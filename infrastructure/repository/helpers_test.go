package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/district-heatmap/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func inputConfig(dir string) config.Input {
	return config.Input{
		SalesFile:         filepath.Join(dir, "kentucky-soybean-sales-2022.csv"),
		SalesOverrideFile: filepath.Join(dir, "district6-soybean-sales.csv"),
		SalesCountyColumn: "County",
		SalesValueColumns: []string{"Sales", "Soybean Sales"},
		DistrictFile:      filepath.Join(dir, "district6.yaml"),
		CountiesGeoJSON:   filepath.Join(dir, "ky_counties.geojson"),
		CountyCacheFile:   filepath.Join(dir, "ky_counties.json"),
		DistrictGeoJSON:   filepath.Join(dir, "district6.geojson"),
		StateFIPS:         "21",
	}
}
