package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProjectionModeStretch = "stretch"
	ProjectionModeFit     = "fit"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Input      Input      `mapstructure:",squash"`
	Output     Output     `mapstructure:",squash"`
	Projection Projection `mapstructure:",squash"`
	Geometry   Geometry   `mapstructure:",squash"`
	Page       Page       `mapstructure:",squash"`
	Shapes     Shapes     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Input struct {
	SalesFile         string   `mapstructure:"sales_file"`
	SalesOverrideFile string   `mapstructure:"sales_override_file"`
	SalesSheet        string   `mapstructure:"sales_sheet"`
	SalesCountyColumn string   `mapstructure:"sales_county_column"`
	SalesValueColumns []string `mapstructure:"sales_value_columns"`
	DistrictFile      string   `mapstructure:"district_file"`
	CountiesGeoJSON   string   `mapstructure:"counties_geojson"`
	CountyCacheFile   string   `mapstructure:"county_cache_file"`
	DistrictGeoJSON   string   `mapstructure:"district_geojson"`
	StateFIPS         string   `mapstructure:"state_fips"`
}

type Output struct {
	File string `mapstructure:"output_file"`
}

type Projection struct {
	ViewboxWidth  float64   `mapstructure:"viewbox_width"`
	ViewboxHeight float64   `mapstructure:"viewbox_height"`
	Mode          string    `mapstructure:"projection_mode"`
	Precision     int       `mapstructure:"coordinate_precision"`
	Bounds        []float64 `mapstructure:"map_bounds"`         // minLon,minLat,maxLon,maxLat
	Simplify      float64   `mapstructure:"simplify_tolerance"` // unidades do viewbox, 0 desliga
}

type Geometry struct {
	MinRingArea float64 `mapstructure:"geometry_min_ring_area"`
}

type Page struct {
	Title       string `mapstructure:"page_title"`
	Heading     string `mapstructure:"page_heading"`
	Description string `mapstructure:"page_description"` // parágrafos separados por linha em branco
	LegendTitle string `mapstructure:"legend_title"`
	SourceNote  string `mapstructure:"source_note"`
	FontURL     string `mapstructure:"font_url"`
	FontFamily  string `mapstructure:"font_family"`
}

type Shapes struct {
	StateName     string  `mapstructure:"state_name"`
	ListingFile   string  `mapstructure:"county_listing_file"`
	ExpectedCount int     `mapstructure:"expected_county_count"`
	Precision     int     `mapstructure:"shapes_coordinate_precision"`
	Simplify      float64 `mapstructure:"shapes_simplify_tolerance"`
}

const defaultDescription = `Soybeans are among Kentucky's most important crops, and they play a meaningful role in the agricultural economy of the 6th Congressional District. In 2022, farms in the district sold approximately $43.7 million worth of soybeans.

In the 6th District, soybeans provide a consistent cash crop that balances the more variable returns from livestock, tobacco, and specialty crops. Many farms rely on soybeans as part of diversified rotations, which improves soil health and sustainability.`

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("SALES_FILE", "kentucky-soybean-sales-2022.csv")
	viper.SetDefault("SALES_OVERRIDE_FILE", "district6-soybean-sales.csv")
	viper.SetDefault("SALES_SHEET", "")
	viper.SetDefault("SALES_COUNTY_COLUMN", "County")
	viper.SetDefault("SALES_VALUE_COLUMNS", "Sales,Soybean Sales")
	viper.SetDefault("DISTRICT_FILE", "data/district6.yaml")
	viper.SetDefault("COUNTIES_GEOJSON", "census-data/ky_counties.geojson")
	viper.SetDefault("COUNTY_CACHE_FILE", "ky_counties.json")
	viper.SetDefault("DISTRICT_GEOJSON", "census-data/district6.geojson")
	viper.SetDefault("STATE_FIPS", "21")

	viper.SetDefault("OUTPUT_FILE", "kentucky-district6-embeddable.html")

	// Viewbox 1000x500, mesmo enquadramento usado no site
	viper.SetDefault("VIEWBOX_WIDTH", 1000)
	viper.SetDefault("VIEWBOX_HEIGHT", 500)
	viper.SetDefault("PROJECTION_MODE", ProjectionModeStretch)
	viper.SetDefault("COORDINATE_PRECISION", 1)
	viper.SetDefault("MAP_BOUNDS", "")
	viper.SetDefault("SIMPLIFY_TOLERANCE", 0)

	viper.SetDefault("GEOMETRY_MIN_RING_AREA", 1e-9) // graus quadrados

	viper.SetDefault("PAGE_TITLE", "Kentucky 6th Congressional District - Soybean Sales Heat Map")
	viper.SetDefault("PAGE_HEADING", "Kentucky 6th Congressional District - Agricultural Significance of Soybeans")
	viper.SetDefault("PAGE_DESCRIPTION", defaultDescription)
	viper.SetDefault("LEGEND_TITLE", "Soybean Sales (2022)*")
	viper.SetDefault("SOURCE_NOTE", "*US Census of Agriculture")
	viper.SetDefault("FONT_URL", "https://fonts.googleapis.com/css2?family=Source+Sans+3:wght@400;600&display=swap")
	viper.SetDefault("FONT_FAMILY", "'Source Sans 3', Arial, sans-serif")

	viper.SetDefault("STATE_NAME", "Kentucky")
	viper.SetDefault("COUNTY_LISTING_FILE", "ky_county_list.txt")
	viper.SetDefault("EXPECTED_COUNTY_COUNT", 120)
	viper.SetDefault("SHAPES_COORDINATE_PRECISION", 2)
	viper.SetDefault("SHAPES_SIMPLIFY_TOLERANCE", 0.3)
}

// NewConfig carrega a configuração. envFile vazio procura um .env nos diretórios conhecidos.
func NewConfig(envFile string) (*Config, error) {
	loadEnvFile(envFile)

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	if envFile != "" {
		viper.SetConfigFile(envFile)
	} else {
		viper.SetConfigFile(".env")
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente e valores padrão (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	for i, column := range config.Input.SalesValueColumns {
		config.Input.SalesValueColumns[i] = strings.TrimSpace(column)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações que impediriam a projeção
func (c *Config) Validate() error {
	switch c.Projection.Mode {
	case ProjectionModeStretch, ProjectionModeFit:
	default:
		return fmt.Errorf("config: invalid projection mode %q (expected %q or %q)",
			c.Projection.Mode, ProjectionModeStretch, ProjectionModeFit)
	}

	if c.Projection.ViewboxWidth <= 0 || c.Projection.ViewboxHeight <= 0 {
		return fmt.Errorf("config: viewbox must be positive, got %vx%v",
			c.Projection.ViewboxWidth, c.Projection.ViewboxHeight)
	}

	if c.Projection.Precision < 0 || c.Projection.Precision > 6 {
		return fmt.Errorf("config: coordinate precision must be between 0 and 6, got %d", c.Projection.Precision)
	}

	if c.Shapes.Precision < 0 || c.Shapes.Precision > 6 {
		return fmt.Errorf("config: shapes coordinate precision must be between 0 and 6, got %d", c.Shapes.Precision)
	}

	if c.Projection.Simplify < 0 || c.Shapes.Simplify < 0 {
		return fmt.Errorf("config: simplify tolerance must not be negative, got %v and %v",
			c.Projection.Simplify, c.Shapes.Simplify)
	}

	if n := len(c.Projection.Bounds); n != 0 && n != 4 {
		return fmt.Errorf("config: map bounds needs 4 values (minLon,minLat,maxLon,maxLat), got %d", n)
	}

	if c.Input.SalesFile == "" {
		return fmt.Errorf("config: sales file is required")
	}

	if c.Input.DistrictFile == "" && c.Input.SalesOverrideFile == "" {
		return fmt.Errorf("config: district file or sales override file is required to know the district counties")
	}

	if c.Output.File == "" {
		return fmt.Errorf("config: output file is required")
	}

	return nil
}

// DescriptionParagraphs divide a descrição em parágrafos
func (p Page) DescriptionParagraphs() []string {
	paragraphs := []string{}
	for _, paragraph := range strings.Split(strings.ReplaceAll(p.Description, "\r\n", "\n"), "\n\n") {
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		if paragraph != "" {
			paragraphs = append(paragraphs, paragraph)
		}
	}
	return paragraphs
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile(envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			logrus.Warn("Não foi possível carregar o arquivo .env informado: ", envFile)
		}
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente e valores padrão")
}
