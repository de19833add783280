package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vfg2006/district-heatmap/infrastructure/repository"
	"github.com/vfg2006/district-heatmap/internal/config"
	"github.com/vfg2006/district-heatmap/internal/usecases/generating"
	"github.com/vfg2006/district-heatmap/internal/usecases/shaping"
	"github.com/vfg2006/district-heatmap/pkg/log"
	"github.com/vfg2006/district-heatmap/pkg/runErrors"
	"github.com/vfg2006/district-heatmap/pkg/utils"
)

var (
	envFile     string
	outputFile  string
	cacheFile   string
	listingFile string
)

var rootCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Generate an embeddable county sales heat map for a congressional district",
	Long: `heatmap reads county boundaries, a county sales table and a district roster,
and writes one self-contained HTML page with an SVG heat map of the district.

Inputs and page text come from environment variables or a .env file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runGenerate,
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Project the state's counties into the SVG path cache and write the county listing",
	Args:  cobra.NoArgs,
	RunE:  runShapes,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (default: ./.env or ../.env)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output HTML file (overrides OUTPUT_FILE)")

	shapesCmd.Flags().StringVar(&cacheFile, "cache", "", "County path cache to write (overrides COUNTY_CACHE_FILE)")
	shapesCmd.Flags().StringVar(&listingFile, "listing", "", "County listing to write (overrides COUNTY_LISTING_FILE)")

	rootCmd.AddCommand(shapesCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig(envFile)
	if err != nil {
		return nil, runErrors.RunError{Code: runErrors.ErrInvalidConfig, Message: err.Error()}
	}

	log.Configure(cfg.App.LogLevel, nil)
	log.L.Debugf("Nível de log configurado para: %s", cfg.App.LogLevel)

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputFile != "" {
		cfg.Output.File = outputFile
	}

	ctx, _ := log.WithCorrelationID(cmd.Context())
	logger := log.ForContext(ctx)
	logger.WithField("output", cfg.Output.File).Info("Gerando mapa de calor do distrito")

	generator := generating.NewService(
		cfg,
		repository.NewDistrictRepository(cfg.Input),
		repository.NewSalesRepository(cfg.Input),
		repository.NewCountyShapeRepository(cfg.Input),
		repository.NewCountyCacheRepository(cfg.Input.CountyCacheFile),
		repository.NewArtifactRepository(),
	)

	result, err := generator.Generate(ctx)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"output":        result.OutputFile,
		"source":        result.Source,
		"counties":      result.Rendered,
		"skipped":       len(result.Skipped),
		"missing_sales": len(result.MissingSales),
		"max_sales":     utils.FormatDollars(result.MaxSales),
		"total_sales":   utils.FormatDollars(result.TotalSales),
		"size":          humanize.Bytes(uint64(result.Bytes)),
	}).Info("Mapa de calor gerado com sucesso")

	return nil
}

func runShapes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cacheFile != "" {
		cfg.Input.CountyCacheFile = cacheFile
	}
	if listingFile != "" {
		cfg.Shapes.ListingFile = listingFile
	}

	ctx, _ := log.WithCorrelationID(cmd.Context())
	logger := log.ForContext(ctx)
	logger.WithField("file", cfg.Input.CountiesGeoJSON).Info("Montando cache de paths dos condados")

	builder := shaping.NewService(
		cfg,
		repository.NewCountyShapeRepository(cfg.Input),
		repository.NewCountyCacheRepository(cfg.Input.CountyCacheFile),
		repository.NewArtifactRepository(),
	)

	result, err := builder.BuildCache(ctx)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"cache":    result.CacheFile,
		"listing":  result.ListingFile,
		"counties": humanize.Comma(int64(result.Counties)),
		"skipped":  len(result.Skipped),
	}).Info("Cache de paths gravado com sucesso")

	return nil
}
