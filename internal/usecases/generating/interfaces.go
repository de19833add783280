package generating

import "context"

// Generator produz a página do mapa de calor do distrito
type Generator interface {
	// Generate executa uma geração completa: leitura, projeção, cores, renderização e gravação
	Generate(ctx context.Context) (*Result, error)
}

// Result resume uma execução para o log final da CLI
type Result struct {
	RunID        string
	OutputFile   string
	Source       string // "geojson" ou "cache"
	Rendered     int
	Skipped      []string
	MissingSales []string
	MinSales     int64
	MaxSales     int64
	TotalSales   int64
	Bytes        int
}
