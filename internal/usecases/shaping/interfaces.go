package shaping

import "context"

// CacheBuilder pré-projeta os condados do estado para o cache de paths
type CacheBuilder interface {
	BuildCache(ctx context.Context) (*Result, error)
}

type Result struct {
	CacheFile   string
	ListingFile string
	Counties    int
	Expected    int
	Skipped     []string
}
