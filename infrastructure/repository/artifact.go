package repository

import (
	"github.com/vfg2006/district-heatmap/pkg/utils"
)

// ArtifactRepository grava os arquivos produzidos pela execução (página, listagem)
type ArtifactRepository interface {
	Save(path string, content []byte) error
}

type artifactRepository struct{}

func NewArtifactRepository() ArtifactRepository {
	return &artifactRepository{}
}

func (a *artifactRepository) Save(path string, content []byte) error {
	if err := utils.WriteFileAtomic(path, content, 0o644); err != nil {
		return newOutputError(path, err)
	}
	return nil
}
