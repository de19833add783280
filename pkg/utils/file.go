package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFileAtomic grava em um arquivo temporário no mesmo diretório e renomeia,
// para que o destino nunca fique pela metade
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	suffix, err := GenerateID()
	if err != nil {
		return errors.Wrap(err, "generate temp file suffix")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}

	tmp := path + ".tmp-" + suffix
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "rename %s to %s", tmp, path)
	}

	return nil
}
