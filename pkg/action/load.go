package action

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jingkaihe/gha-docgen/pkg/logger"
	"github.com/pkg/errors"
)

// Load reads the action metadata file relative to dir. When path is empty the
// DefaultFilenames are tried in order and the first readable one wins. It
// returns the file content together with the path that was read.
func Load(ctx context.Context, dir, path string) ([]byte, string, error) {
	candidates := DefaultFilenames
	if path != "" {
		candidates = []string{path}
	}

	var lastErr error
	for _, name := range candidates {
		filePath := name
		if !filepath.IsAbs(filePath) {
			filePath = filepath.Join(dir, name)
		}

		logger.G(ctx).WithField("path", filePath).Debug("reading action file")
		data, err := os.ReadFile(filePath)
		if err == nil {
			return data, filePath, nil
		}

		logger.G(ctx).WithError(err).WithField("path", filePath).Debug("action file not readable")
		lastErr = err
	}

	return nil, "", errors.WithStack(lastErr)
}
