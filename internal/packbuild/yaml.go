package packbuild

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hol-api/internal/errors"
)

func writeYAML(ctx context.Context, base string, docs []*document) (string, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", base)
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", errors.Wrapf(err, "failed to marshal %s", doc.ID)
		}
		path := filepath.Join(base, doc.ID+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return base, nil
}
