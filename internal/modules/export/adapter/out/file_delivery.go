package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	exportout "hourly/internal/modules/export/port/out"
)

// FileDelivery saves exports into a directory. The MIME hint is accepted
// for interface parity with other delivery targets but a plain file write
// has no use for it.
type FileDelivery struct {
	dir string
}

func NewFileDelivery(dir string) exportout.Delivery {
	return &FileDelivery{dir: dir}
}

func (d *FileDelivery) Deliver(_ context.Context, name, _ string, payload []byte) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
