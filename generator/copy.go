package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.mercari.io/crudgen/tplbin"
)

// CopyDefaultTemplates copies default templete files to dir.
func CopyDefaultTemplates(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	entries, err := fs.ReadDir(tplbin.Assets, ".")
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		buf, err := fs.ReadFile(tplbin.Assets, e.Name())
		if err != nil {
			return err
		}

		dst := filepath.Join(dir, e.Name())
		if cur, err := os.ReadFile(dst); err == nil && !bytes.Equal(cur, buf) {
			return fmt.Errorf("%s already exists and differs from the default template", dst)
		}

		if err := os.WriteFile(dst, buf, 0o644); err != nil {
			return err
		}
	}
	return nil
}
