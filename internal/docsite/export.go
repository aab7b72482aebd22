package docsite

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Export writes the whole site as static files under outDir. Every
// page becomes <path>/index.html so the published site serves clean
// URLs, and the static assets directory is copied to static/.
func (s *Site) Export(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, path := range s.Paths() {
		page, _ := s.Page(path)
		out, err := s.RenderHTML(page, false)
		if err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}

		dir := filepath.Join(outDir, filepath.FromSlash(path))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		file := filepath.Join(dir, "index.html")
		if err := os.WriteFile(file, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
		s.logger.Debug("exported page", "path", path, "file", file)
	}

	if static := s.cfg.Paths.Static; static != "" {
		if _, err := os.Stat(static); err == nil {
			if err := copyDir(static, filepath.Join(outDir, "static")); err != nil {
				return fmt.Errorf("copy static: %w", err)
			}
		}
	}

	s.logger.Info("site exported", "pages", len(s.Paths()), "dir", outDir)
	return nil
}

// copyDir copies a directory tree.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
