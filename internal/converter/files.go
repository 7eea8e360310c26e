package converter

import (
	"fmt"
	"io"

	"convert-single-host/internal/jsondoc"
	"convert-single-host/internal/logger"

	"github.com/spf13/afero"
)

// removeFile deletes a single file. An optional file that does not exist is skipped;
// a required one surfaces the not-found error.
func (c *Converter) removeFile(path string, optional bool) error {
	if optional {
		exists, err := afero.Exists(c.fs, path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !exists {
			logger.Debug("[DEBUG] %s not present, nothing to remove\n", path)
			return nil
		}
	}

	if err := c.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Removed %s\n", path)
	return nil
}

// removeDir recursively deletes a directory if it exists.
func (c *Converter) removeDir(path string) error {
	exists, err := afero.DirExists(c.fs, path)
	if err != nil {
		return fmt.Errorf("unable to delete folder %q: %w", path, err)
	}
	if !exists {
		logger.Debug("[DEBUG] Folder %s not present, nothing to remove\n", path)
		return nil
	}

	if err := c.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("unable to delete folder %q: %w", path, err)
	}
	logger.Info("[INFO] Removed folder %s\n", path)
	return nil
}

// copyFileIfExists copies src over dst when src exists and reports whether it did.
// The destination keeps its own permissions if it already exists.
func (c *Converter) copyFileIfExists(src, dst string) (bool, error) {
	in, err := c.fs.Open(src)
	if err != nil {
		exists, statErr := afero.Exists(c.fs, src)
		if statErr == nil && !exists {
			return false, nil
		}
		return false, fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	out, err := c.fs.Create(dst)
	if err != nil {
		return false, fmt.Errorf("create target failed: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return false, fmt.Errorf("copy %s to %s failed: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("close %s failed: %w", dst, err)
	}
	return true, nil
}

func (c *Converter) readFile(path string) (string, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func (c *Converter) writeFile(path string, content []byte) error {
	if err := afero.WriteFile(c.fs, path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Wrote %s\n", path)
	return nil
}

// loadJSON reads and parses a strict JSON document whose top level must be an object.
func (c *Converter) loadJSON(path string) (*jsondoc.Document, error) {
	return c.loadDocument(path, jsondoc.Parse)
}

// loadJSONC is loadJSON for files that may contain comments and trailing commas.
func (c *Converter) loadJSONC(path string) (*jsondoc.Document, error) {
	return c.loadDocument(path, jsondoc.ParseJSONC)
}

func (c *Converter) loadDocument(path string, parse func([]byte) (*jsondoc.Document, error)) (*jsondoc.Document, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if !jsondoc.IsObject(doc.Root()) {
		return nil, fmt.Errorf("%w: %s: top-level value is not an object", ErrParse, path)
	}
	return doc, nil
}
