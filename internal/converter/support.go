package converter

import (
	"context"

	"convert-single-host/internal/logger"
)

// removeSupportFiles deletes the template repository's own scaffolding.
// Files already gone are skipped rather than failing the run.
func (c *Converter) removeSupportFiles(_ context.Context) error {
	for _, f := range c.layout.SupportFiles {
		if err := c.removeFile(f, true); err != nil {
			return err
		}
	}
	logger.Info("[INFO] Removed repository support files\n")
	return nil
}
