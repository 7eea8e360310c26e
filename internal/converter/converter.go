// Package converter prunes a multi-host Office add-in template down to a single
// host and a single manifest format.
//
// A run is a fixed sequence of stages. Each stage edits files in place and
// stops at its first error; the remaining stages still run, mirroring the
// template's own conversion script where every stage reported its failure
// independently. Nothing is rolled back.
package converter

import (
	"context"
	"errors"
	"fmt"

	"convert-single-host/internal/config"
	"convert-single-host/internal/logger"

	"github.com/spf13/afero"
)

var (
	// ErrParse is returned when a JSON configuration document cannot be parsed.
	ErrParse = errors.New("parse failure")

	// ErrChildProcess is returned when the manifest tool exits unsuccessfully.
	ErrChildProcess = errors.New("child process failure")

	// ErrConversionFailed wraps the joined errors of every failed stage.
	ErrConversionFailed = errors.New("conversion failed")
)

// Converter applies the single-host conversion to a project tree.
type Converter struct {
	fs     afero.Fs
	opts   config.Options
	layout config.Layout
	runner Runner
}

// New returns a Converter operating on fs, whose root is the project directory.
func New(fs afero.Fs, opts config.Options, layout config.Layout, runner Runner) *Converter {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Converter{fs: fs, opts: opts, layout: layout, runner: runner}
}

type stage struct {
	name string
	run  func(ctx context.Context) error
}

func (c *Converter) stages() []stage {
	stages := []stage{
		{name: "modifying for single host", run: c.convertToSingleHost},
	}
	if c.opts.IsJSONManifest() {
		stages = append(stages, stage{name: "modifying for JSON manifest", run: c.modifyForJSONManifest})
	} else {
		stages = append(stages, stage{name: "removing JSON manifest files", run: c.removeJSONManifestFiles})
	}
	if c.opts.ProjectName != "" {
		stages = append(stages, stage{name: "updating the manifest", run: c.updateManifestIdentity})
	}
	return append(stages, stage{name: "removing support files", run: c.removeSupportFiles})
}

// Run executes every stage in order. Failed stages are logged as they happen and
// returned together, wrapped in ErrConversionFailed.
func (c *Converter) Run(ctx context.Context) error {
	logger.Info("[INFO] Converting project to %s with %s manifest\n", c.opts.Host, c.opts.ManifestFormat)

	var errs []error
	for _, s := range c.stages() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		logger.Debug("[DEBUG] Stage: %s\n", s.name)
		if err := s.run(ctx); err != nil {
			logger.Error("[ERROR] Error %s: %v\n", s.name, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConversionFailed, errors.Join(errs...))
	}
	logger.Info("[INFO] Project converted for %s\n", c.opts.Host)
	return nil
}

// convertToSingleHost prunes the source tree, then rewrites package.json and launch.json.
func (c *Converter) convertToSingleHost(_ context.Context) error {
	if err := c.pruneSourceTree(); err != nil {
		return err
	}
	if err := c.updatePackageJSON(); err != nil {
		return err
	}
	return c.updateLaunchJSON()
}
