package converter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"convert-single-host/internal/logger"
)

// Runner runs an external command in dir and returns its standard output.
// On failure the error should carry whatever the command wrote to stderr.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%v\nOutput: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// manifestToolArgs builds `<tool> modify <manifest> -g <appId> -d <projectName>` as argv.
func (c *Converter) manifestToolArgs() (string, []string, error) {
	tool := strings.Fields(c.opts.ManifestTool)
	if len(tool) == 0 {
		return "", nil, fmt.Errorf("%w: no manifest tool configured", ErrChildProcess)
	}
	args := append(tool[1:len(tool):len(tool)],
		"modify", c.opts.ManifestPath(),
		"-g", c.opts.ManifestAppID(),
		"-d", c.opts.ProjectName,
	)
	return tool[0], args, nil
}

// updateManifestIdentity writes the project name and app id into the manifest
// using the external manifest tool.
func (c *Converter) updateManifestIdentity(ctx context.Context) error {
	name, args, err := c.manifestToolArgs()
	if err != nil {
		return err
	}

	logger.Debug("[DEBUG] Running %s %s\n", name, strings.Join(args, " "))
	out, err := c.runner.Run(ctx, c.opts.Dir, name, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChildProcess, name, err)
	}
	if s := strings.TrimSpace(string(out)); s != "" {
		logger.Info("%s\n", s)
	}
	return nil
}
