package cmd

import (
	"fmt"
	"path/filepath"

	"convert-single-host/internal/config"
	"convert-single-host/internal/converter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runConvert validates the arguments, loads the layout and runs the converter
// against the project directory.
func runConvert(cmd *cobra.Command, args []string) error {
	// Nothing may be touched before the host has been validated.
	opts, err := config.ParseArgs(args)
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(viper.GetString("dir"))
	if err != nil {
		return fmt.Errorf("failed to resolve project directory: %w", err)
	}
	opts.Dir = dir
	if tool := viper.GetString("manifest_tool"); tool != "" {
		opts.ManifestTool = tool
	}

	layout, err := config.LoadLayout(viper.GetString("layout"))
	if err != nil {
		return err
	}

	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)
	return converter.New(fs, opts, layout, converter.ExecRunner{}).Run(cmd.Context())
}
