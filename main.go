package main

import (
	"context"
	"os"
	"os/signal"

	"convert-single-host/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles argument parsing and the conversion itself.
//
// convert-single-host turns a multi-host Office add-in template into a project for one host:
//   - Copies the host's manifest template over the canonical manifest and deletes the others
//   - Deletes the other hosts' sources and their imports from the shared content script
//   - Rewrites package.json, .vscode/launch.json and, for JSON manifests, .vscode/tasks.json
//     and webpack.config.js
//   - Optionally stamps the project name and app id into the manifest with office-addin-manifest
//   - Removes the template's tests, CI pipelines and repository support files
//
// Any failed step makes the program exit with status 1. Later steps still run.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
