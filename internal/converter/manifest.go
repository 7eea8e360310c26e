package converter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"convert-single-host/internal/config"
	"convert-single-host/internal/jsondoc"
	"convert-single-host/internal/logger"

	"github.com/tailscale/hujson"
)

var (
	webpackConfigFile = "webpack.config.js"
	tasksJSONFile     = filepath.Join(".vscode", "tasks.json")
)

// removeJSONManifestFiles deletes the structured manifest and its host templates.
// The canonical manifest.json is required; host templates are optional.
func (c *Converter) removeJSONManifestFiles(_ context.Context) error {
	return c.removeManifestFiles(config.JSONManifestFormat)
}

// modifyForJSONManifest switches the build and debug tooling over to manifest.json
// and deletes the XML manifests.
func (c *Converter) modifyForJSONManifest(_ context.Context) error {
	if err := c.updateWebpackConfig(); err != nil {
		return err
	}
	if err := c.updateTasksJSON(); err != nil {
		return err
	}
	return c.removeManifestFiles("xml")
}

func (c *Converter) removeManifestFiles(format string) error {
	if err := c.removeFile(manifestFile(format), false); err != nil {
		return err
	}
	for _, host := range config.Hosts {
		if err := c.removeFile(hostManifestFile(host, format), true); err != nil {
			return err
		}
	}
	logger.Info("[INFO] Removed %s manifest files\n", format)
	return nil
}

// updateWebpackConfig makes webpack copy manifest.json instead of manifest.xml.
func (c *Converter) updateWebpackConfig() error {
	content, err := c.readFile(webpackConfigFile)
	if err != nil {
		return err
	}
	n := strings.Count(content, ".xml")
	if err := c.writeFile(webpackConfigFile, []byte(strings.ReplaceAll(content, ".xml", ".json"))); err != nil {
		return err
	}
	logger.Debug("[DEBUG] Replaced %d .xml references in %s\n", n, webpackConfigFile)
	return nil
}

// updateTasksJSON makes every build and debug task depend on the install task only.
func (c *Converter) updateTasksJSON() error {
	doc, err := c.loadJSON(tasksJSONFile)
	if err != nil {
		return err
	}

	tasks := jsondoc.Lookup(doc.Root(), "tasks")
	if tasks != nil && !jsondoc.IsArray(tasks) {
		return fmt.Errorf("%w: %s: tasks is not an array", ErrParse, tasksJSONFile)
	}
	elems := jsondoc.Elements(tasks)
	for i := range elems {
		if dependsOnInstall(&elems[i]) {
			jsondoc.Set(&elems[i], "dependsOn", jsondoc.StringArray(c.layout.InstallTask))
		}
	}

	return c.writeFile(tasksJSONFile, doc.Bytes())
}

func dependsOnInstall(task *hujson.Value) bool {
	label, ok := jsondoc.StringValue(jsondoc.Lookup(task, "label"))
	return ok && (strings.HasPrefix(label, "Build") || strings.HasPrefix(label, "Debug:"))
}
