package converter

import (
	"fmt"
	"slices"
	"strings"

	"convert-single-host/internal/jsondoc"
	"convert-single-host/internal/logger"
)

const (
	packageJSONFile = "package.json"

	// selfScript runs the template's own conversion and is meaningless afterwards.
	selfScript = "convert-to-single-host"
)

// updatePackageJSON points the debug config at the selected host and drops the
// engines field, the per-host and test scripts, and the test tooling packages.
func (c *Converter) updatePackageJSON() error {
	doc, err := c.loadJSON(packageJSONFile)
	if err != nil {
		return err
	}
	root := doc.Root()

	cfg := jsondoc.Object(root, "config")
	if cfg == nil {
		return fmt.Errorf("%w: %s: config is not an object", ErrParse, packageJSONFile)
	}
	jsondoc.SetString(cfg, "app_to_debug", c.opts.DebugHost())

	jsondoc.Delete(root, "engines")

	scripts := jsondoc.Object(root, "scripts")
	if scripts == nil {
		return fmt.Errorf("%w: %s: scripts is not an object", ErrParse, packageJSONFile)
	}

	removed := jsondoc.DeleteFunc(scripts, func(key string) bool {
		return strings.HasPrefix(key, "start:")
	})
	removed = append(removed, jsondoc.DeleteFunc(scripts, func(key string) bool {
		return strings.HasPrefix(key, "sideload:") || strings.HasPrefix(key, "unload:") || key == selfScript
	})...)
	// Substring match: also catches "test:unit", "pretest" and friends.
	removed = append(removed, jsondoc.DeleteFunc(scripts, func(key string) bool {
		return strings.Contains(key, "test")
	})...)
	logger.Debug("[DEBUG] Removed scripts: %s\n", strings.Join(removed, ", "))

	if devDeps := jsondoc.Lookup(root, "devDependencies"); devDeps != nil {
		pkgs := jsondoc.DeleteFunc(devDeps, func(key string) bool {
			return slices.Contains(c.layout.TestPackages, key)
		})
		logger.Debug("[DEBUG] Removed devDependencies: %s\n", strings.Join(pkgs, ", "))
	}

	manifest := manifestFile(c.opts.ManifestFormat)
	jsondoc.SetString(scripts, "start", "office-addin-debugging start "+manifest)
	jsondoc.SetString(scripts, "stop", "office-addin-debugging stop "+manifest)
	jsondoc.SetString(scripts, "validate", "office-addin-manifest validate "+manifest)

	if err := c.writeFile(packageJSONFile, doc.Bytes()); err != nil {
		return err
	}
	logger.Info("[INFO] Updated %s for %s\n", packageJSONFile, c.opts.Host)
	return nil
}
