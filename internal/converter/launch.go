package converter

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"convert-single-host/internal/jsondoc"
	"convert-single-host/internal/logger"

	"github.com/tailscale/hujson"
)

var launchJSONFile = filepath.Join(".vscode", "launch.json")

// debugConfigPattern matches the launch configuration named name when it is the
// first entry of "configurations". Used for launch files that cannot be parsed at all.
func debugConfigPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`"configurations": \[\r?\n(.*\{(.*\r?\n)*?.*"name": "` +
		regexp.QuoteMeta(name) + `",\r?\n(.*\r?\n)*?.*\},)`)
}

// updateLaunchJSON removes the test debugging configuration from launch.json.
func (c *Converter) updateLaunchJSON() error {
	name := c.layout.DebugTestsConfig

	doc, err := c.loadJSONC(launchJSONFile)
	switch {
	case err == nil:
		removed := jsondoc.RemoveElements(jsondoc.Lookup(doc.Root(), "configurations"), func(elem *hujson.Value) bool {
			v, ok := jsondoc.StringValue(jsondoc.Lookup(elem, "name"))
			return ok && v == name
		})
		if removed == 0 {
			logger.Warn("[WARN] No %q configuration found in %s\n", name, launchJSONFile)
			return nil
		}
		return c.writeFile(launchJSONFile, doc.Bytes())

	case errors.Is(err, ErrParse):
		// Not even JSONC; fall back to editing the text.
		logger.Debug("[DEBUG] %v, editing %s as text\n", err, launchJSONFile)
		return c.removeLaunchConfigText(name)

	default:
		return err
	}
}

func (c *Converter) removeLaunchConfigText(name string) error {
	content, err := c.readFile(launchJSONFile)
	if err != nil {
		return err
	}

	pattern := debugConfigPattern(name)
	if !pattern.MatchString(content) {
		logger.Warn("[WARN] No %q configuration found in %s\n", name, launchJSONFile)
		return nil
	}
	updated := pattern.ReplaceAllLiteralString(content, `"configurations": [`)
	if err := c.writeFile(launchJSONFile, []byte(updated)); err != nil {
		return fmt.Errorf("failed to update launch configuration: %w", err)
	}
	return nil
}
