package converter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"convert-single-host/internal/config"
	"convert-single-host/internal/logger"
)

var (
	contentDir  = filepath.Join("src", "content")
	contentFile = filepath.Join(contentDir, "content.js")

	// blankLines matches whitespace-only lines left behind by removed imports.
	blankLines = regexp.MustCompile(`(?m)^\s*[\r\n]`)
)

// manifestFile names the canonical manifest for a format, e.g. manifest.xml.
func manifestFile(format string) string {
	return "manifest." + format
}

// hostManifestFile names a host's manifest template, e.g. manifest.excel.xml.
func hostManifestFile(host, format string) string {
	return fmt.Sprintf("manifest.%s.%s", host, format)
}

// importLine is the statement content.js uses to pull in a host's code.
func importLine(host string) string {
	return fmt.Sprintf(`import "./%s";`, host)
}

// stripImport removes every import statement of a host and collapses the blank
// lines around them.
func stripImport(code, host string) string {
	code = strings.ReplaceAll(code, importLine(host), "")
	return blankLines.ReplaceAllString(code, "")
}

// pruneSourceTree keeps only the sources and manifest of the selected host and
// deletes the test and CI folders.
func (c *Converter) pruneSourceTree() error {
	format := c.opts.ManifestFormat

	// The host template becomes the canonical manifest. Templates are optional.
	template := hostManifestFile(c.opts.Host, format)
	copied, err := c.copyFileIfExists(template, manifestFile(format))
	if err != nil {
		return err
	}
	if copied {
		logger.Info("[INFO] Copied %s to %s\n", template, manifestFile(format))
	}

	code, err := c.readFile(contentFile)
	if err != nil {
		return err
	}

	targets := c.opts.TargetHosts()
	for _, host := range config.Hosts {
		if !slices.Contains(targets, host) {
			if err := c.removeFile(filepath.Join(contentDir, host+".js"), true); err != nil {
				return err
			}
			code = stripImport(code, host)
		}
		// Every template is redundant once the selected one has been copied.
		if err := c.removeFile(hostManifestFile(host, format), true); err != nil {
			return err
		}
	}

	if err := c.writeFile(contentFile, []byte(code)); err != nil {
		return err
	}

	for _, dir := range c.layout.AuxiliaryDirs {
		if err := c.removeDir(dir); err != nil {
			return err
		}
	}
	return nil
}
