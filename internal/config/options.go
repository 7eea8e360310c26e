package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidArgument is returned for a missing or unsupported command-line argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseArgs builds Options from the positional arguments
// <host> <manifestFormat> [projectName] [appId].
// The host is checked here so an unsupported value fails before any file is touched.
func ParseArgs(args []string) (Options, error) {
	at := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	opts := Options{
		Host:           at(0),
		ManifestFormat: at(1),
		ProjectName:    at(2),
		AppID:          at(3),
		Dir:            ".",
		ManifestTool:   DefaultManifestTool,
	}

	if opts.Host == "" {
		return Options{}, fmt.Errorf("%w: the host was not provided", ErrInvalidArgument)
	}
	if !slices.Contains(Hosts, opts.Host) {
		return Options{}, fmt.Errorf("%w: '%s' is not a supported host", ErrInvalidArgument, opts.Host)
	}
	if opts.ManifestFormat == "" {
		return Options{}, fmt.Errorf("%w: the manifest format was not provided", ErrInvalidArgument)
	}
	return opts, nil
}

// TargetHosts returns the concrete hosts the converted project keeps.
func (o Options) TargetHosts() []string {
	if o.Host == HostCombined {
		return []string{HostExcel, HostPowerPoint}
	}
	return []string{o.Host}
}

// DebugHost is the value written to config.app_to_debug.
func (o Options) DebugHost() string {
	if o.Host == HostCombined {
		return DefaultDebugHost
	}
	return o.Host
}

// IsJSONManifest reports whether the structured manifest format was requested.
func (o Options) IsJSONManifest() bool {
	return o.ManifestFormat == JSONManifestFormat
}

// ManifestPath is the canonical manifest handed to the manifest tool.
func (o Options) ManifestPath() string {
	if o.IsJSONManifest() {
		return "manifest.json"
	}
	return "manifest.xml"
}

// ManifestAppID returns the app id for the manifest tool, falling back to the
// literal "random" the tool understands.
func (o Options) ManifestAppID() string {
	if o.AppID == "" {
		return RandomAppID
	}
	return o.AppID
}
