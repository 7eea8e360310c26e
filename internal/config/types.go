package config

// Supported hosts. HostCombined is the pseudo-host for a project targeting
// both Excel and PowerPoint through one shared manifest.
const (
	HostExcel      = "excel"
	HostPowerPoint = "powerpoint"
	HostCombined   = "xp"
)

// Hosts is the fixed set of hosts a template ships sources and manifests for.
var Hosts = []string{HostExcel, HostPowerPoint, HostCombined}

const (
	// JSONManifestFormat selects the structured manifest. Any other format value
	// is treated as the legacy XML manifest.
	JSONManifestFormat = "json"

	// DefaultDebugHost is the app_to_debug value used for the combined host.
	DefaultDebugHost = HostExcel

	// RandomAppID is handed to the manifest tool when no app id was supplied.
	RandomAppID = "random"

	// DefaultManifestTool is the command that patches name and id into the manifest.
	DefaultManifestTool = "npx office-addin-manifest"
)

// Options holds everything a conversion run needs to know about its invocation.
// It is built once from the command line and passed by value to the converter.
type Options struct {
	Host           string // One of Hosts
	ManifestFormat string // "json" or anything else for XML
	ProjectName    string // Optional display name for the manifest
	AppID          string // Optional unique id for the manifest
	Dir            string // Project directory the template lives in
	ManifestTool   string // Command line of the manifest-editing tool
}

// Layout lists the template files and names the converter removes or rewrites.
// Defaults come from the embedded layout.yaml and can be overridden per key.
type Layout struct {
	TestPackages     []string `yaml:"test_packages"`         // devDependencies only needed by the test suite
	AuxiliaryDirs    []string `yaml:"auxiliary_directories"` // Directories removed recursively
	SupportFiles     []string `yaml:"support_files"`         // Repository scaffolding files
	DebugTestsConfig string   `yaml:"debug_tests_configuration"`
	InstallTask      string   `yaml:"install_task"`
}
