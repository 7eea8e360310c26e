package converter

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"convert-single-host/internal/config"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const templatePackageJSON = `{
  "name": "office-addin-taskpane-content",
  "version": "0.0.1",
  "config": {
    "app_to_debug": "excel",
    "app_type_to_debug": "desktop",
    "dev_server_port": 3000
  },
  "engines": {
    "node": ">=16 <21"
  },
  "scripts": {
    "build": "webpack --mode production",
    "convert-to-single-host": "node convertToSingleHost.js",
    "dev-server": "webpack serve --mode development",
    "lint": "office-addin-lint check",
    "sideload:excel": "office-addin-debugging start manifest.excel.xml desktop",
    "start": "office-addin-debugging start manifest.xml",
    "start:desktop": "office-addin-debugging start manifest.xml desktop",
    "start:web": "office-addin-debugging start manifest.xml web",
    "stop": "office-addin-debugging stop manifest.xml",
    "test": "npm run test:unit && npm run test:e2e",
    "test:e2e": "mocha -r ts-node/register test/end-to-end/*.ts",
    "test:unit": "mocha -r ts-node/register test/unit/*.test.ts",
    "unload:excel": "office-addin-debugging stop manifest.excel.xml",
    "validate": "office-addin-manifest validate manifest.xml",
    "watch": "webpack --mode development --watch"
  },
  "devDependencies": {
    "@types/mocha": "^10.0.6",
    "@types/node": "^20.11.0",
    "copy-webpack-plugin": "^12.0.2",
    "mocha": "^10.2.0",
    "office-addin-debugging": "^5.0.12",
    "office-addin-test-helpers": "^1.5.0",
    "ts-node": "^10.9.2",
    "webpack": "^5.90.0"
  },
  "browserslist": [
    "last 2 versions"
  ]
}`

const templateLaunchJSON = `{
  "version": "0.2.0",
  "configurations": [
    {
      "name": "Debug Tests",
      "type": "node",
      "request": "launch",
      "program": "${workspaceFolder}/node_modules/mocha/bin/_mocha",
      "args": [
        "-u",
        "bdd"
      ],
      "internalConsoleOptions": "openOnSessionStart"
    },
    {
      "name": "Excel Desktop (Edge Chromium)",
      "type": "msedge",
      "request": "attach",
      "port": 9229,
      "preLaunchTask": "Debug: Excel Desktop"
    }
  ]
}`

const templateTasksJSON = `{
  "version": "2.0.0",
  "tasks": [
    {
      "label": "Build (Development)",
      "type": "npm",
      "script": "build:dev",
      "dependsOn": [
        "Check OS",
        "Install"
      ]
    },
    {
      "label": "Check OS",
      "type": "shell"
    },
    {
      "label": "Debug: Excel Desktop",
      "type": "shell",
      "command": "npm",
      "dependsOn": "Check OS"
    },
    {
      "label": "Install",
      "type": "npm",
      "script": "install"
    },
    {
      "label": "Lint: Check for problems",
      "type": "npm",
      "script": "lint"
    }
  ]
}`

const templateContentJS = `import "./excel";
import "./powerpoint";
import "./xp";

Office.onReady(() => {
  document.getElementById("app-body").style.display = "flex";
});
`

const templateWebpackConfig = `new CopyWebpackPlugin({
  patterns: [
    {
      from: "manifest*.xml",
      to: "[name]" + "[ext]",
      transform(content) {
        return dev ? content : content.toString().replace(new RegExp(urlDev + "(?:public/)?", "g"), urlProd);
      },
    },
  ],
}),
new HtmlWebpackPlugin({ filename: "taskpane.xml" }),
`

// newTemplate builds the multi-host template project in memory.
func newTemplate(t *testing.T) afero.Fs {
	t.Helper()

	files := map[string]string{
		"package.json":              templatePackageJSON,
		".vscode/launch.json":       templateLaunchJSON,
		".vscode/tasks.json":        templateTasksJSON,
		"webpack.config.js":         templateWebpackConfig,
		"src/content/content.js":    templateContentJS,
		"src/content/excel.js":      "// excel\n",
		"src/content/powerpoint.js": "// powerpoint\n",
		"src/content/xp.js":         "// xp\n",
		"test/unit/excel.test.ts":   "// test\n",
		".github/workflows/ci.yml":  "name: ci\n",
		".azure-devops/build.yml":   "trigger: none\n",
		"manifest.xml":              "<OfficeApp>generic</OfficeApp>",
		"manifest.json":             `{"id": "generic"}`,
	}
	for _, host := range config.Hosts {
		files[hostManifestFile(host, "xml")] = "<OfficeApp>" + host + "</OfficeApp>"
		files[hostManifestFile(host, "json")] = `{"id": "` + host + `"}`
	}
	layout := defaultLayout(t)
	for _, f := range layout.SupportFiles {
		files[f] = "support"
	}

	return writeFiles(t, afero.NewMemMapFs(), files)
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) afero.Fs {
	t.Helper()
	for name, content := range files {
		path := filepath.FromSlash(name)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

func defaultLayout(t *testing.T) config.Layout {
	t.Helper()
	layout, err := config.LoadLayout("")
	require.NoError(t, err)
	return layout
}

func newConverter(t *testing.T, fs afero.Fs, args []string, runner Runner) *Converter {
	t.Helper()
	opts, err := config.ParseArgs(args)
	require.NoError(t, err)
	if runner == nil {
		runner = &fakeRunner{}
	}
	return New(fs, opts, defaultLayout(t), runner)
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, filepath.FromSlash(name))
	require.NoError(t, err)
	return string(data)
}

func exists(t *testing.T, fs afero.Fs, name string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, filepath.FromSlash(name))
	require.NoError(t, err)
	return ok
}

func decodeJSON(t *testing.T, fs afero.Fs, name string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(readFile(t, fs, name)), v))
}

type runCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls []runCall
	out   []byte
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runCall{dir: dir, name: name, args: args})
	return f.out, f.err
}
