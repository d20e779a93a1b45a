package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/thoreinstein/dzl/internal/logging"
	"github.com/thoreinstein/dzl/internal/paths"
)

// isolate runs the test in an empty working directory with an empty
// global config directory, and returns both.
func isolate(t *testing.T) (cwd, global string) {
	t.Helper()
	cwd = t.TempDir()
	global = t.TempDir()
	t.Chdir(cwd)
	t.Setenv(paths.ConfigDirEnv, global)
	return cwd, global
}

// resetFlags restores every package-level flag to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	configPath = ""
	colorFlag = string(logging.ColorNever)
	icons = false
	verbosity = 0
	quiet = false
	showFormat = "yaml"
	configGlobal = false
	configForce = false
	doctorJSON = false
	doctorAll = false
}

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeDzlToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, paths.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
