package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/dzl/internal/paths"
	"github.com/thoreinstein/dzl/pkg/dzl"
)

// isolate points both search locations at empty temp dirs.
func isolate(t *testing.T) (cwd, global string) {
	t.Helper()
	cwd = t.TempDir()
	global = t.TempDir()
	t.Chdir(cwd)
	t.Setenv(paths.ConfigDirEnv, global)
	return cwd, global
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, paths.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if !cfg.FileLoggingEnabled || cfg.LogPath != dzl.DefaultLogPath {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if cfg.Threshold == nil || *cfg.Threshold != dzl.LevelCustom {
		t.Errorf("threshold = %v, want custom", cfg.Threshold)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "file_logging_enabled = false\nlog_path = \"app.log\"\nlog_level = \"warn\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FileLoggingEnabled {
		t.Error("file_logging_enabled = false was not honored")
	}
	if cfg.LogPath != "app.log" {
		t.Errorf("LogPath = %q, want app.log", cfg.LogPath)
	}
	if *cfg.Threshold != dzl.LevelWarn {
		t.Errorf("Threshold = %q, want warn", *cfg.Threshold)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "log_level = \"debug\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.FileLoggingEnabled || cfg.LogPath != dzl.DefaultLogPath || *cfg.Threshold != dzl.LevelDebug {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad_SearchOrder(t *testing.T) {
	cwd, global := isolate(t)

	writeConfig(t, global, "log_level = \"error\"\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Threshold != dzl.LevelError {
		t.Errorf("global config not used: threshold = %q", *cfg.Threshold)
	}

	writeConfig(t, cwd, "log_level = \"trace\"\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Threshold != dzl.LevelTrace {
		t.Errorf("current directory should take precedence: threshold = %q", *cfg.Threshold)
	}
}

func TestLoad_LegacyKey(t *testing.T) {
	isolate(t)

	t.Run("legacy only", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "write_to_log_file = false\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FileLoggingEnabled {
			t.Error("write_to_log_file = false was not honored")
		}
	})

	t.Run("current key wins", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "write_to_log_file = false\nfile_logging_enabled = true\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if !cfg.FileLoggingEnabled {
			t.Error("file_logging_enabled should override the legacy key")
		}
	})
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "log_level = \"debug\"\n")
	t.Setenv("DZL_LOG_LEVEL", "error")
	t.Setenv("DZL_LOG_PATH", "env.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.Threshold != dzl.LevelError || cfg.LogPath != "env.log" {
		t.Errorf("Load() = %+v, want env overrides", cfg)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)

	_, err := Load("/non/existent/path/Dzl.toml")
	if !errors.Is(err, dzl.ErrIO) {
		t.Errorf("Load() error = %v, want ErrIO", err)
	}
	if hint := errors.FlattenHints(err); !strings.Contains(hint, "dzl config init") {
		t.Errorf("hint = %q", hint)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantHint string
	}{
		{
			name:     "bogus level",
			content:  "log_level = \"bogus\"\n",
			wantHint: "valid levels",
		},
		{
			name:     "uppercase level",
			content:  "log_level = \"WARN\"\n",
			wantHint: "valid levels",
		},
		{
			name:     "malformed toml",
			content:  "log_level = \n",
			wantHint: "TOML",
		},
		{
			name:    "empty path",
			content: "log_path = \"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeConfig(t, t.TempDir(), tt.content)

			cfg, err := Load(path)
			if !errors.Is(err, dzl.ErrParse) {
				t.Fatalf("Load() error = %v, want ErrParse", err)
			}
			if cfg != (dzl.Config{}) {
				t.Errorf("Load() returned a config on error: %+v", cfg)
			}
			if tt.wantHint != "" && !strings.Contains(errors.FlattenHints(err), tt.wantHint) {
				t.Errorf("hints = %q, want %q", errors.FlattenHints(err), tt.wantHint)
			}
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	isolate(t)

	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Load() of a directory should fail")
	}
	if errors.Is(err, dzl.ErrParse) {
		t.Errorf("Load() error = %v, want an I/O error", err)
	}
}

func TestRead_ReportsFileUsed(t *testing.T) {
	cwd, _ := isolate(t)

	if _, used, err := Read(""); err != nil || used != "" {
		t.Fatalf("Read() = %q, %v; want defaults", used, err)
	}

	writeConfig(t, cwd, "log_level = \"info\"\n")
	f, used, err := Read("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(used) != paths.ConfigFileName {
		t.Errorf("used = %q", used)
	}
	if f.LogLevel != "info" {
		t.Errorf("LogLevel = %q", f.LogLevel)
	}
}

func TestProvider(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "log_level = \"warn\"\nfile_logging_enabled = false\n")

	l := dzl.New(dzl.DefaultConfig(), dzl.WithOutput(&strings.Builder{}, &strings.Builder{}))
	if err := l.Reload(Provider{Path: path}); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := l.Config(); *got.Threshold != dzl.LevelWarn || got.FileLoggingEnabled {
		t.Errorf("Config() = %+v", got)
	}
}

func TestFromConfig(t *testing.T) {
	got := FromConfig(dzl.Config{LogPath: "x.log"})
	want := File{LogPath: "x.log", LogLevel: "custom"}
	if got != want {
		t.Errorf("FromConfig() = %+v, want %+v", got, want)
	}
	if Default() != (File{FileLoggingEnabled: true, LogPath: "dzl.log", LogLevel: "custom"}) {
		t.Errorf("Default() = %+v", Default())
	}
}
