package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `
outdir = "diagrams"
formats = ["svg", "dot"]
icon_dir = "/opt/icons"
show = true
`))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.OutDir != "diagrams" || len(cfg.Formats) != 2 || cfg.IconDir != "/opt/icons" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Show == nil || !*cfg.Show {
		t.Error("show should be set")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if cfg.OutDir != "" || cfg.Show != nil {
		t.Errorf("cfg = %+v, want zero", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for name, src := range map[string]string{
		"syntax":      "outdir = ",
		"unknown key": "out_dir = \"x\"",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, src)); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := defaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/xdg", "archdraw", "config.toml"); path != want {
		t.Errorf("defaultConfigPath() = %s, want %s", path, want)
	}
}

func TestResolveIconDir(t *testing.T) {
	cfg := Config{IconDir: "/from/config"}

	t.Setenv(iconDirEnv, "")
	if got := resolveIconDir("", cfg); got != "/from/config" {
		t.Errorf("config: got %s", got)
	}
	t.Setenv(iconDirEnv, "/from/env")
	if got := resolveIconDir("", cfg); got != "/from/env" {
		t.Errorf("env: got %s", got)
	}
	if got := resolveIconDir("/from/flag", cfg); got != "/from/flag" {
		t.Errorf("flag: got %s", got)
	}
}

func TestApplyConfig(t *testing.T) {
	show := true
	cfg := Config{OutDir: "cfg-out", Formats: []string{"svg"}, Show: &show}
	t.Setenv(iconDirEnv, "")

	cmd := (&CLI{}).renderCommand()
	if err := cmd.ParseFlags([]string{"-o", "flag-out"}); err != nil {
		t.Fatal(err)
	}
	opts := renderOptsOf(t, cmd)
	opts.applyConfig(cmd, cfg)

	if opts.outDir != "flag-out" {
		t.Errorf("outDir = %s, flag should win", opts.outDir)
	}
	if opts.formats != "svg" {
		t.Errorf("formats = %s, want svg from config", opts.formats)
	}
	if !opts.show || !opts.showSet {
		t.Error("show should come from config")
	}
}

// renderOptsOf reads the flag values of a render command back into a
// renderOpts.
func renderOptsOf(t *testing.T, cmd *cobra.Command) *renderOpts {
	t.Helper()
	f := cmd.Flags()
	o := &renderOpts{}
	o.outDir, _ = f.GetString("output")
	o.formats, _ = f.GetString("format")
	o.show, _ = f.GetBool("show")
	o.iconDir, _ = f.GetString("icons")
	return o
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/icons"); got != filepath.Join(home, "icons") {
		t.Errorf("expandHome(~/icons) = %s", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("expandHome(/abs) = %s", got)
	}
}
