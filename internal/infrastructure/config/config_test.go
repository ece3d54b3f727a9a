package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"gotest.tools/v3/assert"
)

func newCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	def := Defaults()
	cmd.Flags().String("log-level", def.LogLevel.String(), "")
	cmd.Flags().String("seq-url", def.SeqURL, "")
	cmd.Flags().String("data-dir", def.DataDir, "")
	cmd.Flags().Int("port", def.Port, "")
	_ = cmd.Flags().Parse(args)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newCommand(), "")
	assert.NilError(t, err)
	assert.DeepEqual(t, cfg, Defaults())
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("DATAGRID_PORT", "5555")
	t.Setenv("DATAGRID_LOG_LEVEL", "debug")
	t.Setenv("DATAGRID_DATA_DIR", "from-env")

	file := filepath.Join(t.TempDir(), "datagrid.yaml")
	err := os.WriteFile(file, []byte("seq-url: http://seq:5341\ndata-dir: from-file\n"), 0644)
	assert.NilError(t, err)

	cfg, err := Load(newCommand("--data-dir", "from-flag"), file)
	assert.NilError(t, err)

	assert.Equal(t, cfg.Port, 5555)
	assert.Equal(t, cfg.LogLevel, slog.LevelDebug)
	assert.Equal(t, cfg.SeqURL, "http://seq:5341")
	assert.Equal(t, cfg.DataDir, "from-flag")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(newCommand("--log-level", "chatty"), "")
	assert.ErrorContains(t, err, `invalid log level "chatty"`)

	_, err = Load(newCommand(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
