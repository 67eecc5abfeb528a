package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/govern-lab/riskframe/pkg/cli/config"
	"github.com/govern-lab/riskframe/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "console", "stdout").Configure()
		gt.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "logfmt", "stdout").Configure()
		gt.Error(t, err)
	})

	t.Run("writes to a log file", func(t *testing.T) {
		orig := logging.Default()
		defer logging.SetDefault(orig)

		path := filepath.Join(t.TempDir(), "riskframe.log")
		closer, err := config.NewLoggerForTest("debug", "json", path).Configure()
		gt.NoError(t, err).Required()
		defer closer()

		logging.Default().Info("configured for test")

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.Value(t, len(data) > 0).Equal(true)
	})
}

func TestLoggerLogValue(t *testing.T) {
	cfg := config.NewLoggerForTest("warn", "json", "stderr")

	attrs := map[string]string{}
	for _, attr := range cfg.LogValue().Group() {
		attrs[attr.Key] = attr.Value.String()
	}
	gt.Value(t, attrs["level"]).Equal("warn")
	gt.Value(t, attrs["format"]).Equal("json")
	gt.Value(t, attrs["output"]).Equal("stderr")
}
