package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggerCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		AppLogger, RequestLogger, TimerLogger, ErrorLogger = zap.NewNop(), zap.NewNop(), zap.NewNop(), zap.NewNop()
	})

	require.NoError(t, InitLogger(dir))

	ctx := WithRunID(context.Background(), "run-1")
	LogDuration(ctx, "test_func")()
	AppLogger.Info("hello")
	Sync()

	for _, name := range []string{"app.log", "timer.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}
	data, err := os.ReadFile(filepath.Join(dir, "timer.log"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"run_id":"run-1"`)
}
