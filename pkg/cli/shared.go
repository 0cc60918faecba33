package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/macreleaser/macpack/pkg/config"
	macContext "github.com/macreleaser/macpack/pkg/context"
	"github.com/macreleaser/macpack/pkg/logging"
	"github.com/macreleaser/macpack/pkg/version"
	"github.com/sirupsen/logrus"
)

// SetupLogger creates and configures a logger based on debug mode
func SetupLogger(debug bool) *logrus.Logger {
	logger := logrus.New()

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debugf("Running %s", version.ShortVersion())
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logging.BulletFormatter{})
	}

	return logger
}

// ExitWithErrorf logs an error with the provided logger and exits with code 1
func ExitWithErrorf(logger *logrus.Logger, format string, args ...interface{}) {
	logger.Errorf(format, args...)
	os.Exit(1)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, so Ctrl-C
// stops the running external tool.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadContext loads the configuration and wraps it in a pipeline context.
func loadContext(stdCtx context.Context, logger *logrus.Logger) *macContext.Context {
	configPath := GetConfigPath()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration %s: %v", configPath, err)
	}
	logger.WithField(logging.ActionField, "loading configuration").WithField("path", configPath).Info()
	ctx := macContext.NewContext(stdCtx, cfg, logger)
	ctx.ConfigPath = configPath
	return ctx
}

// runPipelineCommand runs fn through timedPipeline and exits 1 on failure.
func runPipelineCommand(name string, ctx *macContext.Context, fn func(*macContext.Context) error) {
	if err := timedPipeline(name, ctx, fn); err != nil {
		ExitWithErrorf(ctx.Logger, "%v", err)
	}
}

// timedPipeline runs fn, reporting the outcome and elapsed time under the
// command's display name.
func timedPipeline(name string, ctx *macContext.Context, fn func(*macContext.Context) error) error {
	start := time.Now()
	if err := fn(ctx); err != nil {
		return fmt.Errorf("%s failed after %s: %w", name, formatDuration(time.Since(start)), err)
	}
	ctx.Logger.Infof("%s succeeded after %s", name, formatDuration(time.Since(start)))
	return nil
}

// formatDuration renders d as "523ms", "45s" or "1m32s".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	switch {
	case m == 0:
		return fmt.Sprintf("%ds", s)
	case s == 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%dm%ds", m, s)
	}
}
