package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridview/internal/config"
	"github.com/rshade/gridview/internal/logging"
)

// annotationInteractive marks commands that take over the terminal. Their logs must
// not reach it, so they go to a file or nowhere.
const annotationInteractive = "gridview/interactive"

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationInteractive] == "true"
}

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	logCfg := loggingCfg.ToLoggingConfig()
	if isInteractive(cmd) && logCfg.Output != logging.OutputFile {
		logCfg = interactiveLogging(logCfg)
	}

	// Ensure log directory exists after all overrides have been applied.
	if logCfg.Output == logging.OutputFile && loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(logCfg)
	if result.FallbackUsed && isInteractive(cmd) {
		// The stderr fallback would draw over the interface.
		result.Logger = logging.NewLogger(logging.Config{Output: logging.OutputDiscard})
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// interactiveLogging redirects a stderr logger to the default log file, keeping level
// and format.
func interactiveLogging(cfg logging.Config) logging.Config {
	path, err := config.DefaultLogFile()
	if err != nil {
		cfg.Output = logging.OutputDiscard
		return cfg
	}
	cfg.Output = logging.OutputFile
	cfg.File = path
	return cfg
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
