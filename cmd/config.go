package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"sift.dev/pkg/sift/internal/domain"
)

const (
	ignoreCaseFlagName = "ignore-case"
	minMatchesFlagName = "min-matches"
	parallelFlagName   = "parallel"
	verboseFlagName    = "verbose"
	logFileFlagName    = "log-file"

	ignoreCaseConfigKey = "search.ignore_case"
	minMatchesConfigKey = "search.min_matches"
	parallelConfigKey   = "search.parallel"

	// ignoreCaseEnv enables case-insensitive search when present, whatever its value.
	ignoreCaseEnv = "IGNORE_CASE"

	defaultParallel = 0

	envPrefix = "SIFT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	logDirName           = "sift"
	logBaseName          = "sift.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// ignoreCaseConfig sees only IGNORE_CASE. It has no env prefix, so the
// SIFT_-prefixed variables AutomaticEnv exposes never toggle case handling.
var ignoreCaseConfig = newIgnoreCaseConfig()

func newIgnoreCaseConfig() *viper.Viper {
	v := viper.New()
	v.AllowEmptyEnv(true)
	cobra.CheckErr(v.BindEnv(ignoreCaseConfigKey, ignoreCaseEnv))

	return v
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AllowEmptyEnv(true)

	viper.SetDefault(minMatchesConfigKey, domain.DefaultMinMatches)
	viper.SetDefault(parallelConfigKey, defaultParallel)

	// Logging defaults (used by env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename())
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// defaultLogFilename keeps the log out of the directory tree being searched.
func defaultLogFilename() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, logDirName, logBaseName)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool, attrs ...any) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename()
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler).With(attrs...)
	slog.SetDefault(globalLogger)
}
