package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"covquest.dev/pkg/covquest/internal/domain"
	m "covquest.dev/pkg/covquest/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "covquest"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	workspaceFlagName  = "workspace"
	reportRootFlagName = "report-root"
	excludeFlagName    = "exclude"
	userFlagName       = "user"
	formatFlagName     = "format"
	parallelFlagName   = "parallel"
	countFlagName      = "count"
	verboseFlagName    = "verbose"
	logFileFlagName    = "log-file"

	workspaceConfigKey       = "workspace"
	userConfigKey            = "user"
	maxAuthoredConfigKey     = "history.max_authored"
	maxVisitedConfigKey      = "history.max_visited"
	excludeSegmentsConfigKey = "paths.exclude_segments"
	excludeConfigKey         = "paths.exclude"
	reportRootConfigKey      = "coverage.report_root"
	layoutConfigKey          = "coverage.layout"
	sourceRootsConfigKey     = "coverage.source_roots"
	extensionsConfigKey      = "coverage.extensions"
	reportSuffixConfigKey    = "coverage.report_suffix"
	countConfigKey           = "challenge.count"
	formatConfigKey          = "output.format"
	parallelConfigKey        = "scan.parallel"

	defaultWorkspace = "."
	defaultCount     = 1
	defaultFormat    = "text"

	envPrefix = "COVQUEST"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".covquest.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	naming := domain.DefaultNamingOptions()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(workspaceConfigKey, defaultWorkspace)
	viper.SetDefault(userConfigKey, "")
	viper.SetDefault(maxAuthoredConfigKey, domain.DefaultMaxAuthored)
	viper.SetDefault(maxVisitedConfigKey, domain.DefaultMaxVisited)
	viper.SetDefault(excludeSegmentsConfigKey, domain.DefaultExcludedSegments)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(reportRootConfigKey, string(domain.DefaultReportRoot))
	viper.SetDefault(layoutConfigKey, domain.LayoutJacoco)
	viper.SetDefault(sourceRootsConfigKey, naming.SourceRoots)
	viper.SetDefault(extensionsConfigKey, naming.Extensions)
	viper.SetDefault(reportSuffixConfigKey, naming.Suffix)
	viper.SetDefault(countConfigKey, defaultCount)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(parallelConfigKey, domain.DefaultParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// settingsFromConfig reads the pipeline settings from flags, env and config.
func settingsFromConfig() domain.Settings {
	return domain.Settings{
		ReportRoot: m.Path(viper.GetString(reportRootConfigKey)),
		Limits: domain.HistoryLimits{
			MaxAuthored: viper.GetInt(maxAuthoredConfigKey),
			MaxVisited:  viper.GetInt(maxVisitedConfigKey),
		},
		ExcludeSegments: viper.GetStringSlice(excludeSegmentsConfigKey),
		Exclude:         viper.GetStringSlice(excludeConfigKey),
		Layout:          viper.GetString(layoutConfigKey),
		Naming: domain.NamingOptions{
			SourceRoots: viper.GetStringSlice(sourceRootsConfigKey),
			Extensions:  viper.GetStringSlice(extensionsConfigKey),
			Suffix:      viper.GetString(reportSuffixConfigKey),
		},
	}
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

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
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

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
