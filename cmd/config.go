package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "elle"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName     = "output"
	noCacheFlagName    = "no-cache"
	parallelFlagName   = "parallel"
	verboseFlagName    = "verbose"
	strategyFlagName   = "strategy"
	bugsFlagName       = "bugs"
	modelFlagName      = "model"
	numSamplesFlagName = "num-samples"
	astMatchFlagName   = "ast-match"
	passAtKFlagName    = "pass-at-k"

	parallelConfigKey = "run.parallel"
	tmpDirKey         = "run.tmp_dir"

	cacheDirKey     = "cache.dir"
	cacheEnabledKey = "cache.enabled"

	checkoutTimeoutKey = "timeouts.checkout"
	compileTimeoutKey  = "timeouts.compile"
	testTimeoutKey     = "timeouts.test"

	retryMaxAttemptsKey = "retry.max_attempts"
	retryDelayKey       = "retry.delay"
	retryExponentialKey = "retry.exponential"

	benchmarksKey = "benchmarks"

	promptKey         = "prompt"
	promptStrategyKey = "prompt.strategy"

	generationBaseURLKey     = "generation.base_url"
	generationModelKey       = "generation.model"
	generationAPIKeyKey      = "generation.api_key"
	generationNKey           = "generation.n"
	generationTemperatureKey = "generation.temperature"
	generationMaxTokensKey   = "generation.max_tokens"

	astDiffCommandKey = "astdiff.command"
	astDiffTimeoutKey = "astdiff.timeout"
	astMatchKey       = "evaluate.ast_match"

	defaultResultsDir      = ".elle-results"
	defaultCacheDir        = ".elle-cache"
	defaultCacheEnabled    = true
	defaultParallel        = 1
	defaultStrategy        = domain.StrategyInstruct
	defaultNumSamples      = 10
	defaultTemperature     = 1.0
	defaultMaxTokens       = 1024
	defaultCheckoutTimeout = 10 * time.Minute
	defaultCompileTimeout  = 5 * time.Minute
	defaultTestTimeout     = 30 * time.Minute
	defaultAstDiffTimeout  = time.Minute
	defaultRetryAttempts   = 3
	defaultRetryDelay      = 5 * time.Second

	envPrefix = "ELLE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".elle.log"
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

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultResultsDir)
	viper.SetDefault(noCacheFlagName, false)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(tmpDirKey, "")

	viper.SetDefault(cacheDirKey, defaultCacheDir)
	viper.SetDefault(cacheEnabledKey, defaultCacheEnabled)

	viper.SetDefault(checkoutTimeoutKey, defaultCheckoutTimeout.String())
	viper.SetDefault(compileTimeoutKey, defaultCompileTimeout.String())
	viper.SetDefault(testTimeoutKey, defaultTestTimeout.String())

	viper.SetDefault(retryMaxAttemptsKey, defaultRetryAttempts)
	viper.SetDefault(retryDelayKey, defaultRetryDelay.String())
	viper.SetDefault(retryExponentialKey, false)

	viper.SetDefault(benchmarksKey, map[string]any{})

	viper.SetDefault(promptStrategyKey, defaultStrategy)
	viper.SetDefault("prompt.keep_buggy_code", false)
	viper.SetDefault("prompt.extra_mask", false)
	viper.SetDefault("prompt.fim_style", domain.FIMStyleUnderscore)
	viper.SetDefault("prompt.mask_token", "")

	viper.SetDefault(generationBaseURLKey, "")
	viper.SetDefault(generationModelKey, "")
	viper.SetDefault(generationAPIKeyKey, "")
	viper.SetDefault(generationNKey, defaultNumSamples)
	viper.SetDefault(generationTemperatureKey, defaultTemperature)
	viper.SetDefault(generationMaxTokensKey, defaultMaxTokens)

	viper.SetDefault(astDiffCommandKey, adapter.DefaultASTDiffCommand)
	viper.SetDefault(astDiffTimeoutKey, defaultAstDiffTimeout.String())
	viper.SetDefault(astMatchKey, false)

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

// timeouts reads the per-step limits of benchmark commands.
func timeouts() adapter.Timeouts {
	return adapter.Timeouts{
		Checkout: viper.GetDuration(checkoutTimeoutKey),
		Compile:  viper.GetDuration(compileTimeoutKey),
		Test:     viper.GetDuration(testTimeoutKey),
	}
}

// retryPolicy retries checkouts only; compile and test failures are results.
func retryPolicy() adapter.RetryPolicy {
	return adapter.RetryPolicy{
		MaxAttempts: viper.GetInt(retryMaxAttemptsKey),
		Delay:       viper.GetDuration(retryDelayKey),
		Exponential: viper.GetBool(retryExponentialKey),
		Retryable: func(err error) bool {
			return errors.Is(err, adapter.ErrCheckout)
		},
	}
}

// promptOptions reads the prompt.* keys.
func promptOptions() (domain.PromptOptions, error) {
	var opts domain.PromptOptions
	if err := viper.UnmarshalKey(promptKey, &opts); err != nil {
		return domain.PromptOptions{}, err
	}

	return opts, nil
}

// openAIConfig reads the generation.* keys.
func openAIConfig() adapter.OpenAIConfig {
	return adapter.OpenAIConfig{
		BaseURL:     viper.GetString(generationBaseURLKey),
		APIKey:      viper.GetString(generationAPIKeyKey),
		Model:       viper.GetString(generationModelKey),
		Temperature: float32(viper.GetFloat64(generationTemperatureKey)),
		MaxTokens:   viper.GetInt(generationMaxTokensKey),
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
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
