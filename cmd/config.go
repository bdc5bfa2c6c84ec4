package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "doccov"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	pyprojectFileName = "pyproject.toml"
	pyprojectSection  = "tool.doccov"

	envPrefix = "DOCCOV"

	// persistent flags
	outputFlagName     = "output"
	configFlagName     = "config"
	logFileFlagName    = "log-file"
	verboseLogFlagName = "verbose-log"

	// coverage flags, shared by check and list
	excludeFlagName             = "exclude"
	parallelFlagName            = "parallel"
	ignoreInitMethodFlagName    = "ignore-init-method"
	ignoreInitModuleFlagName    = "ignore-init-module"
	ignoreMagicFlagName         = "ignore-magic"
	ignoreModuleFlagName        = "ignore-module"
	ignoreNestedFuncsFlagName   = "ignore-nested-functions"
	ignoreNestedClassesFlagName = "ignore-nested-classes"
	ignorePrivateFlagName       = "ignore-private"
	ignorePropertyFlagName      = "ignore-property-decorators"
	ignoreSettersFlagName       = "ignore-setters"
	ignoreOverloadedFlagName    = "ignore-overloaded-functions"
	ignoreSemiprivateFlagName   = "ignore-semiprivate"
	ignoreRegexFlagName         = "ignore-regex"
	whitelistRegexFlagName      = "whitelist-regex"
	docstringStyleFlagName      = "docstring-style"

	// check-only flags
	verboseFlagName       = "verbose"
	quietFlagName         = "quiet"
	failUnderFlagName     = "fail-under"
	omitCoveredFlagName   = "omit-covered-files"
	colorFlagName         = "color"
	noColorFlagName       = "no-color"
	generateBadgeFlagName = "generate-badge"
	formatFlagName        = "format"

	outputKey              = "output"
	excludeConfigKey       = "paths.exclude"
	parallelKey            = "parallel"
	ignoreInitMethodKey    = "ignore.init_method"
	ignoreInitModuleKey    = "ignore.init_module"
	ignoreMagicKey         = "ignore.magic"
	ignoreModuleKey        = "ignore.module"
	ignoreNestedFuncsKey   = "ignore.nested_functions"
	ignoreNestedClassesKey = "ignore.nested_classes"
	ignorePrivateKey       = "ignore.private"
	ignorePropertyKey      = "ignore.property_decorators"
	ignoreSettersKey       = "ignore.property_setters"
	ignoreOverloadedKey    = "ignore.overloaded_functions"
	ignoreSemiprivateKey   = "ignore.semiprivate"
	ignoreRegexKey         = "ignore.regex"
	includeRegexKey        = "include_regex"
	docstringStyleKey      = "docstring_style"
	verboseKey             = "verbose"
	quietKey               = "quiet"
	failUnderKey           = "fail_under"
	omitCoveredKey         = "omit_covered_files"
	colorKey               = "color"
	badgeOutputKey         = "badge.output"
	formatKey              = "format"

	defaultParallel       = 1
	defaultVerbose        = 0
	defaultFormat         = "table"
	defaultDocstringStyle = string(m.StyleSphinx)

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".doccov.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// configKeysByFlag maps the long flag names, which are also the key names
// accepted in pyproject.toml, to their viper keys.
var configKeysByFlag = map[string]string{
	outputFlagName:              outputKey,
	excludeFlagName:             excludeConfigKey,
	parallelFlagName:            parallelKey,
	ignoreInitMethodFlagName:    ignoreInitMethodKey,
	ignoreInitModuleFlagName:    ignoreInitModuleKey,
	ignoreMagicFlagName:         ignoreMagicKey,
	ignoreModuleFlagName:        ignoreModuleKey,
	ignoreNestedFuncsFlagName:   ignoreNestedFuncsKey,
	ignoreNestedClassesFlagName: ignoreNestedClassesKey,
	ignorePrivateFlagName:       ignorePrivateKey,
	ignorePropertyFlagName:      ignorePropertyKey,
	ignoreSettersFlagName:       ignoreSettersKey,
	ignoreOverloadedFlagName:    ignoreOverloadedKey,
	ignoreSemiprivateFlagName:   ignoreSemiprivateKey,
	ignoreRegexFlagName:         ignoreRegexKey,
	whitelistRegexFlagName:      includeRegexKey,
	docstringStyleFlagName:      docstringStyleKey,
	verboseFlagName:             verboseKey,
	quietFlagName:               quietKey,
	failUnderFlagName:           failUnderKey,
	omitCoveredFlagName:         omitCoveredKey,
	colorFlagName:               colorKey,
	generateBadgeFlagName:       badgeOutputKey,
	formatFlagName:              formatKey,
}

// listKeys hold patterns; pyproject.toml may give them as a single string.
var listKeys = map[string]bool{
	excludeConfigKey: true,
	ignoreRegexKey:   true,
	includeRegexKey:  true,
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(outputKey, "")
	v.SetDefault(excludeConfigKey, []string{})
	v.SetDefault(parallelKey, defaultParallel)

	v.SetDefault(ignoreInitMethodKey, false)
	v.SetDefault(ignoreInitModuleKey, false)
	v.SetDefault(ignoreMagicKey, false)
	v.SetDefault(ignoreModuleKey, false)
	v.SetDefault(ignoreNestedFuncsKey, false)
	v.SetDefault(ignoreNestedClassesKey, false)
	v.SetDefault(ignorePrivateKey, false)
	v.SetDefault(ignorePropertyKey, false)
	v.SetDefault(ignoreSettersKey, false)
	v.SetDefault(ignoreOverloadedKey, false)
	v.SetDefault(ignoreSemiprivateKey, false)
	v.SetDefault(ignoreRegexKey, []string{})
	v.SetDefault(includeRegexKey, []string{})
	v.SetDefault(docstringStyleKey, defaultDocstringStyle)

	v.SetDefault(verboseKey, defaultVerbose)
	v.SetDefault(quietKey, false)
	v.SetDefault(failUnderKey, m.DefaultFailUnder)
	v.SetDefault(omitCoveredKey, false)
	v.SetDefault(colorKey, false)
	v.SetDefault(badgeOutputKey, "")
	v.SetDefault(formatKey, defaultFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// loadConfig reads the first configuration source found: the explicit path,
// ./doccov.yaml, the [tool.doccov] table of ./pyproject.toml, then the user's
// doccov.yaml under the XDG config home. It returns the file used, or "" when
// none applies.
func loadConfig(v *viper.Viper, explicit string) (string, error) {
	if explicit != "" {
		if err := readConfigFile(v, explicit); err != nil {
			return "", fmt.Errorf("read config %s: %w", explicit, err)
		}

		return explicit, nil
	}

	local := filepath.Join(configFolderPath, configFileName)
	if fileExists(local) {
		if err := readConfigFile(v, local); err != nil {
			return "", fmt.Errorf("read config %s: %w", local, err)
		}

		return local, nil
	}

	pyproject := filepath.Join(configFolderPath, pyprojectFileName)
	if fileExists(pyproject) {
		section, err := readPyproject(pyproject)
		if err != nil {
			return "", fmt.Errorf("read config %s: %w", pyproject, err)
		}

		if len(section) > 0 {
			if err := v.MergeConfigMap(section); err != nil {
				return "", fmt.Errorf("merge config %s: %w", pyproject, err)
			}

			return pyproject, nil
		}
	}

	if user, err := xdg.SearchConfigFile(filepath.Join(configBaseName, configFileName)); err == nil {
		if err := readConfigFile(v, user); err != nil {
			return "", fmt.Errorf("read config %s: %w", user, err)
		}

		return user, nil
	}

	return "", nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		section, err := readPyproject(path)
		if err != nil {
			return err
		}

		return v.MergeConfigMap(section)
	}

	v.SetConfigFile(path)

	return v.ReadInConfig()
}

// readPyproject returns the [tool.doccov] table of a TOML file as a nested
// map of viper keys. Keys may be spelled with dashes or underscores and may
// carry the leading dashes of the corresponding flag.
func readPyproject(path string) (map[string]interface{}, error) {
	pv := viper.New()
	pv.SetConfigFile(path)
	pv.SetConfigType("toml")

	if err := pv.ReadInConfig(); err != nil {
		return nil, err
	}

	section := pv.GetStringMap(pyprojectSection)
	out := make(map[string]interface{}, len(section))

	for name, value := range section {
		key, ok := pyprojectKey(name)
		if !ok {
			slog.Warn("unknown pyproject option", "file", path, "option", name)
			continue
		}

		if text, isString := value.(string); isString && listKeys[key] {
			value = []string{text}
		}

		setNested(out, key, value)
	}

	return out, nil
}

func pyprojectKey(name string) (string, bool) {
	flag := strings.ReplaceAll(strings.TrimLeft(strings.ToLower(name), "-"), "_", "-")

	key, ok := configKeysByFlag[flag]

	return key, ok
}

func setNested(target map[string]interface{}, key string, value interface{}) {
	parts := strings.Split(key, ".")

	for _, part := range parts[:len(parts)-1] {
		child, ok := target[part].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			target[part] = child
		}

		target = child
	}

	target[parts[len(parts)-1]] = value
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}

// coverageConfig builds the validated run configuration from v.
func coverageConfig(v *viper.Viper) (*m.Config, error) {
	opts := m.ConfigOptions{
		DocstringStyle: v.GetString(docstringStyleKey),
		FailUnder:      v.GetFloat64(failUnderKey),
		Ignore: m.IgnoreOptions{
			InitMethod:          v.GetBool(ignoreInitMethodKey),
			InitModule:          v.GetBool(ignoreInitModuleKey),
			Magic:               v.GetBool(ignoreMagicKey),
			Module:              v.GetBool(ignoreModuleKey),
			Private:             v.GetBool(ignorePrivateKey),
			Semiprivate:         v.GetBool(ignoreSemiprivateKey),
			PropertyDecorators:  v.GetBool(ignorePropertyKey),
			PropertySetters:     v.GetBool(ignoreSettersKey),
			NestedFunctions:     v.GetBool(ignoreNestedFuncsKey),
			NestedClasses:       v.GetBool(ignoreNestedClassesKey),
			OverloadedFunctions: v.GetBool(ignoreOverloadedKey),
		},
		IgnoreRegex:  v.GetStringSlice(ignoreRegexKey),
		IncludeRegex: v.GetStringSlice(includeRegexKey),
		OmitCovered:  v.GetBool(omitCoveredKey),
		Color:        v.GetBool(colorKey),
	}

	// a whitelisted run only reports the matching names
	if len(opts.IncludeRegex) > 0 {
		opts.Ignore.Module = true
	}

	cfg, err := m.NewConfig(opts)
	if err != nil {
		slog.Error("Failed to build configuration", "error", err)
		return nil, err
	}

	return cfg, nil
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
