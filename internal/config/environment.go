package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvironmentPrefix prefixes every environment variable that supplies an option default.
const EnvironmentPrefix = "CODECLIP"

// Option keys double as flag names; CODECLIP_MAX_SIZE maps to "max-size".
const (
	ExtensionsKey = "extensions"
	ExcludeKey    = "exclude"
	IgnoreKey     = "ignore"
	MaxSizeKey    = "max-size"
	MaxDepthKey   = "max-depth"
	HiddenKey     = "hidden"
	TokensKey     = "tokens"
	ModelKey      = "model"
	PrintKey      = "print"
	NoFallbackKey = "no-fallback"

	bindFlagsErrorFormat = "bind flags to environment: %w"
)

// ReadOptions collects raw option values for rootPath. Flags set on the command
// line win over CODECLIP_* environment variables, which win over flag defaults.
func ReadOptions(rootPath string, flagSet *pflag.FlagSet) (Options, error) {
	reader := viper.New()
	reader.SetEnvPrefix(EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	if flagSet != nil {
		if bindError := reader.BindPFlags(flagSet); bindError != nil {
			return Options{}, fmt.Errorf(bindFlagsErrorFormat, bindError)
		}
	}

	return Options{
		Root:          rootPath,
		Extensions:    reader.GetString(ExtensionsKey),
		Exclude:       reader.GetString(ExcludeKey),
		Ignore:        reader.GetStringSlice(IgnoreKey),
		MaxSizeKB:     reader.GetString(MaxSizeKey),
		MaxDepth:      reader.GetString(MaxDepthKey),
		IncludeHidden: reader.GetString(HiddenKey),
		CountTokens:   reader.GetString(TokensKey),
		TokenModel:    reader.GetString(ModelKey),
		PrintOnly:     reader.GetString(PrintKey),
		NoFallback:    reader.GetString(NoFallbackKey),
	}, nil
}
