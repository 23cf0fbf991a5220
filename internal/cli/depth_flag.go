package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	depthFlagTypeName           = "depth"
	depthFlagInvalidValueFormat = "invalid depth %q for --%s; expected a whole number"
)

// depthFlagValue is an optional non-negative integer. It renders as the empty
// string until set, which the configuration layer reads as unbounded.
type depthFlagValue struct {
	value   int
	isSet   bool
	flagKey string
}

func (value *depthFlagValue) Set(input string) error {
	parsed, parseError := strconv.Atoi(strings.TrimSpace(input))
	if parseError != nil {
		return fmt.Errorf(depthFlagInvalidValueFormat, input, value.flagKey)
	}
	value.value = parsed
	value.isSet = true
	return nil
}

func (value *depthFlagValue) String() string {
	if value == nil || !value.isSet {
		return ""
	}
	return strconv.Itoa(value.value)
}

func (value *depthFlagValue) Type() string {
	return depthFlagTypeName
}

func registerDepthFlag(flagSet *pflag.FlagSet, name string, shorthand string, usage string) {
	flagSet.VarP(&depthFlagValue{flagKey: name}, name, shorthand, usage)
}
