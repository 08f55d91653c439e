package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	switchTypeName       = "bool"
	switchBareValue      = "true"
	switchAcceptedValues = "true, false, yes, no, on, off, 1, 0"
)

// switchWords extends strconv.ParseBool with the words people type for on/off switches.
var switchWords = map[string]bool{
	"yes": true,
	"y":   true,
	"on":  true,
	"no":  false,
	"n":   false,
	"off": false,
}

// switchValue backs rcat's on/off flags such as --list and --no-color.
type switchValue struct {
	name    string
	enabled *bool
}

func parseSwitch(flagName string, input string) (bool, error) {
	word := strings.ToLower(strings.TrimSpace(input))
	if word == "" {
		return true, nil
	}
	if enabled, known := switchWords[word]; known {
		return enabled, nil
	}
	enabled, parseError := strconv.ParseBool(word)
	if parseError != nil {
		return false, fmt.Errorf("invalid value %q for --%s; accepted values: %s", input, flagName, switchAcceptedValues)
	}
	return enabled, nil
}

func (value *switchValue) Set(input string) error {
	enabled, parseError := parseSwitch(value.name, input)
	if parseError != nil {
		return parseError
	}
	*value.enabled = enabled
	return nil
}

func (value *switchValue) String() string {
	if value == nil || value.enabled == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.enabled)
}

func (value *switchValue) Type() string {
	return switchTypeName
}

// registerBooleanFlag adds an on/off flag. A bare --name enables it and never consumes the
// next argument, so `rcat --list src` still treats src as the path.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&switchValue{name: name, enabled: target}, name, usage)
	registered := flagSet.Lookup(name)
	registered.DefValue = strconv.FormatBool(defaultValue)
	registered.NoOptDefVal = switchBareValue
}
