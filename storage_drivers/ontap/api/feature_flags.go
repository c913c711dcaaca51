// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/netapp/ontap-client/utils/errors"
)

const (
	FeatureStrictJSONCheck              = "strict_json_check"
	FeatureTraceAPIs                    = "trace_apis"
	FeatureCheckRequiredParamsForNone   = "check_required_params_for_none"
	FeatureClassicBasicAuthorization    = "classic_basic_authorization"
	FeatureDeprecationWarning           = "deprecation_warning"
	FeatureSanitizeXML                  = "sanitize_xml"
	FeatureSanitizeCodePoints           = "sanitize_code_points"
	FeatureShowModified                 = "show_modified"
	FeatureAlwaysWrapZAPI               = "always_wrap_zapi"
	FeatureFlexcacheDeleteReturnTimeout = "flexcache_delete_return_timeout"
)

// FeatureFlags holds resolved flag values.  Values are bool, int or []int.
type FeatureFlags map[string]interface{}

func defaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		FeatureStrictJSONCheck:              true,
		FeatureTraceAPIs:                    false,
		FeatureCheckRequiredParamsForNone:   true,
		FeatureClassicBasicAuthorization:    false,
		FeatureDeprecationWarning:           true,
		FeatureSanitizeXML:                  true,
		FeatureSanitizeCodePoints:           []int{8},
		FeatureShowModified:                 true,
		FeatureAlwaysWrapZAPI:               true,
		FeatureFlexcacheDeleteReturnTimeout: 5,
	}
}

// DefaultFeatureFlags returns a fresh copy of the documented defaults.
func DefaultFeatureFlags() FeatureFlags {
	return defaultFeatureFlags()
}

// FeatureFlagNames returns every known flag name in sorted order.
func FeatureFlagNames() []string {
	names := make([]string, 0, len(defaultFeatureFlags()))
	for name := range defaultFeatureFlags() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveFeatureFlags merges overrides onto the defaults.  Unknown names and values of the wrong type are
// configuration errors; all of them are reported together.
func ResolveFeatureFlags(overrides map[string]interface{}) (FeatureFlags, error) {
	flags := defaultFeatureFlags()

	var unknown []string
	var errs []error
	for name, value := range overrides {
		defaultValue, ok := flags[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		normalized, err := normalizeFlagValue(name, defaultValue, value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		flags[name] = normalized
	}

	if len(unknown) > 0 {
		sort.Strings(unknown)
		errs = append([]error{errors.ConfigError("unknown feature flag(s): %s; valid names are: %s",
			strings.Join(unknown, ", "), strings.Join(FeatureFlagNames(), ", "))}, errs...)
	}

	if err := errors.CombineConfigErrors(errs...); err != nil {
		return nil, err
	}
	return flags, nil
}

func normalizeFlagValue(name string, defaultValue, value interface{}) (interface{}, error) {
	switch defaultValue.(type) {
	case bool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, errors.ConfigError("feature flag %s expects a bool, got %T", name, value)
	case int:
		if i, ok := toInt(value); ok {
			return i, nil
		}
		return nil, errors.ConfigError("feature flag %s expects an int, got %T", name, value)
	case []int:
		switch v := value.(type) {
		case []int:
			return append([]int(nil), v...), nil
		case []interface{}:
			result := make([]int, 0, len(v))
			for _, item := range v {
				i, ok := toInt(item)
				if !ok {
					return nil, errors.ConfigError("feature flag %s expects a list of ints, found %T", name, item)
				}
				result = append(result, i)
			}
			return result, nil
		}
		return nil, errors.ConfigError("feature flag %s expects a list of ints, got %T", name, value)
	}
	return nil, errors.ConfigError("feature flag %s has an unsupported type", name)
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		// JSON and YAML decoders produce float64 for every number.
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// ParseFeatureFlag converts a command line "name=value" string to a typed override.  Lists are comma separated.
func ParseFeatureFlag(setting string) (string, interface{}, error) {
	name, raw, found := strings.Cut(setting, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", nil, errors.ConfigError("feature flag %q must have the form name=value", setting)
	}

	defaultValue, ok := defaultFeatureFlags()[name]
	if !ok {
		return "", nil, errors.ConfigError("unknown feature flag(s): %s", name)
	}

	raw = strings.TrimSpace(raw)
	switch defaultValue.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return "", nil, errors.WrapWithConfigError(err, "feature flag %s expects a bool", name)
		}
		return name, b, nil
	case int:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return "", nil, errors.WrapWithConfigError(err, "feature flag %s expects an int", name)
		}
		return name, i, nil
	default:
		values := make([]int, 0)
		if raw == "" {
			return name, values, nil
		}
		for _, field := range strings.Split(raw, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return "", nil, errors.WrapWithConfigError(err, "feature flag %s expects a list of ints", name)
			}
			values = append(values, i)
		}
		return name, values, nil
	}
}

// Bool returns a boolean flag.  Unknown names are false.
func (f FeatureFlags) Bool(name string) bool {
	b, _ := f[name].(bool)
	return b
}

// Int returns an integer flag.  Unknown names are zero.
func (f FeatureFlags) Int(name string) int {
	i, _ := f[name].(int)
	return i
}

// IntSlice returns a list flag.
func (f FeatureFlags) IntSlice(name string) []int {
	s, _ := f[name].([]int)
	return s
}

func (f FeatureFlags) String() string {
	parts := make([]string, 0, len(f))
	for _, name := range FeatureFlagNames() {
		if value, ok := f[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", name, value))
		}
	}
	return strings.Join(parts, " ")
}
