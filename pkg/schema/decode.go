package schema

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// KeyListDecodeHook lets a key list be written as a single comma-separated
// string, as environment variables have to be: SPLITWATCH_KEYS_QUIT="q,ctrl+c".
func KeyListDecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf([]string{}) {
			return data, nil
		}

		var keys []string
		for _, k := range strings.Split(data.(string), ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return keys, nil
	}
}
