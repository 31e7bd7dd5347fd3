package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// bindEnvs walks the config struct and binds every mapstructure-tagged leaf
// to viper. AutomaticEnv alone only resolves keys viper already knows about,
// so without explicit binds env-only overrides would be dropped during
// Unmarshal.
func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		ft := ift.Field(i)
		tag, ok := ft.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			bindEnvs(v, fv.Interface(), append(parts, tag)...)
		default:
			v.BindEnv(strings.Join(append(parts, tag), "."))
		}
	}
}
