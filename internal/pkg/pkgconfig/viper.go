package pkgconfig

import (
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: UUIDGEN_SERVER_ADDRESS_HTTP
// overrides server.address.http.
const EnvPrefix = "UUIDGEN"

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension.
// Environment variables with EnvPrefix take precedence over file values.
func NewViper(pathFile string, defaults map[string]any) (*Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	filename := path.Base(pathFile)
	filePath := path.Dir(pathFile)

	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(filePath)
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.WatchConfig()

	return &Viper{v: v}, nil
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetDuration returns the value for key parsed as a time.Duration ("250ms").
func (vc *Viper) GetDuration(key string) time.Duration {
	return vc.v.GetDuration(key)
}

// GetArray returns the value for key split by commas. Elements are trimmed
// and blank ones dropped; nil means no element survived.
func (vc *Viper) GetArray(key string) []string {
	var out []string
	for _, item := range strings.Split(vc.v.GetString(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// No resources to close for ViperConfig; this is just for interface completeness.
	return nil
}
