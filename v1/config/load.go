package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// FileEnv names the optional YAML configuration file.
const FileEnv = "CONFIG_FILE"

var durationType = reflect.TypeOf(time.Duration(0))

// Load reads ./.env if present, then an optional YAML file named by
// CONFIG_FILE, then environment variables. Later sources win; unset keys keep
// their Default values.
func Load() (Config, error) {
	return load(".env")
}

func load(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", dotenv, err)
		}
	}

	v := viper.New()
	if err := register(v, "", reflect.ValueOf(Default())); err != nil {
		return Config{}, err
	}

	if path := os.Getenv(FileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// register walks a struct, setting every leaf's default and binding its env tag.
func register(v *viper.Viper, prefix string, val reflect.Value) error {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		fv := val.Field(i)
		if fv.Kind() == reflect.Struct && fv.Type() != durationType {
			if err := register(v, key, fv); err != nil {
				return err
			}
			continue
		}

		v.SetDefault(key, fv.Interface())
		if env := field.Tag.Get("env"); env != "" {
			if err := v.BindEnv(key, env); err != nil {
				return fmt.Errorf("bind %s: %w", env, err)
			}
		}
	}
	return nil
}
