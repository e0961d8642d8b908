package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lintang-b-s/gps-heatmap/pkg/heatmap"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Radius       float64       `mapstructure:"RADIUS" validate:"gte=0,lte=1"`
	InputDir     string        `mapstructure:"INPUT_DIR" validate:"required"`
	OutputFile   string        `mapstructure:"OUTPUT_FILE" validate:"required"`
	OutputFormat string        `mapstructure:"OUTPUT_FORMAT" validate:"required,oneof=js json geojson osm msgpack"`
	DBPath       string        `mapstructure:"DB_PATH" validate:"required"`
	Workers      int           `mapstructure:"WORKERS" validate:"min=1,max=256"`
	APIPort      int           `mapstructure:"API_PORT" validate:"min=1,max=65535"`
	APITimeout   time.Duration `mapstructure:"API_TIMEOUT" validate:"gt=0"`
}

func setDefaults() {
	viper.SetDefault("RADIUS", heatmap.DefaultRadius)
	viper.SetDefault("INPUT_DIR", "input")
	viper.SetDefault("OUTPUT_FILE", "data.js")
	viper.SetDefault("OUTPUT_FORMAT", "js")
	viper.SetDefault("DB_PATH", "tracks.db")
	viper.SetDefault("WORKERS", 4)
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
}

// New reads config.yaml from the working directory when there is one and
// lets environment variables override every key.
func New() (*Config, error) {
	setDefaults()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	return Load(viper.GetViper())
}

func Load(v *viper.Viper) (*Config, error) {
	config := &Config{
		Radius:       v.GetFloat64("RADIUS"),
		InputDir:     v.GetString("INPUT_DIR"),
		OutputFile:   v.GetString("OUTPUT_FILE"),
		OutputFormat: v.GetString("OUTPUT_FORMAT"),
		DBPath:       v.GetString("DB_PATH"),
		Workers:      v.GetInt("WORKERS"),
		APIPort:      v.GetInt("API_PORT"),
		APITimeout:   v.GetDuration("API_TIMEOUT"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
