package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ServiceName  string      `yaml:"service_name"`
	LogLevel     string      `yaml:"log_level"`
	TickRuleFile string      `yaml:"tick_rule_file"`
	Feed         *FeedConfig `yaml:"feed"`
}

// FeedConfig drives the demo order feed.
type FeedConfig struct {
	Symbols  []string `yaml:"symbols"`
	Orders   int      `yaml:"orders"`
	MinPrice float64  `yaml:"min_price"`
	MaxPrice float64  `yaml:"max_price"`
	MinQty   int      `yaml:"min_qty"`
	MaxQty   int      `yaml:"max_qty"`
}

// Load reads config from file with environment variables expanded.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	sugar := zap.S().With("func", "config.Load", "filePath", filePath)
	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}
	if err := yaml.Unmarshal(configBytes, cfg); err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
