package heterogram

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFilePath is the conventional location of the optional YAML
// config. Nothing loads it automatically: a config is read only when the
// -config flag names a file.
var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/heterogram/config.yaml")

// DefaultDictionaryPath is used when no dictionary argument is given.
const DefaultDictionaryPath = "words.txt"

// Config is the optional on-disk override for the engine's defaults (§4.8).
// Any zero-valued field falls back to the built-in default.
type Config struct {
	Dictionary      string `yaml:"dictionary"`
	CounterWidth    int    `yaml:"counterWidth"`
	MemoBudgetBytes uint64 `yaml:"memoBudgetBytes"`
}

// NewConfig reads a Config from filePath.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes a sample config file naming the default dictionary
// path and a 16-bit counter width.
func GenerateSample(filePath string) error {
	cfg := Config{
		Dictionary:   DefaultDictionaryPath,
		CounterWidth: 16,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
