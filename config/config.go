package config

import (
	"os"

	"github.com/MixinNetwork/ratio/logger"
	"github.com/pelletier/go-toml"
)

const (
	Debug        = true
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultRPCPort         = 6860
	DefaultMemoryCacheSize = 64
	ValueNameMaximumSize   = 64
	RequestMaximumSize     = 1024 * 1024
)

type Custom struct {
	Node struct {
		MemoryCacheSize int `toml:"memory-cache-size"`
	} `toml:"node"`
	Storage struct {
		ValueLogGC          bool `toml:"value-log-gc"`
		MaxCompactionLevels int  `toml:"max-compaction-levels"`
	} `toml:"storage"`
	RPC struct {
		Port    int  `toml:"port"`
		Runtime bool `toml:"runtime"`
	} `toml:"rpc"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

func Parse(data []byte) (*Custom, error) {
	var config Custom
	err := toml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.fill()
	return &config, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Custom {
	var config Custom
	config.fill()
	return &config
}

func (c *Custom) fill() {
	if c.Node.MemoryCacheSize == 0 {
		c.Node.MemoryCacheSize = DefaultMemoryCacheSize
	}
	if c.Storage.MaxCompactionLevels == 0 {
		c.Storage.MaxCompactionLevels = 7
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.Log.Level == 0 {
		c.Log.Level = logger.INFO
	}
}
