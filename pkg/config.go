package pkg

import (
	"errors"
	"fmt"
	"os"

	"github.com/ManouchehrRasoulli/notefs/pkg/filehandler"
	"gopkg.in/yaml.v3"
)

type WatchConfig struct {
	BufferSize int      `yaml:"buffer_size"`
	Ignore     []string `yaml:"ignore"`
}

type NotesConfig struct {
	DefaultContent string `yaml:"default_content"`
}

type OpenerConfig struct {
	Command string `yaml:"command"`
}

type LogConfig struct {
	Prefix  string `yaml:"prefix"`
	Verbose bool   `yaml:"verbose"`
	Color   *bool  `yaml:"color"`
}

type Config struct {
	Watch  WatchConfig  `yaml:"watch"`
	Notes  NotesConfig  `yaml:"notes"`
	Opener OpenerConfig `yaml:"opener"`
	Log    LogConfig    `yaml:"log"`
}

const (
	DefaultConfigFile = "notefs.yml"
	defaultBufferSize = 64
	defaultLogPrefix  = "notefs --> "
)

func DefaultConfig() *Config {
	return &Config{
		Watch: WatchConfig{
			BufferSize: defaultBufferSize,
		},
		Notes: NotesConfig{
			DefaultContent: filehandler.DefaultMarkdownContent,
		},
		Log: LogConfig{
			Prefix: defaultLogPrefix,
		},
	}
}

// ReadConfig
// load file on top of the defaults. a missing file is only accepted when
// optional is set, then the defaults are returned as is.
func ReadConfig(file string, optional bool) (*Config, error) {
	c := DefaultConfig()

	yfile, err := os.ReadFile(file)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}

	err = yaml.Unmarshal(yfile, c)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", file, err)
	}

	if c.Watch.BufferSize <= 0 {
		c.Watch.BufferSize = defaultBufferSize
	}

	return c, nil
}
