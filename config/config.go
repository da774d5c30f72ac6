package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// AppFs is the filesystem every file access in this project goes through.
// Tests swap it for an in-memory one.
var AppFs = afero.NewOsFs()

type Config struct {
	Aws                   *AWSsqsConfig `yaml:"aws"`
	LogFilePath           string        `yaml:"logFile"`
	ClientsInputPath      string        `yaml:"clientsInputPath"`
	ServerWaitTimeSeconds int64         `yaml:"serverWaitTimeSeconds"`
	LoadReportSeconds     int64         `yaml:"loadReportSeconds"`
}

type AWSsqsConfig struct {
	QueueUrl     string `yaml:"url"`
	Region       string `yaml:"region"`
	ClientId     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	ClientToken  string `yaml:"clientToken"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	// Substitute from environemental vars
	confContent := []byte(os.ExpandEnv(string(data)))

	config := &Config{}

	if err = yaml.Unmarshal(confContent, config); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	if config.Aws == nil {
		return nil, errors.New("config has no aws section")
	}

	return config, nil
}
