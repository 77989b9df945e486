package config

import (
	"io"

	fsWrapper "github.com/charlievieth/fs"
	"gopkg.in/yaml.v2"

	bosherr "github.com/cloudfoundry/bosh-nice/errors"
	boshlog "github.com/cloudfoundry/bosh-nice/logger"
)

// Config holds the defaults the nice front-end falls back to when they are
// not given on the command line.
type Config struct {
	// Adjustment is the increment applied when -n is absent. Nil leaves the
	// child at the priority it inherits.
	Adjustment *int `yaml:"adjustment"`

	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{LogLevel: "warn"}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// yields the defaults unchanged.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	file, err := fsWrapper.Open(path)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Opening config file '%s'", path)
	}
	defer file.Close() //nolint:errcheck

	contents, err := io.ReadAll(file)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Reading config file '%s'", path)
	}

	err = yaml.UnmarshalStrict(contents, &config)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Parsing config file '%s'", path)
	}

	err = config.Validate()
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Validating config file '%s'", path)
	}

	return config, nil
}

func (c Config) Validate() error {
	_, err := c.Level()
	return err
}

func (c Config) Level() (boshlog.LogLevel, error) {
	return boshlog.Levelify(c.LogLevel)
}
