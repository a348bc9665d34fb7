package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/0xERR0R/domainextractor/log"
	"github.com/creasty/defaults"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultSuffixListURL is the location of the upstream public suffix list
const DefaultSuffixListURL = "https://publicsuffix.org/list/public_suffix_list.dat"

// Config main configuration
type Config struct {
	// SuffixList is the public suffix list source, the built-in list is used if empty
	SuffixList BytesSource      `yaml:"suffixList"`
	Download   DownloaderConfig `yaml:"download"`

	// RefreshPeriod is the pause between two reloads of the suffix list, 0 disables the reload
	RefreshPeriod Duration `yaml:"refreshPeriod" default:"24h"`

	// CacheSize is the max count of cached extraction results, 0 disables the cache
	CacheSize  int              `yaml:"cacheSize" default:"10000"`
	Ports      PortsConfig      `yaml:"ports"`
	Log        log.Config       `yaml:"log"`
	Prometheus PrometheusConfig `yaml:"prometheus"`
}

// DownloaderConfig configures how a HTTP suffix list source is fetched
type DownloaderConfig struct {
	Timeout  Duration `yaml:"timeout" default:"5s"`
	Attempts uint     `yaml:"attempts" default:"3"`
	Cooldown Duration `yaml:"cooldown" default:"500ms"`
}

// PortsConfig contains the listen ports
type PortsConfig struct {
	HTTP uint16 `yaml:"http" default:"4000"`
}

// PrometheusConfig contains the config values for prometheus
type PrometheusConfig struct {
	Enable bool   `yaml:"enable" default:"false"`
	Path   string `yaml:"path" default:"/metrics"`
}

// NewDefaultConfig returns a configuration with all default values applied
func NewDefaultConfig() (*Config, error) {
	var cfg Config

	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("can't apply default values: %w", err)
	}

	return &cfg, nil
}

// LoadConfig reads and validates the YAML configuration file `path`
func LoadConfig(path string) (*Config, error) {
	cfg, err := NewDefaultConfig()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration path '%s' does not exist: %w", path, err)
		}

		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	if err := unmarshalConfig(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func unmarshalConfig(data []byte, cfg *Config) error {
	err := yaml.UnmarshalStrict(data, cfg)
	if err != nil {
		return fmt.Errorf("wrong file structure: %w", err)
	}

	return cfg.validate()
}

func (c *Config) validate() error {
	var mErr *multierror.Error

	if c.Download.Attempts == 0 {
		mErr = multierror.Append(mErr, errors.New("download.attempts must be at least 1"))
	}

	if !c.Download.Timeout.IsAboveZero() {
		mErr = multierror.Append(mErr, errors.New("download.timeout must be greater than zero"))
	}

	if !c.Download.Cooldown.IsAtLeastZero() {
		mErr = multierror.Append(mErr, errors.New("download.cooldown must not be negative"))
	}

	if !c.RefreshPeriod.IsAtLeastZero() {
		mErr = multierror.Append(mErr, errors.New("refreshPeriod must not be negative"))
	}

	if c.CacheSize < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("cacheSize must not be negative, got %d", c.CacheSize))
	}

	if c.Ports.HTTP == 0 {
		mErr = multierror.Append(mErr, errors.New("ports.http must be set"))
	}

	if c.Prometheus.Enable && !strings.HasPrefix(c.Prometheus.Path, "/") {
		mErr = multierror.Append(mErr, fmt.Errorf("prometheus.path must start with '/', got '%s'", c.Prometheus.Path))
	}

	if err := mErr.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// LogConfig logs the active configuration
func (c *Config) LogConfig(logger *logrus.Entry) {
	if c.SuffixList.IsZero() {
		logger.Infof("suffix list = built-in")
	} else {
		logger.Infof("suffix list = %s", c.SuffixList)
	}

	logger.Infof("download: timeout = %s, attempts = %d, cooldown = %s",
		c.Download.Timeout, c.Download.Attempts, c.Download.Cooldown)
	if c.RefreshPeriod.IsAboveZero() {
		logger.Infof("refresh period = %s", c.RefreshPeriod)
	} else {
		logger.Infof("refresh = disabled")
	}

	logger.Infof("cache size = %d", c.CacheSize)
	logger.Infof("http port = %d", c.Ports.HTTP)

	if c.Prometheus.Enable {
		logger.Infof("prometheus path = %s", c.Prometheus.Path)
	}
}
