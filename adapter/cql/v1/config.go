package v1

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gocql/gocql"
	"gopkg.in/yaml.v3"
)

// Config holds the gocql connection settings loadable from YAML.
//
// Example YAML:
//
//	hosts: ["cassandra-1", "cassandra-2"]
//	port: 9042
//	keyspace: app
//	consistency: LOCAL_QUORUM
//	timeout: 2s
type Config struct {
	Hosts                    []string      `yaml:"hosts"`
	Port                     int           `yaml:"port"`
	Keyspace                 string        `yaml:"keyspace"`
	Consistency              string        `yaml:"consistency"`
	Timeout                  time.Duration `yaml:"timeout"`
	ConnectTimeout           time.Duration `yaml:"connect_timeout"`
	NumConns                 int           `yaml:"num_conns"`
	DisableInitialHostLookup bool          `yaml:"disable_initial_host_lookup"`
	Username                 string        `yaml:"username"`
	Password                 string        `yaml:"password"`
}

// DefaultConfig returns a Config for a local single-node cluster.
func DefaultConfig() Config {
	return Config{
		Hosts:          []string{"127.0.0.1"},
		Port:           9042,
		Consistency:    "QUORUM",
		Timeout:        600 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
		NumConns:       2,
	}
}

// ParseConfig decodes YAML over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cassava: failed to parse cluster config: %w", err)
	}

	return cfg, nil
}

// LoadConfig reads and decodes the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cassava: failed to read cluster config: %w", err)
	}

	return ParseConfig(data)
}

// NewCluster builds a gocql cluster configuration from c.
//
// The caller owns the session created from it.
func (c Config) NewCluster() (*gocql.ClusterConfig, error) {
	if len(c.Hosts) == 0 {
		return nil, errors.New("cassava: cluster config requires at least one host")
	}

	consistency, err := gocql.ParseConsistencyWrapper(c.Consistency)
	if err != nil {
		return nil, fmt.Errorf("cassava: invalid consistency %q: %w", c.Consistency, err)
	}

	cluster := gocql.NewCluster(c.Hosts...)
	cluster.Keyspace = c.Keyspace
	cluster.Consistency = consistency
	cluster.DisableInitialHostLookup = c.DisableInitialHostLookup
	if c.Port > 0 {
		cluster.Port = c.Port
	}
	if c.Timeout > 0 {
		cluster.Timeout = c.Timeout
	}
	if c.ConnectTimeout > 0 {
		cluster.ConnectTimeout = c.ConnectTimeout
	}
	if c.NumConns > 0 {
		cluster.NumConns = c.NumConns
	}
	if c.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: c.Username,
			Password: c.Password,
		}
	}

	return cluster, nil
}
