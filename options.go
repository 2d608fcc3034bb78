package studentnest

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	catalogPath string
	records     []FAQ
	catalogSet  bool

	driver    string // "valkey", "redis" or "sqlite"; empty disables the record store
	addrs     []string
	password  string
	path      string
	keyPrefix string

	logger   *zap.Logger
	registry prometheus.Registerer
}

// WithCatalogFile loads the knowledge catalog from a YAML file instead of the built-in one.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) { c.catalogPath = path }
}

// WithCatalog uses the given records as the knowledge catalog, in order.
func WithCatalog(records ...FAQ) Option {
	return func(c *clientConfig) {
		c.records = records
		c.catalogSet = true
	}
}

// WithValkey enables the record store on a Valkey server.
func WithValkey(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedis enables the record store on a Redis server.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithSQLite enables the record store in a SQLite file. Use ":memory:" for a throwaway store.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.driver = "sqlite"
		c.path = path
	}
}

// WithKeyPrefix sets the key prefix used by the Valkey/Redis record store.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) { c.keyPrefix = prefix }
}

// WithLogger attaches a logger to every Ask call.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = l }
}

// WithPrometheus registers the answer metrics (no HTTP metrics) on reg and records every Ask outcome.
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(c *clientConfig) { c.registry = reg }
}
