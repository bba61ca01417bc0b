package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/treekit/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "treekit"

// Config holds user-level settings loaded from a TOML file.
//
// The file is looked up in order:
//  1. the --config flag
//  2. ./treekit.toml
//  3. ~/.config/treekit/config.toml
//
// A missing file yields [DefaultConfig].
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
	Output OutputConfig `toml:"output"`
}

// StoreConfig selects and configures the tree storage backend.
type StoreConfig struct {
	// Backend is one of "file", "memory", "redis", or "mongo".
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"` // file backend; empty for default
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// OutputConfig configures diagram output.
type OutputConfig struct {
	Color bool   `toml:"color"`
	Order string `toml:"order"` // default traversal order name
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: "file",
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
		Server: ServerConfig{Addr: ":8080"},
		Output: OutputConfig{Color: true, Order: "preorder"},
	}
}

// LoadConfig reads the config file at path, or searches the default
// locations when path is empty. Settings missing from the file keep their
// [DefaultConfig] values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing default config path, or "".
func findConfigFile() string {
	candidates := []string{appName + ".toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", appName, "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// openStore builds the storage backend selected by cfg.
// The caller owns the returned store and must Close it.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "", "file":
		return store.NewFileStore(cfg.Store.Dir)
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Store.Redis.Addr, err)
		}
		return store.NewRedisStore(client), nil
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Store.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return store.NewMongoStore(client, cfg.Store.Mongo.Database, cfg.Store.Mongo.Collection), nil
	}
	return nil, fmt.Errorf("unknown store backend %q (must be 'file', 'memory', 'redis', or 'mongo')", cfg.Store.Backend)
}
