// Package main provides the entry point for the placement readiness advisor CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/placement-advisor/internal/config"
	"github.com/jonathan/placement-advisor/internal/logging"
	"github.com/jonathan/placement-advisor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "placement_agent",
	Short: "Placement readiness advisor",
	Long:  "Placement advisor analyzes a pasted job description, extracts mentioned skills, and derives a readiness score, round checklist, 7-day study plan and likely interview questions.",
}

var (
	flagConfig      string
	flagStore       string
	flagDataFile    string
	flagDatabaseURL string
	flagRedisAddr   string
	flagRedisDB     int
	flagRedisPrefix string
	flagVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Storage backend: file, memory, redis or postgres")
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "Path of the file-backend JSON document")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "PostgreSQL connection URL")
	rootCmd.PersistentFlags().StringVar(&flagRedisAddr, "redis-addr", "", "Redis host:port")
	rootCmd.PersistentFlags().IntVar(&flagRedisDB, "redis-db", 0, "Redis database number")
	rootCmd.PersistentFlags().StringVar(&flagRedisPrefix, "redis-prefix", "", "Key prefix for the redis backend")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig merges CLI flags over the optional config file, with env
// variables as the last fallback for connection strings.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		Store:       flagStore,
		DataFile:    flagDataFile,
		DatabaseURL: flagDatabaseURL,
		RedisAddr:   flagRedisAddr,
		RedisDB:     flagRedisDB,
		RedisPrefix: flagRedisPrefix,
		Verbose:     flagVerbose,
	}

	defaults := config.Config{
		Store:       config.StoreFile,
		DataFile:    config.DefaultDataFile(),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		defaults = fileCfg.MergeWithDefaults(defaults)
	}

	merged := flags.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// openGateway builds the persistence gateway for the configured backend.
// A backend that cannot be reached degrades to a no-op gateway rather than
// aborting the command; the failure is logged.
func openGateway(ctx context.Context) (*store.Gateway, zerolog.Logger, func(), error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, zerolog.Nop(), nil, err
	}

	logger := logging.New(cfg.Verbose || flagVerbose)
	cleanup := func() {}

	var kv store.KV
	switch cfg.Store {
	case config.StoreMemory:
		kv = store.NewMemoryKV()

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		redisKV, err := store.NewRedisKV(client, cfg.RedisPrefix)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, storage disabled")
			_ = client.Close()
		} else {
			kv = redisKV
			cleanup = func() { _ = client.Close() }
		}

	case config.StorePostgres:
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn().Err(err).Msg("postgres unavailable, storage disabled")
		} else {
			kv = pg
			cleanup = pg.Close
		}

	default: // file
		fileKV, err := store.NewFileKV(cfg.DataFile)
		if err != nil {
			logger.Warn().Err(err).Msg("file store unavailable, storage disabled")
		} else {
			kv = fileKV
		}
	}

	return store.NewGateway(kv, logger), logger, cleanup, nil
}
