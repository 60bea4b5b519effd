package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ersonp/orgflow/internal/domain/services"
	"github.com/ersonp/orgflow/internal/infrastructure/cache"
	"github.com/ersonp/orgflow/internal/infrastructure/config"
	"github.com/ersonp/orgflow/internal/infrastructure/transport"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config    *config.Config
	Resources *services.Resources
	Hierarchy *services.Hierarchy
}

// withDeps loads config and builds dependencies, then calls the provided
// function. The response cache directory is released when the call returns,
// on every exit path.
func withDeps(fn func(*Deps) error) error {
	cfg, err := config.Load(globalConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	configureLogging(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	var opts []transport.Option
	if cfg.Cache.Enabled {
		store, err := cache.NewStore(config.CacheRoot())
		if err != nil {
			return fmt.Errorf("creating response cache: %w", err)
		}
		defer store.Close()
		opts = append(opts, transport.WithCache(store))
	}

	client, err := transport.NewClient(cfg.API, opts...)
	if err != nil {
		return fmt.Errorf("creating dispatcher: %w", err)
	}

	resources := services.NewResources(client)
	deps := &Deps{
		Config:    cfg,
		Resources: resources,
		Hierarchy: services.NewHierarchy(resources),
	}

	return fn(deps)
}

func configureLogging(cfg *config.Config) {
	if globalVerbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
