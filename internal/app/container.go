package app

import (
	"context"
	"os"
	"strings"

	"github.com/Tatsh/mkwineprefix/internal/application/prefix"
	"github.com/Tatsh/mkwineprefix/internal/domain"
	"github.com/Tatsh/mkwineprefix/internal/infrastructure/catalog"
	"github.com/Tatsh/mkwineprefix/internal/infrastructure/config"
	"github.com/Tatsh/mkwineprefix/internal/infrastructure/executor"
	"github.com/Tatsh/mkwineprefix/internal/infrastructure/nvidia"
	"github.com/Tatsh/mkwineprefix/internal/pkg/logger"
	"github.com/Tatsh/mkwineprefix/internal/ports"
)

// Container wires the planner with its infrastructure adapters.
type Container struct {
	PrefixService  *prefix.Service
	ConfigProvider ports.ConfigProvider
	Config         domain.Config
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	runner := executor.NewLocalRunner()

	service := &prefix.Service{
		Runner:  runner,
		Locator: executor.PathLocator{},
		Interop: &nvidia.Installer{
			Runner:  runner,
			Logger:  log,
			Version: cfg.NvidiaLibsVersion,
		},
		Catalog: catalog.NewQ4WineStore(log),
		Logger:  log,
		Config:  cfg,
		Ambient: ambientEnvironment(),
	}

	return &Container{
		PrefixService:  service,
		ConfigProvider: cfgLoader,
		Config:         cfg,
		Logger:         log,
	}, nil
}

// ambientEnvironment snapshots the process environment once so planning never
// reads it implicitly mid-run.
func ambientEnvironment() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
