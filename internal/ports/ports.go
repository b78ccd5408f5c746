// Package ports defines the interfaces between the application core and the
// infrastructure adapters.
//
// The planner in internal/application/prefix depends only on these
// abstractions; the concrete process executor, the nvidia-libs installer, the
// Q4Wine store and the config loader live in the infrastructure layer.
package ports

import (
	"context"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

// ConfigProvider loads the persistent configuration.
// Implementations typically read ~/.config/mkwineprefix/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner executes one external invocation synchronously and reports
// its captured output. A nonzero exit must be returned as *domain.ProcessError
// alongside the result.
type CommandRunner interface {
	Run(ctx context.Context, step domain.InvocationStep) (domain.ExecutionResult, error)
}

// BinaryLocator resolves an executable name against the execution PATH.
// It mirrors exec.LookPath so optional tools can be probed before use.
type BinaryLocator interface {
	Locate(name string) (string, bool)
}

// InteropInstaller places the NVAPI/NGX interop libraries into a prefix:
// it fetches the nvidia-libs release archive, extracts the DLL sets into the
// prefix's Windows directories and registers each as a native override.
type InteropInstaller interface {
	Install(ctx context.Context, target string, env []string, only32Bit bool) error
}

// CatalogStore registers a newly created prefix with an external desktop
// catalog. Implementations must skip silently when the catalog is absent.
type CatalogStore interface {
	Register(ctx context.Context, name, target string) error
}

// Logger is the structured logging abstraction used across the application.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
