// Package prefix implements the invocation planner: it turns a
// domain.PrefixRequest into the ordered sequence of external invocations and
// filesystem edits that provision a Wine prefix.
package prefix

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Tatsh/mkwineprefix/internal/domain"
	"github.com/Tatsh/mkwineprefix/internal/ports"
)

// Service provisions prefixes. All collaborators are injected; Ambient is the
// process environment captured once at construction so planning never reads
// os.Environ mid-run.
type Service struct {
	Runner  ports.CommandRunner
	Locator ports.BinaryLocator
	Interop ports.InteropInstaller
	Catalog ports.CatalogStore
	Logger  ports.Logger

	Config  domain.Config
	Ambient map[string]string

	// HomeDir and TempDir default to the current user's home directory and
	// the system temp directory.
	HomeDir string
	TempDir string
}

// Create provisions the prefix described by req and returns the target path.
// Steps run strictly in order; the first fatal failure aborts the run. Only
// the winetricks invocation is tolerated on failure.
func (s *Service) Create(ctx context.Context, req domain.PrefixRequest) (string, error) {
	if s.Runner == nil || s.Locator == nil || s.Logger == nil {
		return "", errors.New("prefix.Service dependencies not satisfied")
	}
	if !req.WindowsVersion.Valid() {
		return "", fmt.Errorf("unknown windows version %q", req.WindowsVersion)
	}

	root := s.resolveRoot(req)
	target := filepath.Join(root, req.Name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%s: %w", target, domain.ErrPrefixExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}

	if s.Ambient["DISPLAY"] == "" || s.Ambient["XAUTHORITY"] == "" {
		s.Logger.Warn("Wine will likely fail to run since DISPLAY or XAUTHORITY are not in the environment.", nil)
	}
	env := BuildEnvironment(req, target, s.Config.WineDebug, s.Ambient).Strings()

	for _, step := range []domain.InvocationStep{
		{Bin: "wineboot", Args: []string{"--init"}, Env: env},
		{Bin: "wineserver", Args: []string{"-w"}, Env: env},
	} {
		if err := s.run(ctx, step); err != nil {
			return "", err
		}
	}

	for _, step := range registryEdits(req, env) {
		if err := s.run(ctx, step); err != nil {
			return "", err
		}
	}

	if req.Tmpfs {
		if err := s.linkTempDirs(target); err != nil {
			return "", err
		}
	}

	if err := s.runWinetricks(ctx, req); err != nil {
		return "", err
	}

	if req.DXVKNVAPI {
		if err := s.run(ctx, domain.InvocationStep{
			Bin:  "setup_vkd3d_proton.sh",
			Args: []string{"install"},
			Env:  env,
		}); err != nil {
			return "", err
		}
		if s.Interop == nil {
			return "", errors.New("prefix.Service has no interop installer")
		}
		if err := s.Interop.Install(ctx, target, env, req.Arch32); err != nil {
			return "", err
		}
	}

	if req.NotoSans {
		steps, err := notoEdits(env)
		if err != nil {
			return "", err
		}
		for _, step := range steps {
			if err := s.run(ctx, step); err != nil {
				return "", err
			}
		}
	}

	if req.ASIO {
		if register, ok := s.Locator.Locate("wineasio-register"); ok {
			if err := s.run(ctx, domain.InvocationStep{Bin: register, Env: env}); err != nil {
				return "", err
			}
		} else {
			s.Logger.Warn("Skipping ASIO setup because wineasio-register is not in PATH.", nil)
		}
	}

	if s.Catalog != nil {
		if err := s.Catalog.Register(ctx, req.Name, target); err != nil {
			return "", err
		}
	}

	return target, nil
}

func (s *Service) resolveRoot(req domain.PrefixRequest) string {
	if req.Root != "" {
		return req.Root
	}
	if s.Config.PrefixRoot != "" {
		return s.Config.PrefixRoot
	}
	return filepath.Join(s.home(), ".local", "share", "wineprefixes")
}

func (s *Service) run(ctx context.Context, step domain.InvocationStep) error {
	s.Logger.Debug("running", map[string]interface{}{"command": step.String()})
	_, err := s.Runner.Run(ctx, step)
	return err
}

// runWinetricks is the single tolerated step: winetricks is known to report
// nonzero exits despite functionally succeeding, so failures only warn.
// The invocation deliberately inherits the ambient environment.
func (s *Service) runWinetricks(ctx context.Context, req domain.PrefixRequest) error {
	winetricks, ok := s.Locator.Locate("winetricks")
	if !ok {
		return nil
	}
	step := domain.InvocationStep{
		Bin: winetricks,
		Args: append(
			[]string{"--force", "--country=US", "--unattended", "prefix=" + req.Name},
			winetricksArgs(req)...),
	}
	s.Logger.Debug("running", map[string]interface{}{"command": step.String()})
	if result, err := s.Runner.Run(ctx, step); err != nil {
		s.Logger.Warn("Winetricks exit code was nonzero but it may have succeeded.",
			map[string]interface{}{"exit_code": result.ExitCode})
	}
	return nil
}

// linkTempDirs replaces the prefix's temp directories with symlinks into the
// system temp directory.
func (s *Service) linkTempDirs(target string) error {
	username := s.Ambient["USER"]
	if username == "" {
		username = s.Ambient["USERNAME"]
	}
	if username == "" {
		username = "user"
	}
	tempDir := s.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	for _, dir := range []string{
		filepath.Join(target, "drive_c", "users", username, "Temp"),
		filepath.Join(target, "drive_c", "windows", "temp"),
	} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
		if err := os.Symlink(tempDir, dir); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) home() string {
	if s.HomeDir != "" {
		return s.HomeDir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
