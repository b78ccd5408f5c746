// Package nvidia installs the NVAPI/NGX interop libraries into a prefix.
//
// The nvidia-libs release archive is fetched from GitHub, the DLL sets are
// extracted into the prefix's Windows directories and each library is
// registered as a native DLL override immediately before extraction.
package nvidia

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/Tatsh/mkwineprefix/internal/domain"
	"github.com/Tatsh/mkwineprefix/internal/ports"
)

const (
	// DefaultBaseURL is the nvidia-libs release download location.
	DefaultBaseURL = "https://github.com/SveSop/nvidia-libs/releases/download"
	// DefaultVersion is the nvidia-libs release installed by default.
	DefaultVersion = "0.8.3"
	// DefaultSupportDir holds the host's nvngx support libraries.
	DefaultSupportDir = "/lib64/nvidia/wine"

	fetchTimeout = 15 * time.Second

	dllOverridesKey = `HKCU\Software\Wine\DllOverrides`
	ngxCoreKey      = `HKLM\Software\NVIDIA Corporation\Global\NGXCore`
)

// x32Libraries always go into drive_c/windows/syswow64.
var x32Libraries = []string{"nvcuda", "nvcuvid", "nvencodeapi", "nvapi"}

// x64Libraries go into drive_c/windows/system32 on 64-bit prefixes.
var x64Libraries = []string{"nvcuda", "nvoptix", "nvcuvid", "nvencodeapi64", "nvapi64", "nvofapi64"}

// supportFiles are copied from the host driver installation into system32.
var supportFiles = []string{"nvngx.dll", "_nvngx.dll"}

// Installer implements ports.InteropInstaller.
type Installer struct {
	Runner ports.CommandRunner
	Logger ports.Logger

	// Client, BaseURL, Version and SupportDir default to an HTTP client with
	// the fixed fetch timeout, DefaultBaseURL, DefaultVersion and
	// DefaultSupportDir.
	Client     *http.Client
	BaseURL    string
	Version    string
	SupportDir string
}

// Install fetches the release archive and places the interop libraries into
// the prefix at target. Every failure is fatal to the surrounding plan.
func (i *Installer) Install(ctx context.Context, target string, env []string, only32Bit bool) error {
	version := i.Version
	if version == "" {
		version = DefaultVersion
	}
	archive, err := i.fetch(ctx, version)
	if err != nil {
		return err
	}
	members, err := readArchive(archive)
	if err != nil {
		return err
	}

	root := fmt.Sprintf("nvidia-libs-%s", version)
	if err := i.installSet(ctx, members, root, "x32", x32Libraries, "wine",
		filepath.Join(target, "drive_c", "windows", "syswow64"), env); err != nil {
		return err
	}
	if !only32Bit {
		if err := i.installSet(ctx, members, root, "x64", x64Libraries, "wine64",
			filepath.Join(target, "drive_c", "windows", "system32"), env); err != nil {
			return err
		}
	}

	if err := i.copySupportFiles(target); err != nil {
		return err
	}

	if !only32Bit {
		step := domain.InvocationStep{
			Bin: "wine64",
			Args: []string{
				"reg", "add", ngxCoreKey,
				"/t", "REG_SZ", "/v", "FullPath", "/d", `C:\Windows\system32`, "/f",
			},
			Env: env,
		}
		i.Logger.Debug("running", map[string]interface{}{"command": step.String()})
		if _, err := i.Runner.Run(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) fetch(ctx context.Context, version string) ([]byte, error) {
	url := fmt.Sprintf("%s/v%s/nvidia-libs-%s.tar.xz", i.baseURL(), version, version)
	i.Logger.Debug("fetching", map[string]interface{}{"url": url})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := i.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// readArchive decompresses the tar.xz payload and indexes its members.
func readArchive(data []byte) (map[string][]byte, error) {
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress archive: %w", err)
	}
	members := make(map[string][]byte)
	tr := tar.NewReader(xzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		contents, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read archive member %s: %w", header.Name, err)
		}
		members[header.Name] = contents
	}
	return members, nil
}

// installSet registers each library as a native override, then writes the
// extracted DLL, preserving the original per-library ordering.
func (i *Installer) installSet(
	ctx context.Context,
	members map[string][]byte,
	root, arch string,
	libraries []string,
	wineBin, destDir string,
	env []string,
) error {
	for _, item := range libraries {
		step := domain.InvocationStep{
			Bin:  wineBin,
			Args: []string{"reg", "add", dllOverridesKey, "/v", item, "/d", "native", "/f"},
			Env:  env,
		}
		i.Logger.Debug("running", map[string]interface{}{"command": step.String()})
		if _, err := i.Runner.Run(ctx, step); err != nil {
			return err
		}

		member := fmt.Sprintf("%s/%s/%s.dll", root, arch, item)
		contents, ok := members[member]
		if !ok {
			return fmt.Errorf("archive is missing %s", member)
		}
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(destDir, item+".dll"), contents, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) copySupportFiles(target string) error {
	system32 := filepath.Join(target, "drive_c", "windows", "system32")
	if err := os.MkdirAll(system32, 0o755); err != nil {
		return err
	}
	for _, name := range supportFiles {
		contents, err := os.ReadFile(filepath.Join(i.supportDir(), name))
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(system32, name), contents, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) client() *http.Client {
	if i.Client != nil {
		return i.Client
	}
	return &http.Client{Timeout: fetchTimeout}
}

func (i *Installer) baseURL() string {
	if i.BaseURL != "" {
		return i.BaseURL
	}
	return DefaultBaseURL
}

func (i *Installer) supportDir() string {
	if i.SupportDir != "" {
		return i.SupportDir
	}
	return DefaultSupportDir
}

var _ ports.InteropInstaller = (*Installer)(nil)
