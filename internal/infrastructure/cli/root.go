// Package cli wires the cobra command surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tatsh/mkwineprefix/internal/app"
	"github.com/Tatsh/mkwineprefix/internal/domain"
)

// NewRootCmd builds the mkwineprefix command.
func NewRootCmd(ctx context.Context) *cobra.Command {
	var (
		arch32          bool
		asio            bool
		debug           bool
		disableExplorer bool
		disableServices bool
		dpi             int
		dxvaVAAPI       bool
		eax             bool
		gtk             bool
		noAssocs        bool
		noGecko         bool
		noMono          bool
		noXDG           bool
		noto            bool
		nvapi           bool
		prefixRoot      string
		sandbox         bool
		tmpfs           bool
		tricks          []string
		vd              string
		windowsVersion  string
		winrtDark       bool
	)

	root := &cobra.Command{
		Use:   "mkwineprefix PREFIX_NAME",
		Short: "Create a Wine prefix with custom settings",
		Long: "Create a Wine prefix with custom settings.\n\n" +
			"This should be used with eval: eval $(mkwineprefix ...)",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := app.BuildContainer(cmd.Context(), debug)
			if err != nil {
				return err
			}

			version := domain.WindowsVersion(windowsVersion)
			if !cmd.Flags().Changed("windows-version") {
				version = container.Config.WindowsVersion
			}
			if !version.Valid() {
				return fmt.Errorf("invalid windows version %q (choose from %s)",
					windowsVersion, versionChoices())
			}

			req := domain.PrefixRequest{
				Name:            args[0],
				Root:            prefixRoot,
				Arch32:          arch32,
				DPI:             dpi,
				WindowsVersion:  version,
				ASIO:            asio,
				DisableExplorer: disableExplorer,
				DisableServices: disableServices,
				DXVAVAAPI:       dxvaVAAPI,
				DXVKNVAPI:       nvapi,
				EAX:             eax,
				GTK:             gtk,
				NoAssociations:  noAssocs,
				NoGecko:         noGecko,
				NoMono:          noMono,
				NoXDG:           noXDG,
				NotoSans:        noto,
				Sandbox:         sandbox,
				Tmpfs:           tmpfs,
				WinRTDark:       winrtDark,
				Tricks:          tricks,
				VirtualDesktop:  vd,
			}

			target, err := container.PrefixService.Create(cmd.Context(), req)
			if err != nil {
				return renderError(cmd, err)
			}

			exportLine := shellQuote("WINEPREFIX=" + target)
			fmt.Fprintf(cmd.ErrOrStderr(),
				"Run `export WINEPREFIX=%s` before running wine or use env:\n\n"+
					"env %s wine ...\n\n"+
					"If you ran this with eval, your shell is ready.\n",
				target, exportLine)
			fmt.Fprintf(cmd.OutOrStdout(), "export %s\n", exportLine)
			fmt.Fprintf(cmd.OutOrStdout(), "export PS1=\"%s🍷$PS1\"\n", args[0])
			return nil
		},
	}
	root.SetContext(ctx)

	flags := root.Flags()
	flags.IntVarP(&dpi, "dpi", "D", domain.DefaultDPI, "DPI.")
	flags.BoolVarP(&debug, "debug", "d", false, "Enable debug output.")
	flags.BoolVar(&disableExplorer, "disable-explorer", false,
		"Disable starting explorer.exe automatically.")
	flags.BoolVar(&disableServices, "disable-services", false,
		"Disable starting services.exe automatically (only useful for simple CLI programs with --disable-explorer).")
	flags.BoolVarP(&eax, "eax", "E", false, "Enable EAX.")
	flags.BoolVarP(&gtk, "gtk", "g", false, "Enable Gtk+ theming.")
	flags.StringVarP(&prefixRoot, "prefix-root", "r", "", "Prefix root.")
	flags.BoolVarP(&sandbox, "sandbox", "S", false, "Sandbox the prefix.")
	flags.BoolVar(&noGecko, "no-gecko", false, "Disable downloading Gecko automatically.")
	flags.BoolVar(&noMono, "no-mono", false, "Disable downloading Mono automatically.")
	flags.BoolVar(&noXDG, "no-xdg", false, "Disable winemenubuilder.exe.")
	flags.BoolVar(&noAssocs, "no-assocs", false,
		"Disable creating file associations, but still allow menu entries to be made (unless --no-xdg is also passed).")
	flags.BoolVarP(&nvapi, "nvapi", "N", false, "Add dxvk-nvapi.")
	flags.BoolVarP(&noto, "noto", "o", false, "Use Noto Sans in place of most fonts.")
	flags.BoolVarP(&asio, "asio", "A", false, "Enable ASIO support.")
	flags.StringArrayVarP(&tricks, "trick", "T", nil, "Add an argument for winetricks.")
	flags.BoolVarP(&tmpfs, "tmpfs", "t", false, "Make Wine use tmpfs.")
	flags.StringVarP(&windowsVersion, "windows-version", "V", string(domain.Windows10),
		"Windows version ("+versionChoices()+").")
	flags.StringVar(&vd, "vd", domain.VirtualDesktopOff, "Virtual desktop size, e.g. 1024x768.")
	flags.BoolVarP(&winrtDark, "winrt-dark", "W", false, "Enable dark mode for WinRT apps.")
	flags.BoolVarP(&dxvaVAAPI, "dxva-vaapi", "x", false, "Enable DXVA2 support with VA-API.")
	flags.BoolVar(&arch32, "32", false, "Use 32-bit prefix.")

	return root
}

// renderError prints the captured output of a failed external invocation the
// way the tool always has, then propagates the error for the exit status.
func renderError(cmd *cobra.Command, err error) error {
	var procErr *domain.ProcessError
	if errors.As(err, &procErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exception: %v\n", procErr)
		fmt.Fprintf(cmd.ErrOrStderr(), "STDERR: %s\n", procErr.Stderr)
		fmt.Fprintf(cmd.ErrOrStderr(), "STDOUT: %s\n", procErr.Stdout)
	}
	return err
}

func versionChoices() string {
	choices := make([]string, 0, len(domain.KnownWindowsVersions))
	for _, v := range domain.KnownWindowsVersions {
		choices = append(choices, string(v))
	}
	return strings.Join(choices, ", ")
}

// shellQuote quotes s for POSIX shells when it contains characters that would
// otherwise be interpreted.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n\"'\\$`!*?[]();<>|&#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// Execute runs the root command and maps errors to the process exit status.
func Execute() {
	ctx := context.Background()
	root := NewRootCmd(ctx)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
