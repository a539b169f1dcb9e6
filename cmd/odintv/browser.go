package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/config"
	"github.com/muurk/odintv/internal/logging"
	"github.com/muurk/odintv/internal/navigator"
	"github.com/muurk/odintv/internal/remote"
	"github.com/muurk/odintv/internal/trending"
	"github.com/muurk/odintv/internal/tui"
	"github.com/muurk/odintv/internal/version"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the browser",
	Long: `Launch the full-screen browser.

Arrow keys move focus, Enter selects, Esc or Backspace goes back, ? shows
all keys and q quits. With --remote, phones and scripts can send the same keys
over WebSocket; see 'odintv remote send --help'.`,
	Example: `  # Start on the dashboard
  odintv

  # Accept remote keys on port 9000 without mDNS
  odintv run --remote --remote-port 9000 --no-advertise

  # Start the player in 4K with debug logs in the config directory
  odintv run --quality 4K --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runBrowser,
}

func init() {
	addBrowserFlags(rootCmd.Flags())
	addBrowserFlags(runCmd.Flags())
	rootCmd.AddCommand(runCmd)
}

func addBrowserFlags(fs *pflag.FlagSet) {
	fs.String("quality", "", "Initial player quality (240p, 720p, 1080p, 4K)")
	fs.Bool("remote", false, "Accept remote-control keys over WebSocket")
	fs.Int("remote-port", remote.DefaultPort, "Remote-control port")
	fs.Bool("no-advertise", false, "Do not advertise the remote-control service over mDNS")
}

func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	return config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
}

func newGeminiClient(s config.Settings) *trending.GeminiClient {
	client := trending.NewGeminiClient(s.Gemini.APIKey)
	client.Model = s.Gemini.Model
	client.BaseURL = s.Gemini.BaseURL
	client.SetTimeout(s.Gemini.Timeout)
	return client
}

func runBrowser(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so logs go to a file
	if settings.Log.Level != "" {
		if err := os.MkdirAll(filepath.Dir(settings.Log.File), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	if err := logging.InitializeWithOptions(logging.Options{
		Level:      settings.Log.Level,
		OutputPath: settings.Log.File,
	}); err != nil {
		return err
	}
	defer logging.Sync()

	cat, source, err := catalog.Load(settings.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logging.Info("Catalog loaded",
		zap.String("source", string(source)),
		zap.String("path", settings.Catalog.Path),
		zap.Int("sites", cat.Len()),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		program    *tea.Program
		srv        *remote.Server
		remoteAddr string
		boundPort  int
	)

	if settings.Remote.Enabled {
		srv = remote.NewServer(&remote.Config{Port: settings.Remote.Port}, func(ev navigator.Event) {
			program.Send(tui.RemoteKeyMsg{Event: ev})
		})
		addr, err := srv.Listen()
		if err != nil {
			return err
		}
		boundPort = settings.Remote.Port
		if tcp, ok := addr.(*net.TCPAddr); ok {
			boundPort = tcp.Port
		}
		remoteAddr = displayAddr(boundPort)
	}

	model := tui.NewAppModel(tui.Options{
		Catalog:    cat,
		Provider:   newGeminiClient(settings),
		Quality:    settings.Quality(),
		AutoHide:   settings.Player.AutoHide,
		RemoteAddr: remoteAddr,
	})
	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("browser exited: %w", err)
		}
		return nil
	})

	if srv != nil {
		g.Go(func() error {
			return srv.Serve(gctx)
		})

		if settings.Remote.Advertise {
			g.Go(func() error {
				err := remote.Advertise(gctx, settings.Remote.Name, boundPort, "version="+version.Version)
				if err != nil {
					// remote keys still work by address
					logging.Warn("mDNS advertisement failed", zap.Error(err))
				}
				return nil
			})
		}
	}

	if settings.Catalog.Watch {
		updates, err := catalog.Watch(gctx, settings.Catalog.Path, catalog.DefaultDebounce)
		if err != nil {
			logging.Warn("Catalog watch disabled", zap.Error(err))
		} else {
			g.Go(func() error {
				for u := range updates {
					program.Send(tui.CatalogUpdatedMsg{Catalog: u.Catalog, Err: u.Err})
				}
				return nil
			})
		}
	}

	return g.Wait()
}

// displayAddr is the address shown in the status bar for remotes to dial
func displayAddr(port int) string {
	host := "localhost"
	if ip := outboundIP(); ip != "" {
		host = ip
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// outboundIP returns the first non-loopback IPv4 address, if any
func outboundIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ip4 := ipnet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return ""
}
