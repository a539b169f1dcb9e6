package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/odintv/internal/catalog"
	"github.com/muurk/odintv/internal/config"
	"github.com/muurk/odintv/internal/logging"
	"github.com/muurk/odintv/internal/navigator"
	"github.com/muurk/odintv/internal/remote"
	"github.com/muurk/odintv/internal/trending"
	"github.com/muurk/odintv/internal/ui"
	"github.com/muurk/odintv/internal/urls"
)

// Subcommand flags
var (
	sitesFormat   string
	scanTimeout   time.Duration
	sendAddr      string
	sendName      string
	forceOverride bool
)

func init() {
	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(configCmd)

	sitesCmd.Flags().StringVar(&sitesFormat, "format", "table", "Output format (table, yaml)")

	remoteCmd.AddCommand(discoverCmd)
	remoteCmd.AddCommand(sendCmd)
	discoverCmd.Flags().DurationVar(&scanTimeout, "timeout", remote.DefaultScanTimeout, "Discovery timeout")
	sendCmd.Flags().StringVar(&sendAddr, "addr", "", "Receiver address host:port (skips discovery)")
	sendCmd.Flags().StringVar(&sendName, "name", "", "Receiver instance name to discover")
	sendCmd.Flags().DurationVar(&scanTimeout, "timeout", remote.DefaultScanTimeout, "Discovery timeout")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&forceOverride, "force", false, "Overwrite an existing sites catalog")
}

// setupCLI loads settings and enables stderr logging for one-shot commands
func setupCLI(cmd *cobra.Command) (config.Settings, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return config.Settings{}, err
	}
	if err := logging.Initialize(settings.Log.Level); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the speed-dial sites",
	Long: `List the sites shown on the dashboard grid, in navigation order.

Pinned sites (the "Recommended" row) are marked with a star. The list comes
from the sites catalog file, or the built-in defaults when it does not exist.`,
	Example: `  # Table of sites
  odintv sites

  # Dump the effective catalog as YAML
  odintv sites --format yaml > my-sites.yaml`,
	Args: cobra.NoArgs,
	RunE: runSites,
}

func runSites(cmd *cobra.Command, args []string) error {
	settings, err := setupCLI(cmd)
	if err != nil {
		return err
	}

	cat, source, err := catalog.Load(settings.Catalog.Path)
	if err != nil {
		return err
	}

	switch sitesFormat {
	case "yaml":
		data, err := cat.Marshal()
		if err != nil {
			return err
		}
		_, _ = cmd.OutOrStdout().Write(data)
		return nil
	case "table":
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintHeader("Sites", "odintv sites",
			ui.Param{Key: "Source", Value: catalogSource(source, settings.Catalog.Path)},
			ui.Param{Key: "Sites", Value: strconv.Itoa(cat.Len())},
		)
		p.PrintTable(ui.SitesTable(cat))
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: table, yaml)", sitesFormat)
	}
}

func catalogSource(source catalog.Source, path string) string {
	if source == catalog.SourceFile {
		return path
	}
	return string(source)
}

var geminiTroubleshooting = []string{
	"Set GEMINI_API_KEY or pass --api-key (create one at " + urls.GeminiAPIKeys + ")",
	"Check the model name with --model, see " + urls.GeminiModels,
	"Run with --log-level debug for request details",
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Fetch trending topics",
	Long: `Ask Gemini for the trending topics shown on the dashboard.

Requires an API key (GEMINI_API_KEY, API_KEY, --api-key or gemini.api_key in
the settings file).`,
	Args: cobra.NoArgs,
	RunE: runTrending,
}

func runTrending(cmd *cobra.Command, args []string) error {
	settings, err := setupCLI(cmd)
	if err != nil {
		return err
	}
	client := newGeminiClient(settings)

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Trending Topics", "odintv trending",
		ui.Param{Key: "Model", Value: client.Model},
	)

	items, err := client.FetchTrending(cmd.Context())
	if err != nil {
		p.PrintError("Trending fetch failed", err, troubleshootingFor(err)...)
		return errReported
	}
	if len(items) == 0 {
		p.PrintWarning("No trending topics returned")
		return nil
	}

	p.PrintTable(ui.TrendingTable(items))
	return nil
}

var detectCmd = &cobra.Command{
	Use:   "detect <site-id>",
	Short: "Run smart video detection for a site",
	Long: `Ask Gemini whether a catalog site streams video and how to optimize it.

This is the same request the browser makes when a site opens in the player.`,
	Example: `  odintv detect yt
  odintv detect nf --model gemini-2.5-flash`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	settings, err := setupCLI(cmd)
	if err != nil {
		return err
	}
	cat, _, err := catalog.Load(settings.Catalog.Path)
	if err != nil {
		return err
	}

	item, _, ok := cat.Find(args[0])
	if !ok {
		ids := make([]string, 0, cat.Len())
		for _, it := range cat.All() {
			ids = append(ids, it.ID)
		}
		return fmt.Errorf("unknown site %q (known: %s)", args[0], strings.Join(ids, ", "))
	}

	client := newGeminiClient(settings)
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Video Detection", "odintv detect "+item.ID,
		ui.Param{Key: "Site", Value: item.Name},
		ui.Param{Key: "URL", Value: item.URL},
		ui.Param{Key: "Model", Value: client.Model},
	)

	hint, err := client.DetectVideo(cmd.Context(), item.Name, item.URL)
	if err != nil {
		p.PrintError("Detection failed", err, troubleshootingFor(err)...)
		return errReported
	}

	p.PrintSuccess("Detection complete", hintDetails(hint)...)
	return nil
}

func hintDetails(h trending.VideoHint) []ui.Param {
	details := []ui.Param{{Key: "Has video", Value: strconv.FormatBool(h.HasVideo)}}
	if h.VideoType != "" {
		details = append(details, ui.Param{Key: "Stream type", Value: h.VideoType})
	}
	if h.Confidence > 0 {
		details = append(details, ui.Param{Key: "Confidence", Value: fmt.Sprintf("%.0f%%", h.Confidence*100)})
	}
	if h.OptimizationTip != "" {
		details = append(details, ui.Param{Key: "Tip", Value: h.OptimizationTip})
	}
	return details
}

func httpStatus(err error) int {
	var e *trending.Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func troubleshootingFor(err error) []string {
	switch {
	case trending.IsKind(err, trending.ErrKindConfig):
		return geminiTroubleshooting[:1]
	case trending.IsKind(err, trending.ErrKindNetwork):
		return []string{"Check your internet connection", "Check gemini.base_url in the settings file"}
	case trending.IsKind(err, trending.ErrKindHTTP) && httpStatus(err) >= 500:
		return []string{"The Gemini API is failing, check " + urls.GeminiStatus}
	default:
		return geminiTroubleshooting[1:]
	}
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Find and drive running browsers over the network",
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover browsers accepting remote keys",
	Long: `Browse mDNS for ` + remote.ServiceType + ` services.

Only browsers started with --remote (and without --no-advertise) appear.`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, args []string) error {
	if _, err := setupCLI(cmd); err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Remote Discovery", "odintv remote discover",
		ui.Param{Key: "Service", Value: remote.ServiceType},
		ui.Param{Key: "Timeout", Value: scanTimeout.String()},
	)

	scanner := remote.NewScanner()
	scanner.Timeout = scanTimeout
	receivers, err := scanner.Scan(cmd.Context())
	if err != nil {
		p.PrintError("Discovery failed", err, "Check that multicast is allowed on this network")
		return errReported
	}

	if len(receivers) == 0 {
		p.PrintWarning("No browsers found",
			ui.Param{Key: "Hint", Value: "start one with: odintv --remote"},
		)
		return nil
	}

	p.PrintTable(ui.ReceiversTable(receivers))
	return nil
}

var sendCmd = &cobra.Command{
	Use:   "send KEY...",
	Short: "Send navigation keys to a running browser",
	Long: `Send one or more keys to a browser started with --remote.

Keys use remote-control names (` + strings.Join(navigator.KeyNames(), ", ") + `)
or short forms (up, down, left, right, enter, esc).
Without --addr the first discovered browser (or the one named by --name) is used.`,
	Example: `  odintv remote send --addr 192.168.1.20:8765 ArrowRight Enter
  odintv remote send --name "Odin TV (livingroom)" down down enter`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	if _, err := setupCLI(cmd); err != nil {
		return err
	}

	addr, err := resolveReceiver(cmd.Context())
	if err != nil {
		return err
	}

	client, err := remote.Dial(cmd.Context(), addr)
	if err != nil {
		return err
	}
	defer client.Close()

	p := ui.NewPrinter(cmd.OutOrStdout())
	result := ui.NewSuccessResult("Keys delivered to " + addr)
	failed := 0
	for _, key := range args {
		ack, err := client.Send(key)
		if err != nil {
			return err
		}
		if ack.OK {
			result.AddDetail(key, ack.Event)
		} else {
			failed++
			result.AddDetail(key, "rejected: "+ack.Error)
		}
	}

	if failed > 0 {
		result.Type = ui.ResultWarning
		result.Title = fmt.Sprintf("%d of %d keys rejected by %s", failed, len(args), addr)
	}
	p.Println(result.SetWidth(p.Width()))
	return nil
}

func resolveReceiver(ctx context.Context) (string, error) {
	if sendAddr != "" {
		return sendAddr, nil
	}

	scanner := remote.NewScanner()
	scanner.Timeout = scanTimeout

	if sendName != "" {
		r, err := scanner.Find(ctx, sendName)
		if err != nil {
			return "", err
		}
		return r.Addr(), nil
	}

	receivers, err := scanner.Scan(ctx)
	if err != nil {
		return "", err
	}
	if len(receivers) == 0 {
		return "", fmt.Errorf("no browsers found within %s; pass --addr", scanTimeout)
	}
	return receivers[0].Addr(), nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings and catalog files",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default settings and sites files",
	Long: `Create config.yaml with every default value and sites.yaml with the
built-in catalog, in the odintv config directory. An existing config.yaml is
never overwritten; sites.yaml is only replaced with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := config.EnsureConfigDir(); err != nil {
		return err
	}
	settingsPath := configFile
	if settingsPath == "" {
		var err error
		if settingsPath, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	result := ui.NewSuccessResult("Configuration initialized")

	if err := config.WriteDefault(settingsPath); err != nil {
		if _, statErr := os.Stat(settingsPath); statErr != nil {
			return err
		}
		result.AddDetail("Settings", settingsPath+" (kept existing)")
	} else {
		result.AddDetail("Settings", settingsPath)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	sitesPath := settings.Catalog.Path
	if _, err := os.Stat(sitesPath); err == nil && !forceOverride {
		result.AddDetail("Sites", sitesPath+" (kept existing)")
	} else {
		if err := catalog.WriteFile(sitesPath, catalog.Default()); err != nil {
			return err
		}
		result.AddDetail("Sites", sitesPath)
	}

	p.Println(result.SetWidth(p.Width()))
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Print the settings after applying defaults, the settings file, ODINTV_*
environment variables and flags. The API key is masked.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Settings", "odintv config show", settingsParams(settings)...)
	return nil
}

func settingsParams(s config.Settings) []ui.Param {
	return []ui.Param{
		{Key: "log.level", Value: orNone(s.Log.Level)},
		{Key: "log.file", Value: s.Log.File},
		{Key: "gemini.api_key", Value: maskSecret(s.Gemini.APIKey)},
		{Key: "gemini.model", Value: s.Gemini.Model},
		{Key: "gemini.base_url", Value: s.Gemini.BaseURL},
		{Key: "gemini.timeout", Value: s.Gemini.Timeout.String()},
		{Key: "player.quality", Value: s.Player.DefaultQuality},
		{Key: "player.autohide", Value: s.Player.AutoHide.String()},
		{Key: "remote.enabled", Value: strconv.FormatBool(s.Remote.Enabled)},
		{Key: "remote.port", Value: strconv.Itoa(s.Remote.Port)},
		{Key: "remote.advertise", Value: strconv.FormatBool(s.Remote.Advertise)},
		{Key: "remote.name", Value: s.Remote.Name},
		{Key: "catalog.path", Value: s.Catalog.Path},
		{Key: "catalog.watch", Value: strconv.FormatBool(s.Catalog.Watch)},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// maskSecret keeps the last four characters of long secrets
func maskSecret(s string) string {
	switch {
	case s == "":
		return "(not set)"
	case len(s) <= 8:
		return strings.Repeat("*", len(s))
	default:
		return strings.Repeat("*", 8) + s[len(s)-4:]
	}
}
