package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

var (
	settingsRemoteURL   string
	settingsRemoteToken string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the remote answer service, the answer cache and the
matching thresholds.

Settings live in ~/.faqdesk/config.toml. FAQDESK_REMOTE_URL and
FAQDESK_REMOTE_TOKEN, from the environment or a .env file, take precedence
over the stored remote settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsRemoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Configure the remote answer service",
	Long: `Set the webhook URL of the remote answer service and an optional bearer
token. Without flags the values are prompted for; the token is read without echo.`,
	RunE: runSettingsRemote,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Select where the answer cache is stored",
	RunE:  runSettingsBackend,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single setting",
	Long: `Set a single setting by key.

Keys:
  remote.url                  webhook URL
  remote.token                bearer token
  remote.timeout_seconds      request timeout
  cache.backend               sqlite | file | memory
  cache.max_entries           cache size
  match.static_threshold      FAQ suggestion bar (0-1)
  match.fuzzy_threshold_cjk   similar cache bar for Japanese/Chinese text (0-1)
  match.fuzzy_threshold_other similar cache bar for other text (0-1)
  match.length_ratio_min      similar cache length window, lower bound
  match.length_ratio_max      similar cache length window, upper bound
  ask.cooldown_seconds        spacing between questions in the TUI and MCP server`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsRemoteCmd.Flags().StringVar(&settingsRemoteURL, "url", "", "webhook URL")
	settingsRemoteCmd.Flags().StringVar(&settingsRemoteToken, "token", "", "bearer token")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsRemoteCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Remote]")
	if settings.Remote.IsConfigured() {
		cmd.Printf("  URL: %s\n", settings.Remote.URL)
	} else {
		cmd.Printf("  URL: (not set)\n")
	}
	if settings.Remote.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.Remote.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.Remote.Timeout)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Backend: %s\n", settings.Cache.Backend.Description())
	cmd.Printf("  Max entries: %d\n", settings.Cache.MaxEntries)
	cmd.Println()

	cmd.Println("[Match]")
	cmd.Printf("  Static threshold: %.2f\n", settings.Match.StaticThreshold)
	cmd.Printf("  Fuzzy threshold (CJK): %.2f\n", settings.Match.FuzzyThresholdCJK)
	cmd.Printf("  Fuzzy threshold (other): %.2f\n", settings.Match.FuzzyThresholdOther)
	cmd.Printf("  Length ratio: %.2f - %.2f\n", settings.Match.LengthRatioMin, settings.Match.LengthRatioMax)
	cmd.Println()

	cmd.Println("[Ask]")
	cmd.Printf("  Cooldown: %s\n", settings.Ask.Cooldown)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}
	if !settings.Remote.IsConfigured() {
		cmd.Println("Run 'faqdesk settings remote' to set the remote answer service.")
	}

	return nil
}

func runSettingsRemote(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	url := settingsRemoteURL
	token := settingsRemoteToken
	reader := bufio.NewReader(cmd.InOrStdin())

	if url == "" {
		current := ""
		if settings, err := settingsService.Get(); err == nil {
			current = settings.Remote.URL
		}
		cmd.Printf("Enter webhook URL [%s]: ", current)
		url = readLine(reader)
		if url == "" {
			url = current
		}
		if token == "" {
			cmd.Print("Enter bearer token (optional): ")
			token = readPassword(cmd.InOrStdin(), reader)
			cmd.Println()
		}
	}

	if err := settingsService.SetRemote(url, token); err != nil {
		return fmt.Errorf("failed to configure remote service: %w", err)
	}

	cmd.Printf("Remote answer service set to: %s\n", url)
	return nil
}

func runSettingsBackend(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Select Cache Backend")
	cmd.Println("--------------------")
	backends := domain.AllCacheBackends()
	for i, b := range backends {
		cmd.Printf("  %d. %s\n", i+1, b.Description())
	}
	cmd.Print("\nEnter choice: ")
	idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(backends), 0)
	if idx == 0 {
		return errors.New("invalid selection")
	}

	selected := backends[idx-1]
	if err := settingsService.SetCacheBackend(selected); err != nil {
		return fmt.Errorf("failed to set cache backend: %w", err)
	}

	cmd.Printf("Cache backend set to: %s\n", selected.Description())
	cmd.Println("The new backend is used from the next start.")
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return err
	}

	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readPassword reads without echo when in is a terminal, and falls back to
// a plain line from reader otherwise.
func readPassword(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
