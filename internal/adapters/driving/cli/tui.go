package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui"
	"github.com/custodia-labs/faqdesk/internal/adapters/driving/tui/messages"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Type a question and press enter. When a built-in FAQ entry or a saved answer
looks like a match you are asked to choose before anything is sent to the
remote answer service. Settings changes are picked up while the TUI runs.

Controls:
  enter      - Ask / Choose
  tab        - Fill a quick template
  ↑/k, ↓/j   - Move between options
  esc        - Cancel a suggestion / Back
  c, m, n    - Copy answer, mail the office, new question
  ctrl+f     - Browse the FAQ
  ctrl+c     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the wired services.
func tuiPorts() *tui.Ports {
	return &tui.Ports{
		Resolver: resolverService,
		Corpus:   corpusService,
		Mail:     mailService,
		Actions:  actionService,
		Cooldown: cooldownGate,
		Settings: settingsService,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	startConfigWatcher(cmd.Context(), func() {
		p.Send(messages.ConfigReloaded{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
