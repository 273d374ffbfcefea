package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

var (
	askLang     string
	askAnyway   bool
	askUseCache bool
	askRemote   bool
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question",
	Long: `Resolve a question through the built-in FAQ, the answer cache and the
remote answer service, in that order.

When the FAQ or the cache offers a suggestion the command stops and prints
it. Run the command again with a choice flag to continue:

  faqdesk ask "宿泊は含まれますか？" --lang en
  faqdesk ask "Is there Wi-Fi in the dorm?" --ask-anyway
  faqdesk ask "寮の門限は何時ですか" --use-cache`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askLang, "lang", "", "use the suggested FAQ answer in this language (ja|en)")
	askCmd.Flags().BoolVar(&askAnyway, "ask-anyway", false, "skip a FAQ suggestion")
	askCmd.Flags().BoolVar(&askUseCache, "use-cache", false, "accept a similar cached answer")
	askCmd.Flags().BoolVar(&askRemote, "ask-remote", false, "skip a similar cached answer")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the resolution as JSON")
	askCmd.MarkFlagsMutuallyExclusive("lang", "ask-anyway")
	askCmd.MarkFlagsMutuallyExclusive("use-cache", "ask-remote")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	lang := domain.Language(strings.ToLower(askLang))
	if askLang != "" && !lang.IsValid() {
		return fmt.Errorf("invalid --lang %q: use ja or en", askLang)
	}

	ctx := cmd.Context()
	question := strings.Join(args, " ")

	res, err := resolverService.Ask(ctx, question)
	if errors.Is(err, domain.ErrSuggestionPending) {
		// A one-shot process never carries a suggestion over, but a shared
		// resolver might. Drop it and start again.
		if _, err = resolverService.Cancel(res.SuggestionID); err == nil {
			res, err = resolverService.Ask(ctx, question)
		}
	}

	if err == nil && res.Kind == domain.ResolutionAwaitingFaqChoice {
		switch {
		case lang != "":
			res, err = resolverService.UseFaqAnswer(res.SuggestionID, lang)
		case askAnyway:
			res, err = resolverService.AskAnyway(ctx, res.SuggestionID)
		}
	}

	if err == nil && res.Kind == domain.ResolutionAwaitingCacheChoice {
		switch {
		case askUseCache:
			res, err = resolverService.UseCachedAnswer(res.SuggestionID)
		case askRemote:
			res, err = resolverService.AskRemoteInstead(ctx, res.SuggestionID)
		}
	}

	if askJSON && (err == nil || res.Kind == domain.ResolutionFailed) {
		data, jerr := json.MarshalIndent(newResolutionView(res), "", "  ")
		if jerr != nil {
			return fmt.Errorf("failed to marshal resolution: %w", jerr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	if err != nil {
		return err
	}

	printResolution(cmd.OutOrStdout(), res)
	return nil
}
