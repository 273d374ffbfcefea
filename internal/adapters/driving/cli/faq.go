package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "Browse the built-in FAQ",
}

var faqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List FAQ entries",
	RunE:  runFaqList,
}

var faqMatchCmd = &cobra.Command{
	Use:   "match [question]",
	Short: "Show the closest FAQ entry for a question",
	Long: `Score a question against every FAQ phrasing and print the closest entry.
This does not touch the answer cache or the remote service.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFaqMatch,
}

var faqTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List quick question templates",
	RunE:  runFaqTemplates,
}

func init() {
	faqCmd.AddCommand(faqListCmd)
	faqCmd.AddCommand(faqMatchCmd)
	faqCmd.AddCommand(faqTemplatesCmd)
	rootCmd.AddCommand(faqCmd)
}

func runFaqList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	for i, g := range corpusService.Groups() {
		cmd.Printf("[%d] %s\n", i+1, g.Title)
		for _, q := range g.Questions.JA {
			cmd.Printf("      ja: %s\n", q)
		}
		for _, q := range g.Questions.EN {
			cmd.Printf("      en: %s\n", q)
		}
		cmd.Println()
	}
	return nil
}

func runFaqMatch(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	best, ok := corpusService.FindBestMatch(strings.Join(args, " "))
	if !ok {
		cmd.Println("No FAQ entries.")
		return nil
	}

	cmd.Printf("FAQ:        %s\n", best.Group.Title)
	cmd.Printf("Matched:    %s (%s)\n", best.Phrasing, best.Language)
	cmd.Printf("Similarity: %.3f\n", best.Score)
	cmd.Println()
	cmd.Println("[JA]")
	cmd.Println(best.Group.Answers.JA)
	cmd.Println()
	cmd.Println("[EN]")
	cmd.Println(best.Group.Answers.EN)
	return nil
}

func runFaqTemplates(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	for _, section := range corpusService.Templates() {
		cmd.Println(section.Title)
		for _, item := range section.Items {
			cmd.Printf("  %-24s %s\n", item.Label, item.Text)
		}
		cmd.Println()
	}
	return nil
}
