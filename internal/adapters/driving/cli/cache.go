package cli

import (
	"bufio"
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

const cachePreviewRunes = 60

var cacheYes bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the answer cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached answers, newest first",
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached answer",
	RunE:  runCacheClear,
}

func init() {
	cacheClearCmd.Flags().BoolVarP(&cacheYes, "yes", "y", false, "do not ask for confirmation")
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	entries := cacheService.Entries(cmd.Context())
	if len(entries) == 0 {
		cmd.Println("Cache is empty.")
		return nil
	}

	for i, e := range entries {
		cmd.Printf("[%d] %s  %s\n", i+1, e.SavedTime().Format(savedAtLayout), e.Question)
		cmd.Printf("      %s\n", preview(e.Answer, cachePreviewRunes))
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	if !cacheYes {
		cmd.Print("Remove all cached answers? [y/N]: ")
		answer := strings.ToLower(readLine(bufio.NewReader(cmd.InOrStdin())))
		if answer != "y" && answer != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	cacheService.Clear(cmd.Context())
	cmd.Println("Cache cleared.")
	return nil
}

// preview flattens s to one line and caps it at n runes.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
