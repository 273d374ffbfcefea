package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	mailAnswer string
	mailOpen   bool
	mailCopy   bool
)

var mailCmd = &cobra.Command{
	Use:   "mail [question]",
	Short: "Compose a confirmation email to the program office",
	Long: `Compose an email asking the program office to confirm an answer.

The email is printed, and can be opened in the default mail client or
copied to the clipboard. faqdesk never sends it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMail,
}

func init() {
	mailCmd.Flags().StringVarP(&mailAnswer, "answer", "a", "", "answer to include for confirmation")
	mailCmd.Flags().BoolVar(&mailOpen, "open", false, "open in the default mail client")
	mailCmd.Flags().BoolVar(&mailCopy, "copy", false, "copy the email text to the clipboard")
	rootCmd.AddCommand(mailCmd)
}

func runMail(cmd *cobra.Command, args []string) error {
	if mailService == nil {
		return errors.New("mail service not configured")
	}

	mail := mailService.Compose(strings.Join(args, " "), mailAnswer, now())

	cmd.Printf("To: %s\n", mail.To)
	cmd.Printf("Subject: %s\n", mail.Subject)
	cmd.Println()
	cmd.Println(mail.Body)

	if !mailOpen && !mailCopy {
		return nil
	}
	if actionService == nil {
		return errors.New("action service not configured")
	}

	cmd.Println()
	if mailCopy {
		text := fmt.Sprintf("To: %s\nSubject: %s\n\n%s", mail.To, mail.Subject, mail.Body)
		if err := actionService.CopyToClipboard(cmd.Context(), text); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		cmd.Println("Copied to clipboard.")
	}
	if mailOpen {
		if err := actionService.OpenMail(cmd.Context(), mail); err != nil {
			return fmt.Errorf("open mail client failed: %w", err)
		}
		cmd.Println("Opened in mail client.")
	}
	return nil
}
