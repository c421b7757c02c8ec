package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearYes bool

// clearCmd removes pack-managed holiday events from a subject's calendar.
var clearCmd = &cobra.Command{
	Use:   "clear <subject>",
	Short: "Remove all pack-managed holiday events from a subject's calendar",
	Long: `Clear deletes every event carrying a pack category from the subject's
calendar. Events outside the pack categories are never touched.

Examples:
  # Clear with interactive confirmation
  clear jane@example.com

  # Clear without prompting (non-interactive)
  clear jane@example.com --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Auto-confirm deletion (non-interactive)")
	RootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	principal := args[0]

	if !clearYes && !confirm(fmt.Sprintf("Delete all pack-managed holiday events for %s?", principal)) {
		fmt.Println("Aborted.")
		return nil
	}

	ctx := context.Background()

	svc, l, err := newPopulateService(ctx)
	if err != nil {
		return err
	}
	defer l.Sync()

	deleted, err := svc.Clear(ctx, principal)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d events for %s\n", deleted, principal)
	return nil
}

// confirm prompts for a yes/no answer on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
