package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/voluntree/assist/internal/cli"
	"github.com/voluntree/assist/internal/cli/admin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "assistd",
		Short: "Volunteer platform assistant daemon and CLI",
		Long:  "Assistant daemon for the volunteer event platform: serves the chatbot API and answers questions from the terminal",
	}

	cli.AddHelpJSONFlag(rootCmd)
	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.AskCmd())
	rootCmd.AddCommand(admin.CorpusCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
