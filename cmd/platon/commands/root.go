// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for serve, chat, ask, remember, ingest and version
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platon",
		Short: "Per-user knowledge assistant with retrieval-augmented answers",
		Long: `Platon is a knowledge assistant. It ingests documents and free-text
notes into a per-user vector knowledge base and answers questions from it,
using recent conversation history as short-term context.

Point it at a Qdrant instance and an OpenAI API key, then:

  platon remember --owner 42 "Paris is the capital of France."
  platon ingest --owner 42 handbook.pdf
  platon ask --owner 42 "What is the capital of France?"
  platon chat --owner 42
  platon serve`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewRememberCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
