// ABOUTME: Stores a free-text note in the owner's knowledge base
// ABOUTME: Accepts text as arguments or on stdin
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platonbot/platon/internal/models"
)

var rememberOwner int64

// NewRememberCmd creates the remember command.
func NewRememberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remember [text]",
		Short: "Store a note in the knowledge base",
		Long: `Store a free-text note in the owner's knowledge base under the
"message" source. Reads from stdin when no text argument is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: runRemember,
		Example: `  platon remember --owner 42 "Paris is the capital of France."
  cat notes.md | platon remember --owner 42`,
	}

	cmd.Flags().Int64Var(&rememberOwner, "owner", 0, "Owner id the note belongs to")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runRemember(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	c, err := buildCore(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	result, err := c.ingestor.IngestText(ctx, text, rememberOwner)
	if err != nil {
		if errors.Is(err, models.ErrEmptyInput) {
			return fmt.Errorf("note text is empty, nothing stored")
		}
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %d fragment(s).\n", result.FragmentCount)
	}
	return nil
}
