// ABOUTME: One-shot question answering from the owner's knowledge base
// ABOUTME: No session history; each invocation is independent
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askOwner int64

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a question from the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
		Example: `  platon ask --owner 42 "What is the capital of France?"`,
	}

	cmd.Flags().Int64Var(&askOwner, "owner", 0, "Owner id whose knowledge base is queried")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := buildCore(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	question := strings.Join(args, " ")
	answer, err := c.engine.Answer(ctx, question, askOwner, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
