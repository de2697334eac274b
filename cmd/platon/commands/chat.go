// ABOUTME: Interactive chat loop reading messages from stdin
// ABOUTME: Classifies each line as a note or a question and keeps history
package commands

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platonbot/platon/internal/knowledge"
	"github.com/platonbot/platon/internal/models"
)

var chatOwner int64

// NewChatCmd creates the chat command.
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat with the knowledge base",
		Long: `Read messages from stdin in a loop. Lines starting with the note
prefix (default "remember:") are stored in the knowledge base; everything
else is answered from it. History is kept for the session only.`,
		RunE: runChat,
		Example: `  platon chat --owner 42
  > remember: Paris is the capital of France.
  > What is the capital of France?`,
	}

	cmd.Flags().Int64Var(&chatOwner, "owner", 0, "Owner id for the session")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := buildCore(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Connected. Type a question, or prefix a note with", c.cfg.NotePrefix)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for fmt.Fprint(out, "> "); scanner.Scan(); fmt.Fprint(out, "> ") {
		line := scanner.Text()
		if line == "" {
			continue
		}

		request := knowledge.Classify(line, c.cfg.NotePrefix)
		switch request.Kind {
		case knowledge.KindNote:
			result, err := c.ingestor.IngestText(ctx, request.Text, chatOwner)
			if err != nil {
				if errors.Is(err, models.ErrEmptyInput) {
					fmt.Fprintln(out, "Note text is empty, nothing stored.")
					continue
				}
				fmt.Fprintf(out, "Could not store the note: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Stored %d fragment(s) in the knowledge base.\n", result.FragmentCount)

		case knowledge.KindQuestion:
			answer, err := c.engine.Answer(ctx, request.Text, chatOwner, c.history.Get(chatOwner))
			if err != nil {
				fmt.Fprintf(out, "Could not answer: %v\n", err)
				continue
			}
			c.history.Append(chatOwner, models.RoleUser, request.Text)
			c.history.Append(chatOwner, models.RoleAssistant, answer)
			fmt.Fprintln(out, answer)
		}
	}
	return scanner.Err()
}
