// ABOUTME: Ingests .pdf and .txt documents into the owner's knowledge base
// ABOUTME: Unsupported formats are rejected before anything is written
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platonbot/platon/internal/models"
)

var ingestOwner int64

// NewIngestCmd creates the ingest command.
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [file...]",
		Short: "Ingest documents into the knowledge base",
		Long: `Ingest one or more documents into the owner's knowledge base.
Supported formats: .pdf (one text unit per page) and .txt (UTF-8).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
		Example: `  platon ingest --owner 42 handbook.pdf
  platon ingest --owner 42 notes.txt chapter2.pdf`,
	}

	cmd.Flags().Int64Var(&ingestOwner, "owner", 0, "Owner id the documents belong to")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	c, err := buildCore(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	for _, path := range args {
		result, err := c.ingestor.IngestFile(ctx, path, ingestOwner)
		if err != nil {
			if errors.Is(err, models.ErrUnsupportedFormat) {
				return fmt.Errorf("%s: only .pdf and .txt are supported", path)
			}
			return fmt.Errorf("ingesting %s: %w", path, err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stored %d fragment(s).\n", path, result.FragmentCount)
		}
	}
	return nil
}
