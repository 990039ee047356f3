package admin

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voluntree/assist/internal/knowledge"
	"github.com/voluntree/assist/internal/retrieval"
)

// CorpusCmd returns the corpus command
func CorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect the knowledge corpus",
		Long:  "List and validate the knowledge corpus the assistant answers from",
	}

	cmd.AddCommand(CorpusListCmd())
	cmd.AddCommand(CorpusCheckCmd())

	return cmd
}

// CorpusListCmd returns the corpus list command
func CorpusListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge chunks",
		Long:  "List the chunks of the built-in or overridden corpus, optionally filtered by requester role",
		RunE:  runCorpusList,
	}

	cmd.Flags().StringP("role", "r", "", "Show only chunks visible to this role")
	cmd.Flags().String("corpus", "", "Path to a corpus override file")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")

	return cmd
}

func runCorpusList(cmd *cobra.Command, args []string) error {
	role, _ := cmd.Flags().GetString("role")
	corpusFlag, _ := cmd.Flags().GetString("corpus")
	outputFormat, _ := cmd.Flags().GetString("output")

	corpus, err := knowledge.LoadFile(corpusFlag)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	chunks := corpus.Chunks
	if role != "" {
		chunks = retrieval.FilterEligible(chunks, role)
	}

	if outputFormat == "json" {
		encoded, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Corpus version %s, %d chunks\n\n", corpus.Version, len(chunks))
	for _, chunk := range chunks {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-10s %-16s %s\n", chunk.ID, chunk.Role, chunk.Category, chunk.Title)
	}
	return nil
}

// CorpusCheckCmd returns the corpus check command
func CorpusCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a corpus file",
		Long:  "Parse and validate a corpus override file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE:  runCorpusCheck,
	}

	return cmd
}

func runCorpusCheck(cmd *cobra.Command, args []string) error {
	corpus, err := knowledge.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("corpus file is invalid: %w", err)
	}

	index := retrieval.BuildIndex(corpus.Chunks)
	fmt.Fprintf(cmd.OutOrStdout(), "OK: version %s, %d chunks indexed\n", corpus.Version, index.Size())
	return nil
}
