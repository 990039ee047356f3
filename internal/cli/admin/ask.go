package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/voluntree/assist/internal/config"
	"github.com/voluntree/assist/internal/knowledge"
	"github.com/voluntree/assist/internal/openai"
	"github.com/voluntree/assist/internal/retrieval"
	"github.com/voluntree/assist/internal/service"
)

// AskCmd returns the ask command
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant a question",
		Long:  "Ask the assistant a one-shot question from the terminal. Works without a chat provider by answering from the help articles directly.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	cmd.Flags().StringP("role", "r", "volunteer", "Requester role (volunteer, organizer, admin)")
	cmd.Flags().IntP("top-k", "k", service.DefaultTopK, "Number of chunks to retrieve")
	cmd.Flags().String("corpus", "", "Path to a corpus override file")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	role, _ := cmd.Flags().GetString("role")
	topK, _ := cmd.Flags().GetInt("top-k")
	corpusFlag, _ := cmd.Flags().GetString("corpus")
	outputFormat, _ := cmd.Flags().GetString("output")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if corpusFlag != "" {
		cfg.CorpusPath = corpusFlag
	}

	corpus, err := knowledge.LoadFile(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	index := retrieval.BuildIndex(corpus.Chunks)

	var chatClient service.ChatClient
	if cfg.HasOpenAI() {
		chatClient = openai.NewClientWithConfig(openai.Config{
			APIKey:    cfg.OpenAIAPIKey,
			ChatModel: cfg.ChatModel,
		})
	}

	answerSvc := service.NewAnswerService(index, chatClient, nil,
		service.WithTopK(topK),
		service.WithChatTimeout(cfg.ChatTimeout),
	)

	answer, err := answerSvc.GetAnswer(context.Background(), question, role)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	if outputFormat == "json" {
		payload := map[string]interface{}{
			"answer":        answer.Answer,
			"sources":       answer.Sources,
			"used_fallback": answer.UsedFallback,
		}
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer.Answer)
	if len(answer.Sources) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSources: %s\n", strings.Join(answer.Sources, ", "))
	}
	if answer.UsedFallback {
		fmt.Fprintln(cmd.OutOrStdout(), "(answered from help articles directly)")
	}
	return nil
}
