package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/voluntree/assist/internal/api/handlers"
	"github.com/voluntree/assist/internal/config"
	"github.com/voluntree/assist/internal/knowledge"
	"github.com/voluntree/assist/internal/openai"
	"github.com/voluntree/assist/internal/retrieval"
	"github.com/voluntree/assist/internal/server"
	"github.com/voluntree/assist/internal/service"
	"github.com/voluntree/assist/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the assistant API server",
		Long:  "Start the assistant API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().String("corpus", "", "Path to a corpus override file")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SentryDSN != "" {
		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if cfg.Environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}
	corpusFlag, _ := cmd.Flags().GetString("corpus")
	if corpusFlag != "" {
		cfg.CorpusPath = corpusFlag
	}

	corpus, err := knowledge.LoadFile(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	log.Printf("corpus loaded (version %s, %d chunks)", corpus.Version, len(corpus.Chunks))

	index := retrieval.BuildIndex(corpus.Chunks)
	log.Printf("retrieval index built (%d chunks)", index.Size())

	var chatClient service.ChatClient
	if cfg.HasOpenAI() {
		chatClient = openai.NewClientWithConfig(openai.Config{
			APIKey:    cfg.OpenAIAPIKey,
			ChatModel: cfg.ChatModel,
		})
		log.Println("chat provider configured")
	} else {
		log.Println("no chat provider configured, answering from help articles only")
	}

	transcripts := service.NewTranscriptLog(service.DefaultTranscriptCapacity)
	answerSvc := service.NewAnswerService(index, chatClient, transcripts,
		service.WithTopK(cfg.TopK),
		service.WithChatTimeout(cfg.ChatTimeout),
	)

	routerCfg := server.RouterConfig{
		ChatHandler:      handlers.NewChatHandler(answerSvc),
		KnowledgeHandler: handlers.NewKnowledgeHandler(corpus.Chunks, transcripts),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewRouter(routerCfg),
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}
