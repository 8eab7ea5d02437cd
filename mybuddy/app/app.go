// Package app wires the store, extraction and HTTP layers together for both
// the server and the CLI.
package app

import (
	"context"
	"fmt"

	"mybuddy/mybuddy/config"
	"mybuddy/mybuddy/controllers"
	"mybuddy/mybuddy/routes"
	"mybuddy/mybuddy/services/extraction"
	"mybuddy/mybuddy/services/llm"
	"mybuddy/mybuddy/sources/database"
	"mybuddy/mybuddy/sources/database/dao"
	"mybuddy/mybuddy/sources/storage"
	"mybuddy/mybuddy/utils/logging"
	"mybuddy/mybuddy/views"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var defaultModels = map[string][2]string{
	"openai": {"gpt-4o-mini", "gpt-4o-mini"},
	"groq":   {"llama-3.3-70b-versatile", "meta-llama/llama-4-scout-17b-16e-instruct"},
	"ollama": {"llama3.1", "llava"},
}

type App struct {
	Config      config.Config
	DB          *database.Database
	Extractor   *extraction.Extractor
	Controllers routes.Controllers
	Views       *views.Renderer
}

// Options override parts of the wiring; tests use them to avoid the network.
type Options struct {
	LLM     llm.Client
	Archive controllers.ImageArchiver
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	opts := Options{LLM: NewLLMClient(cfg)}
	if cfg.MinIOEndpoint != "" {
		archive, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			// Archiving is optional; the app runs without it.
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
		} else {
			opts.Archive = archive
		}
	}
	return NewWithOptions(ctx, cfg, opts)
}

func NewWithOptions(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	db, err := database.NewDatabase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}
	renderer, err := views.New()
	if err != nil {
		db.Close()
		return nil, err
	}

	model, visionModel := Models(cfg)
	var strategy extraction.Strategy
	if opts.LLM != nil {
		strategy = extraction.NewAIExtractor(opts.LLM, model)
	}
	extractor := extraction.NewExtractor(strategy, extraction.NewWriter(db))
	reader := extraction.NewImageReader(opts.LLM, visionModel, cfg.CredentialEnv())

	maxImage := cfg.MaxImageSize
	if maxImage <= 0 {
		maxImage = config.DefaultMaxImageSize
	}

	logging.AppLogger.Info("extraction configured",
		zap.String("provider", cfg.LLMProvider),
		zap.String("strategy", extractor.Strategy()),
		zap.Bool("archive", opts.Archive != nil),
	)

	return &App{
		Config:    cfg,
		DB:        db,
		Extractor: extractor,
		Views:     renderer,
		Controllers: routes.Controllers{
			Notes:     controllers.NewNotesController(db, extractor),
			Actions:   controllers.NewActionsController(dao.NewActionItemDAO(db.DB)),
			Contacts:  controllers.NewContactsController(db),
			Reminders: controllers.NewRemindersController(dao.NewReminderDAO(db.DB)),
			OCR:       controllers.NewOCRController(reader, opts.Archive, maxImage),
			Health:    controllers.NewHealthController(db),
		},
	}, nil
}

func (a *App) Router() chi.Router {
	return routes.NewRouter(a.Controllers, a.Views)
}

func (a *App) Close() {
	a.DB.Close()
}

// NewLLMClient picks the chat client for the configured provider. It returns
// nil when the provider is disabled or its credential is missing, which
// selects the rule-based extractor.
func NewLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "", "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil
		}
		return llm.NewGPTClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil
		}
		return llm.NewGroqClient(cfg.GroqAPIKey)
	case "ollama":
		return llm.NewOllamaClient(cfg.OllamaURL)
	default:
		return nil
	}
}

// Models returns the text and vision model names, falling back to the
// provider's defaults.
func Models(cfg config.Config) (string, string) {
	provider := cfg.LLMProvider
	if provider == "" {
		provider = "openai"
	}
	defaults := defaultModels[provider]
	model, vision := cfg.LLMModel, cfg.LLMVisionModel
	if model == "" {
		model = defaults[0]
	}
	if vision == "" {
		vision = defaults[1]
		if vision == "" {
			vision = model
		}
	}
	return model, vision
}
