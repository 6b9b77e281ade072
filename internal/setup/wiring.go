package setup

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/skills-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/classifier"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/skill"
	"github.com/povarna/generative-ai-agents/skills-agent/internal/solver"
	"github.com/rs/zerolog"
)

const promptPlugin = "prompt_engineering"

type Config struct {
	LLMProvider    string
	OpenAIKey      string
	OpenAIOrgID    string
	OpenAIModelID  string
	OpenAIBaseURL  string
	AWSRegion      string
	ClaudeModelID  string
	SkillsDir      string
	Trials         int
	InferenceURL   string
	InferenceModel string
	LabelsPath     string
	HTTPTimeout    time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	APIPort        string
	RedisAddr      string
	RedisPassword  string
}

type Dependencies struct {
	Registry      *skill.Registry
	Solver        *solver.Solver
	Classifier    *classifier.Classifier // nil when INFERENCE_URL is unset
	Executor      *executor.Executor
	SkillExecutor *executor.SkillExecutor
	Logger        *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIOrgID:    getEnv("OPENAI_ORG_ID", ""),
		OpenAIModelID:  getEnv("OPENAI_MODEL_ID", "gpt-3.5-turbo"),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:  getEnv("CLAUDE_MODEL_ID", ""),
		SkillsDir:      getEnv("SKILLS_DIR", "skills"),
		Trials:         getEnvInt("TRIALS", solver.DefaultTrials),
		InferenceURL:   getEnv("INFERENCE_URL", ""),
		InferenceModel: getEnv("INFERENCE_MODEL", "convnext_tiny"),
		LabelsPath:     getEnv("LABELS_PATH", ""),
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 2*time.Minute),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		APIPort:        getEnv("API_PORT", "18082"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLMProvider, err)
	}

	registry, err := loadSkills(cfg, llmClient, logger)
	if err != nil {
		return nil, err
	}

	pipeline, err := skill.NewPipeline(registry, solver.Functions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build solver pipeline: %w", err)
	}
	slv := solver.NewSolver(pipeline, aggregator.NewAggregator(logger), logger)

	deps := &Dependencies{
		Registry: registry,
		Solver:   slv,
		Logger:   logger,
	}

	// A typed nil would pass the executor's nil check, so only assign when built.
	var cls executor.Classifier
	if cfg.InferenceURL != "" {
		deps.Classifier, err = createClassifier(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(deps.Classifier.NativeFunction()); err != nil {
			return nil, fmt.Errorf("failed to register classifier: %w", err)
		}
		cls = deps.Classifier
	} else {
		logger.Warn().Msg("INFERENCE_URL not set, image classification disabled")
	}

	deps.Executor = executor.NewExecutor(slv, cls, cfg.Trials, logger)
	deps.SkillExecutor = executor.NewSkillExecutor(registry, logger)
	return deps, nil
}

func loadSkills(cfg *Config, llmClient llm.LLMClient, logger *zerolog.Logger) (*skill.Registry, error) {
	functions, err := skill.NewPromptLoader(llmClient, logger).ImportPromptDirectory(cfg.SkillsDir, promptPlugin)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills from %s: %w", cfg.SkillsDir, err)
	}

	registry := skill.NewRegistry()
	if err := registry.Register(functions...); err != nil {
		return nil, err
	}
	if err := registry.Require(solver.Functions...); err != nil {
		return nil, err
	}

	logger.Info().Int("functions", len(functions)).Str("dir", cfg.SkillsDir).Msg("Skills loaded")
	return registry, nil
}

func createClassifier(cfg *Config, logger *zerolog.Logger) (*classifier.Classifier, error) {
	labels, err := loadLabels(cfg.LabelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	model := classifier.NewInferenceClient(httpClient, cfg.InferenceURL, cfg.InferenceModel, labels.Len())

	return classifier.New(
		classifier.NewHTTPFetcher(httpClient),
		model,
		labels,
		classifier.ConvNeXtTinyConfig,
		logger,
	), nil
}

func loadLabels(path string) (*classifier.Labels, error) {
	if path == "" {
		return classifier.DefaultLabels()
	}
	return classifier.LoadLabels(path, classifier.NumClasses)
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.LLMProvider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai", "":
		return gpt.NewClient(gpt.Options{
			APIKey:         cfg.OpenAIKey,
			OrganizationID: cfg.OpenAIOrgID,
			ModelID:        cfg.OpenAIModelID,
			BaseURL:        cfg.OpenAIBaseURL,
			Timeout:        cfg.HTTPTimeout,
		})
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}
