package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"

	"github.com/spacesedan/texttrace/internal/models"
)

const (
	AlignmentNext = "next"
	AlignmentSame = "same"

	BackendONNX  = "onnx"
	BackendVader = "vader"
)

// Config holds every runtime setting. Values come from the environment after
// LoadEnv has merged the matching .env file.
type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	ModelDir        string
	OnnxLibraryPath string
	DownloadModels  bool

	LMModelRepo         string
	LMModelPath         string
	LMOnnxFile          string
	LMTokenizerFile     string
	LMInputNames        []string
	LMOutputName        string
	LMVocabSize         int
	LMMaxTokens         int
	PerplexityAlignment string

	ClassifierBackend    string
	ClassifierModelRepo  string
	ClassifierModelPath  string
	ClassifierOnnxFile   string
	ClassifierHumanLabel string

	MaxInputChars      int
	CORSAllowedOrigins []string
}

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}

// Env returns APP_ENV, defaulting to dev.
func Env() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

func Load() Config {
	return Config{
		AppEnv:   Env(),
		Port:     getenv("PORT", "8501"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		ModelDir:        getenv("MODEL_DIR", "./models"),
		OnnxLibraryPath: getenv("ONNX_LIBRARY_PATH", "/usr/lib/onnxruntime.so"),
		DownloadModels:  getenvBool("DOWNLOAD_MODELS", false),

		LMModelRepo:         getenv("LM_MODEL_REPO", "openai-community/gpt2"),
		LMModelPath:         os.Getenv("LM_MODEL_PATH"),
		LMOnnxFile:          getenv("LM_ONNX_FILE", "onnx/decoder_model.onnx"),
		LMTokenizerFile:     getenv("LM_TOKENIZER_FILE", "tokenizer.json"),
		LMInputNames:        getenvList("LM_INPUT_NAMES", []string{"input_ids", "attention_mask"}),
		LMOutputName:        getenv("LM_OUTPUT_NAME", "logits"),
		LMVocabSize:         getenvInt("LM_VOCAB_SIZE", 50257),
		LMMaxTokens:         getenvInt("LM_MAX_TOKENS", 1024),
		PerplexityAlignment: getenv("PERPLEXITY_ALIGNMENT", AlignmentNext),

		ClassifierBackend:    getenv("CLASSIFIER_BACKEND", BackendONNX),
		ClassifierModelRepo:  getenv("CLASSIFIER_MODEL_REPO", "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"),
		ClassifierModelPath:  os.Getenv("CLASSIFIER_MODEL_PATH"),
		ClassifierOnnxFile:   getenv("CLASSIFIER_ONNX_FILE", "model.onnx"),
		ClassifierHumanLabel: getenv("CLASSIFIER_HUMAN_LABEL", "LABEL_0"),

		MaxInputChars:      getenvInt("MAX_INPUT_CHARS", 20000),
		CORSAllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS", nil),
	}
}

// LMSpec locates the causal language model. LMOnnxFile is a repo path; the
// downloaded file keeps only its base name.
func (c Config) LMSpec() models.ModelSpec {
	return models.ModelSpec{Repo: c.LMModelRepo, Path: c.LMModelPath, OnnxFile: c.LMOnnxFile}
}

func (c Config) ClassifierSpec() models.ModelSpec {
	return models.ModelSpec{Repo: c.ClassifierModelRepo, Path: c.ClassifierModelPath, OnnxFile: c.ClassifierOnnxFile}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int("default", fallback))
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
