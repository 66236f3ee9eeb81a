package monitoring

import (
	"log/slog"
	"sync/atomic"
)

// ModelHealth tracks whether each pretrained model finished loading.
type ModelHealth struct {
	languageModel atomic.Bool
	classifier    atomic.Bool
	backend       atomic.Value
}

type HealthStatus struct {
	Ready             bool   `json:"ready"`
	LanguageModel     bool   `json:"language_model"`
	Classifier        bool   `json:"classifier"`
	ClassifierBackend string `json:"classifier_backend,omitempty"`
}

func NewModelHealth() *ModelHealth {
	return &ModelHealth{}
}

func (h *ModelHealth) SetLanguageModel(ready bool) {
	h.languageModel.Store(ready)
	if !ready {
		slog.Warn("[HealthCheck] Language model is unavailable")
	}
}

func (h *ModelHealth) SetClassifier(backend string, ready bool) {
	h.backend.Store(backend)
	h.classifier.Store(ready)
	if !ready {
		slog.Warn("[HealthCheck] Classifier is unavailable", slog.String("backend", backend))
	}
}

func (h *ModelHealth) Status() HealthStatus {
	backend, _ := h.backend.Load().(string)
	s := HealthStatus{
		LanguageModel:     h.languageModel.Load(),
		Classifier:        h.classifier.Load(),
		ClassifierBackend: backend,
	}
	s.Ready = s.LanguageModel && s.Classifier
	return s
}
