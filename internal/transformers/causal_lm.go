package transformers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	ort "github.com/yalue/onnxruntime_go"
)

type CausalLMConfig struct {
	ModelPath       string
	OnnxLibraryPath string
	InputNames      []string
	OutputName      string
	VocabSize       int
}

// CausalLM runs a decoder-only ONNX export (GPT-2) and returns its logits.
type CausalLM struct {
	session *ort.DynamicAdvancedSession
	cfg     CausalLMConfig
	ownsEnv bool
}

func NewCausalLM(cfg CausalLMConfig) (*CausalLM, error) {
	if cfg.VocabSize <= 0 {
		return nil, fmt.Errorf("vocab size must be positive, got %d", cfg.VocabSize)
	}
	for _, name := range cfg.InputNames {
		if _, err := inputFiller(name); err != nil {
			return nil, err
		}
	}

	ownsEnv, err := ensureEnvironment(cfg.OnnxLibraryPath)
	if err != nil {
		return nil, err
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath, cfg.InputNames, []string{cfg.OutputName}, nil)
	if err != nil {
		if ownsEnv {
			ort.DestroyEnvironment()
		}
		return nil, fmt.Errorf("failed to create ONNX session for %s: %w", cfg.ModelPath, err)
	}

	slog.Info("[CausalLM] Model loaded",
		slog.String("path", cfg.ModelPath),
		slog.Int("vocab_size", cfg.VocabSize))

	return &CausalLM{session: session, cfg: cfg, ownsEnv: ownsEnv}, nil
}

// ensureEnvironment initialises ONNX Runtime unless another component (the
// hugot session) already did. The bool reports whether we own it.
func ensureEnvironment(libraryPath string) (bool, error) {
	if ort.IsInitialized() {
		return false, nil
	}
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return false, fmt.Errorf("failed to initialize onnxruntime: %w", err)
	}
	return true, nil
}

func (m *CausalLM) Logits(ctx context.Context, ids []int64) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := int64(len(ids))
	shape := ort.NewShape(1, n)

	inputs := make([]ort.Value, 0, len(m.cfg.InputNames))
	defer func() {
		for _, in := range inputs {
			in.Destroy()
		}
	}()
	for _, name := range m.cfg.InputNames {
		fill, _ := inputFiller(name)
		t, err := ort.NewTensor(shape, fill(ids))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s tensor: %w", name, err)
		}
		inputs = append(inputs, t)
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, n, int64(m.cfg.VocabSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate logits tensor: %w", err)
	}
	defer output.Destroy()

	start := time.Now()
	if err := m.session.Run(inputs, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("onnx run failed: %w", err)
	}
	slog.Debug("[CausalLM] Forward pass complete",
		slog.Int("tokens", len(ids)),
		slog.Duration("elapsed", time.Since(start)))

	return splitRows(output.GetData(), len(ids), m.cfg.VocabSize), nil
}

func (m *CausalLM) Close() error {
	if err := m.session.Destroy(); err != nil {
		return err
	}
	if m.ownsEnv {
		return ort.DestroyEnvironment()
	}
	return nil
}

func inputFiller(name string) (func(ids []int64) []int64, error) {
	switch name {
	case "input_ids":
		return func(ids []int64) []int64 {
			out := make([]int64, len(ids))
			copy(out, ids)
			return out
		}, nil
	case "attention_mask":
		return func(ids []int64) []int64 { return filled(len(ids), func(int) int64 { return 1 }) }, nil
	case "position_ids":
		return func(ids []int64) []int64 { return filled(len(ids), func(i int) int64 { return int64(i) }) }, nil
	case "token_type_ids":
		return func(ids []int64) []int64 { return filled(len(ids), func(int) int64 { return 0 }) }, nil
	default:
		return nil, fmt.Errorf("unsupported model input %q", name)
	}
}

func filled(n int, f func(i int) int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

// splitRows copies a flat [positions*vocab] buffer into one slice per
// position; the backing tensor is freed after Logits returns.
func splitRows(data []float32, positions, vocab int) [][]float32 {
	rows := make([][]float32, positions)
	for i := range rows {
		row := make([]float32, vocab)
		copy(row, data[i*vocab:(i+1)*vocab])
		rows[i] = row
	}
	return rows
}
