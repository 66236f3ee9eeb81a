package transformers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/spacesedan/texttrace/internal/models"
)

const classifierPipelineName = "textTraceClassificationPipeline"

// HugotClassifier wraps a hugot text classification pipeline running on ONNX
// Runtime. It must be created before any CausalLM, because hugot insists on
// initialising the ONNX Runtime environment itself.
type HugotClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewHugotClassifier(modelPath, onnxFilename, onnxLibraryPath string) (*HugotClassifier, error) {
	var opts []options.WithOption
	if onnxLibraryPath != "" {
		opts = append(opts, options.WithOnnxLibraryPath(onnxLibraryPath))
	}
	session, err := hugot.NewORTSession(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath:    modelPath,
		Name:         classifierPipelineName,
		OnnxFilename: onnxFilename,
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize classification pipeline: %w", err)
	}

	slog.Info("[Classifier] Pipeline loaded", slog.String("path", modelPath))
	return &HugotClassifier{session: session, pipeline: pipeline}, nil
}

func (c *HugotClassifier) Classify(ctx context.Context, text string) (models.ClassifierOutput, error) {
	if err := ctx.Err(); err != nil {
		return models.ClassifierOutput{}, err
	}
	output, err := c.pipeline.RunPipeline([]string{text})
	if err != nil {
		return models.ClassifierOutput{}, fmt.Errorf("classification pipeline failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 {
		return models.ClassifierOutput{}, fmt.Errorf("classification pipeline returned no output")
	}
	out, err := topLabel(output.ClassificationOutputs[0])
	if err != nil {
		return out, err
	}
	out.Label = canonicalLabel(c.pipeline.IDLabelMap, out.Label)
	return out, nil
}

// canonicalLabel rewrites a named class (NEGATIVE, POSITIVE) to LABEL_<id>
// so the human label is configured by class index whatever the export calls it.
func canonicalLabel(idToLabel map[int]string, label string) string {
	for id, name := range idToLabel {
		if name == label {
			return fmt.Sprintf("LABEL_%d", id)
		}
	}
	return label
}

func topLabel(outputs []pipelines.ClassificationOutput) (models.ClassifierOutput, error) {
	if len(outputs) == 0 {
		return models.ClassifierOutput{}, fmt.Errorf("classification pipeline returned no labels")
	}
	best := outputs[0]
	for _, o := range outputs[1:] {
		if o.Score > best.Score {
			best = o
		}
	}
	return models.ClassifierOutput{Label: best.Label, Confidence: float64(best.Score)}, nil
}

func (c *HugotClassifier) Close() error {
	return c.session.Destroy()
}
