package models

import "path"

// ClassifierOutput is the top prediction of a binary text classifier, in the
// checkpoint's own label vocabulary (LABEL_0 / LABEL_1 for SST-2 exports).
type ClassifierOutput struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ModelSpec points at a pretrained model, either a Hugging Face repo to fetch
// or a directory that already holds the ONNX export. OnnxFile is the export's
// path inside the repo, e.g. onnx/decoder_model.onnx.
type ModelSpec struct {
	Repo     string `json:"repo"`
	Path     string `json:"path"`
	OnnxFile string `json:"onnx_file"`
}

// LocalOnnxFile is the name the ONNX export has once downloaded. hugot
// flattens repo subdirectories into the model directory.
func (s ModelSpec) LocalOnnxFile() string {
	if s.OnnxFile == "" {
		return ""
	}
	return path.Base(s.OnnxFile)
}
