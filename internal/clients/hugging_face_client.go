package clients

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knights-analytics/hugot"

	"github.com/spacesedan/texttrace/internal/models"
)

var ErrModelMissing = errors.New("model files not found")

var (
	fetcherInstance *ModelFetcher
	fetcherOnce     sync.Once
)

// DownloadFunc fetches the repo named by spec into destination and returns
// the local model directory.
type DownloadFunc func(spec models.ModelSpec, destination string) (string, error)

// ModelFetcher resolves pretrained models to local directories, downloading
// them from the Hugging Face hub when allowed.
type ModelFetcher struct {
	ModelDir      string
	AllowDownload bool
	download      DownloadFunc
}

// downloadOptions pins the ONNX export to fetch; hugot refuses repos that
// carry several .onnx files unless one is named.
func downloadOptions(spec models.ModelSpec) hugot.DownloadOptions {
	opts := hugot.NewDownloadOptions()
	opts.OnnxFilePath = spec.OnnxFile
	return opts
}

func hugotDownload(spec models.ModelSpec, destination string) (string, error) {
	return hugot.DownloadModel(spec.Repo, destination, downloadOptions(spec))
}

// GetModelFetcher returns the process-wide fetcher. The arguments only take
// effect on the first call; use NewHubFetcher for an independent instance.
func GetModelFetcher(modelDir string, allowDownload bool) *ModelFetcher {
	fetcherOnce.Do(func() {
		slog.Info("[ModelFetcher] Initializing",
			slog.String("model_dir", modelDir),
			slog.Bool("allow_download", allowDownload))
		fetcherInstance = NewHubFetcher(modelDir, allowDownload)
	})
	return fetcherInstance
}

// NewHubFetcher downloads from the Hugging Face hub with hugot.
func NewHubFetcher(modelDir string, allowDownload bool) *ModelFetcher {
	return NewModelFetcher(modelDir, allowDownload, hugotDownload)
}

func NewModelFetcher(modelDir string, allowDownload bool, download DownloadFunc) *ModelFetcher {
	return &ModelFetcher{
		ModelDir:      modelDir,
		AllowDownload: allowDownload,
		download:      download,
	}
}

// LocalPath is where hugot places a downloaded repo.
func (f *ModelFetcher) LocalPath(repo string) string {
	return filepath.Join(f.ModelDir, strings.ReplaceAll(repo, "/", "_"))
}

// Ensure returns a directory holding the spec's ONNX export and every file in
// required (paths relative to the model directory). An explicit spec.Path
// wins over the repo.
func (f *ModelFetcher) Ensure(spec models.ModelSpec, required ...string) (string, error) {
	if onnx := spec.LocalOnnxFile(); onnx != "" {
		required = append([]string{onnx}, required...)
	}

	if spec.Path != "" {
		if err := checkFiles(spec.Path, required); err != nil {
			return "", err
		}
		slog.Info("[ModelFetcher] Using configured model path", slog.String("path", spec.Path))
		return spec.Path, nil
	}

	if spec.Repo == "" {
		return "", fmt.Errorf("%w: no repo or path configured", ErrModelMissing)
	}

	local := f.LocalPath(spec.Repo)
	if err := checkFiles(local, required); err == nil {
		slog.Info("[ModelFetcher] Using existing model", slog.String("path", local))
		return local, nil
	} else if !f.AllowDownload {
		return "", err
	}

	if err := os.MkdirAll(f.ModelDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	slog.Info("[ModelFetcher] Model not found, downloading...", slog.String("repo", spec.Repo))
	start := time.Now()
	path, err := f.download(spec, f.ModelDir)
	if err != nil {
		slog.Error("[ModelFetcher] Failed to download model",
			slog.String("repo", spec.Repo),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to download %s: %w", spec.Repo, err)
	}
	if err := checkFiles(path, required); err != nil {
		return "", err
	}

	slog.Info("[ModelFetcher] Model downloaded successfully",
		slog.String("path", path),
		slog.Duration("elapsed", time.Since(start)))
	return path, nil
}

func checkFiles(dir string, required []string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrModelMissing, dir)
	}
	for _, name := range required {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("%w: %s", ErrModelMissing, filepath.Join(dir, name))
		}
	}
	return nil
}
