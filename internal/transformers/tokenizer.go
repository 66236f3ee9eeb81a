package transformers

import (
	"fmt"
	"log/slog"

	"github.com/daulet/tokenizers"
)

// BPETokenizer loads a Hugging Face tokenizer.json (GPT-2 byte-level BPE).
type BPETokenizer struct {
	tk *tokenizers.Tokenizer
}

func NewBPETokenizer(path string) (*BPETokenizer, error) {
	tk, err := tokenizers.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer %s: %w", path, err)
	}
	slog.Info("[Tokenizer] Loaded tokenizer", slog.String("path", path))
	return &BPETokenizer{tk: tk}, nil
}

// Encode never adds BOS/EOS or other special tokens.
func (b *BPETokenizer) Encode(text string) ([]int64, error) {
	raw, _ := b.tk.Encode(text, false)
	ids := make([]int64, len(raw))
	for i, id := range raw {
		ids[i] = int64(id)
	}
	return ids, nil
}

func (b *BPETokenizer) Close() error {
	return b.tk.Close()
}
