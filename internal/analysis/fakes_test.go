package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/spacesedan/texttrace/internal/models"
)

// wordTokenizer gives each whitespace-separated word its own id in order of
// first appearance.
type wordTokenizer struct {
	err error
}

func (w wordTokenizer) Encode(text string) ([]int64, error) {
	if w.err != nil {
		return nil, w.err
	}
	vocab := map[string]int64{}
	var ids []int64
	for _, word := range strings.Fields(text) {
		id, ok := vocab[word]
		if !ok {
			id = int64(len(vocab))
			vocab[word] = id
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type fixedTokenizer []int64

func (f fixedTokenizer) Encode(string) ([]int64, error) {
	return f, nil
}

// uniformLM returns all-zero logits, i.e. a uniform distribution over vocab.
type uniformLM struct {
	vocab int
	seen  []int64
}

func (u *uniformLM) Logits(_ context.Context, ids []int64) ([][]float32, error) {
	u.seen = ids
	rows := make([][]float32, len(ids))
	for i := range rows {
		rows[i] = make([]float32, u.vocab)
	}
	return rows, nil
}

// oracleLM is confident in whatever token the alignment expects.
type oracleLM struct {
	vocab  int
	offset int
}

func (o oracleLM) Logits(_ context.Context, ids []int64) ([][]float32, error) {
	rows := make([][]float32, len(ids))
	for i := range rows {
		rows[i] = make([]float32, o.vocab)
		if i+o.offset < len(ids) {
			rows[i][ids[i+o.offset]] = 100
		}
	}
	return rows, nil
}

type failingLM struct{}

func (failingLM) Logits(context.Context, []int64) ([][]float32, error) {
	return nil, errors.New("session closed")
}

type stubClassifier struct {
	out models.ClassifierOutput
	err error
}

func (s stubClassifier) Classify(context.Context, string) (models.ClassifierOutput, error) {
	return s.out, s.err
}
