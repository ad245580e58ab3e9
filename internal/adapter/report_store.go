package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/pkg/jsonl"
)

// SampleStore persists samples as JSONL, one record per bug.
type SampleStore interface {
	SaveSamples(path m.Path, samples []m.Sample) error
	LoadSamples(path m.Path) ([]m.Sample, error)
	// OpenSampleWriter streams samples into path as they are produced.
	OpenSampleWriter(path m.Path) (jsonl.Writer[m.Sample], error)
}

type sampleStore struct{}

// NewSampleStore constructs a JSONL-backed SampleStore.
func NewSampleStore() SampleStore {
	return &sampleStore{}
}

func (s *sampleStore) SaveSamples(path m.Path, samples []m.Sample) error {
	writer, err := jsonl.Create[m.Sample](string(path))
	if err != nil {
		return fmt.Errorf("save samples: %w", err)
	}

	if err := writer.AppendBatch(samples); err != nil {
		_ = writer.Close()
		return fmt.Errorf("save samples: %w", err)
	}

	return writer.Close()
}

func (s *sampleStore) LoadSamples(path m.Path) ([]m.Sample, error) {
	samples, err := jsonl.ReadAll[m.Sample](string(path))
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}

	return samples, nil
}

func (s *sampleStore) OpenSampleWriter(path m.Path) (jsonl.Writer[m.Sample], error) {
	return jsonl.Create[m.Sample](string(path))
}

// SamplesFileName names the JSONL file of one pipeline stage, e.g.
// samples_defects4j_fim.jsonl or evaluation_defects4j_fim_gpt-4o.jsonl.
func SamplesFileName(dir m.Path, stage string, parts ...string) m.Path {
	name := stage
	for _, part := range parts {
		if part != "" {
			name += "_" + strings.ReplaceAll(part, "/", "-")
		}
	}

	return m.Path(filepath.Join(string(dir), name+".jsonl"))
}
