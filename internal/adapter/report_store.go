package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gondola.dev/pkg/gondola/internal/model"
)

// ReportFileName is the report written inside the reports directory.
const ReportFileName = "report.yaml"

// ReportStore persists the outcome of a run.
type ReportStore interface {
	SaveRun(ctx context.Context, dir m.Path, run m.Run) error
	LoadRun(ctx context.Context, dir m.Path) (m.Run, error)
}

// YAMLReportStore writes runs as YAML documents.
type YAMLReportStore struct{}

// NewReportStore creates a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveRun overwrites the report in dir with run.
func (s *YAMLReportStore) SaveRun(ctx context.Context, dir m.Path, run m.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("saved report", "path", path, "run", run.ID, "days", len(run.Reports))

	return nil
}

// LoadRun reads the report stored in dir.
func (s *YAMLReportStore) LoadRun(ctx context.Context, dir m.Path) (m.Run, error) {
	if err := ctx.Err(); err != nil {
		return m.Run{}, err
	}

	path := filepath.Join(string(dir), ReportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return m.Run{}, fmt.Errorf("read report: %w", err)
	}

	var run m.Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return m.Run{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return run, nil
}
