package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

// ReportStore persists the outcome of a gate run between invocations so a
// developer (or CI) can inspect the last verdict without re-running the gate.
type ReportStore interface {
	Save(path m.Path, report m.RunReport) error
	Load(path m.Path) (m.RunReport, error)
}

// YAMLReportStore stores run reports as YAML files on the local filesystem.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// Save writes the report to path, creating parent directories as needed.
func (s *YAMLReportStore) Save(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding run report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}

	return nil
}

// Load reads the report stored at path.
func (s *YAMLReportStore) Load(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, err
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("decoding run report %s: %w", path, err)
	}

	return report, nil
}
