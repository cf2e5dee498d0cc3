package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DirectoryManager ensures report output directories exist and builds
// timestamped report paths inside them.
type DirectoryManager struct {
	outputDir string
}

// NewDirectoryManager creates a DirectoryManager for the given output directory.
func NewDirectoryManager(outputDir string) *DirectoryManager {
	return &DirectoryManager{outputDir: outputDir}
}

// EnsureOutputDir creates the output directory if it does not exist.
func (dm *DirectoryManager) EnsureOutputDir() error {
	if err := os.MkdirAll(dm.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dm.outputDir, err)
	}
	return nil
}

// BuildReportPath returns a timestamped report file path inside the output directory.
func (dm *DirectoryManager) BuildReportPath(now time.Time) string {
	filename := fmt.Sprintf("%s-%s.html", ReportFilePrefix, now.Format(ReportTimestampLayout))
	return filepath.Join(dm.outputDir, filename)
}

// OutputDir returns the configured output directory.
func (dm *DirectoryManager) OutputDir() string {
	return dm.outputDir
}
