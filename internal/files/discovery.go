package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"nascli/internal/config"
)

// ReportInfo describes one generated export in the reports directory.
type ReportInfo struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified_at"`
}

// Discovery lists and resolves generated summary exports.
type Discovery struct {
	paths *config.Paths
}

// NewDiscovery creates a report discovery instance
func NewDiscovery(paths *config.Paths) *Discovery {
	return &Discovery{paths: paths}
}

// ListReports returns the CSV and Excel exports currently present in
// the reports directory, newest first.
func (d *Discovery) ListReports() ([]ReportInfo, error) {
	entries, err := os.ReadDir(d.paths.ReportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ReportInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read reports directory %s: %w", d.paths.ReportsDir, err)
	}

	var reports []ReportInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		kind, ok := reportKind(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		reports = append(reports, ReportInfo{
			Name:    entry.Name(),
			Kind:    kind,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].ModTime.Equal(reports[j].ModTime) {
			return reports[i].ModTime.After(reports[j].ModTime)
		}
		return reports[i].Name < reports[j].Name
	})

	return reports, nil
}

// Resolve maps a report filename to its absolute path inside the
// reports directory. Names with path separators or traversal segments
// are rejected so download handlers cannot escape the directory.
func (d *Discovery) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("report name is required")
	}
	if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid report name: %s", name)
	}
	if _, ok := reportKind(name); !ok {
		return "", fmt.Errorf("unsupported report type: %s", name)
	}

	full := filepath.Join(d.paths.ReportsDir, name)
	if _, err := os.Stat(full); err != nil {
		return "", err
	}
	return full, nil
}

func reportKind(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return "csv", true
	case ".xlsx":
		return "excel", true
	default:
		return "", false
	}
}
