package locate

import (
	"path/filepath"
	"strings"
)

// Labels reported for each drawing source.
const (
	LabelReleased    = "root(approved & released)"
	LabelPreliminary = "preliminary"
	LabelReports     = "ereports"
)

// JobDir returns the directory holding a job's drawings. Job numbers are
// uppercased.
func JobDir(root, job string) string {
	return filepath.Join(root, strings.ToUpper(job))
}

// DrawingSources returns the released then preliminary directories for job.
func DrawingSources(root, preliminary, job string) []Source {
	jobDir := JobDir(root, job)
	sources := []Source{{Label: LabelReleased, Dir: jobDir}}
	if preliminary != "" {
		sources = append(sources, Source{Label: LabelPreliminary, Dir: filepath.Join(jobDir, preliminary)})
	}
	return sources
}

// ReportSources returns the single e-report directory.
func ReportSources(root string) []Source {
	return []Source{{Label: LabelReports, Dir: root}}
}
