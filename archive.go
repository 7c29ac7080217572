package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"
)

var archiveFilePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_(\d{4}-\d{2}-\d{2})\.html$`)

// buildArchiveIndex scans docsDir for previously generated period reports and
// returns them newest-first. The current run's period is guaranteed to appear
// exactly once and is flagged; when its file does not exist yet the entry is
// synthesized and prepended.
func buildArchiveIndex(docsDir string, start, end time.Time) []ArchiveEntry {
	currentName := fmt.Sprintf("%s_%s.html", start.Format("2006-01-02"), end.Format("2006-01-02"))

	var names []string
	dirEntries, err := os.ReadDir(docsDir)
	if err == nil {
		for _, entry := range dirEntries {
			if !entry.IsDir() && archiveFilePattern.MatchString(entry.Name()) {
				names = append(names, entry.Name())
			}
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var entries []ArchiveEntry
	currentFound := false
	for _, name := range names {
		isCurrent := name == currentName
		currentFound = currentFound || isCurrent
		entries = append(entries, ArchiveEntry{
			FileName:    name,
			PeriodLabel: periodLabelFromFileName(name),
			IsCurrent:   isCurrent,
		})
	}
	if !currentFound {
		entries = append([]ArchiveEntry{{
			FileName:    currentName,
			PeriodLabel: periodLabelFromFileName(currentName),
			IsCurrent:   true,
		}}, entries...)
	}
	return entries
}

func periodLabelFromFileName(name string) string {
	m := archiveFilePattern.FindStringSubmatch(name)
	if m == nil {
		return strings.TrimSuffix(name, ".html")
	}
	return m[1] + " 〜 " + m[2]
}
