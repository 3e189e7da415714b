package junit

import (
	"os"
	"path/filepath"
	"strings"
)

// IngestFile reads path and parses it as a JUnit XML document. Failures are
// surfaced through the returned error with the file path attached.
func IngestFile(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, &Error{Kind: KindFileSystem, Path: path, Msg: "cannot read file: " + err.Error()}
	}
	report, err := Parse(string(data))
	if err != nil {
		return Report{}, withPath(err, path)
	}
	return report, nil
}

// IngestFiles parses each path in order and merges the results into one
// report: suites are concatenated in input-file order and the totals are
// recomputed over all of them. The first failing file aborts the batch.
func IngestFiles(paths []string) (Report, error) {
	var combined Report
	for _, path := range paths {
		report, err := IngestFile(path)
		if err != nil {
			return Report{}, err
		}
		combined.Suites = append(combined.Suites, report.Suites...)
	}
	combined.Totals = mergeTotals(combined.Suites)
	return combined, nil
}

// IngestDir ingests every .xml file (case-insensitive) directly under path.
// A directory with no matching files yields an empty report, not an error.
// Entries are processed in directory-listing order; callers that need a
// stable order should sort the paths and use IngestFiles.
func IngestDir(path string) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, &Error{Kind: KindFileSystem, Path: path, Msg: "cannot stat path: " + err.Error()}
	}
	if !info.IsDir() {
		return Report{}, &Error{Kind: KindNotADirectory, Path: path, Msg: "not a directory"}
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return Report{}, &Error{Kind: KindFileSystem, Path: path, Msg: "cannot list directory: " + err.Error()}
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	if len(files) == 0 {
		return Report{}, nil
	}
	return IngestFiles(files)
}
