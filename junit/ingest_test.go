package junit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFile(t *testing.T) {
	t.Run("ValidReport", func(t *testing.T) {
		report, err := IngestFile("../testdata/junit-passing.xml")
		require.NoError(t, err)
		assert.Equal(t, Totals{Tests: 2, Passed: 2, Time: 3.0, CumulativeTime: 3.0}, report.Totals)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := IngestFile("../testdata/no-such-file.xml")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindFileSystem), "got %v", err)
		assert.Contains(t, err.Error(), "no-such-file.xml")
	})

	t.Run("MalformedReportKeepsPathAndKind", func(t *testing.T) {
		_, err := IngestFile("../testdata/invalid.xml")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindMalformedXML), "got %v", err)
		assert.Contains(t, err.Error(), "invalid.xml")
	})

	t.Run("MaliciousReport", func(t *testing.T) {
		_, err := IngestFile("../testdata/malicious.xml")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindMaliciousContent), "got %v", err)
		assert.Contains(t, err.Error(), "malicious.xml")
	})
}

func TestIngestFiles(t *testing.T) {
	t.Run("CombinedTotals", func(t *testing.T) {
		report, err := IngestFiles([]string{
			"../testdata/junit-passing.xml",
			"../testdata/junit-failing.xml",
		})
		require.NoError(t, err)

		require.Len(t, report.Suites, 2)
		assert.Equal(t, "auth", report.Suites[0].Name)
		assert.Equal(t, "billing", report.Suites[1].Name)
		assert.Equal(t, Totals{Tests: 4, Passed: 3, Failed: 1, Time: 5.0, CumulativeTime: 5.0}, report.Totals)
	})

	t.Run("FailFastOnFirstBadFile", func(t *testing.T) {
		_, err := IngestFiles([]string{
			"../testdata/invalid.xml",
			"../testdata/junit-passing.xml",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid.xml")
	})

	t.Run("NoFiles", func(t *testing.T) {
		report, err := IngestFiles(nil)
		require.NoError(t, err)
		assert.Empty(t, report.Suites)
		assert.Equal(t, Totals{}, report.Totals)
	})
}

func TestIngestDir(t *testing.T) {
	validDoc := `<testsuites time="1.0"><testsuite name="s" time="1.0"><testcase name="t" time="1.0"/></testsuite></testsuites>`

	t.Run("MixedEntries", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.xml"), validDoc)
		writeFile(t, filepath.Join(dir, "B.XML"), validDoc)
		writeFile(t, filepath.Join(dir, "notes.txt"), "not a report")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xml"), 0o755))

		report, err := IngestDir(dir)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Totals.Tests)
		assert.Equal(t, 2.0, report.Totals.Time)
	})

	t.Run("NoMatchingFilesYieldsEmptyReport", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "notes.txt"), "nothing here")

		report, err := IngestDir(dir)
		require.NoError(t, err)
		assert.Empty(t, report.Suites)
		assert.Equal(t, Totals{}, report.Totals)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "file.xml")
		writeFile(t, path, validDoc)

		_, err := IngestDir(path)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotADirectory), "got %v", err)
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := IngestDir(filepath.Join(t.TempDir(), "gone"))
		require.Error(t, err)
		assert.True(t, IsKind(err, KindFileSystem), "got %v", err)
	})

	t.Run("BadFileAbortsDirectory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.xml"), validDoc)
		writeFile(t, filepath.Join(dir, "b.xml"), `<testsuites time="1.0"><broken`)

		_, err := IngestDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "b.xml")
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
