package plugin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"github.com/drone/drone-junit/junit"
	"github.com/drone/drone-junit/telemetry"
)

// ValidateInputs ensures the user inputs meet the plugin requirements.
func ValidateInputs(args Args) error {
	if args.ReportFilenamePattern == "" && args.ReportDir == "" {
		return errors.New("missing required parameter: set ReportFilenamePattern or ReportDir to locate the JUnit report files")
	}
	if args.ReportFilenamePattern != "" && args.ReportDir != "" {
		return errors.New("ReportFilenamePattern and ReportDir are mutually exclusive. Configure only one of them")
	}
	if args.FailedFails < 0 || args.FailedSkips < 0 {
		return errors.New("threshold values must be non-negative. Check the configured values for failed and skipped tests")
	}
	return nil
}

// Exec ingests the configured JUnit XML reports, logs the merged summary,
// publishes telemetry when a Pushgateway is configured, and enforces the
// failure thresholds.
func Exec(ctx context.Context, args Args) error {
	report, found, err := ingestReports(args)
	if err != nil {
		logrus.WithError(err).Error("Error ingesting reports")
		return errors.New("failed to ingest reports: " + err.Error())
	}

	if !found {
		if args.FailIfNoResults {
			return errors.New("no JUnit XML report files found. Check the report location settings")
		}
		logrus.Warn("No JUnit XML report files found, continuing execution as FailIfNoResults is false")
		return nil
	}

	logReportSummary(report)

	if args.PushGatewayURL != "" {
		if err := publishTelemetry(ctx, args, report); err != nil {
			logrus.WithError(err).WithField("URL", args.PushGatewayURL).Warn("Failed to publish telemetry")
		}
	}

	if err := validateThresholds(report.Totals, args); err != nil {
		logger := logrus.WithFields(logrus.Fields{
			"Total Tests": report.Totals.Tests,
			"Failed":      report.Totals.Failed,
			"Errors":      report.Totals.Errors,
			"Skipped":     report.Totals.Skipped,
		})
		logger.Error(err.Error())
		return err
	}

	return nil
}

// ingestReports runs the ingestion core over the configured location. The
// second return value reports whether any results were found, so the
// FailIfNoResults switch can tell an empty location apart from a failure.
func ingestReports(args Args) (junit.Report, bool, error) {
	if args.ReportDir != "" {
		report, err := junit.IngestDir(args.ReportDir)
		if err != nil {
			return junit.Report{}, false, err
		}
		return report, len(report.Suites) > 0, nil
	}

	files, err := locateFiles(args.ReportFilenamePattern)
	if err != nil {
		return junit.Report{}, false, err
	}
	if len(files) == 0 {
		return junit.Report{}, false, nil
	}
	report, err := junit.IngestFiles(files)
	if err != nil {
		return junit.Report{}, true, err
	}
	return report, true, nil
}

// locateFiles identifies files matching the given pattern.
func locateFiles(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		logger := logrus.WithError(err).WithField("Pattern", pattern)
		logger.Error("Error occurred while searching for files")
		return nil, errors.New("failed to search for files: " + err.Error())
	}
	return matches, nil
}

// logReportSummary logs the merged totals and a per-suite table.
func logReportSummary(report junit.Report) {
	totals := report.Totals
	logrus.Infof("\n===============================================")
	logrus.Infof("\nTotal Tests: %d | Passed: %d | Failed: %d | Errors: %d | Skipped: %d | Time: %.3fs | Cumulative: %.3fs",
		totals.Tests, totals.Passed, totals.Failed, totals.Errors, totals.Skipped, totals.Time, totals.CumulativeTime)
	logrus.Infof("\n===============================================")

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Suite", "Tests", "Passed", "Failed", "Errors", "Skipped", "Time (s)", "Cumulative (s)"})
	table.SetAutoWrapText(false)
	for _, suite := range report.Suites {
		appendSuiteRows(table, suite, "")
	}
	table.Render()
	logrus.Infof("\n%s", buf.String())
}

// appendSuiteRows adds one row per suite, nested suites listed under their
// parent with a path-style name.
func appendSuiteRows(table *tablewriter.Table, suite junit.Suite, prefix string) {
	name := prefix + suite.Name
	t := suite.Totals
	table.Append([]string{
		name,
		strconv.Itoa(t.Tests),
		strconv.Itoa(t.Passed),
		strconv.Itoa(t.Failed),
		strconv.Itoa(t.Errors),
		strconv.Itoa(t.Skipped),
		fmt.Sprintf("%.3f", t.Time),
		fmt.Sprintf("%.3f", t.CumulativeTime),
	})
	for _, sub := range suite.Suites {
		appendSuiteRows(table, sub, name+"/")
	}
}

// publishTelemetry records the report on a fresh recorder and pushes it to
// the configured Pushgateway.
func publishTelemetry(ctx context.Context, args Args, report junit.Report) error {
	job := args.PushJob
	if job == "" {
		job = "drone-junit"
	}
	recorder := telemetry.NewRecorder()
	recorder.Record(report)
	return recorder.Push(ctx, args.PushGatewayURL, job)
}

// validateThresholds validates the merged report against the configured
// absolute thresholds. Failed and errored tests both count against the
// failure threshold.
func validateThresholds(totals junit.Totals, args Args) error {
	failures := totals.Failed + totals.Errors
	if args.FailedFails > 0 && failures > args.FailedFails {
		return fmt.Errorf("number of failed tests (%d) exceeded the failure threshold (%d)", failures, args.FailedFails)
	}
	if args.FailedSkips > 0 && totals.Skipped > args.FailedSkips {
		return fmt.Errorf("number of skipped tests (%d) exceeded the skip threshold (%d)", totals.Skipped, args.FailedSkips)
	}
	return nil
}
