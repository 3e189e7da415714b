package junit

// Status classifies the outcome of a single test case.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
)

// TestResult is the outcome of one test case. Message, Type and Body are
// only populated for non-passed outcomes, and each may be empty even then.
type TestResult struct {
	Status  Status
	Message string
	Type    string
	Body    string
}

// TestCase represents a single test execution.
type TestCase struct {
	Name       string
	Classname  string
	Time       float64
	Result     TestResult
	Properties map[string]string
	SystemOut  string
	SystemErr  string
}

// Suite is a named grouping of test cases and nested suites. Tests and
// Suites keep document order. Totals is computed once when the suite is
// built; RecomputeTotals produces a fresh value for programmatic edits.
type Suite struct {
	Name       string
	Properties map[string]string
	Tests      []TestCase
	Suites     []Suite
	SystemOut  string
	SystemErr  string
	Totals     Totals
}

// Totals aggregates outcome counts and timings for a suite or report.
//
// Time is the suite's reported duration: the declared attribute when the
// document carried one, otherwise the computed cumulative value.
// CumulativeTime is always the sum of the children's contributions. The two
// may diverge (parallel execution, setup overhead) and both are kept.
type Totals struct {
	Tests          int
	Passed         int
	Skipped        int
	Failed         int
	Errors         int
	Time           float64
	CumulativeTime float64
}

// Report is the normalized result of ingesting one or more documents. Its
// totals are the arithmetic sum of the top-level suites' totals.
type Report struct {
	Suites []Suite
	Totals Totals
}
