package junit

// computeTotals aggregates direct test outcomes with already-computed
// nested suite totals. Nested tests are counted once, through their suite's
// totals. CumulativeTime is always the sum of the children; Time is the
// declared attribute when one was present (even zero), otherwise the
// cumulative value.
func computeTotals(tests []TestCase, nested []Totals, declared float64, hasDeclared bool) Totals {
	var t Totals
	for _, test := range tests {
		t.Tests++
		switch test.Result.Status {
		case StatusPassed:
			t.Passed++
		case StatusSkipped:
			t.Skipped++
		case StatusFailed:
			t.Failed++
		case StatusError:
			t.Errors++
		}
		t.CumulativeTime = roundTime(t.CumulativeTime + test.Time)
	}
	for _, sub := range nested {
		t.Tests += sub.Tests
		t.Passed += sub.Passed
		t.Skipped += sub.Skipped
		t.Failed += sub.Failed
		t.Errors += sub.Errors
		t.CumulativeTime = roundTime(t.CumulativeTime + sub.CumulativeTime)
	}
	if hasDeclared {
		t.Time = declared
	} else {
		t.Time = t.CumulativeTime
	}
	return t
}

// RecomputeTotals returns a copy of suite whose totals are rebuilt from its
// current tests and its child suites' stored totals, ignoring any declared
// duration: the computed cumulative time becomes both Time and
// CumulativeTime. Use it on trees assembled or edited programmatically;
// edits deeper in the tree must be recomputed bottom-up.
func RecomputeTotals(suite Suite) Suite {
	var nested []Totals
	for _, sub := range suite.Suites {
		nested = append(nested, sub.Totals)
	}
	suite.Totals = computeTotals(suite.Tests, nested, 0, false)
	return suite
}

// mergeTotals sums per-suite totals into report-level totals. Both time
// fields are summed from each suite's own value, so the reported/cumulative
// distinction survives merging.
func mergeTotals(suites []Suite) Totals {
	var t Totals
	for _, s := range suites {
		t.Tests += s.Totals.Tests
		t.Passed += s.Totals.Passed
		t.Skipped += s.Totals.Skipped
		t.Failed += s.Totals.Failed
		t.Errors += s.Totals.Errors
		t.Time = roundTime(t.Time + s.Totals.Time)
		t.CumulativeTime = roundTime(t.CumulativeTime + s.Totals.CumulativeTime)
	}
	return t
}
