package junit

import "strings"

// maxSuiteDepth bounds suite nesting: 20 levels parse, the 21st fails.
const maxSuiteDepth = 20

// Parse ingests a single JUnit XML document into a Report.
//
// If the direct attempt fails for any reason, the raw text is wrapped in a
// synthetic root element and parsed once more; this recovers documents
// whose top-level elements have no enclosing wrapper. When both attempts
// fail, the first error is returned: the wrapped retry is a best-effort
// fallback and the original failure is the more diagnostic one.
func Parse(text string) (Report, error) {
	report, err := parseDocument(text)
	if err == nil {
		return report, nil
	}
	if retried, retryErr := parseDocument("<root>" + text + "</root>"); retryErr == nil {
		return retried, nil
	}
	return Report{}, err
}

func parseDocument(text string) (Report, error) {
	if err := ValidateInput(text); err != nil {
		return Report{}, err
	}
	tree, err := decodeTree(text)
	if err != nil {
		return Report{}, err
	}
	wrapper := findWrapper(tree)
	if wrapper == nil {
		return Report{}, newError(KindMissingAttribute, "document has no testsuites root element")
	}
	if _, ok := wrapper.attr("time"); !ok {
		return Report{}, newError(KindMissingAttribute, `testsuites root is missing the required "time" attribute`)
	}

	var report Report
	for _, child := range wrapper.childrenNamed("testsuite") {
		suite, err := parseSuite(child, 0)
		if err != nil {
			return Report{}, err
		}
		report.Suites = append(report.Suites, suite)
	}
	report.Totals = mergeTotals(report.Suites)
	return report, nil
}

// findWrapper locates the testsuites wrapper: the document root itself, or
// a direct child when the root is an unnamed document node or the synthetic
// recovery wrapper.
func findWrapper(root *node) *node {
	if root.name == "testsuites" {
		return root
	}
	return root.firstChild("testsuites")
}

// parseSuite converts one testsuite element at the given nesting depth.
// Top-level suites parse at depth 0. The suite's declared time is read
// before totals are computed, because it is the authoritative Time value
// when present.
func parseSuite(n *node, depth int) (Suite, error) {
	if depth >= maxSuiteDepth {
		return Suite{}, newError(KindMaxDepthExceeded, "suite nesting exceeds the maximum depth of %d", maxSuiteDepth)
	}

	suite := Suite{Name: sanitizeString(n.attrOr("name"))}

	props, err := parseProperties(n)
	if err != nil {
		return Suite{}, err
	}
	suite.Properties = props

	for _, tc := range n.childrenNamed("testcase") {
		test, err := parseTestCase(tc)
		if err != nil {
			return Suite{}, err
		}
		suite.Tests = append(suite.Tests, test)
	}

	var nested []Totals
	for _, child := range n.childrenNamed("testsuite") {
		sub, err := parseSuite(child, depth+1)
		if err != nil {
			return Suite{}, err
		}
		suite.Suites = append(suite.Suites, sub)
		nested = append(nested, sub.Totals)
	}

	suite.SystemOut = sanitizeString(n.childText("system-out"))
	suite.SystemErr = sanitizeString(n.childText("system-err"))

	declared, hasDeclared := 0.0, false
	if raw, ok := n.attr("time"); ok {
		declared, hasDeclared = parseTime(raw), true
	}
	suite.Totals = computeTotals(suite.Tests, nested, declared, hasDeclared)
	return suite, nil
}

func parseTestCase(n *node) (TestCase, error) {
	test := TestCase{
		Name:      sanitizeString(n.attrOr("name")),
		Classname: sanitizeString(n.attrOr("classname")),
	}
	if raw, ok := n.attr("time"); ok {
		test.Time = parseTime(raw)
	}
	props, err := parseProperties(n)
	if err != nil {
		return TestCase{}, err
	}
	test.Properties = props
	test.Result = parseResult(n)
	test.SystemOut = sanitizeString(n.childText("system-out"))
	test.SystemErr = sanitizeString(n.childText("system-err"))
	return test, nil
}

// parseResult picks the outcome from the marker children. When a malformed
// document carries several markers, the first match in this order wins:
// failure, error, skipped.
func parseResult(n *node) TestResult {
	if f := n.firstChild("failure"); f != nil {
		return markerResult(StatusFailed, f)
	}
	if e := n.firstChild("error"); e != nil {
		return markerResult(StatusError, e)
	}
	if s := n.firstChild("skipped"); s != nil {
		return TestResult{Status: StatusSkipped, Message: sanitizeString(s.attrOr("message"))}
	}
	return TestResult{Status: StatusPassed}
}

func markerResult(status Status, marker *node) TestResult {
	return TestResult{
		Status:  status,
		Message: sanitizeString(marker.attrOr("message")),
		Type:    sanitizeString(marker.attrOr("type")),
		Body:    sanitizeString(strings.TrimSpace(marker.text)),
	}
}

// parseProperties reads the element's properties block. Invalid names are
// dropped silently; accumulating more than maxProperties valid entries on a
// single element aborts ingestion. A nil map is returned when no valid
// property remains, so callers can tell "absent" from "empty".
func parseProperties(n *node) (map[string]string, error) {
	block := n.firstChild("properties")
	if block == nil {
		return nil, nil
	}
	var props map[string]string
	count := 0
	for _, p := range block.childrenNamed("property") {
		name, ok := p.attr("name")
		if !ok || !validPropertyName(name) {
			continue
		}
		count++
		if count > maxProperties {
			return nil, newError(KindTooManyProperties, "element has more than %d properties", maxProperties)
		}
		if props == nil {
			props = make(map[string]string)
		}
		props[name] = sanitizeString(p.attrOr("value"))
	}
	return props, nil
}
