package logging

import (
	"encoding/json"
	"testing"

	"strut.dev/pkg/strut/testutil"
)

func TestLogger_Log(t *testing.T) {
	testLogStatement := "hello info log!"

	f := func() {
		logger := NewLogger(DEBUG)
		logger.Log(testLogStatement)
	}

	output := testutil.StdoutOutputForFunc(f)

	assertMessageInJSONLog(t, output, testLogStatement)
}

func TestLogger_Logf(t *testing.T) {
	testLogStatement := "hello info logf!"

	f := func() {
		logger := NewLogger(DEBUG)
		logger.Logf("%s", testLogStatement)
	}

	output := testutil.StdoutOutputForFunc(f)

	assertMessageInJSONLog(t, output, testLogStatement)
}

func TestLogger_Error(t *testing.T) {
	testLogStatement := "hello error log!"

	f := func() {
		logger := NewLogger(DEBUG)
		logger.Error(testLogStatement)
	}

	output := testutil.StderrOutputForFunc(f)

	assertMessageInJSONLog(t, output, testLogStatement)
}

func TestLogger_LevelFiltering(t *testing.T) {
	f := func() {
		logger := NewLogger(ERROR)
		logger.Debug("filtered out")
		logger.Info("filtered out")
	}

	output := testutil.StdoutOutputForFunc(f)

	if output != "" {
		t.Errorf("Expected no output below the configured level, got: %s", output)
	}
}

func TestLogger_ChangeLevel(t *testing.T) {
	testLogStatement := "visible after level change"

	f := func() {
		logger := NewLogger(ERROR)
		logger.ChangeLevel(DEBUG)
		logger.Debug(testLogStatement)
	}

	output := testutil.StdoutOutputForFunc(f)

	assertMessageInJSONLog(t, output, testLogStatement)
}

func assertMessageInJSONLog(t *testing.T, logLine, expectation string) {
	t.Helper()

	var l logEntry
	_ = json.Unmarshal([]byte(logLine), &l)

	if l.Message != expectation {
		t.Errorf("Log mismatch. Expected: %s Got: %s", expectation, l.Message)
	}
}
