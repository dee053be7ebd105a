package tuilog

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLReturnsSharedLogger(t *testing.T) {
	assert.Same(t, log, L())
}

func TestWarnOnceLogsOnlyFirstCallPerKind(t *testing.T) {
	ResetWarnings()
	var buf bytes.Buffer
	prevOut := log.Out
	prevLevel := log.Level
	log.SetOutput(&buf)
	log.SetLevel(logrus.WarnLevel)
	defer func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
	}()

	WarnOnce("prop-parse-error", "bad width value")
	WarnOnce("prop-parse-error", "bad width value again")

	out := buf.String()
	assert.Equal(t, 1, bytes.Count([]byte(out), []byte("bad width value")))
	assert.Contains(t, out, "kind=prop-parse-error")
}

func TestWarnOnceTracksDistinctKindsIndependently(t *testing.T) {
	ResetWarnings()
	var buf bytes.Buffer
	prevOut := log.Out
	prevLevel := log.Level
	log.SetOutput(&buf)
	log.SetLevel(logrus.WarnLevel)
	defer func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
	}()

	WarnOnce("kind-a", "first")
	WarnOnce("kind-b", "second")

	out := buf.String()
	assert.Contains(t, out, "kind=kind-a")
	assert.Contains(t, out, "kind=kind-b")
}

func TestResetWarningsAllowsReWarning(t *testing.T) {
	ResetWarnings()
	var buf bytes.Buffer
	prevOut := log.Out
	prevLevel := log.Level
	log.SetOutput(&buf)
	log.SetLevel(logrus.WarnLevel)
	defer func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
	}()

	WarnOnce("retry-kind", "once")
	ResetWarnings()
	WarnOnce("retry-kind", "twice")

	out := buf.String()
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("kind=retry-kind")))
}
