package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-latfield/pkg/util/assert"
	log "github.com/sirupsen/logrus"
)

func Test_PerfStats_Log(t *testing.T) {
	var (
		buf   bytes.Buffer
		level = log.GetLevel()
		out   = log.StandardLogger().Out
		stats = NewPerfStats()
	)
	//
	log.SetOutput(&buf)
	log.SetLevel(log.DebugLevel)
	//
	defer func() {
		log.SetOutput(out)
		log.SetLevel(level)
	}()
	//
	stats.Log("Checking KYBER")
	//
	assert.True(t, stats.Elapsed() >= 0, "negative elapsed time")
	assert.True(t, strings.Contains(buf.String(), "Checking KYBER took"), "unexpected log %q", buf.String())
	assert.True(t, strings.Contains(buf.String(), "gcs="), "missing fields in %q", buf.String())
}
