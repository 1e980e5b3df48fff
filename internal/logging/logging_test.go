package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" Debug ")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.ErrorContains(t, err, "log level must be one of")
}

func TestNew_WritesModuleField(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", "iitax")
	require.NoError(t, err)

	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "module=iitax")
}

func TestNew_Off(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "off", "iitax")
	require.NoError(t, err)

	log.Errorf("nothing")
	assert.Empty(t, buf.String())
}
