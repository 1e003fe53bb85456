package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/jsonreq/config"
	"github.com/s0up4200/jsonreq/request"
)

func TestParseVars(t *testing.T) {
	vars, err := parseVars([]string{"id=38710", "q=a=b", " page =0"})
	require.NoError(t, err)
	assert.Equal(t, "38710", vars["id"])
	assert.Equal(t, "a=b", vars["q"])
	assert.Equal(t, "0", vars["page"])

	_, err = parseVars([]string{"novalue"})
	assert.Error(t, err)

	_, err = parseVars([]string{"=x"})
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	r := request.New()
	r.Put("a", "x y")
	r.Put("b", 1)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, r, false))
	assert.Equal(t, "{\"a\":\"x+y\",\"b\":1}\n", buf.String())

	buf.Reset()
	require.NoError(t, writeJSON(&buf, r, true))
	assert.Equal(t, "{\n  \"a\": \"x+y\",\n  \"b\": 1\n}\n", buf.String())
}

func TestPrintDecoded(t *testing.T) {
	r, err := request.Parse([]byte(`{"User":{"name$":"%25a%25","id@":"Moment%2FuserId"},"tag":"User"}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	printDecoded(&buf, r, "")
	assert.Equal(t, "User:\n  name$: %a%\n  id@: Moment/userId\ntag: User\n", buf.String())
}

func TestFormatVersion(t *testing.T) {
	assert.Equal(t, "jsonreq v1.2.3 (built now)", formatVersion("v1.2.3", "now"))
	assert.Equal(t, "jsonreq dev (built unknown)", formatVersion("dev", "unknown"))
}

func TestApplyLogLevel(t *testing.T) {
	c := &config.Config{Logging: config.LoggingConfig{Level: "info", Format: "console"}}

	require.NoError(t, applyLogLevel(c, "debug"))
	assert.Equal(t, "debug", c.Logging.Level)

	err := applyLogLevel(c, "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
	assert.Equal(t, "debug", c.Logging.Level)
}
