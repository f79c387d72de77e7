package common

import (
	"bytes"
	"github.com/lni/dragonboat/v4/logger"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logger.LogLevel
		wantErr bool
	}{
		{"debug", logger.DEBUG, false},
		{"INFO", logger.INFO, false},
		{"", logger.INFO, false},
		{"warn", logger.WARNING, false},
		{"warning", logger.WARNING, false},
		{"error", logger.ERROR, false},
		{"verbose", logger.INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	orig := logOutput
	logOutput = &buf
	defer func() { logOutput = orig }()

	l := CreateLogger("ookv/test")
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.SetLevel(logger.ERROR)
	l.Warningf("hidden %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains messages below the level:\n%s", out)
	}
	for _, want := range []string{"INFO  | ookv/test       | shown 2", "ERROR | ookv/test       | shown 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *ClientConfig)
		wantErr bool
	}{
		{"default", func(c *ClientConfig) {}, false},
		{"empty endpoint", func(c *ClientConfig) { c.Endpoint = "" }, true},
		{"missing port", func(c *ClientConfig) { c.Endpoint = "localhost" }, true},
		{"negative db", func(c *ClientConfig) { c.DB = -1 }, true},
		{"zero timeout", func(c *ClientConfig) { c.TimeoutSecond = 0 }, true},
		{"negative retries", func(c *ClientConfig) { c.RetryCount = -1 }, true},
		{"unknown codec", func(c *ClientConfig) { c.Codec = "yaml" }, true},
		{"json codec", func(c *ClientConfig) { c.Codec = "json" }, false},
		{"unknown log level", func(c *ClientConfig) { c.LogLevel = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultClientConfig()
			tt.modify(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientConfigString(t *testing.T) {
	c := DefaultClientConfig()
	c.Password = "secret"

	out := c.String()
	if strings.Contains(out, "secret") {
		t.Errorf("String() leaks the password:\n%s", out)
	}
	for _, want := range []string{"CONNECTION", "localhost:6379", "CLIENT CONFIGURATION", "generic", "LOGGING"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() does not contain %q:\n%s", want, out)
		}
	}
}
