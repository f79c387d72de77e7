package common

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/pkg/errors"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all parameters needed to connect to the store.
type ClientConfig struct {
	// Endpoint of the store (host:port)
	Endpoint string

	// Credentials (ACL username may be empty)
	Username string
	Password string

	// Logical database index
	DB int

	// Connection parameters
	TimeoutSecond int
	PoolSize      int
	RetryCount    int

	// Name of the codec bound to every key (see codec.Parse)
	Codec string

	// Logging configuration
	LogLevel string
}

// DefaultClientConfig returns the configuration used if nothing else is set.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Endpoint:      "localhost:6379",
		TimeoutSecond: 5,
		PoolSize:      10,
		RetryCount:    3,
		Codec:         codec.Generic.String(),
		LogLevel:      "info",
	}
}

// Timeout returns the configured timeout as a duration
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecond) * time.Second
}

// Validate checks the configuration for values that can not work.
func (c *ClientConfig) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if _, _, found := strings.Cut(c.Endpoint, ":"); !found {
		return errors.Errorf("invalid endpoint %q (expected host:port)", c.Endpoint)
	}
	if c.DB < 0 {
		return errors.Errorf("invalid database index %d", c.DB)
	}
	if c.TimeoutSecond <= 0 {
		return errors.Errorf("timeout must be positive, got %d", c.TimeoutSecond)
	}
	if c.PoolSize < 0 || c.RetryCount < 0 {
		return errors.New("pool size and retry count must not be negative")
	}
	if _, err := codec.Parse(c.Codec); err != nil {
		return errors.Wrap(err, "invalid codec")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Connection
	addSection("Connection")
	addField("Endpoint", c.Endpoint)
	addField("Database", strconv.Itoa(c.DB))
	if c.Username != "" {
		addField("Username", c.Username)
	}
	if c.Password != "" {
		addField("Password", "********")
	}

	// General Client Settings
	addSection("Client Configuration")
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Retry Count", strconv.Itoa(c.RetryCount))
	addField("Pool Size", strconv.Itoa(max(1, c.PoolSize)))
	addField("Codec", c.Codec)

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
