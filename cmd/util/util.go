package util

import (
	"context"
	"fmt"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/rpc/client"
	"github.com/ValentinKolb/ooKV/rpc/common"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strconv"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// --------------------------------------------------------------------------
// Configuration
// --------------------------------------------------------------------------

// SetupClientFlags adds the connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	d := common.DefaultClientConfig()

	key := "endpoint"
	cmd.PersistentFlags().String(key, d.Endpoint, WrapString("The address of the store (host:port)"))

	key = "username"
	cmd.PersistentFlags().String(key, "", WrapString("ACL username (leave empty for the default user)"))

	key = "password"
	cmd.PersistentFlags().String(key, "", WrapString("Password of the store. Prefer the OOKV_PASSWORD environment variable"))

	key = "db"
	cmd.PersistentFlags().Int(key, d.DB, WrapString("Index of the logical database"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, d.TimeoutSecond, WrapString("The timeout in seconds of the client"))

	key = "pool-size"
	cmd.PersistentFlags().Int(key, d.PoolSize, WrapString("Maximum number of connections to the store"))

	key = "retries"
	cmd.PersistentFlags().Int(key, d.RetryCount, WrapString("How many times to retry a failed command (0 disables retries)"))

	key = "codec"
	cmd.PersistentFlags().String(key, d.Codec, WrapString("Codec of the values (generic, int, float, string, json, serialize)"))

	key = "log-level"
	cmd.PersistentFlags().String(key, d.LogLevel, WrapString("Log level (debug, info, warn, error)"))

	key = "verbose"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print the configuration before running the command"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("ookv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() common.ClientConfig {
	return common.ClientConfig{
		Endpoint:      viper.GetString("endpoint"),
		Username:      viper.GetString("username"),
		Password:      viper.GetString("password"),
		DB:            viper.GetInt("db"),
		TimeoutSecond: viper.GetInt("timeout"),
		PoolSize:      viper.GetInt("pool-size"),
		RetryCount:    viper.GetInt("retries"),
		Codec:         viper.GetString("codec"),
		LogLevel:      viper.GetString("log-level"),
	}
}

// GetCodec returns the configured codec
func GetCodec() (codec.Codec, error) {
	return codec.Parse(viper.GetString("codec"))
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// --------------------------------------------------------------------------
// Client
// --------------------------------------------------------------------------

var (
	// Client is the connection shared by all commands (set by SetupClient)
	Client *redis.Client

	// Hook records the commands sent through Client
	Hook = client.NewMetricsHook()
)

// SetupClient binds the flags, initializes the loggers and connects to the
// store. It is used as PersistentPreRunE by all command groups.
func SetupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := BindCommandFlags(cmd); err != nil {
		return err
	}

	config := GetClientConfig()
	if err := common.InitLoggers(config.LogLevel); err != nil {
		return err
	}
	if viper.GetBool("verbose") {
		fmt.Println(config.String())
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), config.Timeout())
	defer cancel()

	c, err := client.NewRedisClient(ctx, config, Hook)
	if err != nil {
		return err
	}
	Client = c
	return nil
}

// CloseClient closes the shared connection (used as PersistentPostRunE)
func CloseClient(_ *cobra.Command, _ []string) error {
	if Client == nil {
		return nil
	}
	return Client.Close()
}

// --------------------------------------------------------------------------
// Values
// --------------------------------------------------------------------------

// ParseValue converts a command line argument into a value of the codec's domain
func ParseValue(c codec.Codec, arg string) (any, error) {
	switch c {
	case codec.Int:
		return strconv.ParseInt(arg, 10, 64)
	case codec.Float:
		return strconv.ParseFloat(arg, 64)
	case codec.JSON:
		var v any
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			return nil, fmt.Errorf("value is not valid JSON: %w", err)
		}
		return v, nil
	default:
		return arg, nil
	}
}

// ParseValues converts several command line arguments (see ParseValue)
func ParseValues(c codec.Codec, args []string) ([]any, error) {
	out := make([]any, len(args))
	for i, arg := range args {
		v, err := ParseValue(c, arg)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FormatValue renders a decoded value for the terminal
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "(nil)"
	case string:
		return strconv.Quote(v)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
