package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/codec"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

// newGroup creates a command group whose subcommands share one connection
func newGroup(use, short string, cmds ...*cobra.Command) *cobra.Command {
	group := &cobra.Command{
		Use:                use,
		Short:              short,
		PersistentPreRunE:  util.SetupClient,
		PersistentPostRunE: util.CloseClient,
	}
	group.AddCommand(cmds...)
	return group
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// keyOptions returns the configured codec and the matching key options
func keyOptions() (codec.Codec, []key.Option, error) {
	c, err := util.GetCodec()
	if err != nil {
		return c, nil, err
	}
	return c, []key.Option{key.WithCodec(c)}, nil
}

func printValue(v any) {
	fmt.Println(util.FormatValue(v))
}

func printValues(vs []any) {
	if len(vs) == 0 {
		fmt.Println("(empty)")
		return
	}
	for i, v := range vs {
		fmt.Printf("%d) %s\n", i+1, util.FormatValue(v))
	}
}

func parseInt(arg, name string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return n, nil
}

func parseFloat(arg, name string) (float64, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return f, nil
}

// parseSeconds parses a duration given in (fractional) seconds
func parseSeconds(arg, name string) (time.Duration, error) {
	f, err := parseFloat(arg, name)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}

// optionalInt returns the argument at index i as integer or def if it is missing
func optionalInt(args []string, i int, def int64, name string) (int64, error) {
	if len(args) <= i {
		return def, nil
	}
	return parseInt(args[i], name)
}
