package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/collection"
	"github.com/spf13/cobra"
)

var (
	// ListCommands represents the command group for lists
	ListCommands = newGroup("list", "Read and change lists",
		listLenCmd, listRangeCmd, listLPushCmd, listRPushCmd, listLPopCmd, listRPopCmd,
		listBLPopCmd, listBRPopCmd, listIndexCmd, listRemCmd)

	listLenCmd = &cobra.Command{
		Use:   "len [key]",
		Short: "Prints the length of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := collection.NewList(args[0], util.Client).Len(cmd.Context())
			if err != nil {
				return err
			}
			printValue(n)
			return nil
		},
	}
	listRangeCmd = &cobra.Command{
		Use:   "range [key] [start] [stop]",
		Short: "Prints the elements from start to stop (inclusive, default: all)",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := keyOptions()
			if err != nil {
				return err
			}
			start, err := optionalInt(args, 1, 0, "start")
			if err != nil {
				return err
			}
			stop, err := optionalInt(args, 2, -1, "stop")
			if err != nil {
				return err
			}
			vs, err := collection.NewList(args[0], util.Client, opts...).Range(cmd.Context(), start, stop)
			if err != nil {
				return err
			}
			printValues(vs)
			return nil
		},
	}
	listLPushCmd = &cobra.Command{
		Use:   "lpush [key] [value...]",
		Short: "Inserts values at the head of a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return push(cmd, args, true)
		},
	}
	listRPushCmd = &cobra.Command{
		Use:   "rpush [key] [value...]",
		Short: "Appends values to the tail of a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return push(cmd, args, false)
		},
	}
	listLPopCmd = &cobra.Command{
		Use:   "lpop [key]",
		Short: "Removes and prints the first element of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readList(args[0], func(l *collection.List) (any, error) { return l.LPop(cmd.Context()) })
		},
	}
	listRPopCmd = &cobra.Command{
		Use:   "rpop [key]",
		Short: "Removes and prints the last element of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return readList(args[0], func(l *collection.List) (any, error) { return l.RPop(cmd.Context()) })
		},
	}
	listBLPopCmd = &cobra.Command{
		Use:   "blpop [key] [timeout-seconds]",
		Short: "Waits for the first element of a list (0 waits forever)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := parseSeconds(args[1], "timeout")
			if err != nil {
				return err
			}
			return readList(args[0], func(l *collection.List) (any, error) { return l.BLPop(cmd.Context(), timeout) })
		},
	}
	listBRPopCmd = &cobra.Command{
		Use:   "brpop [key] [timeout-seconds]",
		Short: "Waits for the last element of a list (0 waits forever)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := parseSeconds(args[1], "timeout")
			if err != nil {
				return err
			}
			return readList(args[0], func(l *collection.List) (any, error) { return l.BRPop(cmd.Context(), timeout) })
		},
	}
	listIndexCmd = &cobra.Command{
		Use:   "index [key] [index]",
		Short: "Prints the element at index (negative indices count from the end)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseInt(args[1], "index")
			if err != nil {
				return err
			}
			return readList(args[0], func(l *collection.List) (any, error) { return l.Index(cmd.Context(), i) })
		},
	}
	listRemCmd = &cobra.Command{
		Use:   "rem [key] [value]",
		Short: "Removes every element equal to value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := keyOptions()
			if err != nil {
				return err
			}
			v, err := util.ParseValue(c, args[1])
			if err != nil {
				return err
			}
			n, err := collection.NewList(args[0], util.Client, opts...).Remove(cmd.Context(), v)
			if err != nil {
				return err
			}
			fmt.Printf("removed %d element(s)\n", n)
			return nil
		},
	}
)

func push(cmd *cobra.Command, args []string, left bool) error {
	c, opts, err := keyOptions()
	if err != nil {
		return err
	}
	vs, err := util.ParseValues(c, args[1:])
	if err != nil {
		return err
	}

	l := collection.NewList(args[0], util.Client, opts...)
	var n int64
	if left {
		n, err = l.LPush(cmd.Context(), vs...)
	} else {
		n, err = l.RPush(cmd.Context(), vs...)
	}
	if err != nil {
		return err
	}
	fmt.Printf("key=%s, len=%d\n", args[0], n)
	return nil
}

// readList runs a single element read on the list and prints the result
func readList(name string, fn func(l *collection.List) (any, error)) error {
	_, opts, err := keyOptions()
	if err != nil {
		return err
	}
	v, err := fn(collection.NewList(name, util.Client, opts...))
	if err != nil {
		return err
	}
	printValue(v)
	return nil
}
