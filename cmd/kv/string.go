package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/collection"
	"github.com/spf13/cobra"
	"time"
)

var (
	// StringCommands represents the command group for single value keys
	StringCommands = newGroup("str", "Read and write single value keys",
		strGetCmd, strSetCmd, strSetNXCmd, strGetSetCmd)

	// CounterCommands represents the command group for counters
	CounterCommands = newGroup("counter", "Read and change integer counters",
		counterGetCmd, counterIncrCmd, counterDecrCmd)

	strGetCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := keyOptions()
			if err != nil {
				return err
			}
			v, err := collection.NewString(args[0], util.Client, opts...).Get(cmd.Context())
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
	strSetCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value of a key (refuses to replace keys of another type)",
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

			var setOpts []collection.SetOption
			if preserve, _ := cmd.Flags().GetBool("preserve"); preserve {
				setOpts = append(setOpts, collection.Preserve())
			}
			if expire, _ := cmd.Flags().GetFloat64("expire"); expire > 0 {
				setOpts = append(setOpts, collection.WithExpire(time.Duration(expire*float64(time.Second))))
			}

			if err := collection.NewString(args[0], util.Client, opts...).Set(cmd.Context(), v, setOpts...); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	strSetNXCmd = &cobra.Command{
		Use:   "setnx [key] [value]",
		Short: "Sets the value of a key if the key does not exist",
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
			ok, err := collection.NewString(args[0], util.Client, opts...).SetNX(cmd.Context(), v)
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, set=%v\n", args[0], ok)
			return nil
		},
	}
	strGetSetCmd = &cobra.Command{
		Use:   "getset [key] [value]",
		Short: "Sets the value of a key and prints the previous value",
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
			old, err := collection.NewString(args[0], util.Client, opts...).GetSet(cmd.Context(), v)
			if err != nil {
				return err
			}
			printValue(old)
			return nil
		},
	}

	counterGetCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value of a counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := collection.NewCounter(args[0], util.Client).Get(cmd.Context())
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
	counterIncrCmd = &cobra.Command{
		Use:   "incr [key] [amount]",
		Short: "Increments a counter (by 1 if no amount is given)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := optionalInt(args, 1, 1, "amount")
			if err != nil {
				return err
			}
			v, err := collection.NewCounter(args[0], util.Client).Incr(cmd.Context(), n)
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
	counterDecrCmd = &cobra.Command{
		Use:   "decr [key] [amount]",
		Short: "Decrements a counter (by 1 if no amount is given)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := optionalInt(args, 1, 1, "amount")
			if err != nil {
				return err
			}
			v, err := collection.NewCounter(args[0], util.Client).Decr(cmd.Context(), n)
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
)

func init() {
	strSetCmd.Flags().Bool("preserve", false, util.WrapString("Fail instead of replacing an existing value"))
	strSetCmd.Flags().Float64("expire", 0, util.WrapString("Time to live of the key in seconds (0 = no expiry)"))
}
