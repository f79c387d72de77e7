package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/collection"
	"github.com/spf13/cobra"
	"sort"
)

var (
	// HashCommands represents the command group for hashes
	HashCommands = newGroup("hash", "Read and change hashes",
		hashGetCmd, hashSetCmd, hashDelCmd, hashKeysCmd, hashLenCmd, hashGetAllCmd, hashIncrCmd)

	hashGetCmd = &cobra.Command{
		Use:   "get [key] [field]",
		Short: "Reads the value of a field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := keyOptions()
			if err != nil {
				return err
			}
			v, err := collection.NewDict(args[0], util.Client, opts...).Get(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
	hashSetCmd = &cobra.Command{
		Use:   "set [key] [field] [value]",
		Short: "Sets the value of a field",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := keyOptions()
			if err != nil {
				return err
			}
			v, err := util.ParseValue(c, args[2])
			if err != nil {
				return err
			}
			if err := collection.NewDict(args[0], util.Client, opts...).Set(cmd.Context(), args[1], v); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
	hashDelCmd = &cobra.Command{
		Use:   "del [key] [field]",
		Short: "Deletes a field (fails if it does not exist)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := collection.NewDict(args[0], util.Client).Delete(cmd.Context(), args[1]); err != nil {
				return err
			}
			fmt.Println("delete successfully")
			return nil
		},
	}
	hashKeysCmd = &cobra.Command{
		Use:   "keys [key]",
		Short: "Prints all fields of a hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := collection.NewDict(args[0], util.Client).Keys(cmd.Context())
			if err != nil {
				return err
			}
			sort.Strings(fields)
			if len(fields) == 0 {
				fmt.Println("(empty)")
			}
			for i, f := range fields {
				fmt.Printf("%d) %s\n", i+1, f)
			}
			return nil
		},
	}
	hashLenCmd = &cobra.Command{
		Use:   "len [key]",
		Short: "Prints the number of fields of a hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := collection.NewDict(args[0], util.Client).Len(cmd.Context())
			if err != nil {
				return err
			}
			printValue(n)
			return nil
		},
	}
	hashGetAllCmd = &cobra.Command{
		Use:   "getall [key]",
		Short: "Prints all fields of a hash with their values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := keyOptions()
			if err != nil {
				return err
			}
			items, err := collection.NewDict(args[0], util.Client, opts...).Items(cmd.Context())
			if err != nil {
				return err
			}
			fields := make([]string, 0, len(items))
			for f := range items {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			if len(fields) == 0 {
				fmt.Println("(empty)")
			}
			for _, f := range fields {
				fmt.Printf("%s: %s\n", f, util.FormatValue(items[f]))
			}
			return nil
		},
	}
	hashIncrCmd = &cobra.Command{
		Use:   "incr [key] [field] [amount]",
		Short: "Increments the integer stored in a field (by 1 if no amount is given)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := optionalInt(args, 2, 1, "amount")
			if err != nil {
				return err
			}
			v, err := collection.NewDict(args[0], util.Client).Incr(cmd.Context(), args[1], n)
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
)
