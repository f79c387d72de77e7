package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/collection"
	"github.com/spf13/cobra"
)

var (
	// SetCommands represents the command group for sets
	SetCommands = newGroup("set", "Read and change sets",
		setMembersCmd, setAddCmd, setRemCmd, setPopCmd, setIsMemberCmd, setCardCmd)

	setMembersCmd = &cobra.Command{
		Use:   "members [key]",
		Short: "Prints all members of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := keyOptions()
			if err != nil {
				return err
			}
			vs, err := collection.NewSet(args[0], util.Client, opts...).Members(cmd.Context())
			if err != nil {
				return err
			}
			printValues(vs)
			return nil
		},
	}
	setAddCmd = &cobra.Command{
		Use:   "add [key] [member...]",
		Short: "Adds members to a set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, opts, err := keyOptions()
			if err != nil {
				return err
			}
			vs, err := util.ParseValues(c, args[1:])
			if err != nil {
				return err
			}
			n, err := collection.NewSet(args[0], util.Client, opts...).Add(cmd.Context(), vs...)
			if err != nil {
				return err
			}
			fmt.Printf("added %d member(s)\n", n)
			return nil
		},
	}
	setRemCmd = &cobra.Command{
		Use:   "rem [key] [member]",
		Short: "Removes a member from a set (fails if it is not a member)",
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
			if err := collection.NewSet(args[0], util.Client, opts...).Remove(cmd.Context(), v); err != nil {
				return err
			}
			fmt.Println("remove successfully")
			return nil
		},
	}
	setPopCmd = &cobra.Command{
		Use:   "pop [key]",
		Short: "Removes and prints a random member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := keyOptions()
			if err != nil {
				return err
			}
			v, err := collection.NewSet(args[0], util.Client, opts...).Pop(cmd.Context())
			if err != nil {
				return err
			}
			printValue(v)
			return nil
		},
	}
	setIsMemberCmd = &cobra.Command{
		Use:   "ismember [key] [member]",
		Short: "Checks if a value is a member of a set",
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
			ok, err := collection.NewSet(args[0], util.Client, opts...).Contains(cmd.Context(), v)
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, member=%v\n", args[0], ok)
			return nil
		},
	}
	setCardCmd = &cobra.Command{
		Use:   "card [key]",
		Short: "Prints the number of members of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := collection.NewSet(args[0], util.Client).Len(cmd.Context())
			if err != nil {
				return err
			}
			printValue(n)
			return nil
		},
	}
)
