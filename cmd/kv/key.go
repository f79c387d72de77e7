package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/key"
	"github.com/spf13/cobra"
	"time"
)

var (
	// KeyCommands represents the command group for operations every key supports
	KeyCommands = newGroup("key", "Inspect keys and manage their expiry",
		keyTypeCmd, keyTTLCmd, keyExistsCmd, keyDelCmd, keyExpireCmd, keyExpireAtCmd, keyPersistCmd)

	keyTypeCmd = &cobra.Command{
		Use:   "type [key]",
		Short: "Prints the representation of a key (none if it does not exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repr, err := key.New(args[0], util.Client).Representation(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(repr)
			return nil
		},
	}
	keyTTLCmd = &cobra.Command{
		Use:   "ttl [key]",
		Short: "Prints the remaining time to live of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, ok, err := key.New(args[0], util.Client).TTL(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("(no expiry)")
				return nil
			}
			fmt.Println(ttl)
			return nil
		},
	}
	keyExistsCmd = &cobra.Command{
		Use:   "exists [key]",
		Short: "Checks if a key exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := key.New(args[0], util.Client).Exists(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("key=%s, exists=%v\n", args[0], ok)
			return nil
		},
	}
	keyDelCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := key.New(args[0], util.Client).Delete(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("delete successfully")
			return nil
		},
	}
	keyExpireCmd = &cobra.Command{
		Use:   "expire [key] [seconds]",
		Short: "Sets the time to live of an existing key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := parseSeconds(args[1], "seconds")
			if err != nil {
				return err
			}
			if err := key.New(args[0], util.Client).Expire(cmd.Context(), ttl); err != nil {
				return err
			}
			fmt.Println("expire successfully")
			return nil
		},
	}
	keyExpireAtCmd = &cobra.Command{
		Use:   "expireat [key] [unix-timestamp]",
		Short: "Lets an existing key expire at the given unix timestamp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseInt(args[1], "unix-timestamp")
			if err != nil {
				return err
			}
			if err := key.New(args[0], util.Client).ExpireAt(cmd.Context(), time.Unix(ts, 0)); err != nil {
				return err
			}
			fmt.Println("expireat successfully")
			return nil
		},
	}
	keyPersistCmd = &cobra.Command{
		Use:   "persist [key]",
		Short: "Removes the time to live of an existing key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := key.New(args[0], util.Client).Persist(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("persist successfully")
			return nil
		},
	}
)
