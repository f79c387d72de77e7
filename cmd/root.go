package cmd

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/kv"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "ookv",
		Short: "object mapper for redis data types",
		Long: fmt.Sprintf(`ooKV (v%s)

Work with the data types of a Redis compatible store (strings, counters,
lists, sets, sorted sets and hashes) as typed values. Every value is
encoded with the selected codec before it is written and decoded after
it is read.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ooKV",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ooKV v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(util.InitClientConfig)

	// Add Commands
	RootCmd.AddCommand(kv.KeyCommands)
	RootCmd.AddCommand(kv.StringCommands)
	RootCmd.AddCommand(kv.CounterCommands)
	RootCmd.AddCommand(kv.ListCommands)
	RootCmd.AddCommand(kv.SetCommands)
	RootCmd.AddCommand(kv.SortedSetCommands)
	RootCmd.AddCommand(kv.HashCommands)
	RootCmd.AddCommand(kv.PerfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupClientFlags(RootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
