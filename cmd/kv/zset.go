package kv

import (
	"fmt"
	"github.com/ValentinKolb/ooKV/cmd/util"
	"github.com/ValentinKolb/ooKV/lib/collection"
	"github.com/spf13/cobra"
)

var (
	// SortedSetCommands represents the command group for sorted sets
	SortedSetCommands = newGroup("zset", "Read and change sorted sets",
		zsetAddCmd, zsetScoreCmd, zsetRankCmd, zsetRemCmd, zsetRangeCmd, zsetIncrCmd)

	zsetAddCmd = &cobra.Command{
		Use:   "add [key] [score] [member]",
		Short: "Adds a member or updates its score",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := parseFloat(args[1], "score")
			if err != nil {
				return err
			}
			z, v, err := sortedSetMember(args[0], args[2])
			if err != nil {
				return err
			}
			if err := z.Set(cmd.Context(), v, score); err != nil {
				return err
			}
			fmt.Println("add successfully")
			return nil
		},
	}
	zsetScoreCmd = &cobra.Command{
		Use:   "score [key] [member]",
		Short: "Prints the score of a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, v, err := sortedSetMember(args[0], args[1])
			if err != nil {
				return err
			}
			score, err := z.Score(cmd.Context(), v)
			if err != nil {
				return err
			}
			printValue(score)
			return nil
		},
	}
	zsetRankCmd = &cobra.Command{
		Use:   "rank [key] [member]",
		Short: "Prints the rank of a member (0 is the lowest score)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, v, err := sortedSetMember(args[0], args[1])
			if err != nil {
				return err
			}
			var rank int64
			if reverse, _ := cmd.Flags().GetBool("reverse"); reverse {
				rank, err = z.ReverseRank(cmd.Context(), v)
			} else {
				rank, err = z.Rank(cmd.Context(), v)
			}
			if err != nil {
				return err
			}
			printValue(rank)
			return nil
		},
	}
	zsetRemCmd = &cobra.Command{
		Use:   "rem [key] [member]",
		Short: "Removes a member (fails if it is not a member)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, v, err := sortedSetMember(args[0], args[1])
			if err != nil {
				return err
			}
			if err := z.Remove(cmd.Context(), v); err != nil {
				return err
			}
			fmt.Println("remove successfully")
			return nil
		},
	}
	zsetRangeCmd = &cobra.Command{
		Use:   "range [key] [start] [stop]",
		Short: "Prints the members ranked start to stop with their scores (default: all)",
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
			members, err := collection.NewSortedSet(args[0], util.Client, opts...).Range(cmd.Context(), start, stop)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("(empty)")
			}
			for i, m := range members {
				fmt.Printf("%d) %s (%v)\n", i+1, util.FormatValue(m.Value), m.Score)
			}
			return nil
		},
	}
	zsetIncrCmd = &cobra.Command{
		Use:   "incr [key] [increment] [member]",
		Short: "Adds increment to the score of a member",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			by, err := parseFloat(args[1], "increment")
			if err != nil {
				return err
			}
			z, v, err := sortedSetMember(args[0], args[2])
			if err != nil {
				return err
			}
			score, err := z.Incr(cmd.Context(), v, by)
			if err != nil {
				return err
			}
			printValue(score)
			return nil
		},
	}
)

func init() {
	zsetRankCmd.Flags().Bool("reverse", false, util.WrapString("Count from the highest score"))
}

// sortedSetMember creates the sorted set and parses the member argument
func sortedSetMember(name, arg string) (*collection.SortedSet, any, error) {
	c, opts, err := keyOptions()
	if err != nil {
		return nil, nil, err
	}
	v, err := util.ParseValue(c, arg)
	if err != nil {
		return nil, nil, err
	}
	return collection.NewSortedSet(name, util.Client, opts...), v, nil
}
