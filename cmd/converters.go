package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/posix2nu/posix2nu/nu/builtin"
	"github.com/posix2nu/posix2nu/nu/sus"
	"github.com/spf13/cobra"
)

// convertersCmd lists every registered command translation.
var convertersCmd = &cobra.Command{
	Use:   "converters",
	Short: "Show the registered builtin and utility converters.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		type entry struct {
			kind, name, short string
		}
		var entries []entry

		for _, name := range builtin.Names() {
			c, _ := builtin.Find(name)
			entries = append(entries, entry{"builtin", c.Name, c.Short})
		}
		for _, name := range sus.Names() {
			c, _ := sus.Find(name)
			entries = append(entries, entry{"utility", c.Name, c.Short})
		}

		sort.Slice(entries, func(i, j int) bool {
			if entries[i].name != entries[j].name {
				return entries[i].name < entries[j].name
			}
			return entries[i].kind < entries[j].kind
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.name, e.kind, e.short)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(convertersCmd)
}
