package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hxattr/hx"
)

func classesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List which attributes are merged and how",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			classes := []hx.MergeClass{hx.CommaJoined, hx.SpaceJoined}

			if asJSON {
				m := make(map[string][]string, len(classes))
				for _, c := range classes {
					m[c.String()] = hx.Names(c)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}

			for _, c := range classes {
				fmt.Fprintf(out, "%s (%s): %s\n", c, strconv.Quote(c.Separator()), strings.Join(hx.Names(c), " "))
			}
			fmt.Fprintf(out, "%s: every other attribute keeps its last value\n", hx.NoMerge)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
