package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/internal/errors"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

// mergeValues folds values for one attribute through a registry with the hx
// handler installed, the same way an element constructor does.
func mergeValues(name string, values []string) string {
	reg := vdom.NewMergeRegistry(nil)
	hx.Install(reg)

	var prev *vdom.Attr
	for _, v := range values {
		merged := reg.Resolve(prev, vdom.Attr{Key: name, Value: v})
		prev = &merged
	}
	if prev == nil {
		return ""
	}
	s, _ := prev.Value.(string)
	return s
}

func mergeCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "merge <name> <value>...",
		Short: "Show how repeated values of one attribute combine",
		Long: `Print the value an element ends up with when the attribute is given
once per value.

Examples:
  hxattr merge hx-trigger load "click delay:1000ms"
  hxattr merge hx-disinherit hx-target hx-swap
  hxattr merge hx-target "#a" "#b"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New(errors.ErrMissingArgs).
					WithDetail("merge needs an attribute name and at least one value.").
					WithExample(`hxattr merge hx-trigger load click`)
			}
			name, values := args[0], args[1:]

			out := cmd.OutOrStdout()
			if verbose {
				info(out, "%s is %s", name, hx.ClassOf(name))
			}
			fmt.Fprintln(out, mergeValues(name, values))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the merge class")

	return cmd
}
