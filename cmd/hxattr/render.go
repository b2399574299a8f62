package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/internal/errors"
	"github.com/vango-dev/hxattr/pkg/render"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

// builder turns the value of a key=value pair into an attribute.
type builder func(value string) (vdom.Attr, error)

func str(fn func(string) vdom.Attr) builder {
	return func(v string) (vdom.Attr, error) { return fn(v), nil }
}

func boolean(key string, fn func(bool) vdom.Attr) builder {
	return func(v string) (vdom.Attr, error) {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return vdom.Attr{}, errors.New(errors.ErrMalformedPair).
				WithDetail(key + " takes true or false, got " + strconv.Quote(v) + ".")
		}
		return fn(b), nil
	}
}

func duration(key string, fn func(time.Duration) vdom.Attr) builder {
	return func(v string) (vdom.Attr, error) {
		d, err := time.ParseDuration(v)
		if err != nil {
			return vdom.Attr{}, errors.New(errors.ErrInvalidDuration).
				WithDetail(key + "=" + v + " is not a duration.").
				Wrap(err)
		}
		return fn(d), nil
	}
}

// builders maps CLI keys to hx builders. Keys are attribute names without
// the hx- prefix.
var builders = map[string]builder{
	"get":          str(hx.Get),
	"post":         str(hx.Post),
	"put":          str(hx.Put),
	"patch":        str(hx.Patch),
	"delete":       str(hx.Delete),
	"push-url":     str(hx.PushURL),
	"replace-url":  str(hx.ReplaceURL),
	"select":       str(hx.Select),
	"target":       str(hx.Target),
	"confirm":      str(hx.Confirm),
	"prompt":       str(hx.Prompt),
	"include":      str(hx.Include),
	"indicator":    str(hx.Indicator),
	"disabled-elt": str(func(v string) vdom.Attr { return hx.DisabledElt(v) }),
	"ext":          str(func(v string) vdom.Attr { return hx.Ext(v) }),
	"params":       str(func(v string) vdom.Attr { return hx.Params(v) }),
	"vals":         str(func(v string) vdom.Attr { return hx.Vals(v) }),
	"headers":      str(func(v string) vdom.Attr { return hx.Headers(v) }),
	"trigger":      str(func(v string) vdom.Attr { return hx.Trigger(v) }),
	"swap":         str(func(v string) vdom.Attr { return hx.Swap(hx.SwapStyle(v)) }),
	"swap-oob":     str(func(v string) vdom.Attr { return hx.SwapOOB(hx.SwapStyle(v)) }),
	"select-oob":   str(func(v string) vdom.Attr { return hx.SelectOOB(hx.OOBTarget(v)) }),
	"inherit":      str(func(v string) vdom.Attr { return hx.Inherit(hx.InheritedAttr(v)) }),
	"disinherit":   str(func(v string) vdom.Attr { return hx.Disinherit(hx.InheritedAttr(v)) }),
	"encoding":     str(func(v string) vdom.Attr { return hx.Encoding(hx.EncodingType(v)) }),
	"sync":         str(syncAttr),
	"boost":        boolean("boost", hx.Boost),
	"validate":     boolean("validate", hx.Validate),
	"history":      boolean("history", hx.History),
	"every":        duration("every", func(d time.Duration) vdom.Attr { return hx.TriggerEvery(d) }),
	"timeout":      duration("timeout", func(d time.Duration) vdom.Attr { return hx.Request(hx.Timeout(d)) }),
}

var syncStrategies = map[hx.SyncStrategy]bool{
	hx.SyncDrop: true, hx.SyncAbort: true, hx.SyncReplace: true, hx.SyncQueue: true,
	hx.SyncQueueFirst: true, hx.SyncQueueLast: true, hx.SyncQueueAll: true,
}

// syncAttr splits "selector:strategy". A suffix that is not a strategy stays
// part of the selector.
func syncAttr(v string) vdom.Attr {
	if i := strings.LastIndex(v, ":"); i >= 0 {
		if strategy := hx.SyncStrategy(v[i+1:]); syncStrategies[strategy] {
			return hx.Sync(v[:i], strategy)
		}
	}
	return hx.Sync(v, hx.SyncDefault)
}

// flags are keys that take no value.
var flags = map[string]func() vdom.Attr{
	"disable":     hx.Disable,
	"preserve":    hx.Preserve,
	"history-elt": hx.HistoryElt,
}

// knownKeys returns every key render accepts, sorted.
func knownKeys() []string {
	keys := make([]string, 0, len(builders)+len(flags)+1)
	for k := range builders {
		keys = append(keys, k)
	}
	for k := range flags {
		keys = append(keys, k)
	}
	keys = append(keys, "on:<event>")
	sort.Strings(keys)
	return keys
}

// parsePair builds the attribute for one command line argument.
func parsePair(arg string) (vdom.Attr, error) {
	key, value, hasValue := strings.Cut(arg, "=")
	key = strings.TrimPrefix(strings.TrimPrefix(key, "data-"), hx.Prefix)

	if fn, ok := flags[key]; ok {
		if hasValue {
			return vdom.Attr{}, errors.New(errors.ErrMalformedPair).
				WithDetail(key + " takes no value.")
		}
		return fn(), nil
	}

	if !hasValue {
		return vdom.Attr{}, errors.New(errors.ErrMalformedPair).
			WithDetail(strconv.Quote(arg) + " has no '='.").
			WithExample("hxattr render button get=/items trigger=click")
	}

	if event, ok := strings.CutPrefix(key, "on:"); ok && event != "" {
		return hx.On(event, value), nil
	}

	fn, ok := builders[key]
	if !ok {
		return vdom.Attr{}, errors.New(errors.ErrUnknownKey).
			WithDetail("Unknown key " + strconv.Quote(key) + ".").
			WithSuggestion("Known keys: " + strings.Join(knownKeys(), ", "))
	}
	return fn(value)
}

// renderElement builds tag from args with merging enabled and renders it.
func renderElement(tag string, args []string, dataPrefix, openOnly bool) (string, error) {
	reg := vdom.NewMergeRegistry(nil)
	hx.Install(reg)

	attrs := make([]vdom.Attr, 0, len(args))
	for _, arg := range args {
		a, err := parsePair(arg)
		if err != nil {
			return "", err
		}
		if dataPrefix {
			a = hx.WithDataPrefix(a)
		}
		attrs = append(attrs, a)
	}

	node := vdom.NewElement(tag, reg, attrs)
	renderer := render.NewRenderer(render.RendererConfig{})

	var (
		out string
		err error
	)
	if openOnly {
		out, err = renderer.RenderOpenTag(node)
	} else {
		out, err = renderer.RenderToString(node)
	}
	if err != nil {
		return "", errors.New(errors.ErrRender).Wrap(err)
	}
	return out, nil
}

func renderCmd() *cobra.Command {
	var (
		dataPrefix bool
		openOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "render <tag> [key=value...]",
		Short: "Render an element with htmx attributes",
		Long: `Render an element built from key=value pairs.

Keys are htmx attribute names without the hx- prefix. Repeating a key
merges the values the same way the hx package does.

Examples:
  hxattr render button get=/clicked trigger=load trigger=click
  hxattr render div every=2s get=/poll
  hxattr render form post=/items disabled-elt=this "disabled-elt=find button"
  hxattr render input --data get=/search on:htmx:afterRequest=done()`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrMissingArgs).
					WithDetail("render needs a tag name.").
					WithExample("hxattr render button get=/clicked")
			}
			out, err := renderElement(args[0], args[1:], dataPrefix, openOnly)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dataPrefix, "data", false, "Use data-hx-* attribute names")
	cmd.Flags().BoolVar(&openOnly, "open", false, "Print only the opening tag")

	return cmd
}
