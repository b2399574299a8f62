package hx

import (
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/hxattr/pkg/vdom"
)

// SwapOption adds a modifier to Swap.
type SwapOption func(*[]string)

func swapModifier(s string) SwapOption {
	return func(mods *[]string) { *mods = append(*mods, s) }
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// Transition uses the View Transitions API for the swap.
func Transition(enabled bool) SwapOption {
	return swapModifier("transition:" + strconv.FormatBool(enabled))
}

// SwapDelay waits d between receiving the response and swapping it in.
func SwapDelay(d time.Duration) SwapOption { return swapModifier("swap:" + ms(d)) }

// Settle waits d between the swap and the settle step.
func Settle(d time.Duration) SwapOption { return swapModifier("settle:" + ms(d)) }

// IgnoreTitle keeps the page title when the response contains a <title>.
func IgnoreTitle(enabled bool) SwapOption {
	return swapModifier("ignoreTitle:" + strconv.FormatBool(enabled))
}

// Scroll scrolls the target to pos after the swap.
func Scroll(pos ScrollPos) SwapOption { return swapModifier("scroll:" + string(pos)) }

// ScrollTo scrolls the element matching selector to pos after the swap.
func ScrollTo(selector string, pos ScrollPos) SwapOption {
	return swapModifier("scroll:" + selector + ":" + string(pos))
}

// Show scrolls the target into view at pos after the swap.
func Show(pos ScrollPos) SwapOption { return swapModifier("show:" + string(pos)) }

// ShowElement scrolls the element matching selector into view at pos.
func ShowElement(selector string, pos ScrollPos) SwapOption {
	return swapModifier("show:" + selector + ":" + string(pos))
}

// FocusScroll controls scrolling to a focused input after the swap.
func FocusScroll(enabled bool) SwapOption {
	return swapModifier("focus-scroll:" + strconv.FormatBool(enabled))
}

// Swap sets how the response is swapped in. Modifiers follow the style,
// separated by spaces, in the order given.
func Swap(style SwapStyle, opts ...SwapOption) vdom.Attr {
	parts := []string{string(style)}
	for _, opt := range opts {
		opt(&parts)
	}
	return attr("swap", strings.Join(parts, " "))
}

// SwapOOB marks the element for an out of band swap using style.
func SwapOOB(style SwapStyle) vdom.Attr { return attr("swap-oob", string(style)) }

// SwapOOBTrue marks the element for an out of band outerHTML swap by id.
func SwapOOBTrue() vdom.Attr { return attr("swap-oob", "true") }

// SwapOOBTo swaps the element into selector out of band using style.
func SwapOOBTo(style SwapStyle, selector string) vdom.Attr {
	return attr("swap-oob", string(style)+":"+selector)
}
