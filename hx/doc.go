// Package hx builds htmx attributes for vdom elements.
//
// Every builder returns a single vdom.Attr:
//
//	vdom.Button(
//	    hx.Post("/items"),
//	    hx.Target("#list"),
//	    hx.Swap(hx.SwapBeforeEnd, hx.Settle(200*time.Millisecond)),
//	    hx.Trigger(hx.EventClick, hx.Throttle(time.Second)),
//	    "Add",
//	)
//
// # Merging
//
// Some htmx attributes hold lists: hx-trigger, hx-select-oob, hx-disabled-elt,
// hx-ext and hx-params are comma separated, hx-inherit and hx-disinherit are
// space separated. Once Merge is installed, repeating one of these attributes
// on an element joins the values in call order instead of keeping the last:
//
//	hx.Register()
//	vdom.Div(hx.Trigger("load"), hx.Trigger("click", hx.Delay(time.Second)))
//	// <div hx-trigger="load, click delay:1000ms"></div>
//
// Register installs Merge into vdom.DefaultMergers; Install takes an explicit
// registry. Both return a handle whose Remove undoes the installation.
//
// # Omitted and presence-only values
//
// A builder that returns a nil value, such as History(true), asks the
// renderer to drop the attribute. A true value, such as Disable(), renders
// as a bare attribute name.
package hx
