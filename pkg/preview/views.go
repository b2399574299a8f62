package preview

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/hxattr/hx"
	"github.com/vango-dev/hxattr/internal/errors"
	"github.com/vango-dev/hxattr/pkg/render"
	"github.com/vango-dev/hxattr/pkg/toast"
	"github.com/vango-dev/hxattr/pkg/vdom"
)

// attributeCatalog is the list searched by /search.
var attributeCatalog = []string{
	"hx-boost", "hx-confirm", "hx-delete", "hx-disable", "hx-disabled-elt",
	"hx-disinherit", "hx-encoding", "hx-ext", "hx-get", "hx-headers",
	"hx-history", "hx-history-elt", "hx-include", "hx-indicator", "hx-inherit",
	"hx-on", "hx-params", "hx-patch", "hx-post", "hx-preserve", "hx-prompt",
	"hx-push-url", "hx-put", "hx-replace-url", "hx-request", "hx-select",
	"hx-select-oob", "hx-swap", "hx-swap-oob", "hx-sync", "hx-target",
	"hx-trigger", "hx-validate", "hx-vals",
}

const pageStyle = `body{font-family:system-ui,sans-serif;max-width:44rem;margin:2rem auto;padding:0 1rem}
section{margin-bottom:2rem}
.htmx-indicator{opacity:0}
.htmx-request .htmx-indicator,.htmx-request.htmx-indicator{opacity:1;transition:opacity 200ms ease-in}
.chat-message{padding:.25rem 0;border-bottom:1px solid #eee}
#toast{position:fixed;top:1rem;right:1rem}
#toast.error{color:#b00}`

// toastScript shows the detail of a toast event in #toast.
const toastScript = `const t=document.getElementById('toast');t.className=event.detail.level;t.textContent=event.detail.message`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := render.PageData{
		Title:  "hxattr preview",
		Styles: []string{pageStyle},
		Scripts: []render.ScriptTag{
			{
				Src:         s.config.HTMX.ScriptURL,
				Integrity:   s.config.HTMX.Integrity,
				CrossOrigin: crossOrigin(s.config.HTMX.Integrity),
			},
			{Src: s.config.HTMX.WSExtensionURL, Defer: true},
		},
		Body: s.indexBody(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewStreamingRenderer(w, render.RendererConfig{}).RenderPage(page); err != nil {
		s.logger.Error("page render failed", "error", err)
	}
}

func crossOrigin(integrity string) string {
	if integrity == "" {
		return ""
	}
	return "anonymous"
}

func (s *Server) indexBody() *vdom.VNode {
	return s.el("main",
		// Each section picks its own target and swap.
		hx.Disinherit(hx.InheritTarget),
		hx.Disinherit(hx.InheritSwap),
		hx.On(toast.EventName, toastScript),
		s.el("h1", "hxattr preview"),
		s.el("div", vdom.ID("toast"), vdom.Attr{Key: "role", Value: "status"}),
		s.clickSection(),
		s.searchSection(),
		s.itemsSection(s.items.list()),
		s.chatSection(),
	)
}

func (s *Server) clickSection() *vdom.VNode {
	return s.el("section",
		s.el("h2", "Click"),
		s.el("button",
			vdom.ID("click-button"),
			hx.Get("/clicked"),
			hx.Trigger("click"),
			hx.Trigger("keyup", hx.Filter("key=='Enter'")),
			hx.Vals(hx.Values{{Key: "source", Value: "button"}}),
			hx.Target("#click-result"),
			hx.Swap(hx.SwapInnerHTML, hx.Settle(100*time.Millisecond)),
			"Click me",
		),
		s.el("div", vdom.ID("click-result"), vdom.AriaLive("polite")),
	)
}

func (s *Server) searchSection() *vdom.VNode {
	return s.el("section",
		s.el("h2", "Search attributes"),
		s.el("input",
			vdom.Type("search"),
			vdom.Name("q"),
			vdom.Placeholder("trigger, swap, ..."),
			vdom.Autocomplete("off"),
			hx.Get("/search"),
			hx.Trigger("input", hx.Changed(), hx.Delay(300*time.Millisecond)),
			hx.Trigger("search"),
			hx.Target("#search-results"),
			hx.Indicator("#search-indicator"),
			hx.Sync(hx.This, hx.SyncReplace),
		),
		s.el("span", vdom.ID("search-indicator"), vdom.Class("htmx-indicator"), " Searching..."),
		s.el("ul", vdom.ID("search-results")),
	)
}

func (s *Server) itemsSection(items []Item) *vdom.VNode {
	rows := make([]*vdom.VNode, len(items))
	for i, item := range items {
		rows[i] = s.itemRow(item)
	}

	return s.el("section",
		s.el("h2", "Items ", s.itemCount(len(items), false)),
		s.el("form",
			vdom.ID("item-form"),
			hx.Post("/items"),
			hx.Target("#items"),
			hx.Swap(hx.SwapBeforeEnd, hx.Scroll(hx.Bottom)),
			hx.DisabledElt(hx.Find("button")),
			hx.DisabledElt(hx.Find("input")),
			hx.On(hx.EventAfterRequest, "if(event.detail.successful) this.reset()"),
			s.el("input", vdom.Type("text"), vdom.Name("text"), vdom.Required(), vdom.Placeholder("New item")),
			s.el("button", vdom.Type("submit"), "Add"),
		),
		s.el("ul", vdom.ID("items"), rows),
	)
}

func (s *Server) itemRow(item Item) *vdom.VNode {
	return s.el("li",
		vdom.ID("item-"+item.ID),
		item.Text,
		" ",
		s.el("button",
			hx.Delete("/items/"+item.ID),
			hx.Target(hx.Closest("li")),
			hx.Swap(hx.SwapOuterHTML, hx.SwapDelay(200*time.Millisecond)),
			hx.Confirm("Delete "+item.Text+"?"),
			"Delete",
		),
	)
}

// itemCount renders the item counter. The oob form replaces the counter on
// the page by id.
func (s *Server) itemCount(n int, oob bool) *vdom.VNode {
	text := strconv.Itoa(n) + " items"
	if n == 1 {
		text = "1 item"
	}
	return s.el("small",
		vdom.ID("item-count"),
		vdom.AttrIf(oob, hx.SwapOOBTrue()),
		"("+text+")",
	)
}

func (s *Server) chatSection() *vdom.VNode {
	return s.el("section",
		hx.Ext("ws"),
		hx.WSConnect("/ws"),
		s.el("h2", "Chat"),
		s.el("div", vdom.ID("chat-messages"), vdom.AriaLive("polite")),
		s.el("form",
			vdom.ID("chat-form"),
			hx.WSSend(),
			hx.On(hx.EventWSAfterSend, "this.reset()"),
			s.el("input", vdom.Type("text"), vdom.Name("message"), vdom.Placeholder("Markdown is fine"), vdom.Autocomplete("off")),
			s.el("button", vdom.Type("submit"), "Send"),
		),
	)
}

// =============================================================================
// Fragment routes
// =============================================================================

func (s *Server) handleClicked(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		source = "unknown"
	}
	s.writeFragment(w, "clicked",
		s.el("p", "Clicked (via "+source+") at "+time.Now().Format("15:04:05")),
	)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q == "" {
		s.writeFragment(w, "search")
		return
	}

	var rows []*vdom.VNode
	for _, name := range attributeCatalog {
		if !strings.Contains(name, q) {
			continue
		}
		rows = append(rows, s.el("li",
			s.el("code", name),
			" "+hx.ClassOf(name).String(),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, s.el("li", "No attributes match "+strconv.Quote(q)))
	}
	s.writeFragment(w, "search", rows...)
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(r.PostForm.Get("text"))
	if text == "" {
		http.Error(w, "text is required", http.StatusUnprocessableEntity)
		return
	}

	item := s.items.add(text)
	s.logger.Debug("item added", "id", item.ID)
	toast.Success(w, "Item added")
	s.writeFragment(w, "item",
		s.itemRow(item),
		s.itemCount(len(s.items.list()), true),
	)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := s.items.remove(id)
	if err != nil {
		s.logger.Warn("item delete rejected", "error", err)
		var hxErr *errors.HxError
		if errors.As(err, &hxErr) {
			http.Error(w, hxErr.Message, http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !removed {
		toast.Warning(w, "Item already removed")
		http.NotFound(w, r)
		return
	}
	toast.Info(w, "Item deleted")

	// The row is swapped out with the empty remainder of the response.
	s.writeFragment(w, "item-count", s.itemCount(len(s.items.list()), true))
}
