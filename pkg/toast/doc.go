// Package toast sends feedback notifications with an htmx response.
//
// A toast travels in the HX-Trigger response header. htmx dispatches the
// named event on the element that issued the request, and the event bubbles
// so a single listener near the top of the page can render every toast:
//
//	s.el("main",
//	    hx.On(toast.EventName, "showToast(event.detail.level, event.detail.message)"),
//	    ...
//	)
//
// Handlers call the helpers before writing the body:
//
//	func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
//	    if err := s.store.Delete(id); err != nil {
//	        toast.Error(w, "Failed to delete project")
//	        http.Error(w, err.Error(), http.StatusInternalServerError)
//	        return
//	    }
//	    toast.Success(w, "Project deleted")
//	    ...
//	}
//
// The client-side handler is up to the application, so any toast library
// can sit behind it.
package toast
