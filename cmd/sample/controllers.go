package main

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bjaus/mvc"
)

type adminToken string

// homeController renders the guestbook.
type homeController struct {
	mvc.Base
	book      *guestbook
	requestID mvc.RequestID
}

func (h *homeController) Get(http.ResponseWriter, *http.Request) (mvc.Result, error) {
	return mvc.Continue(mvc.Model{
		"entries":    h.book.list(),
		"request_id": string(h.requestID),
	}), nil
}

// signController accepts new entries from the home page form.
type signController struct {
	mvc.Base
	book   *guestbook
	logger *slog.Logger
}

func (s *signController) Post(w http.ResponseWriter, r *http.Request) (mvc.Result, error) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return mvc.Stop(), nil
	}

	name := strings.TrimSpace(r.PostForm.Get("name"))
	message := strings.TrimSpace(r.PostForm.Get("message"))
	if name == "" || message == "" {
		http.Error(w, "name and message are required", http.StatusUnprocessableEntity)
		return mvc.Stop(), nil
	}

	e := s.book.add(name, message)
	http.Redirect(w, r, "/entries/"+e.ID, http.StatusSeeOther)
	return mvc.Flag(true), nil
}

// After runs only for accepted entries.
func (s *signController) After(_ http.ResponseWriter, r *http.Request) {
	s.logger.Info("guestbook signed", "request_id", mvc.GetRequestID(r))
}

// entryController renders a single entry.
type entryController struct {
	mvc.Base
	book *guestbook
}

func (e *entryController) Get(w http.ResponseWriter, r *http.Request) (mvc.Result, error) {
	entry, ok := e.book.get(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return mvc.Continue(nil), nil
	}
	return mvc.Continue(mvc.Model{"entry": entry}), nil
}

// adminController clears the guestbook. Before rejects callers without the
// admin token.
type adminController struct {
	mvc.Base
	book  *guestbook
	token adminToken
}

func (a *adminController) Before(w http.ResponseWriter, r *http.Request) bool {
	got := r.Header.Get("X-Admin-Token")
	if subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) != 1 {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return false
	}
	return true
}

func (a *adminController) Delete(w http.ResponseWriter, _ *http.Request) (mvc.Result, error) {
	n := a.book.clear()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "removed %d entries\n", n)
	return mvc.Flag(true), nil
}
