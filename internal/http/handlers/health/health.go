package health

import "net/http"

type handler struct{}

func New() *handler {
	return &handler{}
}

func (h *handler) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("OK"))
}
