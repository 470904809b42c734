package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/utils"
	"github.com/go-chi/chi/v5"
)

// postThreadRequest is the JSON body of a thread-creation request.
type postThreadRequest struct {
	Title string  `json:"title"`
	Link  *string `json:"link,omitempty"`
}

func (h *Handler) listThreads(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	threads, err := h.services.ForumService.ListThreads(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listThreads").Msg("error listing threads")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, threads, http.StatusOK)
}

func (h *Handler) postThread(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request postThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.postThread").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	thread, err := h.services.ForumService.PostThread(r.Context(), sessionTokenFromRequest(r), request.Title, request.Link)
	if err != nil {
		log.Err(err).Str("func", "*Handler.postThread").Msg("error posting thread")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, thread, http.StatusCreated)
}

func (h *Handler) viewThread(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	threadID, err := threadIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.viewThread").Msg("invalid thread ID in URL")
		http.Error(w, "invalid thread ID", http.StatusBadRequest)
		return
	}

	page, err := h.services.ForumService.ViewThread(r.Context(), sessionTokenFromRequest(r), threadID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.viewThread").Int64("threadID", threadID).Msg("error viewing thread")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// threadIDFromURL parses the {threadID} route parameter.
func threadIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "threadID"), 10, 64)
}
