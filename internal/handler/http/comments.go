package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-forum-board/internal/logger"
	"github.com/MKhiriev/go-forum-board/internal/utils"
)

// postCommentRequest is the JSON body of a comment-creation request.
// A nil ParentCommentID posts a top-level comment; a non-nil one posts a
// reply to the named comment of the same thread.
type postCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`
}

func (h *Handler) postComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	threadID, err := threadIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.postComment").Msg("invalid thread ID in URL")
		http.Error(w, "invalid thread ID", http.StatusBadRequest)
		return
	}

	var request postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.postComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.ForumService.PostComment(r.Context(), sessionTokenFromRequest(r), threadID, request.Content, request.ParentCommentID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.postComment").Int64("threadID", threadID).Msg("error posting comment")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}
