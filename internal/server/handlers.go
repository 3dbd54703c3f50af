package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/wikiwally/internal/rendering"
	"github.com/jonathan/wikiwally/internal/schemas"
	"github.com/jonathan/wikiwally/internal/types"
)

// maxBodyBytes bounds request bodies; commands carry a query and a name.
const maxBodyBytes = 64 << 10

// validatable is implemented by every command request.
type validatable interface {
	Validate() error
}

// decodeRequest reads a JSON body into req and validates it.
func decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

// handlePage resolves a query to a single article.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var req types.PageRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, HTTPStatus(err), err.Error())
		return
	}
	s.payloadResponse(w, r, s.service.Page(r.Context(), req.Query, req.RequestedBy))
}

// handleRandom fetches one to ten random articles.
func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	var req types.RandomRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, HTTPStatus(err), err.Error())
		return
	}
	s.payloadResponse(w, r, s.service.Random(r.Context(), req.Count, req.RequestedBy))
}

// handleOptions lists search candidates for a query.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	var req types.OptionsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, r, HTTPStatus(err), err.Error())
		return
	}
	s.payloadResponse(w, r, s.service.Options(r.Context(), req.Query, req.RequestedBy))
}

// handleHelp lists the commands.
func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	requestedBy := r.URL.Query().Get("requested_by")
	if requestedBy == "" {
		err := &ErrValidation{Field: "requested_by", Message: "is required"}
		s.errorResponse(w, r, HTTPStatus(err), err.Error())
		return
	}
	s.payloadResponse(w, r, s.service.Help(requestedBy))
}

// payloadResponse checks p against the payload schema and writes it, or
// its embed layout when ?format=embed is given. Error payloads are domain
// results and still get 200.
func (s *Server) payloadResponse(w http.ResponseWriter, r *http.Request, p *types.Payload) {
	if err := schemas.ValidatePayload(p); err != nil {
		s.internalError(w, r, &ErrInvalidPayload{Cause: err})
		return
	}

	if r.URL.Query().Get("format") == "embed" {
		embed, err := rendering.BuildEmbed(p)
		if err != nil {
			s.internalError(w, r, err)
			return
		}
		s.jsonResponse(w, r, http.StatusOK, embed)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, p)
}

// internalError logs err and writes a generic 500.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.requestLogger(r).Error("Failed to build response", zap.Error(err))
	s.errorResponse(w, r, HTTPStatus(err), "internal error")
}
