package api

import (
	"encoding/json"
	"net/http"
	"time"
)

type shareLinkRequest struct {
	Report  string `json:"report"`
	Version string `json:"version"`
	Group   string `json:"group"`
}

type shareLinkResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

const shareTokenTTL = 15 * time.Minute

var shareableReports = map[string]bool{
	"aircraft": true,
	"hardware": true,
	"gateway":  true,
}

// GenerateShareLinkHandler handles POST /api/v1/share
// It mints a single-use token a report consumer can redeem once.
func GenerateShareLinkHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shareLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		if !shareableReports[req.Report] {
			respondWithError(w, http.StatusBadRequest, "Unknown report type")
			return
		}

		token, err := deps.Services.URLSigner.GenerateShareToken(req.Report, req.Version, req.Group, shareTokenTTL)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to generate share token")
			return
		}

		respondWithSuccess(w, http.StatusOK, &shareLinkResponse{
			Token:     token,
			ExpiresAt: time.Now().Add(shareTokenTTL),
		})
	}
}
