package handlers

import (
	"errors"
	"net/http"

	"chordcrack/internal/service"
)

// AccountHandler serves the GDPR data export and deletion endpoints
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Export handles GET /api/account/export
func (h *AccountHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	bundle, err := h.accountService.ExportData(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to export data", "Data export error", err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="chordcrack-export.json"`)
	respondJSON(w, http.StatusOK, bundle)
}

// Delete handles DELETE /api/account
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	if err := h.accountService.DeleteAccount(userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to delete account", "Account deletion error", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
