package response

import "github.com/solucioning/fleetforms/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// UploadResult reports the outcome for a single file within an upload batch.
// A batch is not all-or-nothing: stored files stay stored and each failed
// file carries its own reason.
type UploadResult struct {
	OriginalName string              `json:"nombre_original"`
	Stored       bool                `json:"stored"`
	Error        string              `json:"error,omitempty"`
	File         *models.IncidentFile `json:"file,omitempty"`
}
