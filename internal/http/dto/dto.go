package dto

import "time"

type (
	// LinkCreateRequest - тело POST /api/links
	LinkCreateRequest struct {
		URL   string `json:"url"`
		Label string `json:"label,omitempty"`
	}

	LinkCreateResponse struct {
		Code     string `json:"code"`
		ShortURL string `json:"short_url"`
	}

	LinkResponse struct {
		Code        string    `json:"code"`
		Destination string    `json:"destination"`
		Label       string    `json:"label,omitempty"`
		ShortURL    string    `json:"short_url"`
		CreatedAt   time.Time `json:"created_at"`
	}

	SubmissionFieldResponse struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	SubmissionResponse struct {
		ID         string                    `json:"id"`
		Code       string                    `json:"code"`
		Label      *string                   `json:"label"` // null если ссылка удалена
		Fields     []SubmissionFieldResponse `json:"fields"`
		RecordedAt time.Time                 `json:"recorded_at"`
	}
)
