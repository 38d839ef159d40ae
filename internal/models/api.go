package models

import "encoding/json"

// PipelineRequest is the body of POST /pipeline. Company defaults to
// "the company"; resume text may be supplied inline or via a previously
// uploaded resume document.
type PipelineRequest struct {
	JobTitle         string `json:"job_title" validate:"required"`
	Company          string `json:"company"`
	JDText           string `json:"jd_text" validate:"required"`
	ResumeText       string `json:"resume_text"`
	ResumeDocumentID string `json:"resume_document_id"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	Characters   int    `json:"characters"`
	Pages        int    `json:"pages"`
}

// RunResponse is the persisted-run view returned by GET /runs/:id.
type RunResponse struct {
	ID           string          `json:"id"`
	JobTitle     string          `json:"job_title"`
	Company      string          `json:"company"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	DurationMS   int64           `json:"duration_ms"`
}
