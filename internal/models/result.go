package models

// FileInfo is the bookkeeping block attached to every successful result.
// Style and Language are mutually exclusive; which one is set depends on the
// operation and echoes the request parameter unchanged.
type FileInfo struct {
	Path           string `json:"path"`
	DownloadURL    string `json:"download_url"`
	SHA            string `json:"sha"`
	Size           int    `json:"size"`
	FirestoreDocID string `json:"firestore_doc_id"`
	AIProcessed    bool   `json:"ai_processed"`
	Style          string `json:"style,omitempty"`
	Language       string `json:"language,omitempty"`
	PDFProcessing  bool   `json:"pdf_processing"`
}

// ResultEnvelope is the complete JSON object returned to the caller for one
// pipeline operation. FileData is always valid base64 of the output bytes.
type ResultEnvelope struct {
	Success    bool     `json:"success"`
	Filename   string   `json:"filename"`
	FileData   string   `json:"filedata"`
	FileInfo   FileInfo `json:"fileInfo"`
	AIResponse *string  `json:"ai_response"`
	MockMode   bool     `json:"mock_mode"`
}

type StatusResponse struct {
	Status        string `json:"status"`
	AIEnabled     bool   `json:"ai_enabled"`
	MockMode      bool   `json:"mock_mode"`
	HasAPIKey     bool   `json:"has_api_key"`
	PDFProcessing bool   `json:"pdf_processing"`
	Endpoint      string `json:"endpoint"`
}

type VerifyKeyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
