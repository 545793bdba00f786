package export

// SuccessMessage is returned with every generated document.
const SuccessMessage = "Document generated successfully. Use the base64 content to provide a download link."

// ExportResponse is the body of a successful POST /export/docx.
type ExportResponse struct {
	FileName   string `json:"file_name"`
	FileBase64 string `json:"file_base64"`
	MimeType   string `json:"mime_type"`
	Message    string `json:"message"`
}
