package handlers

// ChatResponse is the reply of the chat widget endpoint
type ChatResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// UploadResponse is the reply the rich text editor expects
type UploadResponse struct {
	Uploaded bool   `json:"uploaded"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

var (
	// Predefined responses
	ChatOKResponse            = ChatResponse{Status: "success"}
	ChatMissingFieldsResponse = ChatResponse{"error", "All fields are required"}
	ChatBadRequestResponse    = ChatResponse{"error", "Invalid request body"}
	ChatBadMethodResponse     = ChatResponse{"error", "Invalid request method"}
	ChatDBErrorResponse       = ChatResponse{"error", "Your message could not be saved, please try again later"}

	UploadUnsupportedResponse = UploadResponse{Error: "Unsupported file type."}
	UploadNoFileResponse      = UploadResponse{Error: "No file was uploaded."}
	UploadTooLargeResponse    = UploadResponse{Error: "File is too large."}
	UploadDeniedResponse      = UploadResponse{Error: "Authentication required."}
	UploadFailedResponse      = UploadResponse{Error: "Upload failed."}
)
