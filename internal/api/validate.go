package api

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

const (
	uploadField  = "file"
	maxSendBytes = 1 << 20
)

var (
	errFileRequired    = ValidationFailed{Message: "file is required"}
	errJSONRequired    = ValidationFailed{Message: "JSON body required"}
	errMessageRequired = ValidationFailed{Message: "'message' field is required"}
	errMessageType     = ValidationFailed{Message: "'message' must be a string"}
)

type UploadRequest struct {
	FileName    string
	ContentType string
	File        multipart.File
}

type SendRequest struct {
	Message string
}

// ValidateUpload extracts the "file" part of a multipart request. The
// caller owns the returned File and must close it.
func ValidateUpload(r *http.Request) (UploadRequest, error) {
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return UploadRequest{}, errFileRequired
	}

	if header.Filename == "" {
		file.Close()
		return UploadRequest{}, errFileRequired
	}

	return UploadRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
	}, nil
}

// ValidateSend decodes a JSON object body and requires a truthy string
// "message" field.
func ValidateSend(r *http.Request) (SendRequest, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSendBytes+1))
	if err != nil || len(raw) > maxSendBytes {
		return SendRequest{}, errJSONRequired
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		return SendRequest{}, errJSONRequired
	}

	msg, ok := body["message"]
	if !ok || !truthy(msg) {
		return SendRequest{}, errMessageRequired
	}

	s, ok := msg.(string)
	if !ok {
		return SendRequest{}, errMessageType
	}

	return SendRequest{Message: s}, nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
