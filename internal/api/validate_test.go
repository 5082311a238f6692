package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload_KeepsFilenameAndType(t *testing.T) {
	req := multipartRequest(t, "/upload", "file", "dir/report v2.pdf", "data")

	got, err := ValidateUpload(req)
	require.NoError(t, err)
	defer got.File.Close()

	assert.Equal(t, "report v2.pdf", got.FileName)
	assert.Equal(t, "application/octet-stream", got.ContentType)
}

func TestValidateSend_Message(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"message":"hi","extra":1}`))

	got, err := ValidateSend(req)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Message)
}

func TestValidateSend_TrailingData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"message":"hi"} {}`))

	_, err := ValidateSend(req)
	assert.Equal(t, errJSONRequired, err)
}

func TestValidateSend_TooLarge(t *testing.T) {
	big := `{"message":"` + strings.Repeat("a", maxSendBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(big))

	_, err := ValidateSend(req)
	assert.Equal(t, errJSONRequired, err)
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, 0.0, "", []any{}, map[string]any{}}
	for _, v := range falsy {
		assert.False(t, truthy(v), "%#v", v)
	}

	truthyValues := []any{true, 1.5, "x", []any{"a"}, map[string]any{"k": "v"}}
	for _, v := range truthyValues {
		assert.True(t, truthy(v), "%#v", v)
	}
}
