package testutil

import (
	"bytes"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateForm builds a parsed multipart form with one file per entry under field.
func CreateForm(t *testing.T, field string, files map[string][]byte) *multipart.Form {
	t.Helper()

	body, contentType := encodeMultipart(t, field, files)
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)

	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File:  make(map[string][]*multipart.FileHeader),
		Value: make(map[string][]string),
	}
}

// NewMultipartRequest builds a request carrying files under field.
func NewMultipartRequest(t *testing.T, method, target, field string, files map[string][]byte) *http.Request {
	t.Helper()

	body, contentType := encodeMultipart(t, field, files)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func encodeMultipart(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for filename, content := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
