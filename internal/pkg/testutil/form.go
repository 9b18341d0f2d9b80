package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateImageForm builds a multipart body holding a single file field and
// returns the encoded body together with its content type, ready for
// handler tests.
func CreateImageForm(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// CreateFileHeader builds a parsed multipart file header for exercising
// upload services without an HTTP round trip.
func CreateFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", fileName)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := form.RemoveAll(); err != nil {
			t.Logf("failed to remove temporary form files: %v", err)
		}
	})

	fileHeaders := form.File["image"]
	require.Len(t, fileHeaders, 1)

	return fileHeaders[0]
}
