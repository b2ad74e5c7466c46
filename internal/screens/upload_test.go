package screens

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResumeFileAcceptsText(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		body        string
	}{
		{name: "txt", filename: "cv.txt", contentType: "text/plain; charset=utf-8", body: "Maria Souza\nDesenvolvedora Go"},
		{name: "markdown by extension", filename: "cv.md", contentType: "application/octet-stream", body: "# Maria\n\n- Go\n- SQL"},
		{name: "plain content type", filename: "cv", contentType: "text/plain", body: "Experiência: 5 anos"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, err := ReadResumeFile(tc.filename, tc.contentType, strings.NewReader(tc.body), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.body, text)
		})
	}
}

func TestReadResumeFileStripsBOM(t *testing.T) {
	text, err := ReadResumeFile("cv.txt", "", strings.NewReader("\xef\xbb\xbfOlá"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Olá", text)
}

func TestReadResumeFileEmpty(t *testing.T) {
	text, err := ReadResumeFile("cv.txt", "text/plain", strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestReadResumeFileRejectsNonText(t *testing.T) {
	_, err := ReadResumeFile("cv.pdf", "application/pdf", strings.NewReader("%PDF-1.4"), 0)
	require.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Equal(t, UnsupportedFileMessage, UploadMessage(err, 0))

	// A binary renamed to .txt is still rejected.
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	_, err = ReadResumeFile("cv.txt", "text/plain", bytes.NewReader(png), 0)
	require.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestReadResumeFileRejectsNonUTF8(t *testing.T) {
	latin1 := []byte("Jos\xe9 Concei\xe7\xe3o\nDesenvolvedor Go")

	_, err := ReadResumeFile("cv.txt", "text/plain", bytes.NewReader(latin1), 0)
	require.ErrorIs(t, err, ErrUnsupportedFile)
	assert.Equal(t, UnsupportedFileMessage, UploadMessage(err, 0))
}

func TestReadResumeFileTooLarge(t *testing.T) {
	_, err := ReadResumeFile("cv.txt", "text/plain", strings.NewReader(strings.Repeat("a", 2049)), 2048)
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, "Arquivo muito grande. O limite é de 2 KB.", UploadMessage(err, 2048))

	text, err := ReadResumeFile("cv.txt", "text/plain", strings.NewReader(strings.Repeat("a", 2048)), 2048)
	require.NoError(t, err)
	assert.Len(t, text, 2048)
}
