package screens

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultMaxUploadBytes = 1 << 20

	// UnsupportedFileMessage is shown inline when an upload is not plain text.
	UnsupportedFileMessage = "Por favor, envie um arquivo .txt ou .md para esta demonstração, ou cole o texto diretamente."
	fileTooLargeMessage    = "Arquivo muito grande. O limite é de %d KB."
)

var (
	ErrUnsupportedFile = errors.New("unsupported resume file")
	ErrFileTooLarge    = errors.New("resume file too large")
)

var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// ReadResumeFile returns the text of an uploaded résumé. Only plain-text and
// markdown files are accepted; the result replaces the résumé field in full.
func ReadResumeFile(name, contentType string, r io.Reader, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	if !declaredText(name, contentType) {
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFile, name, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read resume file: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, maxBytes)
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(data) == 0 {
		return "", nil
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrUnsupportedFile, name)
	}

	if detected := mimetype.Detect(data); !isText(detected) {
		return "", fmt.Errorf("%w: content detected as %s", ErrUnsupportedFile, detected.String())
	}

	return string(data), nil
}

// UploadMessage turns a ReadResumeFile error into the inline message for the form.
func UploadMessage(err error, maxBytes int64) string {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if errors.Is(err, ErrFileTooLarge) {
		return fmt.Sprintf(fileTooLargeMessage, maxBytes/1024)
	}
	return UnsupportedFileMessage
}

func declaredText(name, contentType string) bool {
	if textExtensions[strings.ToLower(filepath.Ext(name))] {
		return true
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return mediaType == "text/plain" || mediaType == "text/markdown"
}

func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
