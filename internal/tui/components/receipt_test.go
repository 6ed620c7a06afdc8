package components

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerview/internal/tui/themes"
)

func TestReceiptUploadWithoutSelection(t *testing.T) {
	backend := &stubBackend{}
	m := NewReceiptModel(backend, themes.Default)

	m, cmd := m.Update(keyMsg("u"))
	assert.Nil(t, cmd)
	assert.True(t, m.isError)
	assert.Equal(t, msgSelectFile, m.message)
	assert.EqualValues(t, 0, backend.uploadCalls.Load())
}

func TestReceiptUploadSendsFileAndClearsSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.png")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0o644))

	var gotName string
	var gotBody []byte
	backend := &stubBackend{
		uploadFn: func(_ context.Context, filename string, file io.Reader) (string, error) {
			gotName = filename
			body, err := io.ReadAll(file)
			require.NoError(t, err)
			gotBody = body
			return "Receipt processed successfully. Transaction created.", nil
		},
	}
	m := NewReceiptModel(backend, themes.Default)
	m.selected = path

	m, cmd := m.Update(keyMsg("u"))
	require.NotNil(t, cmd)
	assert.True(t, m.uploading)

	msg := findMsg[receiptUploadedMsg](t, cmd())
	m, _ = m.Update(msg)

	assert.Equal(t, "receipt.png", gotName)
	assert.Equal(t, []byte("fake image bytes"), gotBody)
	assert.False(t, m.uploading)
	assert.False(t, m.isError)
	assert.Equal(t, "Receipt processed successfully. Transaction created.", m.message)
	assert.Empty(t, m.selected, "selection is cleared after a successful upload")
}

func TestReceiptUploadFailureKeepsSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "receipt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	backend := &stubBackend{
		uploadFn: func(context.Context, string, io.Reader) (string, error) {
			return "", errors.New("Failed to process the receipt.")
		},
	}
	m := NewReceiptModel(backend, themes.Default)
	m.selected = path

	m, cmd := m.Update(keyMsg("u"))
	require.NotNil(t, cmd)
	msg := findMsg[receiptUploadedMsg](t, cmd())
	m, _ = m.Update(msg)

	assert.True(t, m.isError)
	assert.Equal(t, "Failed to process the receipt.", m.message)
	assert.Equal(t, path, m.selected, "selection survives a failed upload")
}

func TestReceiptUploadIgnoredWhileUploading(t *testing.T) {
	backend := &stubBackend{}
	m := NewReceiptModel(backend, themes.Default)
	m.selected = "/tmp/whatever.png"
	m.uploading = true

	_, cmd := m.Update(keyMsg("u"))
	assert.Nil(t, cmd)
	assert.EqualValues(t, 0, backend.uploadCalls.Load())
}

func TestReceiptOpenResetsState(t *testing.T) {
	m := NewReceiptModel(&stubBackend{}, themes.Default)
	m.selected = "/tmp/old.png"
	m.message = "stale"
	m.isError = true

	m, _ = m.Open()
	assert.Empty(t, m.selected)
	assert.Empty(t, m.message)
	assert.False(t, m.isError)
}
