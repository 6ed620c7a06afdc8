package components

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ledgerview/internal/tui/themes"
)

const (
	msgSelectFile     = "Please select a file to upload."
	msgBadFileType    = "Only image and PDF files are supported."
	msgUploadFallback = "Failed to process the receipt."
)

type receiptUploadedMsg struct {
	message string
	err     error
}

// ReceiptModel is the receipt scanner: pick a file, upload it, and let the
// backend extract a transaction from it.
type ReceiptModel struct {
	backend Backend
	theme   themes.Theme
	spinner spinner.Model
	picker  filepicker.Model

	selected  string
	uploading bool
	message   string
	isError   bool

	width  int
	height int
}

// NewReceiptModel creates the receipt component.
func NewReceiptModel(backend Backend, theme themes.Theme) ReceiptModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Subtitle

	picker := filepicker.New()
	picker.AllowedTypes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".pdf"}
	picker.CurrentDirectory, _ = os.UserHomeDir()
	if picker.CurrentDirectory == "" {
		picker.CurrentDirectory = "."
	}

	return ReceiptModel{
		backend: backend,
		theme:   theme,
		spinner: sp,
		picker:  picker,
	}
}

// Open resets the selection and messages and starts the file picker.
func (m ReceiptModel) Open() (ReceiptModel, tea.Cmd) {
	m.selected = ""
	m.message = ""
	m.isError = false
	m.uploading = false
	return m, m.picker.Init()
}

// Update handles messages for the receipt scanner.
func (m ReceiptModel) Update(msg tea.Msg) (ReceiptModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "u" {
			return m.upload()
		}

	case receiptUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			m.message = msg.err.Error()
			if m.message == "" {
				m.message = msgUploadFallback
			}
			m.isError = true
			// keep the selection so the upload can be retried
			return m, nil
		}
		m.message = msg.message
		m.isError = false
		m.selected = ""
		return m, nil

	case spinner.TickMsg:
		if m.uploading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.uploading {
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if selected, path := m.picker.DidSelectFile(msg); selected {
		m.selected = path
		m.message = ""
		m.isError = false
	}
	if disabled, _ := m.picker.DidSelectDisabledFile(msg); disabled {
		m.message = msgBadFileType
		m.isError = true
	}
	return m, cmd
}

func (m ReceiptModel) upload() (ReceiptModel, tea.Cmd) {
	if m.uploading {
		return m, nil
	}
	if m.selected == "" {
		m.message = msgSelectFile
		m.isError = true
		return m, nil
	}

	m.uploading = true
	m.message = ""
	m.isError = false
	backend := m.backend
	path := m.selected
	return m, tea.Batch(
		func() tea.Msg {
			file, err := os.Open(path)
			if err != nil {
				return receiptUploadedMsg{err: err}
			}
			defer file.Close()

			ctx, cancel := fetchContext()
			defer cancel()
			message, err := backend.UploadReceipt(ctx, filepath.Base(path), file)
			return receiptUploadedMsg{message: message, err: err}
		},
		m.spinner.Tick,
	)
}

// SetSize updates the layout bounds.
func (m ReceiptModel) SetSize(width, height int) ReceiptModel {
	m.width = width
	m.height = height
	m.picker.Height = max(height-12, 5)
	return m
}

// View renders the receipt scanner.
func (m ReceiptModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Scan Receipt"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Upload a receipt and a transaction is created from it automatically"))
	b.WriteString("\n\n")

	b.WriteString(m.picker.View())
	b.WriteString("\n")

	if m.selected != "" {
		b.WriteString(m.theme.Bold.Render("Selected: "))
		b.WriteString(filepath.Base(m.selected))
		b.WriteString("\n")
	}

	if m.uploading {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Faint.Render(" Processing receipt..."))
		b.WriteString("\n")
	} else if m.message != "" {
		style := m.theme.StatusSuccess
		if m.isError {
			style = m.theme.StatusError
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("enter select  •  u upload  •  esc back"))
	return b.String()
}
