package upload

import (
	"fmt"
	"io"

	"solutiontech-chat/internal/model"
)

// Allowed MIME types at the caller-facing boundary. The processor itself does
// no filtering; the transport layer rejects anything outside this set before
// a blob ever reaches Process.
var allowedTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"video/mp4":       {},
	"application/pdf": {},
}

func AllowedType(mimeType string) bool {
	_, ok := allowedTypes[mimeType]
	return ok
}

// Upload is one incoming blob, decoupled from the transport that carried it.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Processor shapes uploaded blobs into attachment metadata.
type Processor struct {
	store *FileStore
}

func NewProcessor(store *FileStore) *Processor {
	return &Processor{store: store}
}

// Process stores the blob and returns its attachment record with the size
// normalized to kilobytes and the kind resolved from the declared MIME type.
func (p *Processor) Process(u Upload) (model.Attachment, error) {
	path, url, err := p.store.Save(u.Name, u.Reader)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("store attachment failed: %w", err)
	}

	return model.Attachment{
		Name: u.Name,
		Type: u.ContentType,
		Size: FormatSize(u.Size),
		URL:  url,
		Path: path,
		Kind: model.KindFromMIME(u.ContentType),
	}, nil
}

// FormatSize renders a byte count as kilobytes with one decimal, e.g. 2048
// bytes becomes "2.0 KB".
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
}
