package model

import "strings"

type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentDocument AttachmentKind = "document"
	AttachmentOther    AttachmentKind = "other"
)

// Attachment is the stored metadata for one uploaded file. Kind is resolved
// once at ingestion so read sites never branch on the raw MIME type.
type Attachment struct {
	Name string         `json:"name"`
	Type string         `json:"type"`
	Size string         `json:"size"`
	URL  string         `json:"url"`
	Path string         `json:"path"`
	Kind AttachmentKind `json:"kind"`
}

func KindFromMIME(mimeType string) AttachmentKind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return AttachmentImage
	case strings.HasPrefix(mimeType, "video/"):
		return AttachmentVideo
	case mimeType == "application/pdf":
		return AttachmentDocument
	default:
		return AttachmentOther
	}
}
