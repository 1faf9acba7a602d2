package schema

// Attachment carries media sent along with a message
type Attachment struct {
	ImageURLs []string `json:"image_url,omitempty"`
}

// HasImages reports whether any image is attached
func (a *Attachment) HasImages() bool {
	return a != nil && len(a.ImageURLs) > 0
}

// Base is embedded by input schemas to let them carry an attachment
type Base struct {
	attachment *Attachment `json:"-"`
}

func (r Base) Attachment() *Attachment {
	return r.attachment
}

func (r *Base) SetAttachment(v *Attachment) {
	r.attachment = v
}
