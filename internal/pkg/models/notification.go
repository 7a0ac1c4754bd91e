package models

// Notification variants
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a transient, user-visible message describing the outcome
// of an operation
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// NewInfo builds a non-destructive notification
func NewInfo(title, description string) *Notification {
	return &Notification{Title: title, Description: description, Variant: VariantDefault}
}

// NewAlert builds a destructive notification
func NewAlert(title, description string) *Notification {
	return &Notification{Title: title, Description: description, Variant: VariantDestructive}
}
