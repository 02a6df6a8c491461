package archive

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item types. The payload shape is mutually exclusive: an image item carries
// imageUrl, a link item carries linkUrl (+ optional display title/favicon).
const (
	TypeImage = "image"
	TypeLink  = "link"
)

// Item is a persisted scrapbook entry. Exactly one of ImageURL/LinkURL is
// populated according to Type.
type Item struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	LinkURL     string `json:"linkUrl,omitempty"`
	LinkTitle   string `json:"linkTitle,omitempty"`
	LinkFavicon string `json:"linkFavicon,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   int64  `json:"createdAt"` // milliseconds since epoch
}

// Input is the create request body.
type Input struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	LinkURL     string `json:"linkUrl"`
	LinkTitle   string `json:"linkTitle"`
	LinkFavicon string `json:"linkFavicon"`
	Notes       string `json:"notes"`
	CreatedAt   int64  `json:"createdAt"`
}

// Validate checks the type and its required payload field.
func (in *Input) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Type,
			validation.Required.Error("type is required"),
			validation.In(TypeImage, TypeLink).Error("type must be image or link"),
		),
		validation.Field(&in.ImageURL,
			validation.Required.When(in.Type == TypeImage).Error("imageUrl is required for image items"),
		),
		validation.Field(&in.LinkURL,
			validation.Required.When(in.Type == TypeLink).Error("linkUrl is required for link items"),
		),
	)
}

// NewItem builds a record from a create payload, copying only the fields that
// belong to the item's type so the exactly-one-payload invariant holds.
func NewItem(in *Input, now time.Time) *Item {
	item := &Item{
		ID:        in.ID,
		Type:      in.Type,
		Title:     in.Title,
		Notes:     in.Notes,
		CreatedAt: in.CreatedAt,
	}

	switch in.Type {
	case TypeImage:
		item.ImageURL = in.ImageURL
	case TypeLink:
		item.LinkURL = in.LinkURL
		item.LinkTitle = in.LinkTitle
		item.LinkFavicon = in.LinkFavicon
	}

	if item.ID == "" {
		item.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = now.UnixMilli()
	}

	return item
}
