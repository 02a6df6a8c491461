package artwork

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultPeriod is the placeholder period stored when the caller supplies
// none ("20th century" in Korean, kept verbatim from the gallery's data).
const DefaultPeriod = "20세기"

// DefaultYear is stored when the caller supplies no year.
const DefaultYear = 1900

// Artwork is the persisted gallery record. Absent optional fields are omitted
// from the stored JSON rather than kept as empty strings, so field presence is
// meaningful to the client (it decides whether to render a language tab or an
// image slot).
type Artwork struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleZh       string `json:"titleZh,omitempty"`
	TitleEn       string `json:"titleEn,omitempty"`
	Description   string `json:"description"`
	DescriptionZh string `json:"descriptionZh,omitempty"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	Year          int    `json:"year"`
	YearStart     string `json:"yearStart,omitempty"`
	YearEnd       string `json:"yearEnd,omitempty"`
	Period        string `json:"period,omitempty"`
	Size          string `json:"size,omitempty"`
	ImageURL      string `json:"imageUrl"`
	Image2URL     string `json:"image2Url,omitempty"`
	Image3URL     string `json:"image3Url,omitempty"`
	Image4URL     string `json:"image4Url,omitempty"`
	CertificateURL string `json:"certificateUrl,omitempty"`
	CreatedAt     int64  `json:"createdAt"` // milliseconds since epoch
}

// Input is the request body for both create and update. The two operations
// treat it differently on purpose: create fills defaults for absent optional
// fields, update writes exactly what was sent (full overwrite, no merge).
type Input struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleZh       string `json:"titleZh"`
	TitleEn       string `json:"titleEn"`
	Description   string `json:"description"`
	DescriptionZh string `json:"descriptionZh"`
	DescriptionEn string `json:"descriptionEn"`
	Year          int    `json:"year"`
	YearStart     string `json:"yearStart"`
	YearEnd       string `json:"yearEnd"`
	Period        string `json:"period"`
	Size          string `json:"size"`
	ImageURL      string `json:"imageUrl"`
	Image2URL     string `json:"image2Url"`
	Image3URL     string `json:"image3Url"`
	Image4URL     string `json:"image4Url"`
	CertificateURL string `json:"certificateUrl"`
	CreatedAt     int64  `json:"createdAt"`
}

// Validate enforces the one hard invariant: a persisted record always carries
// its primary image URL.
func (in *Input) Validate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.ImageURL, validation.Required.Error("imageUrl is required")),
	)
}

// NewFromCreate builds a full record from a create payload, filling defaults
// for every absent optional field: localized title/description fall back to
// the primary-language value, period to the fixed placeholder, id to the
// current timestamp.
func NewFromCreate(in *Input, now time.Time) *Artwork {
	a := &Artwork{
		ID:            in.ID,
		Title:         in.Title,
		TitleZh:       in.TitleZh,
		TitleEn:       in.TitleEn,
		Description:   in.Description,
		DescriptionZh: in.DescriptionZh,
		DescriptionEn: in.DescriptionEn,
		Year:          in.Year,
		YearStart:     in.YearStart,
		YearEnd:       in.YearEnd,
		Period:        in.Period,
		Size:          in.Size,
		ImageURL:      in.ImageURL,
		Image2URL:     in.Image2URL,
		Image3URL:     in.Image3URL,
		Image4URL:     in.Image4URL,
		CertificateURL: in.CertificateURL,
		CreatedAt:     now.UnixMilli(),
	}

	if a.ID == "" {
		a.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if a.Title == "" {
		a.Title = "Untitled"
	}
	if a.TitleZh == "" {
		a.TitleZh = a.Title
	}
	if a.TitleEn == "" {
		a.TitleEn = a.Title
	}
	if a.DescriptionZh == "" {
		a.DescriptionZh = a.Description
	}
	if a.DescriptionEn == "" {
		a.DescriptionEn = a.Description
	}
	if a.Year == 0 {
		a.Year = DefaultYear
	}
	if a.YearStart == "" {
		a.YearStart = strconv.Itoa(a.Year)
	}
	if a.YearEnd == "" {
		a.YearEnd = strconv.Itoa(a.Year)
	}
	if a.Period == "" {
		a.Period = DefaultPeriod
	}

	return a
}

// NewFromUpdate builds a record from an update payload using exactly the
// fields supplied: omitted optionals end up absent in the stored JSON, erasing
// whatever the previous record had. The caller is responsible for resending
// the full desired state.
func NewFromUpdate(id string, in *Input, now time.Time) *Artwork {
	a := &Artwork{
		ID:            id,
		Title:         in.Title,
		TitleZh:       in.TitleZh,
		TitleEn:       in.TitleEn,
		Description:   in.Description,
		DescriptionZh: in.DescriptionZh,
		DescriptionEn: in.DescriptionEn,
		Year:          in.Year,
		YearStart:     in.YearStart,
		YearEnd:       in.YearEnd,
		Period:        in.Period,
		Size:          in.Size,
		ImageURL:      in.ImageURL,
		Image2URL:     in.Image2URL,
		Image3URL:     in.Image3URL,
		Image4URL:     in.Image4URL,
		CertificateURL: in.CertificateURL,
		CreatedAt:     in.CreatedAt,
	}

	if a.CreatedAt == 0 {
		a.CreatedAt = now.UnixMilli()
	}

	return a
}

// ImageURLs lists every blob URL the record references, in slot order.
func (a *Artwork) ImageURLs() []string {
	var urls []string
	for _, u := range []string{a.ImageURL, a.Image2URL, a.Image3URL, a.Image4URL, a.CertificateURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
