package archive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantErr string
	}{
		{
			name:    "missing type",
			in:      Input{ImageURL: "http://cdn/archive/a.jpg"},
			wantErr: "type is required",
		},
		{
			name:    "unknown type",
			in:      Input{Type: "video"},
			wantErr: "type must be image or link",
		},
		{
			name:    "image without imageUrl",
			in:      Input{Type: TypeImage},
			wantErr: "imageUrl is required for image items",
		},
		{
			name:    "link without linkUrl",
			in:      Input{Type: TypeLink},
			wantErr: "linkUrl is required for link items",
		},
		{
			name: "valid image",
			in:   Input{Type: TypeImage, ImageURL: "http://cdn/archive/a.jpg"},
		},
		{
			name: "valid link",
			in:   Input{Type: TypeLink, LinkURL: "https://example.com/article"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewItemCopiesOnlyTypeFields(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	// An image payload that also smuggles link fields: only the image side
	// survives, keeping the exactly-one-payload invariant.
	img := NewItem(&Input{
		Type:      TypeImage,
		ImageURL:  "http://cdn/archive/a.jpg",
		LinkURL:   "https://example.com",
		LinkTitle: "should be dropped",
	}, now)

	assert.Equal(t, "http://cdn/archive/a.jpg", img.ImageURL)
	assert.Empty(t, img.LinkURL)
	assert.Empty(t, img.LinkTitle)
	assert.Equal(t, "1700000000000", img.ID)
	assert.Equal(t, int64(1700000000000), img.CreatedAt)

	link := NewItem(&Input{
		Type:        TypeLink,
		LinkURL:     "https://example.com",
		LinkTitle:   "Example",
		LinkFavicon: "https://example.com/favicon.ico",
		ImageURL:    "http://cdn/archive/sneaky.jpg",
	}, now)

	assert.Empty(t, link.ImageURL)
	assert.Equal(t, "https://example.com", link.LinkURL)
	assert.Equal(t, "Example", link.LinkTitle)
	assert.Equal(t, "https://example.com/favicon.ico", link.LinkFavicon)
}
