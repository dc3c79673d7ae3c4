package gallery

import (
	"net/url"

	"github.com/orgball2608/apod-gallery/internal/domain"
)

// ModalForm is the record payload an image card sends when clicked.
type ModalForm struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
}

// ParseModalForm reads the record back from submitted form values.
func ParseModalForm(values url.Values) domain.ImageRecord {
	return domain.ImageRecord{
		Title:       values.Get("title"),
		Date:        values.Get("date"),
		Explanation: values.Get("explanation"),
		MediaType:   domain.MediaType(values.Get("media_type")),
		URL:         values.Get("url"),
		HDURL:       values.Get("hdurl"),
	}
}
