package domain

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ImageRecord is one day's entry of the picture archive, as received.
type ImageRecord struct {
	Date         string    `json:"date"`
	Title        string    `json:"title"`
	Explanation  string    `json:"explanation"`
	MediaType    MediaType `json:"media_type"`
	URL          string    `json:"url"`
	HDURL        string    `json:"hdurl,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Copyright    string    `json:"copyright,omitempty"`
}

func (r ImageRecord) IsImage() bool {
	return r.MediaType == MediaTypeImage
}

func (r ImageRecord) IsVideo() bool {
	return r.MediaType == MediaTypeVideo
}
