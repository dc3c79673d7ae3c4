package gallery

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/orgball2608/apod-gallery/internal/apod"
	"github.com/orgball2608/apod-gallery/internal/domain"
	"github.com/orgball2608/apod-gallery/internal/metrics"
	"github.com/orgball2608/apod-gallery/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer() (*Renderer, *metrics.Metrics) {
	m := metrics.New(metrics.NewRegistry())
	return New(Opts{Logger: logger.NewNop(), Metrics: m}), m
}

func mixedRecords() []domain.ImageRecord {
	return []domain.ImageRecord{
		{Date: "2024-01-01", Title: "Video One", Explanation: "v", MediaType: domain.MediaTypeVideo, URL: "https://www.youtube.com/embed/x"},
		{Date: "2024-01-02", Title: "Image Two", Explanation: "i", MediaType: domain.MediaTypeImage, URL: "https://apod.example/2.jpg", HDURL: "https://apod.example/2hd.jpg"},
		{Date: "2024-01-03", Title: "Video Three", Explanation: "w", MediaType: domain.MediaTypeVideo, URL: "https://vimeo.com/3"},
	}
}

func TestRender_PlaceholderCases(t *testing.T) {
	r, m := newRenderer()

	cases := map[string]*apod.Result{
		"no_result":      nil,
		"empty":          {Records: []domain.ImageRecord{}},
		"upstream_error": {Code: apod.CodeBadRequest, Message: "bad date"},
	}

	for reason, result := range cases {
		v := r.Render(result)
		require.NotNil(t, v.Placeholder, reason)
		assert.Equal(t, NoResults, *v.Placeholder, reason)
		assert.Empty(t, v.Cards, reason)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.PlaceholdersRendered.WithLabelValues(reason)), reason)
	}
}

func TestRender_OneCardPerRecordInOrder(t *testing.T) {
	r, m := newRenderer()

	v := r.Render(&apod.Result{Records: mixedRecords()})

	assert.Nil(t, v.Placeholder)
	require.Len(t, v.Cards, 3)
	assert.Equal(t, "Video One", v.Cards[0].Title)
	assert.Equal(t, "Image Two", v.Cards[1].Title)
	assert.Equal(t, "Video Three", v.Cards[2].Title)

	assert.True(t, v.Cards[1].IsImage())
	assert.False(t, v.Cards[0].IsImage())
	assert.Empty(t, v.Cards[0].ModalVals, "videos are not bound to the modal")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CardsRendered.WithLabelValues("video")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CardsRendered.WithLabelValues("image")))
}

func TestRender_ImageCardCarriesModalValues(t *testing.T) {
	r, _ := newRenderer()

	v := r.Render(&apod.Result{Records: mixedRecords()[1:2]})
	require.Len(t, v.Cards, 1)

	var form ModalForm
	require.NoError(t, json.Unmarshal([]byte(v.Cards[0].ModalVals), &form))
	assert.Equal(t, ModalForm{
		Title:       "Image Two",
		Date:        "2024-01-02",
		Explanation: "i",
		MediaType:   "image",
		URL:         "https://apod.example/2.jpg",
		HDURL:       "https://apod.example/2hd.jpg",
	}, form)
}

func TestRender_SingleRecordResult(t *testing.T) {
	r, _ := newRenderer()

	v := r.Render(&apod.Result{Records: mixedRecords()[1:2], Single: true})
	assert.Len(t, v.Cards, 1)
}

func TestRender_UnsupportedMediaSkipped(t *testing.T) {
	r, m := newRenderer()

	records := append(mixedRecords(), domain.ImageRecord{Date: "2024-01-04", Title: "Other", MediaType: "other"})
	v := r.Render(&apod.Result{Records: records})

	assert.Len(t, v.Cards, 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CardsRendered.WithLabelValues("unsupported")))
}

func TestRender_OnlyUnsupportedMediaShowsPlaceholder(t *testing.T) {
	r, _ := newRenderer()

	v := r.Render(&apod.Result{Records: []domain.ImageRecord{{Title: "Other", MediaType: "other"}}})
	require.NotNil(t, v.Placeholder)
	assert.Equal(t, NoResults, *v.Placeholder)
}

func TestParseModalForm(t *testing.T) {
	values := url.Values{
		"title":       {"Image Two"},
		"date":        {"2024-01-02"},
		"explanation": {"i"},
		"media_type":  {"image"},
		"url":         {"https://apod.example/2.jpg"},
	}

	rec := ParseModalForm(values)
	assert.Equal(t, domain.MediaTypeImage, rec.MediaType)
	assert.Equal(t, "Image Two", rec.Title)
	assert.Empty(t, rec.HDURL)
}
