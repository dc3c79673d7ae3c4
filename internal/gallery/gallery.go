package gallery

import (
	"encoding/json"

	"github.com/orgball2608/apod-gallery/internal/apod"
	"github.com/orgball2608/apod-gallery/internal/domain"
	"github.com/orgball2608/apod-gallery/internal/metrics"
	"github.com/orgball2608/apod-gallery/pkg/logger"
	"go.uber.org/fx"
)

type Placeholder struct {
	Icon    string
	Message string
}

var (
	NoResults = Placeholder{Icon: "🚫", Message: "Sorry, no images found for this date range."}
	Loading   = Placeholder{Icon: "🔄", Message: "Loading space photos…"}
	Intro     = Placeholder{Icon: "🔭", Message: "Select a date range and press Get Space Images to explore the cosmos!"}
)

// Card is one gallery entry.
type Card struct {
	MediaType   domain.MediaType
	Title       string
	Date        string
	Explanation string
	URL         string

	// ModalVals is the JSON form of the record posted when an image card is
	// clicked. Empty for videos.
	ModalVals string
}

func (c Card) IsImage() bool {
	return c.MediaType == domain.MediaTypeImage
}

// View is the full gallery content: a placeholder or a list of cards, never both.
type View struct {
	Placeholder *Placeholder
	Cards       []Card
}

// Show wraps a placeholder into a view.
func Show(p Placeholder) View {
	return View{Placeholder: &p}
}

type Opts struct {
	fx.In

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

type Renderer struct {
	logger  logger.Logger
	metrics *metrics.Metrics
}

func New(opts Opts) *Renderer {
	return &Renderer{
		logger:  opts.Logger.WithComponent("GalleryRenderer"),
		metrics: opts.Metrics,
	}
}

// Render turns a fetch result into the gallery content. A nil result stands
// for any fetch failure.
func (r *Renderer) Render(result *apod.Result) View {
	switch {
	case result == nil:
		return r.placeholder("no_result")
	case result.Failed():
		r.logger.Info("Archive returned an error payload", "code", result.Code, "msg", result.Message)
		return r.placeholder("upstream_error")
	case result.Empty():
		return r.placeholder("empty")
	}

	cards := make([]Card, 0, len(result.Records))
	for _, rec := range result.Records {
		card, ok := r.card(rec)
		r.metrics.CardsRendered.WithLabelValues(mediaLabel(rec.MediaType, ok)).Inc()
		if !ok {
			r.logger.Warn("Skipping record with unsupported media type",
				"date", rec.Date,
				"title", rec.Title,
				"media_type", string(rec.MediaType))
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return r.placeholder("unsupported_media")
	}
	return View{Cards: cards}
}

func (r *Renderer) placeholder(reason string) View {
	r.metrics.PlaceholdersRendered.WithLabelValues(reason).Inc()
	return Show(NoResults)
}

func (r *Renderer) card(rec domain.ImageRecord) (Card, bool) {
	card := Card{
		MediaType:   rec.MediaType,
		Title:       rec.Title,
		Date:        rec.Date,
		Explanation: rec.Explanation,
		URL:         rec.URL,
	}

	switch {
	case rec.IsImage():
		vals, err := json.Marshal(ModalForm{
			Title:       rec.Title,
			Date:        rec.Date,
			Explanation: rec.Explanation,
			MediaType:   string(rec.MediaType),
			URL:         rec.URL,
			HDURL:       rec.HDURL,
		})
		if err != nil {
			r.logger.Error("Failed to encode modal values", "date", rec.Date, "error", err)
			return Card{}, false
		}
		card.ModalVals = string(vals)
		return card, true
	case rec.IsVideo():
		return card, true
	default:
		return Card{}, false
	}
}

func mediaLabel(mt domain.MediaType, supported bool) string {
	if !supported {
		return "unsupported"
	}
	return string(mt)
}
