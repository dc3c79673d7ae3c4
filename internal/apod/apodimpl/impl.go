package apodimpl

import (
	"net/http"

	"github.com/orgball2608/apod-gallery/internal/apod"
	"github.com/orgball2608/apod-gallery/internal/metrics"
	"github.com/orgball2608/apod-gallery/pkg/config"
	"github.com/orgball2608/apod-gallery/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Metrics    *metrics.Metrics
	HTTPClient *http.Client `optional:"true"`
}

type APODImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// New creates the archive client. The HTTP client carries no timeout: a fetch
// only ends early when the caller's context is cancelled.
func New(opts Opts) *APODImpl {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &APODImpl{
		baseURL:    opts.Config.APOD.BaseURL,
		apiKey:     opts.Config.APOD.APIKey,
		httpClient: httpClient,
		logger:     opts.Logger.WithComponent("ArchiveClient"),
		metrics:    opts.Metrics,
	}
}

var _ apod.Client = (*APODImpl)(nil)
