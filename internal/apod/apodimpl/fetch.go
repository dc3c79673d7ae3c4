package apodimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/orgball2608/apod-gallery/internal/apod"
	apperrors "github.com/orgball2608/apod-gallery/pkg/errors"
	"github.com/orgball2608/apod-gallery/pkg/logger"
)

// FetchRange requests every archive entry between startDate and endDate.
// Dates are passed through as given; validating them is the caller's job.
func (a *APODImpl) FetchRange(ctx context.Context, startDate, endDate string) (result *apod.Result, err error) {
	start := time.Now()
	defer func() {
		a.metrics.FetchDuration.Observe(time.Since(start).Seconds())
		a.metrics.FetchTotal.WithLabelValues(apperrors.Kind(err)).Inc()
	}()

	reqURL, err := a.rangeURL(startDate, endDate)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrTransport, err), "failed to build archive url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrTransport, err), "failed to create archive request")
	}
	req.Header.Set("Accept", "application/json")

	a.logger.Debug("Fetching archive range", "start_date", startDate, "end_date", endDate)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrTransport, redact(err)), "failed to fetch archive range")
	}
	defer safeClose(resp.Body, a.logger)

	var decoded apod.Result
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrDecode, err), "failed to decode archive response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		code := decoded.Code
		if code == 0 {
			code = resp.StatusCode
		}
		return nil, apperrors.WrapWithCode(
			fmt.Errorf("%w: status %d: %s", apperrors.ErrUpstream, resp.StatusCode, decoded.Message),
			strconv.Itoa(code),
			"archive rejected range",
		)
	}

	a.logger.Info("Fetched archive range",
		"start_date", startDate,
		"end_date", endDate,
		"records", len(decoded.Records),
		"single", decoded.Single,
		"code", decoded.Code)
	return &decoded, nil
}

func (a *APODImpl) rangeURL(startDate, endDate string) (string, error) {
	u, err := url.Parse(a.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("api_key", a.apiKey)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redact drops the request URL from transport errors so the api key never
// reaches logs.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// safeClose safely closes an io.ReadCloser and logs any errors
func safeClose(closer io.ReadCloser, logger logger.Logger) {
	if err := closer.Close(); err != nil {
		logger.Error("Error closing response body", "error", err)
	}
}
