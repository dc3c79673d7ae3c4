package apod

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/orgball2608/apod-gallery/internal/domain"
)

// CodeBadRequest is the code the archive puts in the body when it declines a range.
const CodeBadRequest = 400

// Result is a decoded archive response. The archive answers a range with an
// array, a single day with a bare object, and a rejected request with an
// object carrying a code; Result keeps all three observable.
type Result struct {
	Records []domain.ImageRecord
	Single  bool
	Code    int
	Message string
}

//go:generate go run go.uber.org/mock/mockgen -source=apod.go -destination=mocks/mock.go

type Client interface {
	FetchRange(ctx context.Context, startDate, endDate string) (*Result, error)
}

// Empty reports whether the result has nothing to show.
func (r *Result) Empty() bool {
	return r == nil || len(r.Records) == 0
}

// Failed reports whether the body carried an error code.
func (r *Result) Failed() bool {
	return r != nil && r.Code != 0
}

func (r *Result) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty body")
	}

	switch trimmed[0] {
	case 'n':
		*r = Result{}
		return nil
	case '[':
		var records []domain.ImageRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return err
		}
		*r = Result{Records: records}
		return nil
	case '{':
		var body struct {
			domain.ImageRecord
			Code int    `json:"code"`
			Msg  string `json:"msg"`
		}
		if err := json.Unmarshal(trimmed, &body); err != nil {
			return err
		}
		if body.Code != 0 {
			*r = Result{Code: body.Code, Message: body.Msg}
			return nil
		}
		*r = Result{Records: []domain.ImageRecord{body.ImageRecord}, Single: true}
		return nil
	default:
		return fmt.Errorf("unexpected body starting with %q", trimmed[0])
	}
}
