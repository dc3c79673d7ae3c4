package daterange

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/orgball2608/apod-gallery/pkg/errors"
)

const (
	Layout = "2006-01-02"

	// SpanDays is the length of the default window, both ends included.
	SpanDays = 9
)

// ArchiveStart is the first day the archive has an entry for.
var ArchiveStart = time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)

type Range struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

type Bounds struct {
	Min string
	Max string
}

type Picker struct {
	loc      *time.Location
	now      func() time.Time
	validate *validator.Validate
}

func New(loc *time.Location) *Picker {
	if loc == nil {
		loc = time.UTC
	}
	return &Picker{
		loc:      loc,
		now:      time.Now,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// WithClock replaces the time source. Used by tests.
func (p *Picker) WithClock(now func() time.Time) *Picker {
	p.now = now
	return p
}

func (p *Picker) today() time.Time {
	y, m, d := p.now().In(p.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p *Picker) Today() string {
	return p.today().Format(Layout)
}

func (p *Picker) Bounds() Bounds {
	return Bounds{Min: ArchiveStart.Format(Layout), Max: p.Today()}
}

// Default is the window shown on first load: the last SpanDays days up to today.
func (p *Picker) Default() Range {
	today := p.today()
	return Range{
		Start: today.AddDate(0, 0, -(SpanDays - 1)).Format(Layout),
		End:   today.Format(Layout),
	}
}

// EndFor derives the end of a window starting at start, capped at today. An
// unparsable start yields today.
func (p *Picker) EndFor(start string) string {
	today := p.today()
	s, err := time.Parse(Layout, start)
	if err != nil {
		return today.Format(Layout)
	}
	end := s.AddDate(0, 0, SpanDays-1)
	if end.After(today) {
		end = today
	}
	return end.Format(Layout)
}

// Validate checks format, archive bounds and ordering. Errors wrap
// errors.ErrInvalidRange.
func (p *Picker) Validate(r Range) error {
	if err := p.validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRange, err)
	}

	start, _ := time.Parse(Layout, r.Start)
	end, _ := time.Parse(Layout, r.End)
	today := p.today()

	switch {
	case start.Before(ArchiveStart):
		return fmt.Errorf("%w: start %s is before %s", apperrors.ErrInvalidRange, r.Start, ArchiveStart.Format(Layout))
	case end.After(today):
		return fmt.Errorf("%w: end %s is after today %s", apperrors.ErrInvalidRange, r.End, today.Format(Layout))
	case start.After(end):
		return fmt.Errorf("%w: start %s is after end %s", apperrors.ErrInvalidRange, r.Start, r.End)
	}
	return nil
}
