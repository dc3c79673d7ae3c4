package modal

import (
	"github.com/orgball2608/apod-gallery/internal/domain"
	"github.com/orgball2608/apod-gallery/pkg/formatter"
)

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Region is the part of the modal a click landed on.
type Region string

const (
	Backdrop     Region = "backdrop"
	Content      Region = "content"
	CloseControl Region = "close"
)

// View is what the modal displays.
type View struct {
	State       State
	ImageSrc    string
	ImageAlt    string
	Title       string
	DateLabel   string
	Explanation string
}

func (v View) Visible() bool {
	return v.State == Visible
}

// Presenter shows the detail of one record at a time.
type Presenter struct {
	view View
}

func New() *Presenter {
	return &Presenter{}
}

// Shown returns a presenter already in the visible state, for handling a
// dismissal of a modal whose content lives in the browser.
func Shown() *Presenter {
	return &Presenter{view: View{State: Visible}}
}

// Open displays rec, replacing whatever was shown.
func (p *Presenter) Open(rec domain.ImageRecord) {
	p.view = View{
		State:       Visible,
		ImageSrc:    formatter.FirstNonEmpty(rec.HDURL, rec.URL),
		ImageAlt:    rec.Title,
		Title:       rec.Title,
		DateLabel:   formatter.DateLabel(rec.Date),
		Explanation: rec.Explanation,
	}
}

func (p *Presenter) Close() {
	p.view = View{State: Hidden}
}

// Click handles a click on region and reports whether the state changed.
// Only the close control and the backdrop itself dismiss the modal.
func (p *Presenter) Click(region Region) bool {
	if p.view.State != Visible {
		return false
	}
	switch region {
	case Backdrop, CloseControl:
		p.Close()
		return true
	default:
		return false
	}
}

func (p *Presenter) State() State {
	return p.view.State
}

func (p *Presenter) View() View {
	return p.view
}
