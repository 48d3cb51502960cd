// Package venueui drives the "delete venue" controls of a rendered page:
// each click sends DELETE /venues/{id} and, once that request settles,
// navigates to the site root whatever the outcome.
package venueui

import (
	"context"
	"net/url"

	"github.com/rs/zerolog/log"
)

const (
	// DeleteSelector matches the delete controls in a page
	DeleteSelector = ".deleteVenueBtn"
	// IDAttribute holds the venue id on a control
	IDAttribute = "data-id"
	// RedirectLocation is where the browser goes after every delete
	RedirectLocation = "/"

	// missingID is what a control without IDAttribute sends, matching the page script
	missingID = "undefined"
)

// Element is the part of a DOM node a control reads
type Element interface {
	Attr(name string) (string, bool)
}

// Attrs is an in-memory Element
type Attrs map[string]string

func (a Attrs) Attr(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Requester issues the DELETE. A non-nil error means the request failed to settle successfully.
type Requester interface {
	Delete(ctx context.Context, path string) error
}

// Navigator moves the page to a new location
type Navigator interface {
	Navigate(ctx context.Context, location string) error
}

// Outcome reports one click once navigation has happened
type Outcome struct {
	VenueID     string
	Path        string
	DeleteErr   error
	NavigateErr error
}

// DeleteHandler holds the controls bound by Bind
type DeleteHandler struct {
	requester Requester
	navigator Navigator
	controls  []*Control
}

// Control is one bound delete button
type Control struct {
	element Element
	handler *DeleteHandler
}

// Bind attaches the delete behavior to elements. The set is fixed at bind time;
// elements found later need their own Bind call.
func Bind(elements []Element, requester Requester, navigator Navigator) *DeleteHandler {
	h := &DeleteHandler{requester: requester, navigator: navigator}
	h.controls = make([]*Control, 0, len(elements))
	for _, el := range elements {
		h.controls = append(h.controls, &Control{element: el, handler: h})
	}
	return h
}

// Controls returns the bound controls in document order
func (h *DeleteHandler) Controls() []*Control {
	return h.controls
}

// VenueID reads the id the control currently carries
func (c *Control) VenueID() string {
	id, ok := c.element.Attr(IDAttribute)
	if !ok {
		return missingID
	}
	return id
}

// DeletePath is the URL path a click on venueID requests
func DeletePath(venueID string) string {
	return "/venues/" + url.PathEscape(venueID)
}

// Click starts the delete without blocking. The returned channel yields one
// Outcome after the request settled and navigation ran, then closes.
// Cancelling ctx may fail the request but never skips navigation.
func (c *Control) Click(ctx context.Context) <-chan Outcome {
	venueID := c.VenueID()
	path := DeletePath(venueID)
	done := make(chan Outcome, 1)

	go func() {
		defer close(done)

		out := Outcome{VenueID: venueID, Path: path}
		out.DeleteErr = c.handler.requester.Delete(ctx, path)
		if out.DeleteErr != nil {
			log.Debug().Err(out.DeleteErr).Str("path", path).Msg("venue delete request failed")
		}

		out.NavigateErr = c.handler.navigator.Navigate(context.WithoutCancel(ctx), RedirectLocation)
		if out.NavigateErr != nil {
			log.Debug().Err(out.NavigateErr).Str("location", RedirectLocation).Msg("navigation after venue delete failed")
		}

		done <- out
	}()

	return done
}
