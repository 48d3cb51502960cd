package venueui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder fakes both sides of a click and logs the order of events
type recorder struct {
	mu        sync.Mutex
	events    []string
	deleteErr error
	release   chan struct{} // when set, Delete waits for it
}

func (r *recorder) Delete(ctx context.Context, path string) error {
	if r.release != nil {
		<-r.release
	}
	r.log("DELETE " + path)
	return r.deleteErr
}

func (r *recorder) Navigate(ctx context.Context, location string) error {
	r.log("GO " + location)
	return nil
}

func (r *recorder) log(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func wait(t *testing.T, ch <-chan Outcome) Outcome {
	t.Helper()
	select {
	case out, ok := <-ch:
		require.True(t, ok, "outcome channel closed without a value")
		_, more := <-ch
		assert.False(t, more, "outcome channel should close after one value")
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("click did not settle")
		return Outcome{}
	}
}

func TestClickDeletesThenNavigates(t *testing.T) {
	rec := &recorder{}
	h := Bind([]Element{Attrs{IDAttribute: "42"}}, rec, rec)
	require.Len(t, h.Controls(), 1)

	out := wait(t, h.Controls()[0].Click(context.Background()))

	assert.Equal(t, "42", out.VenueID)
	assert.Equal(t, "/venues/42", out.Path)
	assert.NoError(t, out.DeleteErr)
	assert.NoError(t, out.NavigateErr)
	assert.Equal(t, []string{"DELETE /venues/42", "GO /"}, rec.snapshot())
}

func TestClickNavigatesWhenDeleteFails(t *testing.T) {
	rec := &recorder{deleteErr: errors.New("connection refused")}
	h := Bind([]Element{Attrs{IDAttribute: "7"}}, rec, rec)

	out := wait(t, h.Controls()[0].Click(context.Background()))

	assert.EqualError(t, out.DeleteErr, "connection refused")
	assert.Equal(t, []string{"DELETE /venues/7", "GO /"}, rec.snapshot())
}

func TestNavigationWaitsForSettlement(t *testing.T) {
	rec := &recorder{release: make(chan struct{})}
	h := Bind([]Element{Attrs{IDAttribute: "9"}}, rec, rec)

	done := h.Controls()[0].Click(context.Background())

	// Click returned without blocking and nothing has happened yet
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	close(rec.release)
	wait(t, done)
	assert.Equal(t, []string{"DELETE /venues/9", "GO /"}, rec.snapshot())
}

func TestCancelledContextStillNavigates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nav := &ctxCheckingNavigator{}
	rec := &recorder{deleteErr: context.Canceled}
	h := Bind([]Element{Attrs{IDAttribute: "3"}}, rec, nav)

	out := wait(t, h.Controls()[0].Click(ctx))
	assert.ErrorIs(t, out.DeleteErr, context.Canceled)
	assert.NoError(t, out.NavigateErr)
	assert.True(t, nav.called)
}

type ctxCheckingNavigator struct{ called bool }

func (n *ctxCheckingNavigator) Navigate(ctx context.Context, location string) error {
	n.called = true
	return ctx.Err()
}

func TestMissingIDRequestsUndefined(t *testing.T) {
	rec := &recorder{}
	h := Bind([]Element{Attrs{"class": "deleteVenueBtn"}}, rec, rec)

	out := wait(t, h.Controls()[0].Click(context.Background()))
	assert.Equal(t, "undefined", out.VenueID)
	assert.Equal(t, "/venues/undefined", out.Path)
}

func TestIDIsReadAtClickTime(t *testing.T) {
	rec := &recorder{}
	el := Attrs{IDAttribute: "old"}
	h := Bind([]Element{el}, rec, rec)

	el[IDAttribute] = "new"
	out := wait(t, h.Controls()[0].Click(context.Background()))
	assert.Equal(t, "/venues/new", out.Path)
}

func TestIDIsPathEscaped(t *testing.T) {
	assert.Equal(t, "/venues/a%2Fb%20c", DeletePath("a/b c"))
	assert.Equal(t, "/venues/5f0c1d2e-0000-4000-8000-000000000001", DeletePath("5f0c1d2e-0000-4000-8000-000000000001"))
}

func TestDoubleClickSendsTwoRequests(t *testing.T) {
	rec := &recorder{}
	h := Bind([]Element{Attrs{IDAttribute: "11"}}, rec, rec)
	ctl := h.Controls()[0]

	first := ctl.Click(context.Background())
	second := ctl.Click(context.Background())
	wait(t, first)
	wait(t, second)

	events := rec.snapshot()
	assert.Len(t, events, 4)
	deletes, navs := 0, 0
	for _, e := range events {
		switch e {
		case "DELETE /venues/11":
			deletes++
		case "GO /":
			navs++
		}
	}
	assert.Equal(t, 2, deletes)
	assert.Equal(t, 2, navs)
}

const venuePage = `<html><body>
<h1>The Musical Hop</h1>
<button class="btn deleteVenueBtn" data-id="v-1">Delete</button>
<a class="deleteVenueBtn" data-id="v-2">Delete</a>
<button class="editVenueBtn" data-id="v-3">Edit</button>
<div id="later"></div>
</body></html>`

func TestFindDeleteControls(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(venuePage))
	require.NoError(t, err)

	elements := FindDeleteControls(doc)
	require.Len(t, elements, 2)

	id, ok := elements[0].Attr(IDAttribute)
	assert.True(t, ok)
	assert.Equal(t, "v-1", id)
	id, _ = elements[1].Attr(IDAttribute)
	assert.Equal(t, "v-2", id)
}

func TestBindingIsStatic(t *testing.T) {
	rec := &recorder{}
	h, doc, err := BindDocument(strings.NewReader(venuePage), rec, rec)
	require.NoError(t, err)
	require.Len(t, h.Controls(), 2)

	doc.Find("#later").AppendHtml(`<button class="deleteVenueBtn" data-id="v-9">Delete</button>`)
	assert.Len(t, FindDeleteControls(doc), 3)
	assert.Len(t, h.Controls(), 2, "controls added after Bind stay unbound")

	for _, c := range h.Controls() {
		wait(t, c.Click(context.Background()))
	}
	for _, e := range rec.snapshot() {
		assert.NotContains(t, e, "v-9")
	}
}

func TestBindEmpty(t *testing.T) {
	rec := &recorder{}
	h := Bind(nil, rec, rec)
	assert.Empty(t, h.Controls())
}
