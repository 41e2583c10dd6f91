// Package state holds the per-visitor toggles of the landing page. Nothing here
// is stored on the server: a View is decoded from the request URL, and every
// toggle link carries the next View back in its query string.
package state

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Query keys understood by ParseView.
const (
	QueryMenu      = "menu"
	QueryFAQ       = "faq"
	QuerySubmitted = "submitted"

	menuOpenValue = "open"
)

var ErrFAQIndexOutOfRange = errors.New("faq index out of range")

// MenuToggle is the open/closed flag of the mobile navigation panel.
type MenuToggle struct {
	open bool
}

func (m *MenuToggle) Toggle() { m.open = !m.open }

func (m *MenuToggle) Close() { m.open = false }

func (m MenuToggle) Open() bool { return m.open }

// FAQDisclosure keeps one expanded flag per FAQ item. Items are independent:
// opening one never closes another.
type FAQDisclosure struct {
	expanded []bool
}

// NewFAQDisclosure returns n collapsed items.
func NewFAQDisclosure(n int) FAQDisclosure {
	if n < 0 {
		n = 0
	}
	return FAQDisclosure{expanded: make([]bool, n)}
}

func (d FAQDisclosure) Len() int { return len(d.expanded) }

// Expanded reports whether item i is open. Out-of-range items are closed.
func (d FAQDisclosure) Expanded(i int) bool {
	return i >= 0 && i < len(d.expanded) && d.expanded[i]
}

// Toggle flips item i.
func (d *FAQDisclosure) Toggle(i int) error {
	if i < 0 || i >= len(d.expanded) {
		return fmt.Errorf("%w: %d of %d", ErrFAQIndexOutOfRange, i, len(d.expanded))
	}
	d.expanded[i] = !d.expanded[i]
	return nil
}

// OpenItems lists the expanded indices in ascending order.
func (d FAQDisclosure) OpenItems() []int {
	var open []int
	for i, e := range d.expanded {
		if e {
			open = append(open, i)
		}
	}
	return open
}

// Clone returns a copy that does not share flags with d.
func (d FAQDisclosure) Clone() FAQDisclosure {
	c := FAQDisclosure{expanded: make([]bool, len(d.expanded))}
	copy(c.expanded, d.expanded)
	return c
}

// View is everything the page needs to know about one visitor's toggles.
type View struct {
	Menu      MenuToggle
	FAQ       FAQDisclosure
	Submitted bool
}

// NewView is the state of a freshly loaded page.
func NewView(faqCount int) View {
	return View{FAQ: NewFAQDisclosure(faqCount)}
}

// ParseView decodes a View from query values. Unknown values and FAQ indices
// that do not exist are ignored.
func ParseView(q url.Values, faqCount int) View {
	v := NewView(faqCount)
	if q.Get(QueryMenu) == menuOpenValue {
		v.Menu.Toggle()
	}
	for _, raw := range q[QueryFAQ] {
		i, err := strconv.Atoi(raw)
		if err != nil || v.FAQ.Expanded(i) {
			continue
		}
		_ = v.FAQ.Toggle(i)
	}
	v.Submitted = q.Get(QuerySubmitted) == "1"
	return v
}

// Query encodes the toggles. The one-shot Submitted flag is never carried over
// so that toggling anything after a submit drops the acknowledgment.
func (v View) Query() url.Values {
	q := url.Values{}
	if v.Menu.Open() {
		q.Set(QueryMenu, menuOpenValue)
	}
	open := v.FAQ.OpenItems()
	sort.Ints(open)
	for _, i := range open {
		q.Add(QueryFAQ, strconv.Itoa(i))
	}
	return q
}

// Href links to this view, optionally scrolled to an anchor.
func (v View) Href(anchor string) string {
	href := "/"
	if enc := v.Query().Encode(); enc != "" {
		href += "?" + enc
	}
	if anchor != "" {
		href += "#" + anchor
	}
	return href
}

// WithMenuToggled returns a copy of v with the mobile menu flipped.
func (v View) WithMenuToggled() View {
	next := v.clone()
	next.Menu.Toggle()
	return next
}

// WithMenuClosed returns a copy of v with the mobile menu closed.
func (v View) WithMenuClosed() View {
	next := v.clone()
	next.Menu.Close()
	return next
}

// WithFAQToggled returns a copy of v with item i flipped. Out-of-range items
// leave the copy unchanged.
func (v View) WithFAQToggled(i int) View {
	next := v.clone()
	_ = next.FAQ.Toggle(i)
	return next
}

func (v View) clone() View {
	return View{Menu: v.Menu, FAQ: v.FAQ.Clone()}
}
