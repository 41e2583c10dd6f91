package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownField is returned by Set for names that are not part of the contact form.
var ErrUnknownField = errors.New("unknown contact form field")

// Form field names, shared by the HTML inputs and the JSON payload.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldCompany   = "company"
	FieldJobTitle  = "jobTitle"
	FieldMessage   = "message"
	FieldSubscribe = "subscribe"
)

// Represents the data structure coming from the contact form
type ContactFormData struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required,notblank"`
	LastName  string `json:"lastName" form:"lastName" binding:"required,notblank"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Company   string `json:"company" form:"company" binding:"required,notblank"`
	JobTitle  string `json:"jobTitle" form:"jobTitle"`
	Message   string `json:"message" form:"message"`
	Subscribe bool   `json:"subscribe" form:"subscribe"`
}

// NewContactFormData returns the draft a visitor sees before typing anything.
func NewContactFormData() ContactFormData {
	return ContactFormData{Subscribe: true}
}

// ContactFormFromValues builds a draft from a posted HTML form. A browser omits
// unchecked checkboxes, so the draft starts unsubscribed and only an explicit
// subscribe value turns it back on.
func ContactFormFromValues(values url.Values) ContactFormData {
	data := NewContactFormData()
	data.Subscribe = false
	for name, vals := range values {
		if len(vals) == 0 {
			continue
		}
		// Ignore anything the form does not render.
		_ = data.Set(name, vals[len(vals)-1])
	}
	return data
}

// Set updates a single field by its form name, the way a keystroke or checkbox
// change would.
func (d *ContactFormData) Set(field, value string) error {
	switch field {
	case FieldFirstName:
		d.FirstName = strings.TrimSpace(value)
	case FieldLastName:
		d.LastName = strings.TrimSpace(value)
	case FieldEmail:
		d.Email = strings.TrimSpace(value)
	case FieldCompany:
		d.Company = strings.TrimSpace(value)
	case FieldJobTitle:
		d.JobTitle = strings.TrimSpace(value)
	case FieldMessage:
		d.Message = strings.TrimSpace(value)
	case FieldSubscribe:
		on, err := parseCheckbox(value)
		if err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
		d.Subscribe = on
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Reset discards the draft.
func (d *ContactFormData) Reset() {
	*d = NewContactFormData()
}

// Trim removes surrounding whitespace from every text field.
func (d *ContactFormData) Trim() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Company = strings.TrimSpace(d.Company)
	d.JobTitle = strings.TrimSpace(d.JobTitle)
	d.Message = strings.TrimSpace(d.Message)
}

func parseCheckbox(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "":
		return true, nil
	}
	return strconv.ParseBool(value)
}

// ContactReceipt acknowledges a processed submission
type ContactReceipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}
