package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"etherlite-site/pkg/content"
	"etherlite-site/pkg/metrics"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/services"
	"etherlite-site/pkg/state"
	"etherlite-site/pkg/views"
)

// Handlers contains all HTTP handlers of the site
type Handlers struct {
	submissionService services.ContactSubmissionService
	metrics           *metrics.Metrics
	siteURL           string
	now               func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.ContactSubmissionService, metrics *metrics.Metrics, siteURL string) *Handlers {
	RegisterValidators()
	return &Handlers{
		submissionService: submissionService,
		metrics:           metrics,
		siteURL:           siteURL,
		now:               time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the page for the toggles found in the query string.
func (h *Handlers) LandingPage(c *gin.Context) {
	data := h.pageData(c)
	if h.metrics != nil {
		h.metrics.IncrementPageViews()
	}
	h.render(c, http.StatusOK, data)
}

// HandleContactForm processes the HTML form. An invalid draft is sent back
// untouched; a valid one is recorded and the visitor is redirected to an empty
// form with the acknowledgment.
func (h *Handlers) HandleContactForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		log.Printf("Error parsing contact form: %v", err)
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	draft := models.ContactFormFromValues(c.Request.PostForm)
	if errs := validateContact(&draft); len(errs) > 0 {
		if h.metrics != nil {
			h.metrics.IncrementContactRejections()
		}
		data := h.pageData(c)
		data.Draft = draft
		data.Errors = errs
		h.render(c, http.StatusUnprocessableEntity, data)
		return
	}

	receipt := h.submissionService.ProcessContactSubmission(draft)
	log.Printf("Contact request %s accepted", receipt.ID)

	done := state.NewView(len(content.FAQs()))
	q := done.Query()
	q.Set(state.QuerySubmitted, "1")
	c.Redirect(http.StatusSeeOther, "/?"+q.Encode()+"#"+content.AnchorContact)
}

// HandleContactAPI is the JSON flavour of the contact form.
func (h *Handlers) HandleContactAPI(c *gin.Context) {
	draft := models.NewContactFormData()

	if err := c.ShouldBindJSON(&draft); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			log.Printf("Error parsing JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
			return
		}
		if h.metrics != nil {
			h.metrics.IncrementContactRejections()
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Missing or invalid fields",
			"fields": fieldErrors(verrs),
		})
		return
	}
	draft.Trim()

	receipt := h.submissionService.ProcessContactSubmission(draft)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": content.Acknowledgment,
		"id":      receipt.ID,
	})
}

func (h *Handlers) pageData(c *gin.Context) views.PageData {
	data := views.NewPageData(h.now().Year())
	data.View = state.ParseView(c.Request.URL.Query(), len(content.FAQs()))
	if h.siteURL != "" {
		data.CanonicalURL = h.siteURL + "/"
	}
	return data
}

func (h *Handlers) render(c *gin.Context, status int, data views.PageData) {
	var buf bytes.Buffer
	if err := views.LandingPage(data).Render(&buf); err != nil {
		log.Printf("Error rendering landing page: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
