package api

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etherlite-site/pkg/config"
	"etherlite-site/pkg/metrics"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/services"
)

type fakeSubmissionService struct {
	mu     sync.Mutex
	drafts []models.ContactFormData
}

func (f *fakeSubmissionService) ProcessContactSubmission(data models.ContactFormData) models.ContactReceipt {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, data)
	return models.ContactReceipt{ID: "receipt-1", ReceivedAt: time.Now()}
}

func (f *fakeSubmissionService) processed() []models.ContactFormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ContactFormData(nil), f.drafts...)
}

type testEnv struct {
	router  *gin.Engine
	service *fakeSubmissionService
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{CORSAllowedOrigins: []string{"*"}, MetricsEnabled: true}
	}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := &fakeSubmissionService{}
	h := NewHandlers(svc, m, "https://etherlite.example")
	return &testEnv{router: NewRouter(cfg, h, reg), service: svc, metrics: m}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (e *testEnv) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req)
}

func (e *testEnv) postJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return e.do(req)
}

func completeForm() url.Values {
	return url.Values{
		models.FieldFirstName: {"Ada"},
		models.FieldLastName:  {"Lovelace"},
		models.FieldEmail:     {"ada@example.com"},
		models.FieldCompany:   {"Analytical Engines"},
		models.FieldJobTitle:  {"CTO"},
		models.FieldMessage:   {"We need KYT."},
	}
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLandingPage(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Equal(t, 6, strings.Count(body, `data-testid="feature-card"`))
	assert.Equal(t, 3, strings.Count(body, `data-testid="pricing-card"`))
	assert.Equal(t, 6, strings.Count(body, `data-testid="faq-item"`))
	assert.Contains(t, body, `<link rel="canonical" href="https://etherlite.example/">`)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.PageViews))
}

func TestLandingPageReadsTogglesFromQuery(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/?menu=open&faq=1&faq=5&faq=99")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="mobile-menu"`)
	assert.Equal(t, 2, strings.Count(body, `data-testid="faq-answer"`))
}

func TestContactFormSubmitResetsDraft(t *testing.T) {
	env := newTestEnv(t, nil)
	form := completeForm()
	form.Set(models.FieldSubscribe, "false")

	w := env.postForm("/contact", form)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?submitted=1#contact", w.Header().Get("Location"))

	processed := env.service.processed()
	require.Len(t, processed, 1)
	assert.Equal(t, models.ContactFormData{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   "Analytical Engines",
		JobTitle:  "CTO",
		Message:   "We need KYT.",
		Subscribe: false,
	}, processed[0])

	follow := env.get("/?submitted=1")
	require.Equal(t, http.StatusOK, follow.Code)
	body := follow.Body.String()
	assert.Contains(t, body, "Thank you for your interest! We will contact you shortly.")
	for _, v := range form {
		assert.NotContains(t, body, `value="`+v[0]+`"`)
	}
	assert.NotContains(t, body, "We need KYT.")
	assert.Contains(t, body, `name="subscribe" value="true" checked`)
}

func TestContactFormUncheckedSubscribe(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.postForm("/contact", completeForm())

	require.Equal(t, http.StatusSeeOther, w.Code)
	processed := env.service.processed()
	require.Len(t, processed, 1)
	assert.False(t, processed[0].Subscribe)
}

func TestContactFormMissingRequiredFieldKeepsDraft(t *testing.T) {
	for _, field := range []string{models.FieldFirstName, models.FieldLastName, models.FieldEmail, models.FieldCompany} {
		t.Run(field, func(t *testing.T) {
			env := newTestEnv(t, nil)
			form := completeForm()
			form.Set(field, "   ")
			form.Set(models.FieldSubscribe, "true")

			w := env.postForm("/contact", form)

			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Empty(t, env.service.processed())
			body := w.Body.String()
			assert.Equal(t, 1, strings.Count(body, `data-testid="field-error"`))
			assert.Contains(t, body, "is required")
			for name, v := range form {
				if name == field || name == models.FieldMessage || name == models.FieldSubscribe {
					continue
				}
				assert.Contains(t, body, `value="`+v[0]+`"`, name)
			}
			assert.Contains(t, body, "We need KYT.")
			assert.Contains(t, body, `name="subscribe" value="true" checked`)
			assert.NotContains(t, body, `data-testid="contact-ack"`)
			assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ContactRejections))
		})
	}
}

func TestContactFormInvalidEmail(t *testing.T) {
	env := newTestEnv(t, nil)
	form := completeForm()
	form.Set(models.FieldEmail, "ada-at-example")

	w := env.postForm("/contact", form)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Email Address must be a valid email address")
	assert.Empty(t, env.service.processed())
}

func TestContactFormRejectionKeepsView(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.postForm("/contact?faq=3", url.Values{})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Equal(t, 4, strings.Count(body, `data-testid="field-error"`))
	assert.Equal(t, 1, strings.Count(body, `data-testid="faq-answer"`))
	assert.Contains(t, body, `action="/contact?faq=3"`)
}

func TestContactAPI(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.postJSON("/api/contact", `{
		"firstName": " Ada ",
		"lastName": "Lovelace",
		"email": "ada@example.com",
		"company": "Analytical Engines"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "receipt-1", resp["id"])

	processed := env.service.processed()
	require.Len(t, processed, 1)
	assert.Equal(t, "Ada", processed[0].FirstName)
	assert.True(t, processed[0].Subscribe, "subscribe defaults to true when omitted")
}

func TestContactAPIValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.postJSON("/api/contact", `{"firstName":"  ","lastName":"Lovelace","email":"nope"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{
		models.FieldFirstName: "First Name is required",
		models.FieldEmail:     "Email Address must be a valid email address",
		models.FieldCompany:   "Company is required",
	}, resp.Fields)
	assert.Empty(t, env.service.processed())
}

func TestContactAPIMalformedJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.postJSON("/api/contact", `{"firstName":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON format"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	env.get("/")

	w := env.get("/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "etherlite_page_views_total 1")
}

func TestMetricsEndpointDisabled(t *testing.T) {
	env := newTestEnv(t, &config.Config{CORSAllowedOrigins: []string{"*"}})

	w := env.get("/metrics")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/static/site.css")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scroll-behavior")
}

func TestContactFormWithRealService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	cfg := &config.Config{CORSAllowedOrigins: []string{"*"}, LogFormDrafts: true}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := services.NewContactSubmissionService(m, cfg, log.New(&logs, "", 0))
	router := NewRouter(cfg, NewHandlers(svc, m, ""), reg)

	form := completeForm()
	form.Set(models.FieldSubscribe, "true")
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, logs.String(), `"company":"Analytical Engines"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues("true")))
}
