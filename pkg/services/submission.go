package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"etherlite-site/pkg/config"
	"etherlite-site/pkg/metrics"
	"etherlite-site/pkg/models"
	"etherlite-site/pkg/utils"
)

// ContactSubmissionService defines the interface for handling contact requests
type ContactSubmissionService interface {
	ProcessContactSubmission(data models.ContactFormData) models.ContactReceipt
}

type contactSubmissionServiceImpl struct {
	metrics *metrics.Metrics
	config  *config.Config
	logger  *log.Logger
	now     func() time.Time
}

// NewContactSubmissionService creates a new submission service
func NewContactSubmissionService(
	metrics *metrics.Metrics,
	config *config.Config,
	logger *log.Logger,
) ContactSubmissionService {
	if logger == nil {
		logger = log.Default()
	}
	return &contactSubmissionServiceImpl{
		metrics: metrics,
		config:  config,
		logger:  logger,
		now:     time.Now,
	}
}

// ProcessContactSubmission records an already validated draft. There is no
// sales backend: the request ends up in the log and the metrics only.
func (s *contactSubmissionServiceImpl) ProcessContactSubmission(data models.ContactFormData) models.ContactReceipt {
	receipt := models.ContactReceipt{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
	}

	if s.config != nil && s.config.LogFormDrafts {
		payload, err := json.Marshal(data)
		if err != nil {
			s.logger.Printf("Error encoding contact form %s: %v", receipt.ID, err)
		} else {
			s.logger.Printf("Contact form submitted (%s): %s", receipt.ID, payload)
		}
	} else {
		s.logger.Printf("Contact form submitted (%s): company=%q email_hash=%s subscribe=%v",
			receipt.ID, data.Company, utils.HashEmail(data.Email), data.Subscribe)
	}

	if s.metrics != nil {
		s.metrics.IncrementContactSubmissions(data.Subscribe)
	}

	return receipt
}
