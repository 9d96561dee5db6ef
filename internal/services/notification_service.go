package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/summitretail/pos-api/internal/db"
)

// NotificationService sends review-queue emails to managers when a discount
// escalation is opened. When no API key is configured the service stays
// constructible and every send is a logged no-op.
type NotificationService struct {
	client        *resend.Client
	fromEmail     string
	fromName      string
	reviewerEmail string
	enabled       bool
	logger        *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(apiKey, fromEmail, fromName, reviewerEmail string, logger *zap.Logger) *NotificationService {
	enabled := apiKey != "" && reviewerEmail != ""
	if !enabled {
		logger.Warn("Escalation email notifications disabled",
			zap.Bool("api_key_set", apiKey != ""),
			zap.Bool("reviewer_email_set", reviewerEmail != ""))
	}

	return &NotificationService{
		client:        resend.NewClient(apiKey),
		fromEmail:     fromEmail,
		fromName:      fromName,
		reviewerEmail: reviewerEmail,
		enabled:       enabled,
		logger:        logger,
	}
}

// EscalationOpened notifies the review queue that a new escalation is pending.
// productName and employeeName are display strings; empty values fall back to ids.
func (s *NotificationService) EscalationOpened(ctx context.Context, esc db.DiscountEscalation, productName, employeeName string) error {
	if !s.enabled {
		return nil
	}

	if productName == "" {
		productName = esc.ProductID.String()
	}
	if employeeName == "" {
		employeeName = esc.EmployeeID.String()
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	subject := fmt.Sprintf("Discount escalation pending: %.1f%% on %s", esc.RequestedPct, productName)
	html := fmt.Sprintf(
		"<p><strong>%s</strong> requested a <strong>%.1f%%</strong> discount on <strong>%s</strong>.</p>"+
			"<p>Reason: %s</p>"+
			"<p>Margin after discount: %.1f%%<br>Commission impact: $%.2f</p>"+
			"<p>Escalation ID: %s</p>",
		employeeName, esc.RequestedPct, productName,
		esc.Reason,
		esc.MarginAfterPct, float64(esc.CommissionImpactCents)/100,
		esc.ID.String(),
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{s.reviewerEmail},
		Subject: subject,
		Html:    html,
		Tags: []resend.Tag{
			{Name: "category", Value: "discount_escalation"},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("Failed to send escalation notification",
			zap.Error(err),
			zap.String("escalation_id", esc.ID.String()))
		return fmt.Errorf("failed to send escalation notification: %w", err)
	}

	s.logger.Info("Escalation notification sent",
		zap.String("email_id", sent.Id),
		zap.String("escalation_id", esc.ID.String()))

	return nil
}
