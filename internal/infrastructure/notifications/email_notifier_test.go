package notifications

import (
	"context"
	"errors"
	"testing"

	"notesbytes_settlement/internal/domain/entities"
	mock_interfaces "notesbytes_settlement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, m...)
	return nil
}

func payoutTemplate() entities.EmailTemplate {
	return entities.EmailTemplate{
		Key:     entities.TemplateKeySellerPayout,
		Subject: "Payout of {{amount}} sent",
		Body:    "<p>Hi {{seller_name}}, payout {{payout_id}} for order {{order_id}} is on its way.</p>",
		Active:  true,
	}
}

func TestEmailNotifier_Send(t *testing.T) {
	t.Run("renders and sends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIEmailTemplateRepository(ctrl)
		sender := &captureSender{}
		n := NewEmailNotifier(templates, sender, "no-reply@test.local")

		templates.EXPECT().GetByKey(gomock.Any(), entities.TemplateKeySellerPayout).Return(payoutTemplate(), nil)

		err := n.Send(context.Background(), "asha@example.com", entities.TemplateKeySellerPayout, map[string]string{
			"seller_name": "Asha",
			"amount":      "499.50 INR",
			"payout_id":   "pout_1",
			"order_id":    "ord-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected one message, got %d", len(sender.sent))
		}
		subject := sender.sent[0].GetHeader("Subject")
		if len(subject) != 1 || subject[0] != "Payout of 499.50 INR sent" {
			t.Fatalf("unexpected subject: %v", subject)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIEmailTemplateRepository(ctrl)
		n := NewEmailNotifier(templates, &captureSender{}, "no-reply@test.local")

		templates.EXPECT().GetByKey(gomock.Any(), "NOPE").Return(entities.EmailTemplate{}, nil)

		if err := n.Send(context.Background(), "x@test.local", "NOPE", nil); !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("inactive template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIEmailTemplateRepository(ctrl)
		n := NewEmailNotifier(templates, &captureSender{}, "no-reply@test.local")

		tpl := payoutTemplate()
		tpl.Active = false
		templates.EXPECT().GetByKey(gomock.Any(), entities.TemplateKeySellerPayout).Return(tpl, nil)

		if err := n.Send(context.Background(), "x@test.local", entities.TemplateKeySellerPayout, nil); !errors.Is(err, ErrTemplateInactive) {
			t.Fatalf("expected ErrTemplateInactive, got %v", err)
		}
	})

	t.Run("smtp failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIEmailTemplateRepository(ctrl)
		n := NewEmailNotifier(templates, &captureSender{err: errors.New("connection refused")}, "no-reply@test.local")

		templates.EXPECT().GetByKey(gomock.Any(), entities.TemplateKeySellerPayout).Return(payoutTemplate(), nil)

		if err := n.Send(context.Background(), "x@test.local", entities.TemplateKeySellerPayout, nil); err == nil {
			t.Fatalf("expected delivery error")
		}
	})
}
