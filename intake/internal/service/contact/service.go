package contact

import (
	"context"
	"fmt"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

const (
	ackEmailSent   = "Email sent!"
	ackEmailFailed = "Email sending failed."
)

type MailSender interface {
	Send(ctx context.Context, msg model.MailMessage) error
}

// MailRouting selects the relay service and template for contact emails.
type MailRouting struct {
	ServiceID  string
	TemplateID string
}

// ChatRouting points the chat handoff at a provider host and the consultancy's number.
type ChatRouting struct {
	Host  string
	Phone string
}

type service struct {
	mail MailSender
	mr   MailRouting
	cr   ChatRouting
}

func NewContactService(mail MailSender, mr MailRouting, cr ChatRouting) *service {
	return &service{mail: mail, mr: mr, cr: cr}
}

func (svc *service) Topics(_ context.Context) []string {
	return model.ContactTopics()
}

// SendEmail hands the request to the mail relay. Delivery failures are reported in the
// acknowledgement, not as an error; the dialog closes either way.
func (svc *service) SendEmail(ctx context.Context, req model.ContactRequest) (model.Acknowledgement, error) {
	const op = "contact.service.SendEmail"
	log := logger.With(
		logger.String("service", req.Service),
		logger.String("channel", "email"),
	)

	if errs := req.Validate(); len(errs) > 0 {
		log.Info(ctx, "contact request rejected", logger.Int("errors", len(errs)))
		return model.Acknowledgement{}, fmt.Errorf("%s: %w", op, errs)
	}

	err := svc.mail.Send(ctx, model.MailMessage{
		ServiceID:  svc.mr.ServiceID,
		TemplateID: svc.mr.TemplateID,
		Params:     req.TemplateParams(),
	})
	if err != nil {
		log.Error(ctx, "mail relay send", logger.ErrorF(err))
		return model.Acknowledgement{Delivered: false, Message: ackEmailFailed, DialogClosed: true}, nil
	}

	log.Info(ctx, "contact email sent")
	return model.Acknowledgement{Delivered: true, Message: ackEmailSent, DialogClosed: true}, nil
}

// ChatHandoff builds the pre-filled chat link. There is no delivery feedback.
func (svc *service) ChatHandoff(ctx context.Context, req model.ContactRequest) (model.Handoff, error) {
	const op = "contact.service.ChatHandoff"

	if errs := req.Validate(); len(errs) > 0 {
		return model.Handoff{}, fmt.Errorf("%s: %w", op, errs)
	}

	text, err := BuildChatText(req)
	if err != nil {
		logger.Error(ctx, "render chat text", logger.ErrorF(err))
		return model.Handoff{}, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "chat handoff built", logger.String("service", req.Service), logger.String("channel", "whatsapp"))

	return model.Handoff{
		URL:          BuildChatURL(svc.cr.Host, svc.cr.Phone, text),
		DialogClosed: true,
	}, nil
}
