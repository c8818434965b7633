package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"coachdesk/internal/domain/audit"
	"coachdesk/internal/domain/msgtemplate"
)

// BackendTemplateAdmin defines the backend operations needed for template tests.
type BackendTemplateAdmin interface {
	ListMsgTemplates(ctx context.Context) ([]msgtemplate.Template, error)
	SendTestTemplate(ctx context.Context, sid, phone string) error
}

// SendTestTemplateInput identifies the template and the target phone.
type SendTestTemplateInput struct {
	SID        string
	Phone      string
	ActorID    string
	ActorEmail string
	IP         string
}

// SendTestTemplateDeps holds dependencies for SendTestTemplate.
type SendTestTemplateDeps struct {
	Backend BackendTemplateAdmin
	Audit   AuditRecorder
}

var (
	ErrTemplateNotFound    = errors.New("message template not found")
	ErrTemplateNotApproved = errors.New("only approved templates can be test-sent")
)

// ExecuteSendTestTemplate sends a WhatsApp template to a test phone number.
// Only templates WhatsApp has approved can be sent out of session.
// PRE: SID identifies an existing template, Phone is international format
// POST: Backend has queued the test send; audit event recorded
func ExecuteSendTestTemplate(ctx context.Context, input SendTestTemplateInput, deps SendTestTemplateDeps) error {
	phone := NormalizePhone(input.Phone)
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}

	templates, err := deps.Backend.ListMsgTemplates(ctx)
	if err != nil {
		return err
	}
	var tpl *msgtemplate.Template
	for i := range templates {
		if templates[i].SID == input.SID {
			tpl = &templates[i]
			break
		}
	}
	if tpl == nil {
		return ErrTemplateNotFound
	}
	if !tpl.IsApproved() {
		return ErrTemplateNotApproved
	}

	if err := deps.Backend.SendTestTemplate(ctx, input.SID, phone); err != nil {
		return err
	}

	slog.Info("template_event", "event", "test_sent", "sid", input.SID, "template", tpl.Name)

	recordAudit(ctx, deps.Audit, audit.NewEvent(input.ActorID, input.ActorEmail, audit.CategoryTemplate, audit.ActionSendTest).
		WithResource("msg_template", input.SID).
		WithDescription("sent test of "+tpl.Name).
		WithIP(input.IP))

	return nil
}
