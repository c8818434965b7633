package orchestrators

import (
	"context"
	"errors"
	"testing"

	"coachdesk/internal/domain/msgtemplate"
)

// mockTemplateBackend implements BackendTemplateAdmin for testing.
type mockTemplateBackend struct {
	templates []msgtemplate.Template
	sentSID   string
	sentPhone string
}

func (m *mockTemplateBackend) ListMsgTemplates(_ context.Context) ([]msgtemplate.Template, error) {
	return m.templates, nil
}

func (m *mockTemplateBackend) SendTestTemplate(_ context.Context, sid, phone string) error {
	m.sentSID = sid
	m.sentPhone = phone
	return nil
}

func TestSendTestTemplate(t *testing.T) {
	ctx := context.Background()
	be := &mockTemplateBackend{templates: []msgtemplate.Template{
		{SID: "HX001", Name: "weekly_checkin", Status: msgtemplate.StatusApproved},
		{SID: "HX002", Name: "re_awake", Status: msgtemplate.StatusPending},
	}}
	recorder := &mockAuditRecorder{}

	err := ExecuteSendTestTemplate(ctx, SendTestTemplateInput{
		SID:   "HX001",
		Phone: "+27 82 123 4567",
	}, SendTestTemplateDeps{Backend: be, Audit: recorder})
	if err != nil {
		t.Fatalf("ExecuteSendTestTemplate: %v", err)
	}
	if be.sentSID != "HX001" {
		t.Errorf("sent SID = %q, want HX001", be.sentSID)
	}
	if be.sentPhone != "+27821234567" {
		t.Errorf("sent phone = %q, want normalized +27821234567", be.sentPhone)
	}
	if len(recorder.events) != 1 {
		t.Errorf("expected 1 audit event, got %d", len(recorder.events))
	}
}

func TestSendTestTemplateRejectsUnapproved(t *testing.T) {
	ctx := context.Background()
	be := &mockTemplateBackend{templates: []msgtemplate.Template{
		{SID: "HX002", Name: "re_awake", Status: msgtemplate.StatusPending},
	}}

	err := ExecuteSendTestTemplate(ctx, SendTestTemplateInput{
		SID:   "HX002",
		Phone: "+27821234567",
	}, SendTestTemplateDeps{Backend: be})
	if !errors.Is(err, ErrTemplateNotApproved) {
		t.Fatalf("expected ErrTemplateNotApproved, got %v", err)
	}
	if be.sentSID != "" {
		t.Error("nothing should be sent for an unapproved template")
	}
}

func TestSendTestTemplateUnknownSID(t *testing.T) {
	ctx := context.Background()
	be := &mockTemplateBackend{}

	err := ExecuteSendTestTemplate(ctx, SendTestTemplateInput{
		SID:   "HX404",
		Phone: "+27821234567",
	}, SendTestTemplateDeps{Backend: be})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestSendTestTemplateBadPhone(t *testing.T) {
	ctx := context.Background()
	be := &mockTemplateBackend{templates: []msgtemplate.Template{
		{SID: "HX001", Name: "weekly_checkin", Status: msgtemplate.StatusApproved},
	}}

	err := ExecuteSendTestTemplate(ctx, SendTestTemplateInput{
		SID:   "HX001",
		Phone: "0821234567",
	}, SendTestTemplateDeps{Backend: be})
	if !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}
