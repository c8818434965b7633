package backend

import (
	"context"
	"net/http"
	"net/url"

	"coachdesk/internal/domain/msgtemplate"
)

// ListMsgTemplates fetches the Twilio WhatsApp templates known to the
// backend, including approval status.
func (c *Client) ListMsgTemplates(ctx context.Context) ([]msgtemplate.Template, error) {
	var templates []msgtemplate.Template
	err := c.doJSON(ctx, "templates_list", http.MethodGet, "/api/v1/messaging/templates", authAdmin, "", nil, &templates)
	return templates, err
}

// SendTestTemplate asks the backend to deliver a template to a test phone
// number. Delivery itself is Twilio's business.
// PRE: sid identifies an approved template
// POST: Backend has queued the send
func (c *Client) SendTestTemplate(ctx context.Context, sid, phone string) error {
	body := map[string]string{"phone": phone}
	path := "/api/v1/messaging/templates/" + url.PathEscape(sid) + "/test"
	return c.doJSON(ctx, "templates_test", http.MethodPost, path, authAdmin, "", body, nil)
}
