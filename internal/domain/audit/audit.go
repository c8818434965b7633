package audit

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the area of the console an audit event belongs to.
type Category string

const (
	CategoryUser     Category = "user"
	CategoryContent  Category = "content"
	CategoryPrompt   Category = "prompt"
	CategoryTemplate Category = "template"
	CategorySecurity Category = "security"
	CategorySystem   Category = "system"
)

// Action represents what the operator did.
type Action string

const (
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionStatusChange Action = "status_change"
	ActionPromote      Action = "promote"
	ActionSendTest     Action = "send_test"
	ActionLogin        Action = "login"
	ActionLogout       Action = "logout"
)

// Event is a single admin-console audit entry. Events record who changed
// what through the console; backend-initiated changes are not visible here.
type Event struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Category     Category  `json:"category"`
	Action       Action    `json:"action"`
	ActorID      string    `json:"actor_id"`
	ActorEmail   string    `json:"actor_email"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	Description  string    `json:"description"`
	IPAddress    string    `json:"ip_address"`
}

// NewEvent creates an audit event with a fresh ID and the current timestamp.
// PRE: actorID is non-empty
// POST: Returns an Event ready to be stored
func NewEvent(actorID, actorEmail string, category Category, action Action) Event {
	return Event{
		ID:         uuid.New().String(),
		Timestamp:  time.Now(),
		Category:   category,
		Action:     action,
		ActorID:    actorID,
		ActorEmail: actorEmail,
	}
}

// WithResource sets the affected resource.
func (e Event) WithResource(resourceType, resourceID string) Event {
	e.ResourceType = resourceType
	e.ResourceID = resourceID
	return e
}

// WithDescription sets the human-readable summary shown in the audit page.
func (e Event) WithDescription(desc string) Event {
	e.Description = desc
	return e
}

// WithIP records the operator's address.
func (e Event) WithIP(ip string) Event {
	e.IPAddress = ip
	return e
}
