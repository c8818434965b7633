package projections

import (
	"context"

	"coachdesk/internal/adapters/backend"
	domainKb "coachdesk/internal/domain/kbsnippet"
	domainKr "coachdesk/internal/domain/kr"
	domainLibrary "coachdesk/internal/domain/library"
	domainMsg "coachdesk/internal/domain/msgtemplate"
	domainPrompt "coachdesk/internal/domain/prompttemplate"
	domainReport "coachdesk/internal/domain/report"
	domainScript "coachdesk/internal/domain/scriptrun"
	domainTouchpoint "coachdesk/internal/domain/touchpoint"
	domainUser "coachdesk/internal/domain/user"
)

// BackendUsers is the backend read surface for user projections.
type BackendUsers interface {
	ListUsers(ctx context.Context, q backend.ListUsersQuery) (backend.UserPage, error)
	GetUser(ctx context.Context, id string) (domainUser.User, error)
	ListUserKRs(ctx context.Context, id string) ([]domainKr.KeyResult, error)
	ListUserTouchpoints(ctx context.Context, id string) ([]domainTouchpoint.Touchpoint, error)
}

// BackendContent is the backend read surface for content projections.
type BackendContent interface {
	ListKbSnippets(ctx context.Context) ([]domainKb.Snippet, error)
	GetKbSnippet(ctx context.Context, slug string) (domainKb.Snippet, error)
	ListLibrary(ctx context.Context) ([]domainLibrary.Content, error)
	GetLibraryContent(ctx context.Context, slug string) (domainLibrary.Content, error)
}

// BackendPrompts is the backend read surface for prompt projections.
type BackendPrompts interface {
	ListPromptTemplates(ctx context.Context) ([]domainPrompt.Template, error)
	ListPromptVersions(ctx context.Context, templateID string) ([]domainPrompt.Version, error)
}

// BackendTemplates is the backend read surface for message template projections.
type BackendTemplates interface {
	ListMsgTemplates(ctx context.Context) ([]domainMsg.Template, error)
}

// BackendOps is the backend read surface for operational projections.
type BackendOps interface {
	ListScriptRuns(ctx context.Context, limit int) ([]domainScript.Run, error)
	GetUsageReport(ctx context.Context, period string) (domainReport.Usage, error)
}

// BackendCoaching is the session-scoped backend surface used by the
// end-user dashboard projections. All calls carry the member's token.
type BackendCoaching interface {
	Me(ctx context.Context, token string) (domainUser.User, error)
	ListMyKRs(ctx context.Context, token string) ([]domainKr.KeyResult, error)
	GetMyKR(ctx context.Context, token, id string) (domainKr.KeyResult, error)
	ListMyTouchpoints(ctx context.Context, token string) ([]domainTouchpoint.Touchpoint, error)
	ListPublishedLibrary(ctx context.Context, token string) ([]domainLibrary.Content, error)
	GetPublishedLibraryContent(ctx context.Context, token, slug string) (domainLibrary.Content, error)
}
