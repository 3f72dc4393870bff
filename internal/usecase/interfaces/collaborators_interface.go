package interfaces

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
)

// IPersonService persists person data before it is linked to a proposal.
type IPersonService interface {
	SaveOrUpdate(ctx context.Context, p entities.Person, user entities.ActingUser) (entities.Person, error)
	GetByID(ctx context.Context, id string) (entities.Person, error)
}

// ISellerService resolves sellers and sales-team membership for approval scoping.
type ISellerService interface {
	GetByID(ctx context.Context, id string) (entities.Seller, error)
	GetBySalesTeam(ctx context.Context, salesTeamID string) ([]entities.Seller, error)
	GetByUser(ctx context.Context, userID string) (entities.Seller, error)
}

// IChannelService resolves the sales channel of a proposal.
type IChannelService interface {
	GetByID(ctx context.Context, id string) (entities.Channel, error)
}

// IConfigurationProvider supplies business configuration values by key.
// An unknown key yields an empty string and no error.
type IConfigurationProvider interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// IAuditSink records the serialized snapshot of an aggregate after an operation.
type IAuditSink interface {
	Record(ctx context.Context, snapshot []byte, entity, entityID string, operation entities.AuditOperation, user entities.ActingUser) error
}

// IIssueTracker opens a follow-up issue for the back office (e.g. Jira).
type IIssueTracker interface {
	CreateIssue(ctx context.Context, title string, fields map[string]string, requester entities.ActingUser) (externalKey string, err error)
}

// IApprovalRuleSet decides whether the acting user may move a proposal into
// target given its approval view. A denial must be returned as a business
// rule violation.
type IApprovalRuleSet interface {
	Authorize(ctx context.Context, view entities.ProposalApproval, checkpoints entities.ApprovalCheckpoints, target, previous entities.ProposalStatus, user entities.ActingUser) error
}
