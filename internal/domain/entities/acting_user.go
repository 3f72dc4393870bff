package entities

// Approval checkpoints granted to reviewers.
const (
	CheckpointCommercialApprovalAll       = "PROPOSAL.COMMERCIAL.APPROVAL.ALL"
	CheckpointCommercialApprovalSalesTeam = "PROPOSAL.COMMERCIAL.APPROVAL.SALESTEAM"
)

// ActingUser is the authenticated user performing an operation.
type ActingUser struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Checkpoints []string `json:"checkpoints"`
}

// HasCheckpoint reports whether the user was granted the named checkpoint.
func (u ActingUser) HasCheckpoint(name string) bool {
	for _, c := range u.Checkpoints {
		if c == name {
			return true
		}
	}
	return false
}

// ApprovalCheckpoints are the approval flags derived from a user's checkpoints.
// Both may be true at once.
type ApprovalCheckpoints struct {
	All           bool `json:"all"`
	SalesTeamOnly bool `json:"sales_team_only"`
}
