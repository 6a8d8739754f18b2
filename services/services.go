package services

import (
	"context"

	"github.com/samber/mo"

	"qtbot/models"
)

// CredentialsService defines the interface for Qiita credential operations
type CredentialsService interface {
	// GetCredential looks up the credential linked to a Slack identity.
	// A missing credential is an absent Option, not an error.
	GetCredential(ctx context.Context, slackTeamID, slackUserID string) (mo.Option[*models.QiitaCredential], error)

	// RegisterCredential inserts a new credential for the identity.
	// Returns true only when exactly one record was created; a duplicate
	// identity is reported as false.
	RegisterCredential(ctx context.Context, slackTeamID, slackUserID, qiitaAPIToken string) (bool, error)

	// UpdateTeamSetting merges the selected team into the existing
	// credential. Returns true only when exactly one record was modified.
	UpdateTeamSetting(ctx context.Context, slackTeamID, slackUserID, qiitaTeamURLName string) (bool, error)
}
