package credentials

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"qtbot/core"
	"qtbot/models"
)

// CredentialsRepository is the persistence surface the service needs.
// Satisfied by db.MongoCredentialsRepository.
type CredentialsRepository interface {
	GetCredentialByIdentity(ctx context.Context, key models.CredentialKey) (mo.Option[*models.QiitaCredential], error)
	CreateCredential(ctx context.Context, credential *models.QiitaCredential) (bool, error)
	UpdateCredentialTeam(ctx context.Context, key models.CredentialKey, qiitaTeamURLName string) (bool, error)
}

type CredentialsService struct {
	credentialsRepo CredentialsRepository
}

func NewCredentialsService(repo CredentialsRepository) *CredentialsService {
	return &CredentialsService{credentialsRepo: repo}
}

func (s *CredentialsService) GetCredential(
	ctx context.Context,
	slackTeamID, slackUserID string,
) (mo.Option[*models.QiitaCredential], error) {
	if slackTeamID == "" {
		return mo.None[*models.QiitaCredential](), fmt.Errorf("slack_team_id cannot be empty")
	}
	if slackUserID == "" {
		return mo.None[*models.QiitaCredential](), fmt.Errorf("slack_user_id cannot be empty")
	}

	key := models.CredentialKey{SlackTeamID: slackTeamID, SlackUserID: slackUserID}
	maybeCredential, err := s.credentialsRepo.GetCredentialByIdentity(ctx, key)
	if err != nil {
		return mo.None[*models.QiitaCredential](), fmt.Errorf("failed to get credential: %w", err)
	}

	return maybeCredential, nil
}

func (s *CredentialsService) RegisterCredential(
	ctx context.Context,
	slackTeamID, slackUserID, qiitaAPIToken string,
) (bool, error) {
	log.Printf("📋 Starting to register credential for user: %s in team: %s", slackUserID, slackTeamID)

	if slackTeamID == "" {
		return false, fmt.Errorf("slack_team_id cannot be empty")
	}
	if slackUserID == "" {
		return false, fmt.Errorf("slack_user_id cannot be empty")
	}
	if qiitaAPIToken == "" {
		return false, fmt.Errorf("qiita_api_token cannot be empty")
	}

	credential := &models.QiitaCredential{
		ID:            core.NewID("qc"),
		SlackTeamID:   slackTeamID,
		SlackUserID:   slackUserID,
		QiitaAPIToken: qiitaAPIToken,
	}
	created, err := s.credentialsRepo.CreateCredential(ctx, credential)
	if err != nil {
		return false, fmt.Errorf("failed to register credential: %w", err)
	}

	if created {
		log.Printf("📋 Completed successfully - registered credential with ID: %s", credential.ID)
	} else {
		log.Printf("⚠️ Credential for user %s in team %s was not created (already registered?)", slackUserID, slackTeamID)
	}
	return created, nil
}

func (s *CredentialsService) UpdateTeamSetting(
	ctx context.Context,
	slackTeamID, slackUserID, qiitaTeamURLName string,
) (bool, error) {
	log.Printf("📋 Starting to update team setting for user: %s in team: %s", slackUserID, slackTeamID)

	if slackTeamID == "" {
		return false, fmt.Errorf("slack_team_id cannot be empty")
	}
	if slackUserID == "" {
		return false, fmt.Errorf("slack_user_id cannot be empty")
	}
	if qiitaTeamURLName == "" {
		return false, fmt.Errorf("qiita_team_url_name cannot be empty")
	}

	key := models.CredentialKey{SlackTeamID: slackTeamID, SlackUserID: slackUserID}
	updated, err := s.credentialsRepo.UpdateCredentialTeam(ctx, key, qiitaTeamURLName)
	if err != nil {
		return false, fmt.Errorf("failed to update team setting: %w", err)
	}

	log.Printf("📋 Completed team setting update for user: %s (modified: %t)", slackUserID, updated)
	return updated, nil
}
