package credentials

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"qtbot/models"
)

// MockCredentialsService is a mock implementation of the services.CredentialsService interface
type MockCredentialsService struct {
	mock.Mock
}

func (m *MockCredentialsService) GetCredential(
	ctx context.Context,
	slackTeamID, slackUserID string,
) (mo.Option[*models.QiitaCredential], error) {
	args := m.Called(ctx, slackTeamID, slackUserID)
	return args.Get(0).(mo.Option[*models.QiitaCredential]), args.Error(1)
}

func (m *MockCredentialsService) RegisterCredential(
	ctx context.Context,
	slackTeamID, slackUserID, qiitaAPIToken string,
) (bool, error) {
	args := m.Called(ctx, slackTeamID, slackUserID, qiitaAPIToken)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialsService) UpdateTeamSetting(
	ctx context.Context,
	slackTeamID, slackUserID, qiitaTeamURLName string,
) (bool, error) {
	args := m.Called(ctx, slackTeamID, slackUserID, qiitaTeamURLName)
	return args.Bool(0), args.Error(1)
}

// MockCredentialsRepository is a mock implementation of the CredentialsRepository interface
type MockCredentialsRepository struct {
	mock.Mock
}

func (m *MockCredentialsRepository) GetCredentialByIdentity(
	ctx context.Context,
	key models.CredentialKey,
) (mo.Option[*models.QiitaCredential], error) {
	args := m.Called(ctx, key)
	return args.Get(0).(mo.Option[*models.QiitaCredential]), args.Error(1)
}

func (m *MockCredentialsRepository) CreateCredential(
	ctx context.Context,
	credential *models.QiitaCredential,
) (bool, error) {
	args := m.Called(ctx, credential)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialsRepository) UpdateCredentialTeam(
	ctx context.Context,
	key models.CredentialKey,
	qiitaTeamURLName string,
) (bool, error) {
	args := m.Called(ctx, key, qiitaTeamURLName)
	return args.Bool(0), args.Error(1)
}
