package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qtbot/core"
	"qtbot/models"
	"qtbot/testutils"
)

func TestGetCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credential is absent, not an error", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)
		teamID := testutils.GenerateSlackTeamID()
		userID := testutils.GenerateSlackUserID()

		repo.On("GetCredentialByIdentity", ctx, models.CredentialKey{SlackTeamID: teamID, SlackUserID: userID}).
			Return(mo.None[*models.QiitaCredential](), nil)

		maybeCredential, err := service.GetCredential(ctx, teamID, userID)

		require.NoError(t, err)
		assert.False(t, maybeCredential.IsPresent())
	})

	t.Run("existing credential is returned intact", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)
		credential := testutils.CreateTestCredential("tok", "acme")

		repo.On("GetCredentialByIdentity", ctx, models.CredentialKey{
			SlackTeamID: credential.SlackTeamID,
			SlackUserID: credential.SlackUserID,
		}).Return(mo.Some(credential), nil)

		maybeCredential, err := service.GetCredential(ctx, credential.SlackTeamID, credential.SlackUserID)

		require.NoError(t, err)
		require.True(t, maybeCredential.IsPresent())
		assert.Equal(t, "tok", maybeCredential.MustGet().QiitaAPIToken)
		assert.Equal(t, "acme", maybeCredential.MustGet().TeamURLName())
	})

	t.Run("empty identity returns error", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)

		_, err := service.GetCredential(ctx, "", "U1")
		assert.Error(t, err)

		_, err = service.GetCredential(ctx, "T1", "")
		assert.Error(t, err)

		repo.AssertNotCalled(t, "GetCredentialByIdentity", mock.Anything, mock.Anything)
	})
}

func TestRegisterCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("successful registration generates prefixed ID", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)
		teamID := testutils.GenerateSlackTeamID()
		userID := testutils.GenerateSlackUserID()

		repo.On("CreateCredential", ctx, mock.MatchedBy(func(credential *models.QiitaCredential) bool {
			return core.IsValidULID(credential.ID) &&
				credential.SlackTeamID == teamID &&
				credential.SlackUserID == userID &&
				credential.QiitaAPIToken == "newtok" &&
				credential.QiitaTeamURLName == nil
		})).Return(true, nil)

		created, err := service.RegisterCredential(ctx, teamID, userID, "newtok")

		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate identity reports false without error", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)

		repo.On("CreateCredential", ctx, mock.Anything).Return(false, nil)

		created, err := service.RegisterCredential(ctx, "T1", "U1", "newtok")

		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("empty token returns error before touching store", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)

		_, err := service.RegisterCredential(ctx, "T1", "U1", "")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)

		repo.On("CreateCredential", ctx, mock.Anything).Return(false, errors.New("connection refused"))

		created, err := service.RegisterCredential(ctx, "T1", "U1", "newtok")

		assert.Error(t, err)
		assert.False(t, created)
	})
}

func TestUpdateTeamSetting(t *testing.T) {
	ctx := context.Background()

	t.Run("modified record reports true", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)
		teamID := testutils.GenerateSlackTeamID()
		userID := testutils.GenerateSlackUserID()

		repo.On("UpdateCredentialTeam", ctx, models.CredentialKey{SlackTeamID: teamID, SlackUserID: userID}, "acme").
			Return(true, nil)

		updated, err := service.UpdateTeamSetting(ctx, teamID, userID, "acme")

		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("no-op merge reports false", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)

		repo.On("UpdateCredentialTeam", ctx, mock.Anything, "acme").Return(false, nil)

		updated, err := service.UpdateTeamSetting(ctx, "T1", "U1", "acme")

		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("empty team name returns error", func(t *testing.T) {
		repo := new(MockCredentialsRepository)
		service := NewCredentialsService(repo)

		_, err := service.UpdateTeamSetting(ctx, "T1", "U1", "")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdateCredentialTeam", mock.Anything, mock.Anything, mock.Anything)
	})
}
