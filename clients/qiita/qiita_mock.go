package qiita

import (
	"context"

	"github.com/stretchr/testify/mock"

	"qtbot/models"
)

// MockQiitaClient is a mock implementation of the clients.QiitaClient interface
type MockQiitaClient struct {
	mock.Mock
}

func (m *MockQiitaClient) ListTeams(ctx context.Context, apiToken string) ([]models.QiitaTeam, error) {
	args := m.Called(ctx, apiToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QiitaTeam), args.Error(1)
}

func (m *MockQiitaClient) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (string, error) {
	args := m.Called(ctx, clientID, clientSecret, code)
	return args.String(0), args.Error(1)
}

func (m *MockQiitaClient) CreateItem(
	ctx context.Context,
	apiToken, teamURLName, title string,
	tags []models.QiitaTag,
	body string,
) (*models.QiitaArticle, error) {
	args := m.Called(ctx, apiToken, teamURLName, title, tags, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QiitaArticle), args.Error(1)
}
