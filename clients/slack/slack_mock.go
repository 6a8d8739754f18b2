package slack

import (
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/mock"
)

// MockSlackClient is a mock implementation of the clients.SlackClient interface
type MockSlackClient struct {
	mock.Mock
}

func (m *MockSlackClient) OpenView(triggerID string, view slack.ModalViewRequest) error {
	args := m.Called(triggerID, view)
	return args.Error(0)
}

func (m *MockSlackClient) PostMessage(channelID, text string) error {
	args := m.Called(channelID, text)
	return args.Error(0)
}
