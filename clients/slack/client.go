package slack

import (
	"fmt"

	"github.com/slack-go/slack"

	"qtbot/clients"
)

// SlackClient implements the clients.SlackClient interface using the slack-go/slack SDK
type SlackClient struct {
	*slack.Client
}

// NewSlackClient creates a new Slack client with the provided bot token
func NewSlackClient(authToken string) clients.SlackClient {
	return &SlackClient{
		Client: slack.New(authToken),
	}
}

// OpenView opens a modal dialog in response to a command trigger
func (c *SlackClient) OpenView(triggerID string, view slack.ModalViewRequest) error {
	if _, err := c.Client.OpenView(triggerID, view); err != nil {
		return fmt.Errorf("failed to open view: %w", err)
	}
	return nil
}

// PostMessage posts a plain text message. Posting to a user ID delivers
// it as a DM from the bot.
func (c *SlackClient) PostMessage(channelID, text string) error {
	if _, _, err := c.Client.PostMessage(channelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	return nil
}
