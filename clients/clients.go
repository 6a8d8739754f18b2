package clients

import (
	"context"

	"github.com/slack-go/slack"

	"qtbot/models"
)

// SlackClient defines the narrow surface of the chat platform the bot
// talks back through: opening modal dialogs and posting messages. Both
// are fire-and-forget from the caller's perspective; failures are logged
// at the boundary and never retried.
type SlackClient interface {
	OpenView(triggerID string, view slack.ModalViewRequest) error
	PostMessage(channelID, text string) error
}

// QiitaClient defines the three remote Qiita API operations the bot
// performs. Each is a single HTTP round trip with no retry or backoff;
// reliability is caller-visible rather than masked.
type QiitaClient interface {
	ListTeams(ctx context.Context, apiToken string) ([]models.QiitaTeam, error)
	ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (string, error)
	CreateItem(
		ctx context.Context,
		apiToken, teamURLName, title string,
		tags []models.QiitaTag,
		body string,
	) (*models.QiitaArticle, error)
}
