package testutils

import (
	"fmt"
	"math/rand"

	"qtbot/core"
	"qtbot/models"
)

// GenerateSlackTeamID returns a unique Slack workspace ID for tests
func GenerateSlackTeamID() string {
	return fmt.Sprintf("T%08d", rand.Intn(100000000))
}

// GenerateSlackUserID returns a unique Slack user ID for tests
func GenerateSlackUserID() string {
	return fmt.Sprintf("U%08d", rand.Intn(100000000))
}

// GenerateTriggerID returns a unique dialog trigger ID for tests
func GenerateTriggerID() string {
	return fmt.Sprintf("%d.%d.trigger", rand.Intn(100000000), rand.Intn(100000000))
}

// CreateTestCredential builds a credential with a fresh identity. Pass
// teamURLName "" for a linked-but-unconfigured credential.
func CreateTestCredential(apiToken, teamURLName string) *models.QiitaCredential {
	credential := &models.QiitaCredential{
		ID:            core.NewID("qc"),
		SlackTeamID:   GenerateSlackTeamID(),
		SlackUserID:   GenerateSlackUserID(),
		QiitaAPIToken: apiToken,
	}
	if teamURLName != "" {
		credential.QiitaTeamURLName = &teamURLName
	}
	return credential
}
