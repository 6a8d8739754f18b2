package models

// QiitaCredential links a Slack identity to a Qiita API token.
// Exactly one document exists per (SlackTeamID, SlackUserID) pair;
// uniqueness is enforced by a compound index on the tokens collection.
type QiitaCredential struct {
	ID               string  `bson:"id" json:"id"`
	SlackTeamID      string  `bson:"slack_team_id" json:"slack_team_id"`
	SlackUserID      string  `bson:"slack_user_id" json:"slack_user_id"`
	QiitaAPIToken    string  `bson:"qiita_api_token" json:"-"`
	QiitaTeamURLName *string `bson:"qiita_team_url_name,omitempty" json:"qiita_team_url_name,omitempty"`
}

// CredentialKey identifies a credential document.
type CredentialKey struct {
	SlackTeamID string `bson:"slack_team_id"`
	SlackUserID string `bson:"slack_user_id"`
}

// TeamURLName returns the configured Qiita team slug, or "" when the
// credential is linked but unconfigured.
func (c *QiitaCredential) TeamURLName() string {
	if c.QiitaTeamURLName == nil {
		return ""
	}
	return *c.QiitaTeamURLName
}
