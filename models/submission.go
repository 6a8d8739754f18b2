package models

// View callback IDs routed by the submission handler.
const (
	CallbackCreateArticle = "create_article"
	CallbackUpdateSetting = "update_setting"
	CallbackRegistToken   = "regist_token"
)

// SlashCommand is the inbound command trigger, reduced to the fields the
// orchestrator needs.
type SlashCommand struct {
	SlackTeamID string `json:"slack_team_id"`
	SlackUserID string `json:"slack_user_id"`
	TriggerID   string `json:"trigger_id"`
}

// ViewSubmission is a completed dialog. BotToken is the bot identity
// token presented with the event; submissions whose token does not match
// the configured one are dropped without any external call or store
// mutation.
type ViewSubmission struct {
	SlackTeamID string            `json:"slack_team_id"`
	SlackUserID string            `json:"slack_user_id"`
	CallbackID  string            `json:"callback_id"`
	BotToken    string            `json:"-"`
	Values      map[string]string `json:"values"`
}

// Form field identifiers within view state. Block ID and action ID are
// identical for every field, so a flat map keyed by field name is enough.
const (
	FieldTeam  = "team"
	FieldTitle = "title"
	FieldTags  = "tags"
	FieldBody  = "body"
	FieldCode  = "code"
)

// SubmissionResult is the terminal outcome of a submission, always
// rendered back to the user as a DM.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DialogRequest describes what the orchestrator decided to present.
type DialogRequest struct {
	CallbackID  string   `json:"callback_id"`
	TeamOptions []string `json:"team_options"`
	DefaultTeam string   `json:"default_team"`
}
