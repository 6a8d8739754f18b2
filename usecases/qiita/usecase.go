// Package qiita orchestrates the bot's three flows: article creation,
// team settings and token registration. Each inbound command or view
// submission is handled as an independent task; all cross-request state
// lives in the credential store, so two concurrent submissions for the
// same identity may interleave their store operations (last write wins).
package qiita

import (
	"context"
	"fmt"
	"log"

	"github.com/slack-go/slack"

	"qtbot/clients"
	"qtbot/config"
	"qtbot/core"
	"qtbot/models"
	"qtbot/services"
	"qtbot/views"
)

// QiitaUseCase handles the command/view orchestration and token lifecycle
type QiitaUseCase struct {
	slackClient        clients.SlackClient
	qiitaClient        clients.QiitaClient
	credentialsService services.CredentialsService
	slackConfig        config.SlackConfig
	qiitaConfig        config.QiitaConfig
}

// NewQiitaUseCase creates a new instance of QiitaUseCase
func NewQiitaUseCase(
	slackClient clients.SlackClient,
	qiitaClient clients.QiitaClient,
	credentialsService services.CredentialsService,
	slackConfig config.SlackConfig,
	qiitaConfig config.QiitaConfig,
) *QiitaUseCase {
	return &QiitaUseCase{
		slackClient:        slackClient,
		qiitaClient:        qiitaClient,
		credentialsService: credentialsService,
		slackConfig:        slackConfig,
		qiitaConfig:        qiitaConfig,
	}
}

// ProcessCreateArticleCommand handles /qt_create_article: consult the
// credential, list the user's teams and open the article dialog.
func (u *QiitaUseCase) ProcessCreateArticleCommand(ctx context.Context, command models.SlashCommand) error {
	return u.openTeamDialog(ctx, command, models.CallbackCreateArticle, views.ArticleModal)
}

// ProcessEditSettingCommand handles /qt_edit_setting: same credential and
// team lookup as article creation, but opens the settings dialog.
func (u *QiitaUseCase) ProcessEditSettingCommand(ctx context.Context, command models.SlashCommand) error {
	return u.openTeamDialog(ctx, command, models.CallbackUpdateSetting, views.SettingModal)
}

// openTeamDialog is the shared orchestration for the two team-scoped
// dialogs. A missing credential and a failed team listing each end the
// flow with one DM and no dialog; a failed dialog open is returned to the
// boundary where it is logged without notifying the user.
func (u *QiitaUseCase) openTeamDialog(
	ctx context.Context,
	command models.SlashCommand,
	callbackID string,
	buildView func(models.DialogRequest) slack.ModalViewRequest,
) error {
	log.Printf("📋 Starting to open dialog for user %s in team %s", command.SlackUserID, command.SlackTeamID)

	maybeCredential, err := u.credentialsService.GetCredential(ctx, command.SlackTeamID, command.SlackUserID)
	if err != nil {
		log.Printf("❌ Failed to get credential: %v", err)
		return fmt.Errorf("failed to get credential: %w", err)
	}
	if !maybeCredential.IsPresent() {
		log.Printf("⚠️ No credential for user %s - sending registration guidance", command.SlackUserID)
		return u.postMessage(command.SlackUserID, msgNotRegistered)
	}
	credential := maybeCredential.MustGet()

	teams, err := u.qiitaClient.ListTeams(ctx, credential.QiitaAPIToken)
	if err != nil {
		log.Printf("❌ Failed to list Qiita teams: %v", err)
		return u.postMessage(command.SlackUserID, msgTeamsRequestFailed(errorDetail(err)))
	}

	request := models.DialogRequest{
		CallbackID:  callbackID,
		TeamOptions: models.ActiveTeamIDs(teams),
		DefaultTeam: credential.TeamURLName(),
	}

	if err := u.slackClient.OpenView(command.TriggerID, buildView(request)); err != nil {
		return fmt.Errorf("failed to open dialog: %w", err)
	}

	log.Printf("📋 Completed successfully - opened dialog with %d team options", len(request.TeamOptions))
	return nil
}

// ProcessRegistTokenCommand handles /qt_regist_token. Registration is
// always offered (no credential lookup), but requires the Qiita client ID
// to build the authorization URL.
func (u *QiitaUseCase) ProcessRegistTokenCommand(ctx context.Context, command models.SlashCommand) error {
	log.Printf("📋 Starting to open registration dialog for user %s", command.SlackUserID)

	if u.qiitaConfig.ClientID == "" {
		log.Printf("❌ QIITA_CLIENT_ID is required for token registration")
		return core.ErrConfigurationMissing
	}

	view := views.RegistModal(u.qiitaConfig.ClientID)
	if err := u.slackClient.OpenView(command.TriggerID, view); err != nil {
		return fmt.Errorf("failed to open dialog: %w", err)
	}

	log.Printf("📋 Completed successfully - opened registration dialog")
	return nil
}

// ProcessViewSubmission routes a completed dialog to its terminal state.
// Every user-facing path ends in exactly one DM; the identity and
// configuration guards abort silently (operator log only).
func (u *QiitaUseCase) ProcessViewSubmission(ctx context.Context, submission models.ViewSubmission) error {
	if err := u.checkSubmissionGuards(submission); err != nil {
		return err
	}

	switch submission.CallbackID {
	case models.CallbackCreateArticle:
		return u.processCreateArticleSubmission(ctx, submission)
	case models.CallbackUpdateSetting:
		return u.processUpdateSettingSubmission(ctx, submission)
	case models.CallbackRegistToken:
		return u.processRegistTokenSubmission(ctx, submission)
	default:
		log.Printf("⚠️ Unknown view callback ID: %s", submission.CallbackID)
		return nil
	}
}

// checkSubmissionGuards enforces the bot identity and Qiita application
// configuration preconditions shared by all three submissions. A token
// mismatch is treated as a possible spoofed or misrouted event and
// produces no external call, no store mutation and no user message.
func (u *QiitaUseCase) checkSubmissionGuards(submission models.ViewSubmission) error {
	if submission.BotToken != u.slackConfig.BotToken {
		log.Printf("❌ Invalid bot token on %s submission - discarding event", submission.CallbackID)
		return core.ErrIdentityMismatch
	}
	if !u.qiitaConfig.IsConfigured() {
		log.Printf("❌ QIITA_CLIENT_ID and QIITA_CLIENT_SECRET are required")
		return core.ErrConfigurationMissing
	}
	return nil
}

func (u *QiitaUseCase) processCreateArticleSubmission(ctx context.Context, submission models.ViewSubmission) error {
	log.Printf("📋 Starting to process article submission from user %s", submission.SlackUserID)

	// Re-fetch the credential: the record may have changed (or vanished)
	// since the dialog was opened.
	maybeCredential, err := u.credentialsService.GetCredential(ctx, submission.SlackTeamID, submission.SlackUserID)
	if err != nil {
		log.Printf("❌ Failed to get credential: %v", err)
		return fmt.Errorf("failed to get credential: %w", err)
	}
	if !maybeCredential.IsPresent() {
		log.Printf("⚠️ No credential for user %s at submission time", submission.SlackUserID)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgNotRegistered})
	}
	credential := maybeCredential.MustGet()

	teamURLName := submission.Values[models.FieldTeam]
	title := submission.Values[models.FieldTitle]
	tags := models.SplitTags(submission.Values[models.FieldTags])
	body := submission.Values[models.FieldBody]

	// Team selection here is per-submission: the choice is not written
	// back to the credential (contrast with the settings flow).
	article, err := u.qiitaClient.CreateItem(ctx, credential.QiitaAPIToken, teamURLName, title, tags, body)
	if err != nil {
		log.Printf("❌ Failed to create article: %v", err)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgArticleCreateFailed(errorDetail(err))})
	}

	log.Printf("📋 Completed successfully - created article %s", article.URL)
	return u.postResult(submission.SlackUserID, models.SubmissionResult{
		Success: true,
		Message: msgArticleCreated(article.Title, article.URL),
	})
}

func (u *QiitaUseCase) processUpdateSettingSubmission(ctx context.Context, submission models.ViewSubmission) error {
	log.Printf("📋 Starting to process setting submission from user %s", submission.SlackUserID)

	teamURLName := submission.Values[models.FieldTeam]

	updated, err := u.credentialsService.UpdateTeamSetting(
		ctx,
		submission.SlackTeamID,
		submission.SlackUserID,
		teamURLName,
	)
	if err != nil {
		log.Printf("❌ Failed to update team setting: %v", err)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgSettingUpdateFailed})
	}
	if !updated {
		log.Printf("⚠️ Team setting for user %s was not modified", submission.SlackUserID)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgSettingUpdateFailed})
	}

	log.Printf("📋 Completed successfully - set team %s for user %s", teamURLName, submission.SlackUserID)
	return u.postResult(submission.SlackUserID, models.SubmissionResult{Success: true, Message: msgSettingUpdated})
}

func (u *QiitaUseCase) processRegistTokenSubmission(ctx context.Context, submission models.ViewSubmission) error {
	log.Printf("📋 Starting to process registration submission from user %s", submission.SlackUserID)

	code := submission.Values[models.FieldCode]

	apiToken, err := u.qiitaClient.ExchangeCode(ctx, u.qiitaConfig.ClientID, u.qiitaConfig.ClientSecret, code)
	if err != nil {
		log.Printf("❌ Failed to exchange authorization code: %v", err)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgTokenRegistFailed(errorDetail(err))})
	}

	// Registration succeeds only when both the exchange and the save
	// succeed. If the save fails the issued token is discarded and the
	// user has to re-authorize.
	saved, err := u.credentialsService.RegisterCredential(
		ctx,
		submission.SlackTeamID,
		submission.SlackUserID,
		apiToken,
	)
	if err != nil {
		log.Printf("❌ Failed to save credential: %v", err)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgTokenRegistFailed("")})
	}
	if !saved {
		log.Printf("⚠️ Credential for user %s was not saved - issued token discarded", submission.SlackUserID)
		return u.postResult(submission.SlackUserID, models.SubmissionResult{Message: msgTokenRegistFailed("")})
	}

	log.Printf("📋 Completed successfully - registered token for user %s", submission.SlackUserID)
	return u.postResult(submission.SlackUserID, models.SubmissionResult{Success: true, Message: msgTokenRegistered})
}

// postResult renders a submission outcome back to the user.
func (u *QiitaUseCase) postResult(slackUserID string, result models.SubmissionResult) error {
	if !result.Success {
		log.Printf("⚠️ Reporting failure to user %s: %s", slackUserID, result.Message)
	}
	return u.postMessage(slackUserID, result.Message)
}

// postMessage DMs the user. Posting is fire-and-forget for the flow: a
// failure is returned so the boundary can log it, but nothing retries.
func (u *QiitaUseCase) postMessage(slackUserID, text string) error {
	if err := u.slackClient.PostMessage(slackUserID, text); err != nil {
		log.Printf("❌ Failed to post message to user %s: %v", slackUserID, err)
		return fmt.Errorf("failed to post message: %w", err)
	}
	return nil
}
