// Package views builds the Slack modal dialogs presented by the bot.
// Layout mirrors the submission field identifiers in models: every
// field uses the same block ID and action ID.
package views

import (
	"fmt"

	"github.com/slack-go/slack"

	"qtbot/models"
)

const authorizeURLFormat = "https://qiita.com/api/v2/oauth/authorize?client_id=%s&response_type=code&scope=read_qiita_team+write_qiita_team"

// ArticleModal is the article creation dialog: team select with the
// stored team pre-selected, title, space separated tags and article body.
func ArticleModal(request models.DialogRequest) slack.ModalViewRequest {
	titleInput := slack.NewInputBlock(
		models.FieldTitle,
		slack.NewTextBlockObject(slack.PlainTextType, "Title", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(nil, models.FieldTitle),
	)

	tagsElement := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "Space separated, ex. 'Ruby Rails'", false, false),
		models.FieldTags,
	)
	tagsInput := slack.NewInputBlock(
		models.FieldTags,
		slack.NewTextBlockObject(slack.PlainTextType, "Tags", false, false),
		nil,
		tagsElement,
	)
	tagsInput.Optional = true

	bodyElement := slack.NewPlainTextInputBlockElement(nil, models.FieldBody)
	bodyElement.Multiline = true
	bodyInput := slack.NewInputBlock(
		models.FieldBody,
		slack.NewTextBlockObject(slack.PlainTextType, "Body", false, false),
		nil,
		bodyElement,
	)

	return modal(
		"Qiita:Team Article",
		models.CallbackCreateArticle,
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Create a new article.", false, false),
			nil, nil,
		),
		teamSelectBlock(request.TeamOptions, request.DefaultTeam),
		titleInput,
		tagsInput,
		bodyInput,
	)
}

// SettingModal is the team settings dialog: a single team select with
// the stored team pre-selected.
func SettingModal(request models.DialogRequest) slack.ModalViewRequest {
	return modal(
		"Qiita:Team Setting",
		models.CallbackUpdateSetting,
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Select the team to link with.", false, false),
			nil, nil,
		),
		teamSelectBlock(request.TeamOptions, request.DefaultTeam),
	)
}

// RegistModal is the token registration dialog: an authorization link and
// a field for the code the user is redirected with.
func RegistModal(clientID string) slack.ModalViewRequest {
	authorizeURL := fmt.Sprintf(authorizeURLFormat, clientID)
	instructions := fmt.Sprintf(
		"Link your Qiita account:\n"+
			"1. <%s|Click this link> and authorize the app.\n"+
			"2. Copy the *code* from the URL you are redirected to "+
			"(https://teams.qiita.com/?code=[code]) and paste it below.",
		authorizeURL,
	)

	codeInput := slack.NewInputBlock(
		models.FieldCode,
		slack.NewTextBlockObject(slack.PlainTextType, "code", false, false),
		nil,
		slack.NewPlainTextInputBlockElement(nil, models.FieldCode),
	)

	return modal(
		"Qiita:Team Setting",
		models.CallbackRegistToken,
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, instructions, false, false),
			nil, nil,
		),
		codeInput,
	)
}

func teamSelectBlock(teams []string, defaultTeam string) *slack.InputBlock {
	options := make([]*slack.OptionBlockObject, 0, len(teams))
	var initialOption *slack.OptionBlockObject
	for _, team := range teams {
		option := slack.NewOptionBlockObject(
			team,
			slack.NewTextBlockObject(slack.PlainTextType, team, false, false),
			nil,
		)
		options = append(options, option)
		if team == defaultTeam {
			initialOption = option
		}
	}

	selectElement := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		slack.NewTextBlockObject(slack.PlainTextType, "Select a team", false, false),
		models.FieldTeam,
		options...,
	)
	selectElement.InitialOption = initialOption

	return slack.NewInputBlock(
		models.FieldTeam,
		slack.NewTextBlockObject(slack.PlainTextType, "Team URL name", false, false),
		nil,
		selectElement,
	)
}

func modal(title, callbackID string, blocks ...slack.Block) slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		Title:      slack.NewTextBlockObject(slack.PlainTextType, title, false, false),
		Close:      slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Submit:     slack.NewTextBlockObject(slack.PlainTextType, "Save", false, false),
		CallbackID: callbackID,
		Blocks:     slack.Blocks{BlockSet: blocks},
	}
}
