package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/slack-go/slack"

	"qtbot/models"
)

// QiitaUseCase is the orchestration surface the webhook handler drives.
type QiitaUseCase interface {
	ProcessCreateArticleCommand(ctx context.Context, command models.SlashCommand) error
	ProcessEditSettingCommand(ctx context.Context, command models.SlashCommand) error
	ProcessRegistTokenCommand(ctx context.Context, command models.SlashCommand) error
	ProcessViewSubmission(ctx context.Context, submission models.ViewSubmission) error
}

type SlackWebhooksHandler struct {
	signingSecret string
	botToken      string
	useCase       QiitaUseCase
}

func NewSlackWebhooksHandler(signingSecret, botToken string, useCase QiitaUseCase) *SlackWebhooksHandler {
	return &SlackWebhooksHandler{
		signingSecret: signingSecret,
		botToken:      botToken,
		useCase:       useCase,
	}
}

// HandleSlackCommand acks a slash command immediately and continues the
// flow in the background. Errors surfaced by the flow are logged here and
// swallowed; the flow itself owns any user-facing message.
func (h *SlackWebhooksHandler) HandleSlackCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Slack command received from %s", r.RemoteAddr)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	if err := h.verifySlackSignature(r, body); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "signature verification failed", http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	slashCommand, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("❌ Failed to parse slash command: %v", err)
		http.Error(w, "failed to parse slash command", http.StatusInternalServerError)
		return
	}

	log.Printf("⚡ Parsed slash command: %s from user %s", slashCommand.Command, slashCommand.UserID)

	command := models.SlashCommand{
		SlackTeamID: slashCommand.TeamID,
		SlackUserID: slashCommand.UserID,
		TriggerID:   slashCommand.TriggerID,
	}

	var process func(ctx context.Context, command models.SlashCommand) error
	switch slashCommand.Command {
	case "/qt_create_article":
		process = h.useCase.ProcessCreateArticleCommand
	case "/qt_edit_setting":
		process = h.useCase.ProcessEditSettingCommand
	case "/qt_regist_token":
		process = h.useCase.ProcessRegistTokenCommand
	default:
		log.Printf("⚠️ Unknown slash command: %s", slashCommand.Command)
		w.WriteHeader(http.StatusOK)
		return
	}

	// Ack within Slack's 3 second window; the flow continues on its own.
	w.WriteHeader(http.StatusOK)

	go func() {
		if err := process(context.Background(), command); err != nil {
			log.Printf("❌ Failed to process %s command: %v", slashCommand.Command, err)
		}
	}()
}

// HandleSlackInteraction processes view submissions from the modal
// dialogs. Non-submission interaction payloads are acked and ignored.
func (h *SlackWebhooksHandler) HandleSlackInteraction(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack interaction received from %s", r.RemoteAddr)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusInternalServerError)
		return
	}

	if err := h.verifySlackSignature(r, body); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "signature verification failed", http.StatusUnauthorized)
		return
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		log.Printf("❌ Failed to parse interaction body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(values.Get("payload")), &callback); err != nil {
		log.Printf("❌ Failed to parse interaction payload: %v", err)
		http.Error(w, "failed to parse payload", http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeViewSubmission {
		log.Printf("📋 Ignoring interaction type: %s", callback.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	submission := models.ViewSubmission{
		SlackTeamID: callback.Team.ID,
		SlackUserID: callback.User.ID,
		CallbackID:  callback.View.CallbackID,
		BotToken:    h.botToken,
		Values:      flattenViewState(callback.View.State),
	}

	log.Printf("📨 View submission %s from user %s", submission.CallbackID, submission.SlackUserID)

	// Ack the submission so the modal closes; the outcome arrives as a DM.
	w.WriteHeader(http.StatusOK)

	go func() {
		if err := h.useCase.ProcessViewSubmission(context.Background(), submission); err != nil {
			log.Printf("❌ Failed to process %s submission: %v", submission.CallbackID, err)
		}
	}()
}

// flattenViewState reduces the modal view state to field name -> value.
// Every field in our dialogs uses the same block ID and action ID, so the
// nested structure carries no extra information.
func flattenViewState(state *slack.ViewState) map[string]string {
	flattened := make(map[string]string)
	if state == nil {
		return flattened
	}
	for blockID, actions := range state.Values {
		for _, action := range actions {
			value := action.Value
			if action.SelectedOption.Value != "" {
				value = action.SelectedOption.Value
			}
			flattened[blockID] = value
		}
	}
	return flattened
}

// verifySlackSignature validates the X-Slack-Signature header against the
// signing secret, rejecting requests older than five minutes.
func (h *SlackWebhooksHandler) verifySlackSignature(r *http.Request, body []byte) error {
	signature := r.Header.Get("X-Slack-Signature")
	timestampHeader := r.Header.Get("X-Slack-Request-Timestamp")
	if signature == "" || timestampHeader == "" {
		return fmt.Errorf("missing signature headers")
	}

	timestamp, err := strconv.ParseInt(timestampHeader, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp header: %w", err)
	}

	if time.Since(time.Unix(timestamp, 0)) > 5*time.Minute {
		return fmt.Errorf("request timestamp too old")
	}

	baseString := fmt.Sprintf("v0:%d:%s", timestamp, body)
	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expectedSignature)) {
		return fmt.Errorf("signature mismatch")
	}

	return nil
}

func (h *SlackWebhooksHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack commands endpoint on /slack/commands")
	router.HandleFunc("/slack/commands", h.HandleSlackCommand).Methods(http.MethodPost)

	log.Printf("🚀 Registering Slack interactivity endpoint on /slack/interactivity")
	router.HandleFunc("/slack/interactivity", h.HandleSlackInteraction).Methods(http.MethodPost)

	log.Printf("✅ Slack endpoints registered successfully")
}
