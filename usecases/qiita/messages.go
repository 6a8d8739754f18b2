package qiita

import (
	"errors"
	"fmt"

	qiitaclient "qtbot/clients/qiita"
)

// User-facing message templates. Every user-facing flow ends in exactly
// one of these, posted as a DM to the invoking user.
const (
	msgNotRegistered       = "Your Qiita API token is not registered. Run `/qt_regist_token` to register it."
	msgSettingUpdated      = "Updated team setting."
	msgSettingUpdateFailed = "Update Error"
	msgTokenRegistered     = "Registered your Qiita API token :tada:"
)

func msgTeamsRequestFailed(detail string) string {
	return fmt.Sprintf("Failed on request team: %s", detail)
}

func msgArticleCreated(title, url string) string {
	return fmt.Sprintf("Created *%s* :tada: %s", title, url)
}

func msgArticleCreateFailed(detail string) string {
	return fmt.Sprintf("Creating Article Error: %s", detail)
}

func msgTokenRegistFailed(detail string) string {
	if detail == "" {
		return "Regist Error"
	}
	return fmt.Sprintf("Regist Error: %s", detail)
}

// errorDetail extracts the Qiita API's reported message for direct user
// display. Transport failures carry no remote message and surface as a
// generic detail; the full error still goes to the log.
func errorDetail(err error) string {
	var apiErr *qiitaclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "unexpected error"
}
