package models

// QiitaTeam is one entry of the Qiita /api/v2/teams response. Transient:
// fetched fresh on every command, never persisted.
type QiitaTeam struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ActiveTeamIDs filters teams down to the IDs offered as selectable
// team context in dialogs.
func ActiveTeamIDs(teams []QiitaTeam) []string {
	ids := make([]string, 0, len(teams))
	for _, team := range teams {
		if team.Active {
			ids = append(ids, team.ID)
		}
	}
	return ids
}
