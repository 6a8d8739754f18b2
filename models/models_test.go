package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []QiitaTag
	}{
		{
			name:  "two space separated tags keep order",
			input: "Ruby Rails",
			want:  []QiitaTag{{Name: "Ruby"}, {Name: "Rails"}},
		},
		{
			name:  "empty input yields one empty tag",
			input: "",
			want:  []QiitaTag{{Name: ""}},
		},
		{
			name:  "duplicates are not removed",
			input: "Go Go",
			want:  []QiitaTag{{Name: "Go"}, {Name: "Go"}},
		},
		{
			name:  "consecutive spaces yield empty tag entries",
			input: "a  b",
			want:  []QiitaTag{{Name: "a"}, {Name: ""}, {Name: "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.input))
		})
	}
}

func TestActiveTeamIDs(t *testing.T) {
	teams := []QiitaTeam{
		{ID: "acme", Name: "Acme", Active: true},
		{ID: "old", Name: "Old", Active: false},
		{ID: "beta", Name: "Beta", Active: true},
	}

	assert.Equal(t, []string{"acme", "beta"}, ActiveTeamIDs(teams))
	assert.Empty(t, ActiveTeamIDs(nil))
}

func TestTeamURLName(t *testing.T) {
	team := "acme"
	withTeam := &QiitaCredential{QiitaTeamURLName: &team}
	assert.Equal(t, "acme", withTeam.TeamURLName())

	unconfigured := &QiitaCredential{}
	assert.Equal(t, "", unconfigured.TeamURLName())
}
