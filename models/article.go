package models

import "strings"

// QiitaTag is one tag attached to a created article.
type QiitaTag struct {
	Name string `json:"name"`
}

// QiitaArticle is the subset of the created-item response shown back to
// the user.
type QiitaArticle struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SplitTags splits the raw tag input into independent tag objects.
// The input is space separated ("Ruby Rails" -> Ruby, Rails); there is
// no deduplication and no validation of tag names, so an empty input
// yields a single empty-name tag.
func SplitTags(raw string) []QiitaTag {
	parts := strings.Split(raw, " ")
	tags := make([]QiitaTag, 0, len(parts))
	for _, name := range parts {
		tags = append(tags, QiitaTag{Name: name})
	}
	return tags
}
