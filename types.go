package bots

import "time"

// Tweet is a single status as returned by the REST timeline endpoints.
type Tweet struct {
	ID              string
	AuthorID        string
	Text            string
	CreatedAt       time.Time
	InReplyToUserID string
	// Retweeted is the service's "retweeted" flag on the status.
	Retweeted bool
}

// IsReply reports whether the tweet has a reply-target user.
func (t *Tweet) IsReply() bool {
	return t.InReplyToUserID != ""
}
