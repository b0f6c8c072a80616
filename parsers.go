package bots

import (
	"encoding/json"
	"fmt"
	"time"
)

const twitterTimeLayout = "Mon Jan 02 15:04:05 +0000 2006"

// parseIDList parses followers/ids, friends/ids and friendships/outgoing.
// IDs may be stringified or plain numbers.
func parseIDList(body []byte) ([]string, error) {
	var raw struct {
		IDs []json.Number `json:"ids"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal id list: %w", err)
	}
	ids := make([]string, 0, len(raw.IDs))
	for _, id := range raw.IDs {
		ids = append(ids, id.String())
	}
	return ids, nil
}

type statusResult struct {
	IDStr              string `json:"id_str"`
	Text               string `json:"text"`
	FullText           string `json:"full_text"`
	CreatedAt          string `json:"created_at"`
	InReplyToUserIDStr string `json:"in_reply_to_user_id_str"`
	Retweeted          bool   `json:"retweeted"`
	User               struct {
		IDStr string `json:"id_str"`
	} `json:"user"`
}

// parseStatuses parses a v1.1 timeline response (a JSON array of statuses).
func parseStatuses(body []byte) ([]*Tweet, error) {
	var raw []statusResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal statuses: %w", err)
	}
	tweets := make([]*Tweet, 0, len(raw))
	for _, r := range raw {
		t, err := parseStatusResult(r)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

// parseStatus parses a single v1.1 status object.
func parseStatus(body []byte) (*Tweet, error) {
	var raw statusResult
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}
	return parseStatusResult(raw)
}

func parseStatusResult(r statusResult) (*Tweet, error) {
	if r.IDStr == "" {
		return nil, fmt.Errorf("empty status id_str")
	}
	text := r.FullText
	if text == "" {
		text = r.Text
	}
	var createdAt time.Time
	if r.CreatedAt != "" {
		if t, err := time.Parse(twitterTimeLayout, r.CreatedAt); err == nil {
			createdAt = t
		}
	}
	return &Tweet{
		ID:              r.IDStr,
		AuthorID:        r.User.IDStr,
		Text:            text,
		CreatedAt:       createdAt,
		InReplyToUserID: r.InReplyToUserIDStr,
		Retweeted:       r.Retweeted,
	}, nil
}
