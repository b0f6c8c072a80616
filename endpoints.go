package bots

import "fmt"

const defaultAPIBase = "https://api.twitter.com/1.1"

// Endpoint is a REST v1.1 operation.
type Endpoint struct {
	Method string
	Path   string
}

// URL returns the full URL for this endpoint under base.
func (e Endpoint) URL(base string) string {
	return fmt.Sprintf("%s/%s", base, e.Path)
}

// endpointFor returns a named operation, or an error if unknown.
func endpointFor(operation string) (Endpoint, error) {
	ep, ok := Endpoints[operation]
	if !ok {
		return Endpoint{}, fmt.Errorf("unknown operation: %s", operation)
	}
	return ep, nil
}

// Endpoints maps operation names to their REST v1.1 method and path.
var Endpoints = map[string]Endpoint{
	"FollowerIDs":           {Method: "GET", Path: "followers/ids.json"},
	"FriendIDs":             {Method: "GET", Path: "friends/ids.json"},
	"OutgoingFriendshipIDs": {Method: "GET", Path: "friendships/outgoing.json"},
	"CreateFriendship":      {Method: "POST", Path: "friendships/create.json"},
	"DestroyFriendship":     {Method: "POST", Path: "friendships/destroy.json"},
	"UserTimeline":          {Method: "GET", Path: "statuses/user_timeline.json"},
	"MentionsTimeline":      {Method: "GET", Path: "statuses/mentions_timeline.json"},
	"Favorites":             {Method: "GET", Path: "favorites/list.json"},
	"CreateFavorite":        {Method: "POST", Path: "favorites/create.json"},
}
