package bots

import "context"

// Service is the social-network API used by Client. Implementations issue
// one request per call and do not retry.
type Service interface {
	FollowerIDs(ctx context.Context) ([]string, error)
	FriendIDs(ctx context.Context) ([]string, error)
	OutgoingFriendshipIDs(ctx context.Context) ([]string, error)
	CreateFriendship(ctx context.Context, userID string) error
	DestroyFriendship(ctx context.Context, userID string) error
	UserTimeline(ctx context.Context, screenName string) ([]*Tweet, error)
	MentionsTimeline(ctx context.Context, count int) ([]*Tweet, error)
	Favorites(ctx context.Context, count int) ([]*Tweet, error)
	CreateFavorite(ctx context.Context, tweetID string) (*Tweet, error)
}
