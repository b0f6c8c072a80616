package bots

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FollowerIDs fetches the IDs of accounts following the authenticated user.
func (s *restService) FollowerIDs(ctx context.Context) ([]string, error) {
	return s.fetchIDs(ctx, "FollowerIDs")
}

// FriendIDs fetches the IDs of accounts the authenticated user follows.
func (s *restService) FriendIDs(ctx context.Context) ([]string, error) {
	return s.fetchIDs(ctx, "FriendIDs")
}

// OutgoingFriendshipIDs fetches pending follow requests sent by the user.
func (s *restService) OutgoingFriendshipIDs(ctx context.Context) ([]string, error) {
	return s.fetchIDs(ctx, "OutgoingFriendshipIDs")
}

// fetchIDs fetches a single page of stringified IDs.
func (s *restService) fetchIDs(ctx context.Context, operation string) ([]string, error) {
	body, err := s.call(ctx, operation, url.Values{"stringify_ids": {"true"}})
	if err != nil {
		return nil, err
	}
	ids, err := parseIDList(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", operation, err)
	}
	return ids, nil
}

func (s *restService) CreateFriendship(ctx context.Context, userID string) error {
	_, err := s.call(ctx, "CreateFriendship", url.Values{"user_id": {userID}})
	return err
}

func (s *restService) DestroyFriendship(ctx context.Context, userID string) error {
	_, err := s.call(ctx, "DestroyFriendship", url.Values{"user_id": {userID}})
	return err
}

// UserTimeline fetches the most recent tweets of screenName, newest first.
func (s *restService) UserTimeline(ctx context.Context, screenName string) ([]*Tweet, error) {
	params := url.Values{"tweet_mode": {"extended"}}
	if screenName != "" {
		params.Set("screen_name", screenName)
	}
	return s.fetchTimeline(ctx, "UserTimeline", params)
}

// MentionsTimeline fetches up to count recent mentions of the user.
func (s *restService) MentionsTimeline(ctx context.Context, count int) ([]*Tweet, error) {
	return s.fetchTimeline(ctx, "MentionsTimeline", url.Values{
		"count":            {strconv.Itoa(count)},
		"trim_user":        {"true"},
		"include_entities": {"false"},
		"tweet_mode":       {"extended"},
	})
}

// Favorites fetches up to count tweets recently favorited by the user.
func (s *restService) Favorites(ctx context.Context, count int) ([]*Tweet, error) {
	return s.fetchTimeline(ctx, "Favorites", url.Values{
		"count":            {strconv.Itoa(count)},
		"include_entities": {"false"},
	})
}

func (s *restService) fetchTimeline(ctx context.Context, operation string, params url.Values) ([]*Tweet, error) {
	body, err := s.call(ctx, operation, params)
	if err != nil {
		return nil, err
	}
	tweets, err := parseStatuses(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", operation, err)
	}
	return tweets, nil
}

// CreateFavorite favorites a tweet and returns the favorited status.
func (s *restService) CreateFavorite(ctx context.Context, tweetID string) (*Tweet, error) {
	body, err := s.call(ctx, "CreateFavorite", url.Values{
		"id":               {tweetID},
		"include_entities": {"false"},
	})
	if err != nil {
		return nil, err
	}
	return parseStatus(body)
}
