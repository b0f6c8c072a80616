package bots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ts []*Tweet) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func TestFaveMentions(t *testing.T) {
	svc := &fakeService{
		mentions:  tweets("10", "11", "12"),
		favorites: tweets("11"),
	}

	faved, err := FaveMentions(context.Background(), newTestClient(svc), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"10", "12"}, ids(faved))
	assert.Equal(t, []string{"CreateFavorite:10", "CreateFavorite:12"}, svc.mutations())
	assert.Equal(t, 1, svc.count("Favorites"))
	assert.Equal(t, 1, svc.count("MentionsTimeline"))
	assert.Contains(t, svc.calls, "Favorites:100")
	assert.Contains(t, svc.calls, "MentionsTimeline:75")
}

func TestFaveMentions_NothingToDo(t *testing.T) {
	svc := &fakeService{
		mentions:  tweets("1", "2"),
		favorites: tweets("2", "1", "0"),
	}
	faved, err := FaveMentions(context.Background(), newTestClient(svc), Options{})
	require.NoError(t, err)
	assert.Empty(t, faved)
	assert.Empty(t, svc.mutations())
}

func TestFaveMentions_FailFast(t *testing.T) {
	boom := &ServiceError{Endpoint: "CreateFavorite", Status: 403, Code: 139}
	svc := &fakeService{
		mentions: tweets("1", "2", "3"),
		failOn:   map[string]error{"CreateFavorite:2": boom},
	}

	faved, err := FaveMentions(context.Background(), newTestClient(svc), Options{})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"1"}, ids(faved))
	assert.Equal(t, []string{"CreateFavorite:1", "CreateFavorite:2"}, svc.mutations())
}

func TestFaveMentions_FavoritesFetchFails(t *testing.T) {
	svc := &fakeService{
		mentions: tweets("1"),
		failOn:   map[string]error{"Favorites": errors.New("down")},
	}
	_, err := FaveMentions(context.Background(), newTestClient(svc), Options{})
	require.Error(t, err)
	assert.Zero(t, svc.count("MentionsTimeline"))
	assert.Empty(t, svc.mutations())
}

func TestFaveMentions_DryRun(t *testing.T) {
	svc := &fakeService{mentions: tweets("10", "11"), favorites: tweets("10")}
	faved, err := FaveMentions(context.Background(), newTestClient(svc), Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"11"}, ids(faved))
	assert.Empty(t, svc.mutations())
}
