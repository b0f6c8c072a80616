package bots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphFixture() *fakeService {
	return &fakeService{
		friends:   []string{"1", "2", "3"},
		followers: []string{"2", "3", "4"},
		outgoing:  []string{"3"},
	}
}

func TestCandidates(t *testing.T) {
	snap := &GraphSnapshot{
		Friends:         []string{"1", "2", "3"},
		Followers:       []string{"2", "3", "4"},
		PendingOutgoing: []string{"3"},
	}
	assert.Equal(t, []string{"2"}, snap.Candidates(FollowBack))
	assert.Equal(t, []string{"2"}, snap.Candidates(Unfollow))

	empty := &GraphSnapshot{Followers: []string{"1"}}
	assert.Empty(t, empty.Candidates(FollowBack))
}

func TestCandidates_IterationOrder(t *testing.T) {
	snap := &GraphSnapshot{
		Friends:   []string{"c", "a", "b"},
		Followers: []string{"b", "c", "a"},
	}
	assert.Equal(t, []string{"b", "c", "a"}, snap.Candidates(FollowBack), "walks followers")
	assert.Equal(t, []string{"c", "a", "b"}, snap.Candidates(Unfollow), "walks friends")
}

func TestAutoFollow_FollowBack(t *testing.T) {
	svc := graphFixture()
	n, err := AutoFollow(context.Background(), newTestClient(svc), FollowBack, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"CreateFriendship:2"}, svc.mutations())
	assert.Equal(t, []string{"FollowerIDs", "FriendIDs", "OutgoingFriendshipIDs", "CreateFriendship:2"}, svc.calls)
}

func TestAutoFollow_Unfollow(t *testing.T) {
	svc := graphFixture()
	n, err := AutoFollow(context.Background(), newTestClient(svc), Unfollow, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"DestroyFriendship:2"}, svc.mutations())
}

func TestAutoFollow_PendingNeverTouched(t *testing.T) {
	svc := &fakeService{
		friends:   []string{"1", "2"},
		followers: []string{"1", "2"},
		outgoing:  []string{"1", "2"},
	}
	for _, action := range []FollowAction{FollowBack, Unfollow} {
		n, err := AutoFollow(context.Background(), newTestClient(svc), action, Options{})
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	assert.Empty(t, svc.mutations())
}

func TestAutoFollow_FailFast(t *testing.T) {
	boom := &ServiceError{Endpoint: "CreateFriendship", Status: 403, Code: 161}
	svc := &fakeService{
		friends:   []string{"1", "2", "3"},
		followers: []string{"1", "2", "3"},
		failOn:    map[string]error{"CreateFriendship:2": boom},
	}

	n, err := AutoFollow(context.Background(), newTestClient(svc), FollowBack, Options{})
	require.Error(t, err)

	var se *ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 161, se.Code)
	assert.Equal(t, 1, n, "only the first action completed")
	assert.Equal(t, []string{"CreateFriendship:1", "CreateFriendship:2"}, svc.mutations())
}

func TestAutoFollow_FetchFailureStopsBeforeMutations(t *testing.T) {
	svc := graphFixture()
	svc.failOn = map[string]error{"OutgoingFriendshipIDs": errors.New("down")}

	_, err := AutoFollow(context.Background(), newTestClient(svc), Unfollow, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outgoing friendships")
	assert.Empty(t, svc.mutations())
}

func TestAutoFollow_DryRun(t *testing.T) {
	svc := graphFixture()
	n, err := AutoFollow(context.Background(), newTestClient(svc), FollowBack, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, svc.mutations())
}

func TestFollowActionString(t *testing.T) {
	assert.Equal(t, "follow", FollowBack.String())
	assert.Equal(t, "unfollow", Unfollow.String())
}
