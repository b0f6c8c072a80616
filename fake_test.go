package bots

import (
	"context"
	"fmt"
	"sync"
)

// fakeService is an in-memory Service that records every call.
type fakeService struct {
	mu sync.Mutex

	followers []string
	friends   []string
	outgoing  []string
	timeline  []*Tweet
	mentions  []*Tweet
	favorites []*Tweet

	// failOn maps "Operation:id" (or "Operation") to the error to return.
	failOn map[string]error

	calls []string
}

func (f *fakeService) record(op, arg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := op
	if arg != "" {
		key = op + ":" + arg
	}
	f.calls = append(f.calls, key)
	if err, ok := f.failOn[key]; ok {
		return err
	}
	if err, ok := f.failOn[op]; ok {
		return err
	}
	return nil
}

func (f *fakeService) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op || len(c) > len(op) && c[:len(op)+1] == op+":" {
			n++
		}
	}
	return n
}

// mutations returns the recorded mutating calls in order.
func (f *fakeService) mutations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		for _, op := range []string{"CreateFriendship:", "DestroyFriendship:", "CreateFavorite:"} {
			if len(c) > len(op) && c[:len(op)] == op {
				out = append(out, c)
			}
		}
	}
	return out
}

func (f *fakeService) FollowerIDs(context.Context) ([]string, error) {
	return f.followers, f.record("FollowerIDs", "")
}

func (f *fakeService) FriendIDs(context.Context) ([]string, error) {
	return f.friends, f.record("FriendIDs", "")
}

func (f *fakeService) OutgoingFriendshipIDs(context.Context) ([]string, error) {
	return f.outgoing, f.record("OutgoingFriendshipIDs", "")
}

func (f *fakeService) CreateFriendship(_ context.Context, id string) error {
	return f.record("CreateFriendship", id)
}

func (f *fakeService) DestroyFriendship(_ context.Context, id string) error {
	return f.record("DestroyFriendship", id)
}

func (f *fakeService) UserTimeline(context.Context, string) ([]*Tweet, error) {
	if err := f.record("UserTimeline", ""); err != nil {
		return nil, err
	}
	return f.timeline, nil
}

func (f *fakeService) MentionsTimeline(_ context.Context, count int) ([]*Tweet, error) {
	if err := f.record("MentionsTimeline", fmt.Sprint(count)); err != nil {
		return nil, err
	}
	return f.mentions, nil
}

func (f *fakeService) Favorites(_ context.Context, count int) ([]*Tweet, error) {
	if err := f.record("Favorites", fmt.Sprint(count)); err != nil {
		return nil, err
	}
	return f.favorites, nil
}

func (f *fakeService) CreateFavorite(_ context.Context, id string) (*Tweet, error) {
	if err := f.record("CreateFavorite", id); err != nil {
		return nil, err
	}
	return &Tweet{ID: id}, nil
}

func tweets(ids ...string) []*Tweet {
	out := make([]*Tweet, 0, len(ids))
	for _, id := range ids {
		out = append(out, &Tweet{ID: id})
	}
	return out
}

func newTestClient(svc Service) *Client {
	return New(&Config{ScreenName: "bot"}, svc)
}
