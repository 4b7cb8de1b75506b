package service

import (
	"context"
	"sync"
	"testing"

	"VideoTube/models"
	"VideoTube/pkg/response"

	"gorm.io/gorm"
)

type subKey struct {
	subscriberID int64
	channelID    int64
}

type fakeSubStore struct {
	mu    sync.Mutex
	edges map[subKey]*models.Subscription
}

func newFakeSubStore() *fakeSubStore {
	return &fakeSubStore{edges: make(map[subKey]*models.Subscription)}
}

func (f *fakeSubStore) GetEdge(_ context.Context, subscriberID, channelID int64) (*models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[subKey{subscriberID, channelID}], nil
}

func (f *fakeSubStore) Create(_ context.Context, sub *models.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := subKey{sub.SubscriberID, sub.ChannelID}
	if _, ok := f.edges[k]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.edges[k] = sub
	return nil
}

func (f *fakeSubStore) DeleteByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, e := range f.edges {
		if e.ID == id {
			delete(f.edges, k)
			return nil
		}
	}
	return nil
}

func (f *fakeSubStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edges)
}

type fakeChannels struct {
	users map[int64]*models.User
}

func (f *fakeChannels) GetByID(_ context.Context, userID int64) (*models.User, error) {
	return f.users[userID], nil
}

func TestSubscriptionToggle_Involution(t *testing.T) {
	store := newFakeSubStore()
	svc := &SubscriptionService{
		EdgeStore: store,
		Channels:  &fakeChannels{users: map[int64]*models.User{10: {ID: 10, UserName: "alice"}}},
	}
	ctx := context.Background()

	subscribed, err := svc.Toggle(ctx, 1, 10)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !subscribed {
		t.Fatal("first toggle should subscribe")
	}

	subscribed, err = svc.Toggle(ctx, 1, 10)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if subscribed {
		t.Fatal("second toggle should unsubscribe")
	}
	if store.count() != 0 {
		t.Fatalf("edge count = %d, want 0", store.count())
	}
}

func TestSubscriptionToggle_ChannelNotFound(t *testing.T) {
	svc := &SubscriptionService{
		EdgeStore: newFakeSubStore(),
		Channels:  &fakeChannels{users: map[int64]*models.User{}},
	}

	_, err := svc.Toggle(context.Background(), 1, 999)
	if !response.IsBiz(err, response.ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
}

func TestSubscriptionToggle_ConcurrentAtMostOneEdge(t *testing.T) {
	store := newFakeSubStore()
	svc := &SubscriptionService{
		EdgeStore: store,
		Channels:  &fakeChannels{users: map[int64]*models.User{10: {ID: 10}}},
	}
	ctx := context.Background()

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Toggle(ctx, 7, 10); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("toggle returned error: %v", err)
	}
	if n := store.count(); n > 1 {
		t.Fatalf("edge count = %d, invariant is at most 1", n)
	}
}

func TestBuildSubscriberViews(t *testing.T) {
	edges := []*models.Subscription{
		{ID: 1, SubscriberID: 100, ChannelID: 10},
		{ID: 2, SubscriberID: 200, ChannelID: 10},
		{ID: 3, SubscriberID: 300, ChannelID: 10}, // 用户档案缺失，应被跳过
	}
	users := map[int64]*models.User{
		100: {ID: 100, UserName: "alice"},
		200: {ID: 200, UserName: "bob"},
	}
	backSubs := map[int64]bool{100: true}
	counts := map[int64]int64{100: 5, 200: 0}

	views := buildSubscriberViews(edges, users, backSubs, counts)
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}

	if !views[0].SubscribedToSubscriber {
		t.Error("alice should be marked as mutually subscribed")
	}
	if views[0].SubscribersCount != 5 {
		t.Errorf("alice subscribers = %d, want 5", views[0].SubscribersCount)
	}
	if views[1].SubscribedToSubscriber {
		t.Error("bob should not be marked as mutually subscribed")
	}
	if views[1].SubscribersCount != 0 {
		t.Errorf("bob subscribers = %d, want 0", views[1].SubscribersCount)
	}
}

func TestBuildChannelViews(t *testing.T) {
	edges := []*models.Subscription{
		{ID: 1, SubscriberID: 7, ChannelID: 10},
		{ID: 2, SubscriberID: 7, ChannelID: 20},
	}
	users := map[int64]*models.User{
		10: {ID: 10, UserName: "alice"},
		20: {ID: 20, UserName: "bob"},
	}
	latest := map[int64]*models.Video{
		10: {ID: 1000, UserID: 10, Title: "hello"},
	}

	views := buildChannelViews(edges, users, latest)
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}
	if views[0].LatestVideo == nil || views[0].LatestVideo.ID != 1000 {
		t.Error("alice's latest video should be attached")
	}
	if views[1].LatestVideo != nil {
		t.Error("bob has no videos, latest video should be nil")
	}
}
