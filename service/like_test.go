package service

import (
	"context"
	"sync"
	"testing"

	"VideoTube/models"
	"VideoTube/pkg/response"

	"gorm.io/gorm"
)

type edgeKey struct {
	userID   int64
	kind     models.TargetKind
	targetID int64
}

// fakeLikeStore 内存版点赞边存储，行为对齐带唯一键的 likes 表：
// 重复插入返回 gorm.ErrDuplicatedKey
type fakeLikeStore struct {
	mu    sync.Mutex
	edges map[edgeKey]*models.Like
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: make(map[edgeKey]*models.Like)}
}

func (f *fakeLikeStore) GetEdge(_ context.Context, userID int64, kind models.TargetKind, targetID int64) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.edges[edgeKey{userID, kind, targetID}], nil
}

func (f *fakeLikeStore) Create(_ context.Context, like *models.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := edgeKey{like.UserID, like.TargetKind, like.TargetID}
	if _, ok := f.edges[k]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.edges[k] = like
	return nil
}

func (f *fakeLikeStore) DeleteByID(_ context.Context, id int64) error {
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

func (f *fakeLikeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.edges)
}

// fakeTargets 固定的目标存在集合
type fakeTargets struct {
	existing map[edgeKey]bool
}

func (f *fakeTargets) Exists(_ context.Context, kind models.TargetKind, id int64) (bool, error) {
	return f.existing[edgeKey{0, kind, id}], nil
}

func newLikeService(store *fakeLikeStore, kinds ...edgeKey) *LikeService {
	existing := make(map[edgeKey]bool)
	for _, k := range kinds {
		existing[k] = true
	}
	return &LikeService{
		EdgeStore: store,
		Targets:   &fakeTargets{existing: existing},
	}
}

func TestLikeToggle_Involution(t *testing.T) {
	store := newFakeLikeStore()
	svc := newLikeService(store, edgeKey{0, models.TargetVideo, 100})
	ctx := context.Background()

	liked, err := svc.Toggle(ctx, 1, models.TargetVideo, 100)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked {
		t.Fatal("first toggle should create the edge")
	}
	if store.count() != 1 {
		t.Fatalf("edge count = %d, want 1", store.count())
	}

	liked, err = svc.Toggle(ctx, 1, models.TargetVideo, 100)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked {
		t.Fatal("second toggle should remove the edge")
	}
	if store.count() != 0 {
		t.Fatalf("edge count = %d, want 0", store.count())
	}
}

func TestLikeToggle_DistinctUsersAndTargets(t *testing.T) {
	store := newFakeLikeStore()
	svc := newLikeService(store,
		edgeKey{0, models.TargetVideo, 100},
		edgeKey{0, models.TargetComment, 100},
		edgeKey{0, models.TargetVideo, 200},
	)
	ctx := context.Background()

	// 同一个 target_id 在不同 kind 下是不同目标，互不影响
	if _, err := svc.Toggle(ctx, 1, models.TargetVideo, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle(ctx, 1, models.TargetComment, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle(ctx, 2, models.TargetVideo, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle(ctx, 1, models.TargetVideo, 200); err != nil {
		t.Fatal(err)
	}

	if store.count() != 4 {
		t.Fatalf("edge count = %d, want 4", store.count())
	}
}

func TestLikeToggle_TargetNotFound(t *testing.T) {
	svc := newLikeService(newFakeLikeStore())

	_, err := svc.Toggle(context.Background(), 1, models.TargetVideo, 999)
	if !response.IsBiz(err, response.ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
}

func TestLikeToggle_InvalidKind(t *testing.T) {
	svc := newLikeService(newFakeLikeStore())

	_, err := svc.Toggle(context.Background(), 1, models.TargetKind(9), 1)
	if !response.IsBiz(err, response.ErrInvalidID) {
		t.Fatalf("err = %v, want ErrInvalidID", err)
	}
}

// 并发按同一目标开关：唯一键语义下任何时刻至多一条边，
// 全部请求结束后边数只能是 0 或 1
func TestLikeToggle_ConcurrentAtMostOneEdge(t *testing.T) {
	store := newFakeLikeStore()
	svc := newLikeService(store, edgeKey{0, models.TargetVideo, 100})
	ctx := context.Background()

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Toggle(ctx, 7, models.TargetVideo, 100); err != nil {
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

// scriptedLikeStore 复现“读到无边，插入时别人已插完”的窗口：
// 第一次 GetEdge 返回空，Create 报唯一冲突，随后 GetEdge 能看到那条边
type scriptedLikeStore struct {
	mu      sync.Mutex
	lookups int
	edge    *models.Like
	deleted bool
}

func (s *scriptedLikeStore) GetEdge(context.Context, int64, models.TargetKind, int64) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.lookups == 1 || s.deleted {
		return nil, nil
	}
	return s.edge, nil
}

func (s *scriptedLikeStore) Create(context.Context, *models.Like) error {
	return gorm.ErrDuplicatedKey
}

func (s *scriptedLikeStore) DeleteByID(context.Context, int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = true
	return nil
}

func TestLikeToggle_DuplicateKeyFallsBackToDelete(t *testing.T) {
	store := &scriptedLikeStore{edge: &models.Like{ID: 42, UserID: 1, TargetKind: models.TargetVideo, TargetID: 100}}
	svc := &LikeService{
		EdgeStore: store,
		Targets:   &fakeTargets{existing: map[edgeKey]bool{{0, models.TargetVideo, 100}: true}},
	}

	liked, err := svc.Toggle(context.Background(), 1, models.TargetVideo, 100)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if liked {
		t.Fatal("duplicate key should resolve to the delete path, want liked=false")
	}
	if !store.deleted {
		t.Fatal("edge should have been deleted on the retry path")
	}
}
