package service

import (
	"context"
	"errors"
	"testing"

	"VideoTube/models"
	"VideoTube/pkg/response"
)

// fakeCleanupStore 模拟关系表：记录现存的边/子记录，按级联调用删除
type fakeCleanupStore struct {
	likes    map[edgeKey]bool              // 点赞边
	comments map[int64]edgeKey             // comment_id -> 挂载目标
	history  map[int64][]int64             // video_id -> 看过的用户
	failOn   map[string]error              // 步骤名 -> 注入的错误
	calls    []string
}

func newFakeCleanupStore() *fakeCleanupStore {
	return &fakeCleanupStore{
		likes:    make(map[edgeKey]bool),
		comments: make(map[int64]edgeKey),
		history:  make(map[int64][]int64),
		failOn:   make(map[string]error),
	}
}

func (f *fakeCleanupStore) DeleteByTarget(_ context.Context, kind models.TargetKind, targetID int64) (int64, error) {
	f.calls = append(f.calls, "likes.DeleteByTarget")
	if err := f.failOn["likes.DeleteByTarget"]; err != nil {
		return 0, err
	}
	var n int64
	for k := range f.likes {
		if k.kind == kind && k.targetID == targetID {
			delete(f.likes, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeCleanupStore) DeleteByTargets(_ context.Context, kind models.TargetKind, targetIDs []int64) (int64, error) {
	f.calls = append(f.calls, "likes.DeleteByTargets")
	if err := f.failOn["likes.DeleteByTargets"]; err != nil {
		return 0, err
	}
	var n int64
	for _, id := range targetIDs {
		for k := range f.likes {
			if k.kind == kind && k.targetID == id {
				delete(f.likes, k)
				n++
			}
		}
	}
	return n, nil
}

type fakeCommentCleaner struct {
	store *fakeCleanupStore
}

func (f *fakeCommentCleaner) IDsByTarget(_ context.Context, kind models.TargetKind, targetID int64) ([]int64, error) {
	if err := f.store.failOn["comments.IDsByTarget"]; err != nil {
		return nil, err
	}
	var ids []int64
	for id, parent := range f.store.comments {
		if parent.kind == kind && parent.targetID == targetID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeCommentCleaner) DeleteByTarget(_ context.Context, kind models.TargetKind, targetID int64) (int64, error) {
	if err := f.store.failOn["comments.DeleteByTarget"]; err != nil {
		return 0, err
	}
	var n int64
	for id, parent := range f.store.comments {
		if parent.kind == kind && parent.targetID == targetID {
			delete(f.store.comments, id)
			n++
		}
	}
	return n, nil
}

type fakeHistoryCleaner struct {
	store *fakeCleanupStore
}

func (f *fakeHistoryCleaner) DeleteByVideo(_ context.Context, videoID int64) (int64, error) {
	if err := f.store.failOn["history.DeleteByVideo"]; err != nil {
		return 0, err
	}
	n := int64(len(f.store.history[videoID]))
	delete(f.store.history, videoID)
	return n, nil
}

func newCascadeService(store *fakeCleanupStore) *CascadeService {
	return &CascadeService{
		Likes:    store,
		Comments: &fakeCommentCleaner{store: store},
		History:  &fakeHistoryCleaner{store: store},
	}
}

func seedVideoGraph(store *fakeCleanupStore, videoID int64) {
	// 视频上两条赞、两条评论，其中一条评论还有自己的赞，外加观看历史
	store.likes[edgeKey{1, models.TargetVideo, videoID}] = true
	store.likes[edgeKey{2, models.TargetVideo, videoID}] = true
	store.comments[501] = edgeKey{0, models.TargetVideo, videoID}
	store.comments[502] = edgeKey{0, models.TargetVideo, videoID}
	store.likes[edgeKey{3, models.TargetComment, 501}] = true
	store.history[videoID] = []int64{1, 2, 3}
}

func TestCascadeOnVideoDeleted_RemovesEverything(t *testing.T) {
	store := newFakeCleanupStore()
	seedVideoGraph(store, 100)
	// 其他视频的数据不能被波及
	store.likes[edgeKey{1, models.TargetVideo, 999}] = true
	store.comments[601] = edgeKey{0, models.TargetVideo, 999}

	svc := newCascadeService(store)
	if err := svc.OnVideoDeleted(context.Background(), 100); err != nil {
		t.Fatalf("cascade: %v", err)
	}

	if len(store.likes) != 1 {
		t.Errorf("likes left = %d, want only the unrelated one", len(store.likes))
	}
	if len(store.comments) != 1 {
		t.Errorf("comments left = %d, want only the unrelated one", len(store.comments))
	}
	if _, ok := store.history[100]; ok {
		t.Error("watch history for the deleted video should be gone")
	}
}

func TestCascadeOnVideoDeleted_PartialFailure(t *testing.T) {
	store := newFakeCleanupStore()
	seedVideoGraph(store, 100)
	store.failOn["likes.DeleteByTargets"] = errors.New("db gone")

	svc := newCascadeService(store)
	err := svc.OnVideoDeleted(context.Background(), 100)
	if !response.IsBiz(err, response.ErrCascadeIncomplete) {
		t.Fatalf("err = %v, want ErrCascadeIncomplete", err)
	}

	// 失败的步骤不拦住后面的步骤
	if len(store.comments) != 0 {
		t.Error("comments should still have been deleted")
	}
	if _, ok := store.history[100]; ok {
		t.Error("watch history should still have been deleted")
	}
}

func TestCascadeOnCommentDeleted(t *testing.T) {
	store := newFakeCleanupStore()
	store.likes[edgeKey{1, models.TargetComment, 501}] = true
	store.likes[edgeKey{2, models.TargetComment, 502}] = true

	svc := newCascadeService(store)
	if err := svc.OnCommentDeleted(context.Background(), 501); err != nil {
		t.Fatalf("cascade: %v", err)
	}
	if store.likes[edgeKey{1, models.TargetComment, 501}] {
		t.Error("likes on the deleted comment should be gone")
	}
	if !store.likes[edgeKey{2, models.TargetComment, 502}] {
		t.Error("likes on other comments must survive")
	}
}

func TestCascadeOnTweetDeleted(t *testing.T) {
	store := newFakeCleanupStore()
	store.likes[edgeKey{1, models.TargetTweet, 300}] = true
	store.comments[701] = edgeKey{0, models.TargetTweet, 300}
	store.likes[edgeKey{2, models.TargetComment, 701}] = true

	svc := newCascadeService(store)
	if err := svc.OnTweetDeleted(context.Background(), 300); err != nil {
		t.Fatalf("cascade: %v", err)
	}
	if len(store.likes) != 0 || len(store.comments) != 0 {
		t.Errorf("tweet graph should be fully cleaned, likes=%d comments=%d",
			len(store.likes), len(store.comments))
	}
}
