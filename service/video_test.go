package service

import (
	"testing"

	"VideoTube/models"
)

func TestBuildVideoDetail(t *testing.T) {
	video := &models.Video{
		ID:          1000,
		UserID:      10,
		Title:       "hello",
		Duration:    12.5,
		Views:       42,
		IsPublished: true,
	}
	owner := &models.User{ID: 10, UserName: "alice", FullName: "Alice", Avatar: "a.png"}

	detail := buildVideoDetail(video, owner, 3, true, 7, false)

	if detail.ID != 1000 || detail.Title != "hello" {
		t.Fatalf("detail entity fields not carried over: %+v", detail)
	}
	if detail.Owner.UserName != "alice" {
		t.Errorf("owner = %+v, want alice", detail.Owner)
	}
	if detail.LikesCount != 3 || !detail.IsLiked {
		t.Errorf("likes aggregation wrong: count=%d liked=%v", detail.LikesCount, detail.IsLiked)
	}
	if detail.SubscribersCount != 7 || detail.IsSubscribed {
		t.Errorf("subscription aggregation wrong: count=%d subscribed=%v", detail.SubscribersCount, detail.IsSubscribed)
	}
}

// 作者档案缺失时视图给零值，不然一个脏引用会把整个详情页拖垮
func TestBuildVideoDetail_MissingOwner(t *testing.T) {
	video := &models.Video{ID: 1, UserID: 10}

	detail := buildVideoDetail(video, nil, 0, false, 0, false)
	if detail.Owner.ID != 0 || detail.Owner.UserName != "" {
		t.Errorf("missing owner should produce zero profile, got %+v", detail.Owner)
	}
}

func TestToUserProfile(t *testing.T) {
	if p := toUserProfile(nil); p.ID != 0 {
		t.Errorf("nil user should map to zero profile, got %+v", p)
	}

	p := toUserProfile(&models.User{ID: 5, UserName: "bob", FullName: "Bob", Avatar: "b.png", Password: "secret"})
	if p.ID != 5 || p.UserName != "bob" || p.FullName != "Bob" || p.Avatar != "b.png" {
		t.Errorf("profile = %+v", p)
	}
}
