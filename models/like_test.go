package models

import "testing"

func TestTargetKindValid(t *testing.T) {
	cases := []struct {
		kind TargetKind
		want bool
	}{
		{TargetVideo, true},
		{TargetComment, true},
		{TargetTweet, true},
		{TargetKind(0), false},
		{TargetKind(4), false},
		{TargetKind(-1), false},
	}
	for _, c := range cases {
		if got := c.kind.Valid(); got != c.want {
			t.Errorf("TargetKind(%d).Valid() = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestTargetKindString(t *testing.T) {
	if TargetVideo.String() != "video" || TargetComment.String() != "comment" || TargetTweet.String() != "tweet" {
		t.Error("kind names changed, check log fields relying on them")
	}
}
