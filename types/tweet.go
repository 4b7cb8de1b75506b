package types

import (
	"VideoTube/models"
	"VideoTube/pkg/pagination"
)

type CreateTweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type TweetView struct {
	*models.Tweet
	Owner UserProfile `json:"owner"`
}

type TweetListResponse struct {
	Tweets []*TweetView    `json:"tweets"`
	Meta   pagination.Meta `json:"meta"`
}
