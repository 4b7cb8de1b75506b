package server

import (
	"VideoTube/handler"
)

type Handlers struct {
	User         *handler.User
	Video        *handler.Video
	Like         *handler.Like
	Subscription *handler.Subscription
	Comment      *handler.Comment
	Tweet        *handler.Tweet
	Dashboard    *handler.Dashboard
}
