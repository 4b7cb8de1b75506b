//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewVideoDAO,
	NewTweetDAO,
	NewCommentDAO,
	NewLikeDAO,
	NewSubscriptionDAO,
	NewWatchHistoryDAO,
	NewTargetDAO,
)
