package service

import (
	"VideoTube/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(VideoService), "*"),
	wire.Bind(new(IVideoService), new(*VideoService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(SubscriptionService), "*"),
	wire.Bind(new(ISubscriptionService), new(*SubscriptionService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(TweetService), "*"),
	wire.Bind(new(ITweetService), new(*TweetService)),

	wire.Struct(new(CascadeService), "*"),
	wire.Bind(new(ICascadeService), new(*CascadeService)),

	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),

	NewMediaService,
	wire.Bind(new(IMediaService), new(*MediaService)),

	// 边存储、目标校验和级联清理的最小契约都由 DAO 直接实现
	wire.Bind(new(LikeEdgeStore), new(*dao.LikeDAO)),
	wire.Bind(new(SubscriptionEdgeStore), new(*dao.SubscriptionDAO)),
	wire.Bind(new(ChannelChecker), new(*dao.UserDAO)),
	wire.Bind(new(TargetChecker), new(*dao.TargetDAO)),
	wire.Bind(new(LikeEdgeCleaner), new(*dao.LikeDAO)),
	wire.Bind(new(CommentCleaner), new(*dao.CommentDAO)),
	wire.Bind(new(HistoryCleaner), new(*dao.WatchHistoryDAO)),
)
