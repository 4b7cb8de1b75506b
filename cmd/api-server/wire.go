//go:build wireinject
// +build wireinject

package main

import (
	"VideoTube/config"
	"VideoTube/dao"
	"VideoTube/dao/cache"
	"VideoTube/handler"
	"VideoTube/pkg/client"
	"VideoTube/pkg/database"
	"VideoTube/pkg/oss"
	"VideoTube/pkg/server"
	"VideoTube/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		oss.GetOssClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Video), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Subscription), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Tweet), "*"),
		wire.Struct(new(handler.Dashboard), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
