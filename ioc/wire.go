//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/vyralabs/vyra/internal/battle"
	"github.com/vyralabs/vyra/internal/boost"
	"github.com/vyralabs/vyra/internal/challenge"
	"github.com/vyralabs/vyra/internal/comment"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/feed"
	"github.com/vyralabs/vyra/internal/notification"
	"github.com/vyralabs/vyra/internal/relation"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSnowflakeNode)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		credit.InitModule,
		content.InitModule,
		engagement.InitModule,
		relation.InitModule,
		comment.InitModule,
		boost.InitModule,
		battle.InitModule,
		challenge.InitModule,
		notification.InitModule,
		feed.InitModule,
		InitSession,
		initGinxServer,
		initConsumers)
	return new(App), nil
}
