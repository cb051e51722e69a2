package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/vyralabs/vyra/internal/battle"
	"github.com/vyralabs/vyra/internal/boost"
	"github.com/vyralabs/vyra/internal/challenge"
	"github.com/vyralabs/vyra/internal/comment"
	"github.com/vyralabs/vyra/internal/content"
	"github.com/vyralabs/vyra/internal/credit"
	"github.com/vyralabs/vyra/internal/engagement"
	"github.com/vyralabs/vyra/internal/feed"
	"github.com/vyralabs/vyra/internal/notification"
	"github.com/vyralabs/vyra/internal/pkg/middleware"
	"github.com/vyralabs/vyra/internal/relation"
)

func initGinxServer(sp session.Provider,
	creditM *credit.Module,
	contentM *content.Module,
	engagementM *engagement.Module,
	relationM *relation.Module,
	commentM *comment.Module,
	boostM *boost.Module,
	battleM *battle.Module,
	challengeM *challenge.Module,
	notificationM *notification.Module,
	feedM *feed.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "vyra.app")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	contentM.Hdl.PublicRoutes(res.Engine)
	commentM.Hdl.PublicRoutes(res.Engine)
	boostM.Hdl.PublicRoutes(res.Engine)
	battleM.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	creditM.Hdl.PrivateRoutes(res.Engine)
	contentM.Hdl.PrivateRoutes(res.Engine)
	engagementM.Hdl.PrivateRoutes(res.Engine)
	relationM.Hdl.PrivateRoutes(res.Engine)
	commentM.Hdl.PrivateRoutes(res.Engine)
	boostM.Hdl.PrivateRoutes(res.Engine)
	battleM.Hdl.PrivateRoutes(res.Engine)
	challengeM.Hdl.PrivateRoutes(res.Engine)
	notificationM.Hdl.PrivateRoutes(res.Engine)
	feedM.Hdl.PrivateRoutes(res.Engine)
	return res
}
