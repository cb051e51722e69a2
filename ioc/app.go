package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web       *egin.Component
	Consumers []Consumer
}

// Consumer 应用启动时拉起、退出时关掉的事件消费者
type Consumer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}
