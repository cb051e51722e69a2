package ioc

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

// InitSnowflakeNode 视频 id 的发号器，多实例部署时 nodeId 必须互不相同
func InitSnowflakeNode() *snowflake.Node {
	nodeId := econf.GetInt64("snowflake.nodeId")
	node, err := snowflake.NewNode(nodeId)
	if err != nil {
		panic(err)
	}
	return node
}
