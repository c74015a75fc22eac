package service

import (
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lguportal/cms-sdk/storage"
)

// Service 基础服务，持有所有外部依赖。
type Service struct {
	DB  *gorm.DB
	RDB *redis.Client

	// Store 图片对象存储客户端
	Store storage.ObjectStore

	// Notifier 新通知的推送回调（WS 广播给在线后台）。
	// 避免循环依赖，通过函数注入的方式；可为 nil。
	Notifier func(message []byte)

	Debug bool
}

// 业务时间统一用马尼拉时区（内容发布时间、维护窗口判定）。
var manilaLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		// 无 tzdata 环境兜底（PHT 无夏令时）
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}()

// ManilaNow 当前马尼拉时间。
func ManilaNow() time.Time {
	return time.Now().In(manilaLoc)
}
