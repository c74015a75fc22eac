package cms_sdk

import (
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/lguportal/cms-sdk/storage"
)

type ServiceConfig struct {
	Debug bool
}

type Config struct {
	DB    *gorm.DB
	RDB   *redis.Client
	Store storage.ObjectStore

	// WebhookSecret 表单 webhook 的共享密钥（Apps Script 侧同值）。
	WebhookSecret string

	// BulletinBucket / NewsBucket 两类内容各自的图片桶。
	BulletinBucket string
	NewsBucket     string

	Service ServiceConfig
}

type Option func(*Config)

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(rdb *redis.Client) Option {
	return func(c *Config) {
		c.RDB = rdb
	}
}

func WithObjectStore(store storage.ObjectStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

func WithWebhookSecret(secret string) Option {
	return func(c *Config) {
		c.WebhookSecret = secret
	}
}

// WithBuckets 覆盖默认桶名（默认见 cons 包）。
func WithBuckets(bulletin, news string) Option {
	return func(c *Config) {
		c.BulletinBucket = bulletin
		c.NewsBucket = news
	}
}

func WithServiceDebug(debug bool) Option {
	return func(c *Config) {
		c.Service.Debug = debug
	}
}
