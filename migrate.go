package cms_sdk

import (
	"log"

	model "github.com/lguportal/cms-sdk/models"
)

func (c *CMSEngine) AutoMigrate() error {
	db := c.config.DB
	log.Println("AutoMigrate...")
	return db.AutoMigrate(
		&model.User{},
		&model.BulletinPost{},
		&model.NewsPost{},
		&model.PatchNote{},
		&model.SystemMaintenance{},
		&model.Notification{},
	)
}
