package models

import (
	"gorm.io/gorm"
)

// DB 全局数据库连接实例
var DB *gorm.DB

// SetDB 设置全局数据库连接
func SetDB(db *gorm.DB) {
	DB = db
}

// HasTable 检查表是否存在，供读接口在可选表缺失时降级为空结果
func HasTable(model interface{}) bool {
	if DB == nil {
		return false
	}
	return DB.Migrator().HasTable(model)
}
