package config

import (
	"backend/models"
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB 按配置的驱动打开数据库并完成表结构迁移
// AutoMigrate只做增量变更（新列、新表），不删除现有数据
func InitDB(cfg *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_NAME"),
		)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %v", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	fmt.Println("数据库连接成功！")
	return db, nil
}

// Migrate 执行全部模型的增量迁移，测试库也走同一入口
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Game{},
		&models.Genre{},
		&models.Platform{},
		&models.Store{},
		&models.Developer{},
		&models.Publisher{},
		&models.Tag{},
		&models.GameGenre{},
		&models.GamePlatform{},
		&models.GameDeveloper{},
		&models.GamePublisher{},
		&models.GameTag{},
		&models.GameStore{},
		&models.GameSeriesLink{},
		&models.GameAdditionLink{},
		&models.Media{},
		&models.Screenshot{},
		&models.GameSuggestion{},
	)
	if err != nil {
		return fmt.Errorf("数据库迁移失败: %v", err)
	}
	return nil
}
