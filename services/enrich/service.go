package enrich

import (
	"backend/config"
	"backend/services/rawg"

	"gorm.io/gorm"
)

const (
	// relatedGameBase 系列/DLC链接的固定URL前缀
	relatedGameBase = "https://rawg.io/games"
	// maxSuggestions 每个游戏保存的推荐条数
	maxSuggestions = 8
	// legacyScreenshotCap 旧版截图表的历史容量上限
	legacyScreenshotCap = 40
)

// Service 富集管线：判定缺失、抓取、规范化入库、目录对账
type Service struct {
	db     *gorm.DB
	client *rawg.Client
	cfg    *config.Config
}

// NewService 创建富集服务，依赖全部显式注入
func NewService(db *gorm.DB, client *rawg.Client, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		client: client,
		cfg:    cfg,
	}
}
