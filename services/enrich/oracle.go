package enrich

import (
	"backend/models"
	"errors"

	"gorm.io/gorm"
)

// NeedsEnrich 判定游戏是否还需要补全
// 任一标量字段（简介/官网/分级/封面）为空，或任一关联表没有该游戏的行，即为true
// 这是粗粒度的"有缺失"判定，不区分缺哪一项：命中后整个游戏完整重抓重写一遍，
// 重抓是严格幂等的，用请求量换实现简单
func (s *Service) NeedsEnrich(gid int64) (bool, error) {
	var game models.Game
	if err := s.db.First(&game, "id = ?", gid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}

	if game.Description == "" || game.Website == "" || game.AgeRating == "" || game.CoverImage == "" {
		return true, nil
	}

	linkModels := []interface{}{
		&models.GameDeveloper{},
		&models.GamePublisher{},
		&models.GameTag{},
		&models.GameSeriesLink{},
		&models.GameAdditionLink{},
		&models.GameGenre{},
		&models.GamePlatform{},
		&models.GameStore{},
	}
	for _, m := range linkModels {
		var count int64
		if err := s.db.Model(m).Where("game_id = ?", gid).Count(&count).Error; err != nil {
			return false, err
		}
		if count == 0 {
			return true, nil
		}
	}
	return false, nil
}
