package migrations

import (
	"log"

	"backend/models"
)

// BackfillMetascoreColor 为只有分数没有颜色的历史数据补算颜色档位
func BackfillMetascoreColor() {
	var games []models.Game
	if err := models.DB.
		Where("metascore_number IS NOT NULL AND metascore_color IS NULL").
		Find(&games).Error; err != nil {
		log.Printf("查询待补算颜色的游戏失败: %v", err)
		return
	}

	if len(games) == 0 {
		return
	}

	updated := 0
	for _, g := range games {
		color := models.MetascoreColor(g.MetascoreNumber)
		if color == nil {
			continue
		}
		if err := models.DB.Model(&models.Game{}).
			Where("id = ?", g.ID).
			Update("metascore_color", *color).Error; err != nil {
			log.Printf("补算游戏 %d 的评分颜色失败: %v", g.ID, err)
			continue
		}
		updated++
	}

	log.Printf("成功补算了 %d 个游戏的评分颜色", updated)
}
