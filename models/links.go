package models

// GameSeriesLink 同系列游戏链接，(game_id,name,url)三元组唯一
type GameSeriesLink struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	GameID int64  `gorm:"not null;index:idx_series_gid;uniqueIndex:uniq_series_triple" json:"game_id"`
	Name   string `gorm:"type:varchar(191);not null;uniqueIndex:uniq_series_triple" json:"name"`
	URL    string `gorm:"type:varchar(191);not null;uniqueIndex:uniq_series_triple" json:"url"`
}

func (GameSeriesLink) TableName() string {
	return "game_series_links"
}

// GameAdditionLink DLC及扩展内容链接，(game_id,name,url)三元组唯一
type GameAdditionLink struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	GameID int64  `gorm:"not null;index:idx_additions_gid;uniqueIndex:uniq_additions_triple" json:"game_id"`
	Name   string `gorm:"type:varchar(191);not null;uniqueIndex:uniq_additions_triple" json:"name"`
	URL    string `gorm:"type:varchar(191);not null;uniqueIndex:uniq_additions_triple" json:"url"`
}

func (GameAdditionLink) TableName() string {
	return "game_additions_links"
}
