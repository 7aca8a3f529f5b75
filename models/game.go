package models

import (
	"time"
)

// Game 游戏条目，主键为RAWG分配的稳定ID，本地永不生成
type Game struct {
	ID              int64      `gorm:"primaryKey;autoIncrement:false;comment:RAWG游戏ID" json:"id"`
	Slug            string     `gorm:"type:varchar(191);uniqueIndex:uniq_games_slug;comment:URL安全的唯一标识" json:"slug"`
	Name            string     `gorm:"type:varchar(255);not null;comment:游戏名称" json:"name"`
	Description     string     `gorm:"type:text;comment:游戏简介" json:"description"`
	Released        *string    `gorm:"type:varchar(10);index:idx_games_released;comment:发售日期 YYYY-MM-DD" json:"released,omitempty"`
	Rating          *float64   `gorm:"comment:RAWG用户评分" json:"rating,omitempty"`
	MetascoreNumber *int       `gorm:"comment:Metacritic评分 0-100" json:"metascore_number,omitempty"`
	MetascoreColor  *string    `gorm:"type:varchar(8);comment:评分颜色 green/yellow/red" json:"metascore_color,omitempty"`
	Website         string     `gorm:"type:varchar(512);comment:官网地址" json:"website,omitempty"`
	AgeRating       string     `gorm:"type:varchar(64);comment:年龄分级标签" json:"age_rating,omitempty"`
	CoverImage      string     `gorm:"type:varchar(512);comment:封面图URL" json:"cover_image,omitempty"`
	LastCheckedAt   *time.Time `gorm:"index:idx_games_last_checked;comment:补全扫描最后检查时间" json:"-"`
}

func (Game) TableName() string {
	return "games"
}

// MetascoreColor 根据Metacritic分数计算显示颜色
// 75-100绿色，50-74黄色，0-49红色，空值或越界返回nil
func MetascoreColor(score *int) *string {
	if score == nil {
		return nil
	}
	var color string
	switch s := *score; {
	case s >= 75 && s <= 100:
		color = "green"
	case s >= 50 && s <= 74:
		color = "yellow"
	case s >= 0 && s <= 49:
		color = "red"
	default:
		return nil
	}
	return &color
}
