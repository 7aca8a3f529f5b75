package models

// GameSuggestion "类似游戏"推荐快照，(game_id,position)唯一
// 故意不做外键关联：推荐接口对部分账号等级不可用，且被推荐的游戏不一定已入库，
// 因此这里存抓取时刻的展示字段副本，重跑时整行替换而不是累积旧名次
type GameSuggestion struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	GameID          int64   `gorm:"not null;index:idx_suggestions_gid;uniqueIndex:uniq_suggestions_pos;comment:来源游戏ID" json:"game_id"`
	Position        int     `gorm:"not null;uniqueIndex:uniq_suggestions_pos;comment:名次 1..8" json:"position"`
	SuggestedID     *int64  `gorm:"comment:被推荐游戏的RAWG ID" json:"suggested_id,omitempty"`
	Name            string  `gorm:"type:varchar(255)" json:"name"`
	ImageURL        string  `gorm:"type:varchar(512)" json:"image_url"`
	PlatformsCSV    string  `gorm:"type:varchar(512);comment:平台名分号连接" json:"platforms_csv"`
	MetascoreNumber *int    `json:"metascore_number,omitempty"`
	MetascoreColor  *string `gorm:"type:varchar(8)" json:"metascore_color,omitempty"`
	Released        *string `gorm:"type:varchar(10)" json:"released,omitempty"`
	GenresCSV       string  `gorm:"type:varchar(512);comment:类型名分号连接" json:"genres_csv"`
}

func (GameSuggestion) TableName() string {
	return "game_suggestions"
}
