package models

// 媒体类型常量
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media 规范化媒体表（截图+视频），(game_id,type,url)唯一，重复抓取不产生重复行
type Media struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	GameID     int64   `gorm:"not null;index:idx_media_gid;uniqueIndex:uniq_media_game_type_url;comment:所属游戏ID" json:"game_id"`
	Type       string  `gorm:"type:varchar(8);not null;uniqueIndex:uniq_media_game_type_url;comment:image或video" json:"type"`
	URL        string  `gorm:"type:varchar(512);not null;uniqueIndex:uniq_media_game_type_url" json:"url"`
	PreviewURL *string `gorm:"type:varchar(512);comment:视频预览图" json:"preview_url,omitempty"`
	Position   int     `gorm:"comment:展示顺序" json:"position"`
}

func (Media) TableName() string {
	return "media"
}

// Screenshot 旧版截图表，为尚未迁移到media表的前端保留
type Screenshot struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	GameID int64  `gorm:"not null;index:idx_shots_gid" json:"game_id"`
	URL    string `gorm:"type:varchar(512);not null" json:"url"`
}

func (Screenshot) TableName() string {
	return "screenshots"
}
