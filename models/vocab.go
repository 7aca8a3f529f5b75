package models

import (
	"strings"
)

// Genre 游戏类型词表，ID由RAWG分配
type Genre struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"type:varchar(191);uniqueIndex:uniq_genres_name" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

// Platform 游戏平台词表，ID由RAWG分配
type Platform struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"type:varchar(191);uniqueIndex:uniq_platforms_name" json:"name"`
}

func (Platform) TableName() string {
	return "platforms"
}

// Store 商店词表（购买渠道），ID由RAWG分配
type Store struct {
	ID            int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string `gorm:"type:varchar(191)" json:"name"`
	Slug          string `gorm:"type:varchar(191);uniqueIndex:uniq_stores_slug" json:"slug"`
	Domain        string `gorm:"type:varchar(191)" json:"domain"`
	LogoURL       string `gorm:"type:varchar(512);comment:商店logo，后续人工补充" json:"logo_url,omitempty"`
	HoverImageURL string `gorm:"type:varchar(512);comment:悬停图，后续人工补充" json:"hover_image_url,omitempty"`
}

func (Store) TableName() string {
	return "stores"
}

// Developer 开发商词表。RAWG不保证稳定ID，去重键为NameKey（小写化名称）
type Developer struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(191)" json:"name"`
	NameKey string `gorm:"type:varchar(191);uniqueIndex:uniq_developers_key" json:"-"`
}

func (Developer) TableName() string {
	return "developers"
}

// Publisher 发行商词表，去重规则同Developer
type Publisher struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(191)" json:"name"`
	NameKey string `gorm:"type:varchar(191);uniqueIndex:uniq_publishers_key" json:"-"`
}

func (Publisher) TableName() string {
	return "publishers"
}

// Tag 标签词表，去重规则同Developer
type Tag struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(191)" json:"name"`
	NameKey string `gorm:"type:varchar(191);uniqueIndex:uniq_tags_key" json:"-"`
}

func (Tag) TableName() string {
	return "tags"
}

// NormalizeName 词表去重键：去首尾空白后小写化，展示名保留首次出现的大小写
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GameGenre 游戏-类型关联表
type GameGenre struct {
	GameID  int64 `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	GenreID int64 `gorm:"primaryKey;autoIncrement:false;index:idx_game_genres_genre" json:"genre_id"`
}

func (GameGenre) TableName() string {
	return "game_genres"
}

// GamePlatform 游戏-平台关联表
type GamePlatform struct {
	GameID     int64 `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	PlatformID int64 `gorm:"primaryKey;autoIncrement:false;index:idx_game_platforms_platform" json:"platform_id"`
}

func (GamePlatform) TableName() string {
	return "game_platforms"
}

// GameDeveloper 游戏-开发商关联表
type GameDeveloper struct {
	GameID      int64 `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	DeveloperID int64 `gorm:"primaryKey;autoIncrement:false" json:"developer_id"`
}

func (GameDeveloper) TableName() string {
	return "game_developers"
}

// GamePublisher 游戏-发行商关联表
type GamePublisher struct {
	GameID      int64 `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	PublisherID int64 `gorm:"primaryKey;autoIncrement:false" json:"publisher_id"`
}

func (GamePublisher) TableName() string {
	return "game_publishers"
}

// GameTag 游戏-标签关联表
type GameTag struct {
	GameID int64 `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	TagID  int64 `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
}

func (GameTag) TableName() string {
	return "game_tags"
}

// GameStore 游戏-商店关联表，附带该游戏的购买链接
type GameStore struct {
	GameID  int64  `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	StoreID int64  `gorm:"primaryKey;autoIncrement:false" json:"store_id"`
	URL     string `gorm:"type:varchar(512)" json:"url"`
}

func (GameStore) TableName() string {
	return "game_stores"
}
