package rawg

// NamedRef RAWG通用的 {id, name, slug} 引用
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PlatformEntry 平台在详情里多包了一层 {"platform": {...}}
type PlatformEntry struct {
	Platform *NamedRef `json:"platform"`
}

// StoreRef 商店词表字段
type StoreRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Domain string `json:"domain"`
}

// StoreEntry 详情里的购买渠道：外层带本游戏的购买链接，内层是商店对象
type StoreEntry struct {
	ID    int64     `json:"id"`
	URL   string    `json:"url"`
	Store *StoreRef `json:"store"`
}

// ShortScreenshot 详情内嵌的缩略截图
type ShortScreenshot struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// GameDetail 游戏详情。列表接口返回的条目是它的子集，复用同一结构
type GameDetail struct {
	ID                        int64             `json:"id"`
	Slug                      string            `json:"slug"`
	Name                      string            `json:"name"`
	DescriptionRaw            string            `json:"description_raw"`
	Released                  *string           `json:"released"`
	Rating                    *float64          `json:"rating"`
	Metacritic                *int              `json:"metacritic"`
	Website                   string            `json:"website"`
	ESRBRating                *NamedRef         `json:"esrb_rating"`
	BackgroundImage           string            `json:"background_image"`
	BackgroundImageAdditional string            `json:"background_image_additional"`
	ShortScreenshots          []ShortScreenshot `json:"short_screenshots"`
	Genres                    []NamedRef        `json:"genres"`
	Platforms                 []PlatformEntry   `json:"platforms"`
	Developers                []NamedRef        `json:"developers"`
	Publishers                []NamedRef        `json:"publishers"`
	Tags                      []NamedRef        `json:"tags"`
	Stores                    []StoreEntry      `json:"stores"`
}

// GameListPage /games 列表接口的分页信封
type GameListPage struct {
	Next    *string      `json:"next"`
	Results []GameDetail `json:"results"`
}

// ScreenshotItem 截图接口返回的条目
type ScreenshotItem struct {
	ID     int64  `json:"id"`
	Image  string `json:"image"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
}

// ScreenshotPage 截图接口的分页信封，next为空表示没有后续页
type ScreenshotPage struct {
	Next    *string          `json:"next"`
	Results []ScreenshotItem `json:"results"`
}

// MovieData 视频清晰度可选项
type MovieData struct {
	Max string `json:"max"`
	P480 string `json:"480"`
}

// MovieItem 视频接口返回的条目
type MovieItem struct {
	Name    string    `json:"name"`
	Preview string    `json:"preview"`
	Data    MovieData `json:"data"`
}

// MoviePage /games/{id}/movies 的响应信封
type MoviePage struct {
	Results []MovieItem `json:"results"`
}

// Movie 规范化后的视频：url取max，没有则取480
type Movie struct {
	Name    string
	URL     string
	Preview string
}

// RelatedPage game-series与additions共用的响应信封
type RelatedPage struct {
	Results []NamedRef `json:"results"`
}

// SuggestedGame "类似游戏"条目，只取展示需要的最小字段，不再为每条发详情请求
type SuggestedGame struct {
	ID              *int64          `json:"id"`
	Name            string          `json:"name"`
	BackgroundImage string          `json:"background_image"`
	Released        *string         `json:"released"`
	Metacritic      *int            `json:"metacritic"`
	Platforms       []PlatformEntry `json:"platforms"`
	Genres          []NamedRef      `json:"genres"`
}

// SuggestionPage /games/{id}/suggested 的响应信封
type SuggestionPage struct {
	Results []SuggestedGame `json:"results"`
}
