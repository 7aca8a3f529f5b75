package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupGamesTest 内存库 + 只读路由，预置两款游戏的展示数据
func setupGamesTest(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存库失败: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	models.SetDB(db)

	released := "2011-04-18"
	rating := 4.6
	meta := 82
	color := "green"
	games := []models.Game{
		{
			ID: 1001, Slug: "portal-2", Name: "Portal 2",
			Released: &released, Rating: &rating,
			MetascoreNumber: &meta, MetascoreColor: &color,
			Description: "A first-person puzzle game.",
			Website:     "https://www.thinkwithportals.com",
			AgeRating:   "Everyone 10+",
			CoverImage:  "https://media.rawg.io/media/games/2ba/cover.jpg",
		},
		{ID: 1002, Slug: "no-score", Name: "No Score Game"},
	}
	for i := range games {
		if err := db.Create(&games[i]).Error; err != nil {
			t.Fatalf("预置游戏失败: %v", err)
		}
	}

	db.Create(&models.Genre{ID: 7, Name: "Puzzle"})
	db.Create(&models.GameGenre{GameID: 1001, GenreID: 7})
	db.Create(&models.Platform{ID: 4, Name: "PC"})
	db.Create(&models.GamePlatform{GameID: 1001, PlatformID: 4})
	db.Create(&models.Developer{Name: "Valve Software", NameKey: "valve software"})
	db.Create(&models.GameDeveloper{GameID: 1001, DeveloperID: 1})
	db.Create(&models.Store{ID: 1, Name: "Steam", Slug: "steam", Domain: "store.steampowered.com"})
	db.Create(&models.GameStore{GameID: 1001, StoreID: 1, URL: "https://store.steampowered.com/app/620"})
	db.Create(&models.Media{GameID: 1001, Type: models.MediaTypeImage, URL: "https://media.rawg.io/media/games/2ba/s1.jpg", Position: 1})
	db.Create(&models.Screenshot{GameID: 1001, URL: "https://media.rawg.io/media/games/2ba/s1.jpg"})
	db.Create(&models.GameSuggestion{GameID: 1001, Position: 1, Name: "Half-Life 2"})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/games", GetGames)
	r.GET("/api/v1/games/:slug", GetGameBySlug)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, GamesResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var resp GamesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	return w, resp
}

// TestGetGames 测试游戏列表排序与卡片字段
func TestGetGames(t *testing.T) {
	r := setupGamesTest(t)

	w, resp := doRequest(t, r, "/api/v1/games")
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望200", w.Code)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, 期望2", resp.Total)
	}

	data, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("重编码Data失败: %v", err)
	}
	var cards []GameCard
	if err := json.Unmarshal(data, &cards); err != nil {
		t.Fatalf("解析卡片列表失败: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("卡片数量 = %d, 期望2", len(cards))
	}
	// 有Metacritic分数的排前面
	if cards[0].Slug != "portal-2" {
		t.Errorf("第一张卡片 = %q, 期望portal-2", cards[0].Slug)
	}
	if len(cards[0].Genres) != 1 || cards[0].Genres[0] != "Puzzle" {
		t.Errorf("类型列表 = %v, 期望[Puzzle]", cards[0].Genres)
	}
	if cards[0].Screenshot == "" {
		t.Error("卡片缩略图为空")
	}
	// 没有任何关联数据的游戏也正常出卡片
	if cards[1].Slug != "no-score" {
		t.Errorf("第二张卡片 = %q, 期望no-score", cards[1].Slug)
	}
	if cards[1].Genres == nil {
		t.Error("无类型时应返回空列表而不是null")
	}
}

// TestGetGamesPagination 测试分页参数
func TestGetGamesPagination(t *testing.T) {
	r := setupGamesTest(t)

	_, resp := doRequest(t, r, "/api/v1/games?page=1&page_size=1")
	data, _ := json.Marshal(resp.Data)
	var cards []GameCard
	if err := json.Unmarshal(data, &cards); err != nil {
		t.Fatalf("解析卡片列表失败: %v", err)
	}
	if len(cards) != 1 {
		t.Errorf("卡片数量 = %d, 期望1", len(cards))
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, 期望2(总数不受分页影响)", resp.Total)
	}
}

// TestGetGameBySlug 测试详情页全部区块
func TestGetGameBySlug(t *testing.T) {
	r := setupGamesTest(t)

	w, resp := doRequest(t, r, "/api/v1/games/portal-2")
	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望200", w.Code)
	}

	data, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("重编码Data失败: %v", err)
	}
	var detail GameDetailResponse
	if err := json.Unmarshal(data, &detail); err != nil {
		t.Fatalf("解析详情失败: %v", err)
	}

	if detail.Name != "Portal 2" || detail.Website == "" || detail.AgeRating != "Everyone 10+" {
		t.Errorf("标量字段不正确: %+v", detail)
	}
	if len(detail.Developers) != 1 || detail.Developers[0] != "Valve Software" {
		t.Errorf("开发商列表 = %v", detail.Developers)
	}
	if len(detail.Stores) != 1 || detail.Stores[0].Name != "Steam" || detail.Stores[0].URL == "" {
		t.Errorf("商店列表不正确: %+v", detail.Stores)
	}
	if len(detail.Screenshots) != 1 {
		t.Errorf("截图列表 = %v, 期望1张", detail.Screenshots)
	}
	if len(detail.Media) != 1 {
		t.Errorf("media列表数量 = %d, 期望1", len(detail.Media))
	}
	if len(detail.Suggestions) != 1 || detail.Suggestions[0].Name != "Half-Life 2" {
		t.Errorf("推荐列表不正确: %+v", detail.Suggestions)
	}
}

// TestGetGameBySlugNotFound 测试不存在的slug返回404
func TestGetGameBySlugNotFound(t *testing.T) {
	r := setupGamesTest(t)

	w, resp := doRequest(t, r, "/api/v1/games/does-not-exist")
	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d, 期望404", w.Code)
	}
	if resp.Code != http.StatusNotFound {
		t.Errorf("响应Code = %d, 期望404", resp.Code)
	}
}
