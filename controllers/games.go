package controllers

import (
	"backend/models"
	"backend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GamesResponse 定义通用响应结构
type GamesResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Total   int64       `json:"total,omitempty"`
}

// GameCard 游戏索引页卡片
type GameCard struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Released        *string  `json:"released"`
	Rating          *float64 `json:"rating"`
	MetascoreNumber *int     `json:"metascore_number"`
	MetascoreColor  *string  `json:"metascore_color"`
	Screenshot      string   `json:"screenshot"`
	CoverImage      string   `json:"cover_image"`
	Genres          []string `json:"genres"`
	Platforms       []string `json:"platforms"`
}

// GameStoreInfo 详情页商店按钮数据
type GameStoreInfo struct {
	StoreID       int64  `json:"store_id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Domain        string `json:"domain"`
	URL           string `json:"url"`
	LogoURL       string `json:"logo_url"`
	HoverImageURL string `json:"hover_image_url"`
}

// GameDetailResponse 游戏详情页完整数据
type GameDetailResponse struct {
	GameCard
	Website     string                  `json:"website"`
	AgeRating   string                  `json:"age_rating"`
	Description string                  `json:"description"`
	Developers  []string                `json:"developers"`
	Publishers  []string                `json:"publishers"`
	Tags        []string                `json:"tags"`
	Screenshots []string                `json:"screenshots"`
	Media       []models.Media          `json:"media"`
	Stores      []GameStoreInfo         `json:"stores"`
	Series      []models.GameSeriesLink `json:"series"`
	Additions   []models.GameAdditionLink `json:"additions"`
	Suggestions []models.GameSuggestion `json:"suggestions"`
}

// vocabNames 通过关联表聚合词表名称列表
// 任一所需表缺失或查询失败都返回空列表，读接口从不因可选表缺失而整体失败
func vocabNames(joinModel, vocabModel interface{}, joinTable, vocabTable, fkColumn string, gid int64) []string {
	if !models.HasTable(joinModel) || !models.HasTable(vocabModel) {
		return []string{}
	}
	names := []string{}
	err := models.DB.Table(joinTable).
		Joins("JOIN "+vocabTable+" ON "+vocabTable+".id = "+joinTable+"."+fkColumn).
		Where(joinTable+".game_id = ?", gid).
		Order(vocabTable + ".name ASC").
		Distinct().
		Pluck(vocabTable+".name", &names).Error
	if err != nil {
		return []string{}
	}
	return names
}

func gameGenres(gid int64) []string {
	return vocabNames(&models.GameGenre{}, &models.Genre{}, "game_genres", "genres", "genre_id", gid)
}

func gamePlatforms(gid int64) []string {
	return vocabNames(&models.GamePlatform{}, &models.Platform{}, "game_platforms", "platforms", "platform_id", gid)
}

// firstScreenshot 卡片缩略图：旧表第一张截图，没有则退回封面
func firstScreenshot(game *models.Game) string {
	if models.HasTable(&models.Screenshot{}) {
		var urls []string
		err := models.DB.Model(&models.Screenshot{}).
			Where("game_id = ?", game.ID).
			Order("id ASC").
			Limit(1).
			Pluck("url", &urls).Error
		if err == nil && len(urls) > 0 {
			return urls[0]
		}
	}
	return game.CoverImage
}

func buildCard(game *models.Game) GameCard {
	return GameCard{
		ID:              game.ID,
		Slug:            game.Slug,
		Name:            game.Name,
		Released:        game.Released,
		Rating:          game.Rating,
		MetascoreNumber: game.MetascoreNumber,
		MetascoreColor:  game.MetascoreColor,
		Screenshot:      firstScreenshot(game),
		CoverImage:      game.CoverImage,
		Genres:          gameGenres(game.ID),
		Platforms:       gamePlatforms(game.ID),
	}
}

// @Summary 获取游戏列表
// @Description 获取游戏索引页卡片列表，按Metacritic分数和评分排序，支持分页；无数据时返回空列表而不是404
// @Tags 游戏
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量(默认60)"
// @Success 200 {object} GamesResponse
// @Router /games [get]
func GetGames(c *gin.Context) {
	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var total int64
	if err := models.DB.Model(&models.Game{}).Count(&total).Error; err != nil {
		utils.LogError("获取游戏总数失败", err)
		c.JSON(http.StatusOK, GamesResponse{
			Code:    http.StatusOK,
			Message: "获取游戏列表成功",
			Data:    []GameCard{},
		})
		return
	}

	var games []models.Game
	err := models.DB.
		Order("COALESCE(metascore_number, 0) DESC").
		Order("rating DESC").
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&games).Error
	if err != nil {
		utils.LogError("获取游戏列表失败", err)
		c.JSON(http.StatusOK, GamesResponse{
			Code:    http.StatusOK,
			Message: "获取游戏列表成功",
			Data:    []GameCard{},
		})
		return
	}

	cards := make([]GameCard, 0, len(games))
	for i := range games {
		cards = append(cards, buildCard(&games[i]))
	}

	c.JSON(http.StatusOK, GamesResponse{
		Code:    http.StatusOK,
		Message: "获取游戏列表成功",
		Data:    cards,
		Total:   total,
	})
}

// @Summary 获取游戏详情
// @Description 按slug获取单个游戏的全部展示数据：标量字段、词表列表、截图、媒体、商店链接和推荐
// @Tags 游戏
// @Produce json
// @Param slug path string true "游戏slug"
// @Success 200 {object} GamesResponse
// @Failure 404 {object} GamesResponse
// @Router /games/{slug} [get]
func GetGameBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var game models.Game
	if err := models.DB.First(&game, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, GamesResponse{
				Code:    http.StatusNotFound,
				Message: "游戏不存在",
			})
			return
		}
		utils.LogError("获取游戏详情失败", err)
		c.JSON(http.StatusInternalServerError, GamesResponse{
			Code:    http.StatusInternalServerError,
			Message: "获取游戏详情失败",
			Error:   err.Error(),
		})
		return
	}

	detail := GameDetailResponse{
		GameCard:    buildCard(&game),
		Website:     game.Website,
		AgeRating:   game.AgeRating,
		Description: game.Description,
		Developers:  vocabNames(&models.GameDeveloper{}, &models.Developer{}, "game_developers", "developers", "developer_id", game.ID),
		Publishers:  vocabNames(&models.GamePublisher{}, &models.Publisher{}, "game_publishers", "publishers", "publisher_id", game.ID),
		Tags:        vocabNames(&models.GameTag{}, &models.Tag{}, "game_tags", "tags", "tag_id", game.ID),
		Screenshots: []string{},
		Media:       []models.Media{},
		Stores:      []GameStoreInfo{},
		Series:      []models.GameSeriesLink{},
		Additions:   []models.GameAdditionLink{},
		Suggestions: []models.GameSuggestion{},
	}

	if models.HasTable(&models.Screenshot{}) {
		models.DB.Model(&models.Screenshot{}).
			Where("game_id = ?", game.ID).
			Order("id ASC").
			Pluck("url", &detail.Screenshots)
	}

	if models.HasTable(&models.Media{}) {
		models.DB.Where("game_id = ?", game.ID).
			Order("type ASC").Order("position ASC").
			Find(&detail.Media)
	}

	if models.HasTable(&models.GameStore{}) && models.HasTable(&models.Store{}) {
		models.DB.Table("game_stores").
			Select("stores.id AS store_id, stores.name, stores.slug, stores.domain, game_stores.url, stores.logo_url, stores.hover_image_url").
			Joins("JOIN stores ON stores.id = game_stores.store_id").
			Where("game_stores.game_id = ?", game.ID).
			Order("stores.name ASC").
			Scan(&detail.Stores)
	}

	if models.HasTable(&models.GameSeriesLink{}) {
		models.DB.Where("game_id = ?", game.ID).Order("name ASC").Find(&detail.Series)
	}
	if models.HasTable(&models.GameAdditionLink{}) {
		models.DB.Where("game_id = ?", game.ID).Order("name ASC").Find(&detail.Additions)
	}

	if models.HasTable(&models.GameSuggestion{}) {
		models.DB.Where("game_id = ?", game.ID).
			Order("position ASC").
			Limit(24).
			Find(&detail.Suggestions)
	}

	c.JSON(http.StatusOK, GamesResponse{
		Code:    http.StatusOK,
		Message: "获取游戏详情成功",
		Data:    detail,
	})
}
