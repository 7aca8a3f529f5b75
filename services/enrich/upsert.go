package enrich

import (
	"backend/models"
	"backend/services/rawg"
	"strconv"
	"strings"

	"gorm.io/gorm/clause"
)

// chooseCover 从详情里选封面：背景图 > 备用背景图 > 内嵌缩略截图
// 传入的详情图片已经过规范化
func chooseCover(d *rawg.GameDetail) string {
	if d.BackgroundImage != "" {
		return d.BackgroundImage
	}
	if d.BackgroundImageAdditional != "" {
		return d.BackgroundImageAdditional
	}
	for _, s := range d.ShortScreenshots {
		if s.Image != "" {
			return s.Image
		}
	}
	return ""
}

// upsertGameCore 写入游戏核心行：首次见到该ID时INSERT IGNORE，
// 之后只回填空字段（fill-if-missing），已有值永不被覆盖
func (s *Service) upsertGameCore(d *rawg.GameDetail) error {
	gid := d.ID
	slug := strings.TrimSpace(d.Slug)
	if slug == "" {
		slug = strconv.FormatInt(gid, 10)
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = slug
	}

	core := models.Game{
		ID:       gid,
		Slug:     slug,
		Name:     name,
		Released: d.Released,
		Rating:   d.Rating,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&core).Error; err != nil {
		return err
	}

	var existing models.Game
	if err := s.db.First(&existing, "id = ?", gid).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if about := strings.TrimSpace(d.DescriptionRaw); existing.Description == "" && about != "" {
		updates["description"] = about
	}
	if existing.Website == "" && d.Website != "" {
		updates["website"] = d.Website
	}
	if existing.AgeRating == "" && d.ESRBRating != nil && d.ESRBRating.Name != "" {
		updates["age_rating"] = d.ESRBRating.Name
	}
	if cover := chooseCover(d); existing.CoverImage == "" && cover != "" {
		updates["cover_image"] = cover
	}
	if (existing.Released == nil || *existing.Released == "") && d.Released != nil && *d.Released != "" {
		updates["released"] = *d.Released
	}
	if existing.Rating == nil && d.Rating != nil {
		updates["rating"] = *d.Rating
	}
	if existing.MetascoreNumber == nil && d.Metacritic != nil {
		updates["metascore_number"] = *d.Metacritic
		if color := models.MetascoreColor(d.Metacritic); color != nil {
			updates["metascore_color"] = *color
		}
	}

	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.Game{}).Where("id = ?", gid).Updates(updates).Error
}

// SeedListing 用列表接口的条目落地核心行与类型/平台关联，
// 描述、购买渠道等详情字段留给后续补全流程
func (s *Service) SeedListing(d *rawg.GameDetail) error {
	if err := s.upsertGameCore(d); err != nil {
		return err
	}
	return s.upsertGenresPlatforms(d.ID, d)
}

// upsertVocabLists 开发商/发行商/标签统一走"共享词表+关联表"：
// 先按小写化名称键FirstOrCreate词表行，再INSERT IGNORE关联行
func (s *Service) upsertVocabLists(gid int64, d *rawg.GameDetail) error {
	for _, ref := range d.Developers {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			continue
		}
		var dev models.Developer
		if err := s.db.Where(models.Developer{NameKey: models.NormalizeName(name)}).
			Attrs(models.Developer{Name: name}).FirstOrCreate(&dev).Error; err != nil {
			return err
		}
		link := models.GameDeveloper{GameID: gid, DeveloperID: dev.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}

	for _, ref := range d.Publishers {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			continue
		}
		var pub models.Publisher
		if err := s.db.Where(models.Publisher{NameKey: models.NormalizeName(name)}).
			Attrs(models.Publisher{Name: name}).FirstOrCreate(&pub).Error; err != nil {
			return err
		}
		link := models.GamePublisher{GameID: gid, PublisherID: pub.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}

	for _, ref := range d.Tags {
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			continue
		}
		var tag models.Tag
		if err := s.db.Where(models.Tag{NameKey: models.NormalizeName(name)}).
			Attrs(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		link := models.GameTag{GameID: gid, TagID: tag.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// upsertGenresPlatforms 类型/平台带RAWG稳定ID，词表行与关联行都INSERT IGNORE，
// 重复跑任意次都收敛到同一组行
func (s *Service) upsertGenresPlatforms(gid int64, d *rawg.GameDetail) error {
	for _, g := range d.Genres {
		if g.ID == 0 || strings.TrimSpace(g.Name) == "" {
			continue
		}
		genre := models.Genre{ID: g.ID, Name: strings.TrimSpace(g.Name)}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&genre).Error; err != nil {
			return err
		}
		link := models.GameGenre{GameID: gid, GenreID: g.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}

	for _, p := range d.Platforms {
		if p.Platform == nil || p.Platform.ID == 0 || strings.TrimSpace(p.Platform.Name) == "" {
			continue
		}
		platform := models.Platform{ID: p.Platform.ID, Name: strings.TrimSpace(p.Platform.Name)}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&platform).Error; err != nil {
			return err
		}
		link := models.GamePlatform{GameID: gid, PlatformID: p.Platform.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// upsertStoreLinks 写入"哪里购买"：商店词表行+带购买链接的关联行
func (s *Service) upsertStoreLinks(gid int64, d *rawg.GameDetail) error {
	for _, entry := range d.Stores {
		sid := entry.ID
		store := models.Store{}
		if entry.Store != nil {
			if entry.Store.ID != 0 {
				sid = entry.Store.ID
			}
			store.Name = entry.Store.Name
			store.Slug = entry.Store.Slug
			store.Domain = entry.Store.Domain
		}
		if sid == 0 {
			continue
		}
		store.ID = sid
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&store).Error; err != nil {
			return err
		}
		link := models.GameStore{GameID: gid, StoreID: sid, URL: entry.URL}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// relatedURL 系列/DLC统一重写成 https://rawg.io/games/<slug>，去掉末尾斜杠
func relatedURL(slug string) string {
	return strings.TrimRight(relatedGameBase+"/"+slug, "/")
}

// upsertRelatedLinks 抓取并写入系列与DLC链接
// 两个子资源各自隔离：任一抓取失败只损失自己，不影响对方
func (s *Service) upsertRelatedLinks(gid int64) {
	for _, item := range s.client.FetchSeries(gid) {
		if item.Name == "" || item.Slug == "" {
			continue
		}
		row := models.GameSeriesLink{GameID: gid, Name: strings.TrimSpace(item.Name), URL: relatedURL(item.Slug)}
		s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	}
	for _, item := range s.client.FetchAdditions(gid) {
		if item.Name == "" || item.Slug == "" {
			continue
		}
		row := models.GameAdditionLink{GameID: gid, Name: strings.TrimSpace(item.Name), URL: relatedURL(item.Slug)}
		s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	}
}

// coverFallback 封面仍为空时，用已抓取的第一张截图补上
func (s *Service) coverFallback(gid int64, shots []rawg.ScreenshotItem) {
	if len(shots) == 0 {
		return
	}
	var existing models.Game
	if err := s.db.First(&existing, "id = ?", gid).Error; err != nil {
		return
	}
	if strings.TrimSpace(existing.CoverImage) != "" {
		return
	}
	s.db.Model(&models.Game{}).Where("id = ?", gid).Update("cover_image", shots[0].Image)
}

// storeMediaImages 截图写入规范化media表（kind=image，带位置）
// 旧版screenshots表仅在该游戏还没有旧行时镜像写入前40张，供未迁移的前端使用
func (s *Service) storeMediaImages(gid int64, shots []rawg.ScreenshotItem) error {
	if len(shots) == 0 {
		return nil
	}

	pos := 1
	var legacy []models.Screenshot
	for _, item := range shots {
		if item.Image == "" {
			continue
		}
		row := models.Media{GameID: gid, Type: models.MediaTypeImage, URL: item.Image, Position: pos}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
		if pos <= legacyScreenshotCap {
			legacy = append(legacy, models.Screenshot{GameID: gid, URL: item.Image})
		}
		pos++
	}

	// 旧表作为被发现的兼容能力处理：表不存在就不镜像
	if !s.db.Migrator().HasTable(&models.Screenshot{}) || len(legacy) == 0 {
		return nil
	}
	var count int64
	if err := s.db.Model(&models.Screenshot{}).Where("game_id = ?", gid).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.Create(&legacy).Error
}

// storeMediaVideos 视频写入media表（kind=video，带预览图），不做旧表镜像
func (s *Service) storeMediaVideos(gid int64, movies []rawg.Movie) error {
	pos := 1
	for _, m := range movies {
		if m.URL == "" {
			continue
		}
		var preview *string
		if m.Preview != "" {
			p := m.Preview
			preview = &p
		}
		row := models.Media{GameID: gid, Type: models.MediaTypeVideo, URL: m.URL, PreviewURL: preview, Position: pos}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}
		pos++
	}
	return nil
}

// storeSuggestions 推荐按(game_id,position)整行REPLACE，
// 重跑总是反映最新快照而不是累积旧名次
func (s *Service) storeSuggestions(gid int64, suggestions []rawg.SuggestedGame) error {
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	pos := 1
	for _, item := range suggestions {
		var platforms []string
		for _, p := range item.Platforms {
			if p.Platform != nil && p.Platform.Name != "" {
				platforms = append(platforms, p.Platform.Name)
			}
		}
		var genres []string
		for _, g := range item.Genres {
			if g.Name != "" {
				genres = append(genres, g.Name)
			}
		}
		row := models.GameSuggestion{
			GameID:          gid,
			Position:        pos,
			SuggestedID:     item.ID,
			Name:            item.Name,
			ImageURL:        item.BackgroundImage,
			PlatformsCSV:    strings.Join(platforms, "; "),
			MetascoreNumber: item.Metacritic,
			MetascoreColor:  models.MetascoreColor(item.Metacritic),
			Released:        item.Released,
			GenresCSV:       strings.Join(genres, "; "),
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}, {Name: "position"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return err
		}
		pos++
	}
	return nil
}
