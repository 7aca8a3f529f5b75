package enrich

import (
	"backend/models"
	"backend/services/rawg"
	"backend/utils"
	"errors"
	"fmt"
	"time"
)

// RunSummary 一次完整运行的统计结果
type RunSummary struct {
	FoldersFound    int       `json:"folders_found"`
	RowsInDB        int       `json:"rows_in_db"`
	OrphansInserted int       `json:"orphans_inserted"`
	OrphanFailures  int       `json:"orphan_failures"`
	Scanned         int       `json:"scanned"`
	Enriched        int       `json:"enriched"`
	EnrichFailures  int       `json:"enrich_failures"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}

// String 终端摘要
func (r *RunSummary) String() string {
	return fmt.Sprintf(
		"本地目录%d个，库内%d行；孤儿入库 成功=%d 失败=%d；扫描%d行，补全 成功=%d 失败=%d，耗时%s",
		r.FoldersFound, r.RowsInDB,
		r.OrphansInserted, r.OrphanFailures,
		r.Scanned, r.Enriched, r.EnrichFailures,
		r.FinishedAt.Sub(r.StartedAt).Round(time.Second),
	)
}

// EnrichOne 对单个游戏做完整富集：详情+全部子资源
// 详情抓取失败（含404）整体失败，不写任何状态；
// 子资源各自隔离，单项缺失只降级不中断；
// 全部写入都是INSERT IGNORE或fill-if-missing，重复执行不产生重复行
func (s *Service) EnrichOne(gid int64) error {
	details, err := s.client.FetchDetails(gid)
	if err != nil {
		return err
	}

	if err := s.upsertGameCore(details); err != nil {
		return fmt.Errorf("写入核心行失败: %v", err)
	}
	if err := s.upsertVocabLists(gid, details); err != nil {
		return fmt.Errorf("写入词表失败: %v", err)
	}
	if err := s.upsertGenresPlatforms(gid, details); err != nil {
		return fmt.Errorf("写入类型平台失败: %v", err)
	}
	if err := s.upsertStoreLinks(gid, details); err != nil {
		return fmt.Errorf("写入商店链接失败: %v", err)
	}

	// 以下子资源失败只降级
	s.upsertRelatedLinks(gid)

	// 截图只抓一次，封面兜底和入库共用同一份结果
	shots := s.client.FetchAllScreenshots(gid, s.cfg.MaxImages)
	s.coverFallback(gid, shots)
	if err := s.storeMediaImages(gid, shots); err != nil {
		utils.LogError(fmt.Sprintf("游戏%d截图入库失败", gid), err)
	}
	if err := s.saveImagesToDisk(gid, shots); err != nil {
		utils.LogError(fmt.Sprintf("游戏%d截图落盘失败", gid), err)
	}

	if err := s.storeMediaVideos(gid, s.client.FetchMovies(gid)); err != nil {
		utils.LogError(fmt.Sprintf("游戏%d视频入库失败", gid), err)
	}

	// 推荐接口对部分账号等级不可用，失败直接跳过
	if suggestions, err := s.client.FetchSuggestions(gid, maxSuggestions); err == nil {
		if err := s.storeSuggestions(gid, suggestions); err != nil {
			utils.LogError(fmt.Sprintf("游戏%d推荐入库失败", gid), err)
		}
	}

	s.stampChecked(gid)
	return nil
}

// stampChecked 记录补全检查时间，扫描阶段据此跳过近期已查过的行
func (s *Service) stampChecked(gid int64) {
	now := time.Now()
	s.db.Model(&models.Game{}).Where("id = ?", gid).Update("last_checked_at", now)
}

// Run 完整运行：两个独立阶段
// 1. 孤儿入库：本地截图目录里有、库里没有的ID，逐个完整富集
// 2. 补全扫描：按ID升序扫描检查时间为空或过期的行，命中缺失判定的重新富集
// 单个ID失败计数后跳过，同一轮内不重试，也不回滚此前的成功写入
func (s *Service) Run() (*RunSummary, error) {
	summary := &RunSummary{StartedAt: time.Now()}

	folderIDs, err := s.FindFolderIDs()
	if err != nil {
		return nil, fmt.Errorf("扫描截图目录失败: %v", err)
	}
	summary.FoldersFound = len(folderIDs)

	var dbIDs []int64
	if err := s.db.Model(&models.Game{}).Pluck("id", &dbIDs).Error; err != nil {
		return nil, fmt.Errorf("读取现有游戏ID失败: %v", err)
	}
	summary.RowsInDB = len(dbIDs)

	known := make(map[int64]bool, len(dbIDs))
	for _, id := range dbIDs {
		known[id] = true
	}
	var orphans []int64
	for _, id := range folderIDs {
		if !known[id] {
			orphans = append(orphans, id)
		}
	}
	utils.LogInfo(fmt.Sprintf("发现%d个本地目录，库内%d行，待入库孤儿%d个", len(folderIDs), len(dbIDs), len(orphans)))

	for _, gid := range orphans {
		if err := s.EnrichOne(gid); err != nil {
			utils.LogError(fmt.Sprintf("孤儿游戏%d入库失败", gid), err)
			summary.OrphanFailures++
		} else {
			summary.OrphansInserted++
		}
		time.Sleep(s.cfg.ItemDelay)
	}

	// 补全扫描：只扫检查时间为空或早于重查间隔的行
	cutoff := time.Now().Add(-s.cfg.RecheckInterval)
	var sweepIDs []int64
	err = s.db.Model(&models.Game{}).
		Where("last_checked_at IS NULL OR last_checked_at < ?", cutoff).
		Order("id ASC").
		Pluck("id", &sweepIDs).Error
	if err != nil {
		return nil, fmt.Errorf("读取待扫描ID失败: %v", err)
	}
	summary.Scanned = len(sweepIDs)
	utils.LogInfo(fmt.Sprintf("开始扫描%d个游戏的缺失字段", len(sweepIDs)))

	for _, gid := range sweepIDs {
		needs, err := s.NeedsEnrich(gid)
		if err != nil {
			utils.LogError(fmt.Sprintf("检查游戏%d完整性失败", gid), err)
			summary.EnrichFailures++
			continue
		}
		if !needs {
			s.stampChecked(gid)
			continue
		}
		if err := s.EnrichOne(gid); err != nil {
			utils.LogError(fmt.Sprintf("补全游戏%d失败", gid), err)
			summary.EnrichFailures++
		} else {
			summary.Enriched++
		}
		time.Sleep(s.cfg.ItemDelay)
	}

	summary.FinishedAt = time.Now()
	utils.LogInfo("----- 运行摘要 -----")
	utils.LogInfo(summary.String())
	return summary, nil
}

// RunIDs 定向模式：跳过两个枚举阶段，只处理显式给出的ID列表
// 每个ID输出一行结果
func (s *Service) RunIDs(ids []int64) *RunSummary {
	summary := &RunSummary{StartedAt: time.Now(), Scanned: len(ids)}

	for _, gid := range ids {
		err := s.EnrichOne(gid)
		switch {
		case err == nil:
			summary.Enriched++
			var game models.Game
			if s.db.First(&game, "id = ?", gid).Error == nil {
				utils.LogInfo(fmt.Sprintf("[%d] 已补全 cover=%t about=%t site=%t age=%t meta=%v",
					gid, game.CoverImage != "", game.Description != "", game.Website != "", game.AgeRating != "", game.MetascoreNumber))
			}
		case errors.Is(err, rawg.ErrNotFound):
			summary.EnrichFailures++
			utils.LogInfo(fmt.Sprintf("[%d] RAWG详情不存在", gid))
		default:
			summary.EnrichFailures++
			utils.LogError(fmt.Sprintf("[%d] 补全失败", gid), err)
		}
		time.Sleep(s.cfg.ItemDelay)
	}

	summary.FinishedAt = time.Now()
	return summary
}
