package enrich

import (
	"backend/services/rawg"
	"backend/utils"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// FindFolderIDs 扫描截图根目录的一级子目录，目录名能解析成整数的即候选游戏ID
// 非数字目录名直接忽略，不算错误；根目录不存在时返回空集
// 只用于孤儿入库阶段的枚举，从不删除或校验目录内容
func (s *Service) FindFolderIDs() ([]int64, error) {
	entries, err := os.ReadDir(s.cfg.ShotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var ids []int64
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := strconv.ParseInt(entry.Name(), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// saveImagesToDisk 把截图下载到 <shots_root>/<game_id>/ 下
// 第一张存为cover.jpg，其余按screenshot_NNN.jpg编号；已存在的文件跳过
// 单张下载失败只记录，不影响其余图片
func (s *Service) saveImagesToDisk(gid int64, shots []rawg.ScreenshotItem) error {
	if len(shots) == 0 {
		return nil
	}

	destDir := filepath.Join(s.cfg.ShotsDir, strconv.FormatInt(gid, 10))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	for idx, item := range shots {
		if item.Image == "" {
			continue
		}
		name := "cover.jpg"
		if idx > 0 {
			name = fmt.Sprintf("screenshot_%03d.jpg", idx)
		}
		target := filepath.Join(destDir, name)
		if err := utils.DownloadToFile(item.Image, target); err != nil {
			utils.LogError(fmt.Sprintf("下载截图失败: %s", item.Image), err)
		}
	}
	return nil
}
