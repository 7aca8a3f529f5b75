package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// namedRow 词表关联查询的扫描目标
type namedRow struct {
	GameID int64
	Name   string
}

// semijoin 去重排序后用"; "拼接，和历史CSV格式保持一致
func semijoin(names []string) string {
	seen := map[string]bool{}
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return strings.Join(out, "; ")
}

// vocabNames 按游戏ID聚合词表名称
func vocabNames(db *gorm.DB, joinTable, vocabTable, fkColumn string) (map[int64][]string, error) {
	var rows []namedRow
	err := db.Table(joinTable).
		Select(joinTable+".game_id, "+vocabTable+".name").
		Joins("JOIN " + vocabTable + " ON " + vocabTable + ".id = " + joinTable + "." + fkColumn).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	m := map[int64][]string{}
	for _, r := range rows {
		m[r.GameID] = append(m[r.GameID], r.Name)
	}
	return m, nil
}

func main() {
	// 定义命令行参数
	var dbPath string
	var outPath string
	flag.StringVar(&dbPath, "db", "latestgames.db", "SQLite数据库文件路径")
	flag.StringVar(&outPath, "out", "manifest.csv", "输出的CSV文件路径")

	// 解析命令行参数
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("打开数据库失败: %v\n", err)
		os.Exit(1)
	}

	var games []models.Game
	if err := db.Order("COALESCE(released,'0000-00-00') DESC, id DESC").Find(&games).Error; err != nil {
		fmt.Printf("查询游戏列表失败: %v\n", err)
		os.Exit(1)
	}

	genresMap, err := vocabNames(db, "game_genres", "genres", "genre_id")
	if err != nil {
		fmt.Printf("查询类型失败: %v\n", err)
		os.Exit(1)
	}
	platsMap, err := vocabNames(db, "game_platforms", "platforms", "platform_id")
	if err != nil {
		fmt.Printf("查询平台失败: %v\n", err)
		os.Exit(1)
	}
	devsMap, err := vocabNames(db, "game_developers", "developers", "developer_id")
	if err != nil {
		fmt.Printf("查询开发商失败: %v\n", err)
		os.Exit(1)
	}
	pubsMap, err := vocabNames(db, "game_publishers", "publishers", "publisher_id")
	if err != nil {
		fmt.Printf("查询发行商失败: %v\n", err)
		os.Exit(1)
	}
	tagsMap, err := vocabNames(db, "game_tags", "tags", "tag_id")
	if err != nil {
		fmt.Printf("查询标签失败: %v\n", err)
		os.Exit(1)
	}

	var seriesRows []models.GameSeriesLink
	if err := db.Order("id ASC").Find(&seriesRows).Error; err != nil {
		fmt.Printf("查询系列链接失败: %v\n", err)
		os.Exit(1)
	}
	seriesMap := map[int64][]models.GameSeriesLink{}
	for _, r := range seriesRows {
		seriesMap[r.GameID] = append(seriesMap[r.GameID], r)
	}

	var addRows []models.GameAdditionLink
	if err := db.Order("id ASC").Find(&addRows).Error; err != nil {
		fmt.Printf("查询DLC链接失败: %v\n", err)
		os.Exit(1)
	}
	addsMap := map[int64][]models.GameAdditionLink{}
	for _, r := range addRows {
		addsMap[r.GameID] = append(addsMap[r.GameID], r)
	}

	var shotRows []models.Media
	if err := db.Where("type = ?", models.MediaTypeImage).
		Order("game_id ASC, position ASC").Find(&shotRows).Error; err != nil {
		fmt.Printf("查询截图失败: %v\n", err)
		os.Exit(1)
	}
	shotsMap := map[int64][]string{}
	for _, r := range shotRows {
		shotsMap[r.GameID] = append(shotsMap[r.GameID], r.URL)
	}

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Printf("创建输出文件失败: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"id", "slug", "name", "released", "rating",
		"genres", "platforms",
		"developers", "developers_list",
		"publishers", "publishers_list",
		"tags",
		"age_rating", "website", "cover_image", "about",
		"series_names", "series_urls", "additions_names", "additions_urls",
		"num_screenshots", "first_screenshot",
	}
	if err := w.Write(header); err != nil {
		fmt.Printf("写入CSV表头失败: %v\n", err)
		os.Exit(1)
	}

	for _, g := range games {
		released := ""
		if g.Released != nil {
			released = *g.Released
		}
		rating := ""
		if g.Rating != nil {
			rating = strconv.FormatFloat(*g.Rating, 'g', -1, 64)
		}

		devs := semijoin(devsMap[g.ID])
		pubs := semijoin(pubsMap[g.ID])

		var seriesNames, seriesURLs []string
		for _, s := range seriesMap[g.ID] {
			if s.Name != "" {
				seriesNames = append(seriesNames, s.Name)
			}
			if s.URL != "" {
				seriesURLs = append(seriesURLs, s.URL)
			}
		}
		var addNames, addURLs []string
		for _, a := range addsMap[g.ID] {
			if a.Name != "" {
				addNames = append(addNames, a.Name)
			}
			if a.URL != "" {
				addURLs = append(addURLs, a.URL)
			}
		}

		shots := shotsMap[g.ID]
		firstShot := ""
		if len(shots) > 0 {
			firstShot = shots[0]
		}

		record := []string{
			strconv.FormatInt(g.ID, 10), g.Slug, g.Name, released, rating,
			semijoin(genresMap[g.ID]), semijoin(platsMap[g.ID]),
			devs, devs,
			pubs, pubs,
			semijoin(tagsMap[g.ID]),
			g.AgeRating, g.Website, g.CoverImage, g.Description,
			strings.Join(seriesNames, "; "), strings.Join(seriesURLs, "; "),
			strings.Join(addNames, "; "), strings.Join(addURLs, "; "),
			strconv.Itoa(len(shots)), firstShot,
		}
		if err := w.Write(record); err != nil {
			fmt.Printf("写入CSV行失败: %v\n", err)
			os.Exit(1)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Printf("写出CSV失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("已导出 %d 个游戏到 %s\n", len(games), outPath)
}
