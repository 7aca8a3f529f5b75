package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"backend/config"
	"backend/models"
	"backend/services/enrich"
	"backend/services/rawg"

	"github.com/joho/godotenv"
)

const fetchPageSize = 40

func main() {
	// 定义命令行参数
	var fetchAll bool
	flag.BoolVar(&fetchAll, "all", false, "抓取全部分页（默认只抓第一页的最新游戏）")

	// 解析命令行参数
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		fmt.Printf("连接数据库失败: %v\n", err)
		os.Exit(1)
	}
	models.SetDB(db)

	client := rawg.NewClient(cfg)
	service := enrich.NewService(db, client, cfg)

	page := 1
	seeded := 0
	enriched := 0
	for {
		listing, err := client.FetchGamesPage(page, fetchPageSize)
		if err != nil {
			fmt.Printf("抓取第 %d 页失败: %v\n", page, err)
			break
		}

		for i := range listing.Results {
			entry := &listing.Results[i]
			if err := service.SeedListing(entry); err != nil {
				fmt.Printf("落地游戏 %d 失败: %v\n", entry.ID, err)
				continue
			}
			seeded++

			needs, err := service.NeedsEnrich(entry.ID)
			if err != nil {
				fmt.Printf("检查游戏 %d 完整性失败: %v\n", entry.ID, err)
				continue
			}
			if needs {
				if err := service.EnrichOne(entry.ID); err != nil {
					fmt.Printf("补全游戏 %d 失败: %v\n", entry.ID, err)
				} else {
					enriched++
				}
				time.Sleep(cfg.ItemDelay)
			}
		}

		fmt.Printf("Committed page %d (%d 条)\n", page, len(listing.Results))

		if !fetchAll {
			break
		}
		if listing.Next == nil || *listing.Next == "" {
			break
		}
		page++
	}

	fmt.Printf("抓取完成: 落地 %d 条, 补全 %d 条\n", seeded, enriched)
}
