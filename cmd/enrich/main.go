package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"backend/config"
	"backend/models"
	"backend/services/enrich"
	"backend/services/mail"
	"backend/services/rawg"

	"github.com/joho/godotenv"
)

func main() {
	// 定义命令行参数
	var idList string
	var sendMail bool
	flag.StringVar(&idList, "ids", "", "只补全指定的游戏ID，逗号分隔，例如: -ids=3498,3328")
	flag.BoolVar(&sendMail, "mail", false, "补全结束后发送汇总邮件（需配置MAIL_*环境变量）")

	// 解析命令行参数
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
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

	var summary *enrich.RunSummary
	if idList != "" {
		var ids []int64
		for _, part := range strings.Split(idList, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				fmt.Printf("无效的游戏ID: %q\n", part)
				os.Exit(1)
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			fmt.Println("请提供至少一个游戏ID，例如: -ids=3498,3328")
			os.Exit(1)
		}
		summary = service.RunIDs(ids)
	} else {
		summary, err = service.Run()
		if err != nil {
			fmt.Printf("补全任务失败: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println(summary.String())

	if sendMail {
		mailService := mail.NewMailService(&cfg.Mail)
		if err := mailService.SendRunSummary(summary); err != nil {
			fmt.Printf("发送汇总邮件失败: %v\n", err)
		}
	}
}
