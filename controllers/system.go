package controllers

import (
	"backend/models"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

type SystemStatsResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SystemStats 游戏库规模统计
type SystemStats struct {
	TotalGames       int64 `json:"total_games"`
	TotalGenres      int64 `json:"total_genres"`
	TotalPlatforms   int64 `json:"total_platforms"`
	TotalStores      int64 `json:"total_stores"`
	TotalMedia       int64 `json:"total_media"`
	TotalSuggestions int64 `json:"total_suggestions"`
	IncompleteGames  int64 `json:"incomplete_games"`
}

type SystemStatus struct {
	CPUUsage      float64        `json:"cpuUsage"`
	MemoryTotal   uint64         `json:"memoryTotal"`
	MemoryUsed    uint64         `json:"memoryUsed"`
	MemoryUsage   float64        `json:"memoryUsage"`
	DiskTotal     uint64         `json:"diskTotal"`
	DiskUsed      uint64         `json:"diskUsed"`
	DiskUsage     float64        `json:"diskUsage"`
	NetworkStatus NetworkMetrics `json:"networkStatus"`
	Uptime        float64        `json:"uptime"`
}

type NetworkMetrics struct {
	RxBytes     uint64 `json:"rxBytes"`
	TxBytes     uint64 `json:"txBytes"`
	Connections int    `json:"connections"`
}

// GetSystemStats 获取游戏库统计信息
// @Summary 获取游戏库统计信息
// @Description 获取库内游戏、词表和媒体的规模统计
// @Tags 系统管理
// @Produce json
// @Success 200 {object} SystemStatsResponse
// @Router /admin/stats [get]
func GetSystemStats(c *gin.Context) {
	var stats SystemStats

	models.DB.Model(&models.Game{}).Count(&stats.TotalGames)
	models.DB.Model(&models.Genre{}).Count(&stats.TotalGenres)
	models.DB.Model(&models.Platform{}).Count(&stats.TotalPlatforms)
	models.DB.Model(&models.Store{}).Count(&stats.TotalStores)
	models.DB.Model(&models.Media{}).Count(&stats.TotalMedia)
	models.DB.Model(&models.GameSuggestion{}).Count(&stats.TotalSuggestions)

	// 粗略的待补全计数：任一标量展示字段为空的行
	models.DB.Model(&models.Game{}).
		Where("description = '' OR website = '' OR age_rating = '' OR cover_image = ''").
		Count(&stats.IncompleteGames)

	c.JSON(http.StatusOK, SystemStatsResponse{
		Code:    http.StatusOK,
		Message: "获取系统统计信息成功",
		Data:    stats,
	})
}

// GetSystemStatus 获取系统状态信息
// @Summary 获取系统状态信息
// @Description 获取系统CPU、内存、磁盘和网络等实时状态信息
// @Tags 系统管理
// @Produce json
// @Success 200 {object} SystemStatsResponse
// @Router /admin/system/status [get]
func GetSystemStatus(c *gin.Context) {
	status := SystemStatus{}

	// 获取系统运行时间
	if uptime, err := host.Uptime(); err == nil {
		status.Uptime = float64(uptime)
	}

	// 获取CPU使用率
	cpuPercent, err := cpu.Percent(time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		status.CPUUsage = cpuPercent[0]
	}

	// 获取内存信息
	if memInfo, err := mem.VirtualMemory(); err == nil {
		status.MemoryTotal = memInfo.Total
		status.MemoryUsed = memInfo.Used
		status.MemoryUsage = memInfo.UsedPercent
	}

	// 获取磁盘信息
	if diskInfo, err := disk.Usage("/"); err == nil {
		status.DiskTotal = diskInfo.Total
		status.DiskUsed = diskInfo.Used
		status.DiskUsage = diskInfo.UsedPercent
	}

	// 获取网络信息
	networkMetrics := NetworkMetrics{}
	if netStats, err := net.IOCounters(false); err == nil && len(netStats) > 0 {
		networkMetrics.RxBytes = netStats[0].BytesRecv
		networkMetrics.TxBytes = netStats[0].BytesSent
	}

	if connections, err := net.Connections("all"); err == nil {
		networkMetrics.Connections = len(connections)
	}

	status.NetworkStatus = networkMetrics

	c.JSON(http.StatusOK, SystemStatsResponse{
		Code:    http.StatusOK,
		Message: "获取系统状态信息成功",
		Data:    status,
	})
}
