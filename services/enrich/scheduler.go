package enrich

import (
	"backend/utils"
	"time"
)

// SweepScheduler 补全扫描调度器，按固定周期执行一次完整运行
type SweepScheduler struct {
	service      *Service
	interval     time.Duration
	isRunning    bool
	stopChan     chan bool
	completeChan chan bool
}

// NewSweepScheduler 创建新调度器
func NewSweepScheduler(service *Service, interval time.Duration) *SweepScheduler {
	return &SweepScheduler{
		service:      service,
		interval:     interval,
		isRunning:    false,
		stopChan:     make(chan bool),
		completeChan: make(chan bool),
	}
}

// Start 启动补全扫描调度器
func (s *SweepScheduler) Start() {
	if s.isRunning {
		utils.LogInfo("补全扫描调度器已在运行中")
		return
	}

	s.isRunning = true
	utils.LogInfo("补全扫描调度器已启动，周期：" + s.interval.String())

	go func() {
		for {
			select {
			case <-time.After(s.interval):
				s.sweep()
			case <-s.stopChan:
				utils.LogInfo("补全扫描调度器已停止")
				s.isRunning = false
				s.completeChan <- true
				return
			}
		}
	}()
}

// Stop 停止补全扫描调度器
func (s *SweepScheduler) Stop() {
	if !s.isRunning {
		return
	}

	s.stopChan <- true
	<-s.completeChan
}

// IsRunning 检查调度器是否正在运行
func (s *SweepScheduler) IsRunning() bool {
	return s.isRunning
}

// sweep 执行一轮完整富集
func (s *SweepScheduler) sweep() {
	utils.LogInfo("开始执行定时补全任务")
	if _, err := s.service.Run(); err != nil {
		utils.LogError("定时补全任务执行失败", err)
		return
	}
	utils.LogInfo("定时补全任务执行完成")
}
