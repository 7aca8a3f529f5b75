package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	logDir      = "logs"
	logFileName = "app.log"
	maxLogSize  = 10 * 1024 * 1024 // 超过10MB轮转
)

var (
	logFile    *os.File
	logger     *log.Logger
	mu         sync.Mutex
	clients    = make(map[*websocket.Conn]bool)
	clientsMux sync.Mutex
)

// InitLogger 初始化日志系统，同时输出到控制台和logs/app.log
// 日志文件打开失败时退化为仅控制台输出，不阻止进程启动
func InitLogger() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger = log.New(os.Stdout, "", 0)
		return err
	}

	logPath := filepath.Join(logDir, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger = log.New(os.Stdout, "", 0)
		return err
	}

	logFile = file
	logger = log.New(io.MultiWriter(os.Stdout, file), "", 0)

	// 启动日志轮转检查
	go checkLogRotation()

	return nil
}

// LogInfo 记录信息日志
func LogInfo(message string) {
	logLine("INFO", message, nil)
}

// LogError 记录错误信息
func LogError(message string, err error) {
	logLine("ERROR", message, err)
}

func logLine(level, message string, err error) {
	if logger == nil {
		InitLogger()
	}
	line := fmt.Sprintf("[%s] [%s] %s", time.Now().Format("2006-01-02 15:04:05"), level, message)
	if err != nil {
		line += fmt.Sprintf(": %v", err)
	}
	logger.Println(line)
	BroadcastLog(line)
}

// checkLogRotation 每小时检查一次文件大小并按需轮转
func checkLogRotation() {
	for {
		time.Sleep(time.Hour)
		if needRotation() {
			rotateLog()
		}
	}
}

func needRotation() bool {
	if logFile == nil {
		return false
	}
	info, err := logFile.Stat()
	if err != nil {
		return false
	}
	return info.Size() > maxLogSize
}

// rotateLog 把当前日志文件改名存档并重新打开
func rotateLog() {
	mu.Lock()
	if logFile == nil {
		mu.Unlock()
		return
	}

	logFile.Close()
	oldPath := filepath.Join(logDir, logFileName)
	newPath := filepath.Join(logDir, fmt.Sprintf("app.%s.log", time.Now().Format("20060102150405")))
	os.Rename(oldPath, newPath)

	logFile = nil
	logger = nil
	mu.Unlock()

	InitLogger()
}

// BroadcastLog 向所有连接的WebSocket客户端广播日志
func BroadcastLog(message string) {
	clientsMux.Lock()
	defer clientsMux.Unlock()

	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}

// AddClient 添加新的WebSocket客户端
func AddClient(conn *websocket.Conn) {
	clientsMux.Lock()
	clients[conn] = true
	clientsMux.Unlock()
}

// RemoveClient 移除WebSocket客户端
func RemoveClient(conn *websocket.Conn) {
	clientsMux.Lock()
	delete(clients, conn)
	clientsMux.Unlock()
}
