package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var downloadClient = &http.Client{Timeout: 30 * time.Second}

// DownloadToFile 把URL内容下载到本地文件
// 目标文件已存在时直接跳过；下载失败时清理掉残留的空文件
func DownloadToFile(url, target string) error {
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	resp, err := downloadClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("下载失败: %s 状态码%d", url, resp.StatusCode)
	}

	file, err := os.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		if info, statErr := os.Stat(target); statErr == nil && info.Size() == 0 {
			os.Remove(target)
		}
		return err
	}
	return file.Close()
}
