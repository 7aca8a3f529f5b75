package rawg

import (
	"strings"
)

// MediaPrefix RAWG CDN媒体路径的规范前缀
const MediaPrefix = "https://media.rawg.io/media/"

// NormalizeImage 把CDN图片URL规范成未裁剪的原始媒体路径
// 形如 /media/crop/600/400/games/... 或 /media/resize/1280/-/games/... 的URL
// 会从games路径段截断并重新拼到规范前缀上；不认识的URL（含空串）原样返回
// 该函数是确定且幂等的：规范URL再次规范化结果不变
func NormalizeImage(raw string) string {
	if raw == "" || !strings.Contains(raw, MediaPrefix) {
		return raw
	}
	tail := strings.SplitN(raw, "/media/", 2)[1]
	parts := strings.Split(tail, "/")
	if len(parts) > 0 && (parts[0] == "crop" || parts[0] == "resize") {
		for i, p := range parts {
			if p == "games" {
				parts = parts[i:]
				break
			}
		}
	}
	return MediaPrefix + strings.Join(parts, "/")
}
