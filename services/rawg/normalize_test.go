package rawg

import "testing"

// TestNormalizeImage 测试CDN图片URL规范化
func TestNormalizeImage(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
		testName string
	}{
		{
			raw:      "https://media.rawg.io/media/crop/600/400/games/456/456dea5e1c7e3cd07060c14e96612001.jpg",
			expected: "https://media.rawg.io/media/games/456/456dea5e1c7e3cd07060c14e96612001.jpg",
			testName: "去除crop裁剪段",
		},
		{
			raw:      "https://media.rawg.io/media/resize/1280/-/games/456/456dea5e1c7e3cd07060c14e96612001.jpg",
			expected: "https://media.rawg.io/media/games/456/456dea5e1c7e3cd07060c14e96612001.jpg",
			testName: "去除resize缩放段",
		},
		{
			raw:      "https://media.rawg.io/media/games/456/456dea5e1c7e3cd07060c14e96612001.jpg",
			expected: "https://media.rawg.io/media/games/456/456dea5e1c7e3cd07060c14e96612001.jpg",
			testName: "规范URL保持不变",
		},
		{
			raw:      "https://media.rawg.io/media/screenshots/d27/d27e348fc283f2c9ab0f8a9bb9917875.jpg",
			expected: "https://media.rawg.io/media/screenshots/d27/d27e348fc283f2c9ab0f8a9bb9917875.jpg",
			testName: "非games路径保持不变",
		},
		{
			raw:      "",
			expected: "",
			testName: "空串原样返回",
		},
		{
			raw:      "https://example.com/images/cover.jpg",
			expected: "https://example.com/images/cover.jpg",
			testName: "非CDN域名原样返回",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			if got := NormalizeImage(tc.raw); got != tc.expected {
				t.Errorf("NormalizeImage(%q) = %q, 期望 %q", tc.raw, got, tc.expected)
			}
		})
	}
}

// TestNormalizeImageIdempotent 测试规范化的幂等性
func TestNormalizeImageIdempotent(t *testing.T) {
	raw := "https://media.rawg.io/media/crop/600/400/games/456/cover.jpg"
	once := NormalizeImage(raw)
	twice := NormalizeImage(once)
	if once != twice {
		t.Errorf("规范化不幂等: 第一次 %q, 第二次 %q", once, twice)
	}
}
