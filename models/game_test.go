package models

import "testing"

func intPtr(v int) *int { return &v }

// TestMetascoreColor 测试评分颜色分档
func TestMetascoreColor(t *testing.T) {
	testCases := []struct {
		score    *int
		expected string
		testName string
	}{
		{intPtr(100), "green", "满分为绿色"},
		{intPtr(82), "green", "高分为绿色"},
		{intPtr(75), "green", "绿色下边界"},
		{intPtr(74), "yellow", "黄色上边界"},
		{intPtr(50), "yellow", "黄色下边界"},
		{intPtr(49), "red", "红色上边界"},
		{intPtr(0), "red", "红色下边界"},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			got := MetascoreColor(tc.score)
			if got == nil {
				t.Fatalf("MetascoreColor(%d) 返回了nil", *tc.score)
			}
			if *got != tc.expected {
				t.Errorf("MetascoreColor(%d) = %q, 期望 %q", *tc.score, *got, tc.expected)
			}
		})
	}
}

// TestMetascoreColorNoScore 测试无分数与越界分数不分配颜色
func TestMetascoreColorNoScore(t *testing.T) {
	if got := MetascoreColor(nil); got != nil {
		t.Errorf("MetascoreColor(nil) = %q, 期望nil", *got)
	}
	if got := MetascoreColor(intPtr(-1)); got != nil {
		t.Errorf("MetascoreColor(-1) = %q, 期望nil", *got)
	}
	if got := MetascoreColor(intPtr(101)); got != nil {
		t.Errorf("MetascoreColor(101) = %q, 期望nil", *got)
	}
}

// TestNormalizeName 测试词表名称键规范化
func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
		testName string
	}{
		{"Valve", "valve", "小写化"},
		{"  CD Projekt Red  ", "cd projekt red", "去除首尾空白"},
		{"FromSoftware", "fromsoftware", "混合大小写"},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			if got := NormalizeName(tc.name); got != tc.expected {
				t.Errorf("NormalizeName(%q) = %q, 期望 %q", tc.name, got, tc.expected)
			}
		})
	}
}
