package rawg

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
)

// screenshotServer 模拟分页截图接口：totalPages页，每页perPage张
func screenshotServer(t *testing.T, totalPages, perPage int, requests *int) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		resp := ScreenshotPage{}
		for i := 0; i < perPage; i++ {
			id := int64((page-1)*perPage + i + 1)
			resp.Results = append(resp.Results, ScreenshotItem{
				ID:    id,
				Image: fmt.Sprintf("https://shots.example.com/%d.jpg", id),
			})
		}
		if page < totalPages {
			next := fmt.Sprintf("%s/games/1/screenshots?page=%d", server.URL, page+1)
			resp.Next = &next
		}
		json.NewEncoder(w).Encode(resp)
	}))
	return server
}

// TestFetchAllScreenshotsPagination 测试跟随next抓完所有分页
func TestFetchAllScreenshotsPagination(t *testing.T) {
	requests := 0
	server := screenshotServer(t, 3, 5, &requests)
	defer server.Close()

	client := testClient(server.URL)
	shots := client.FetchAllScreenshots(1, 100)

	if len(shots) != 15 {
		t.Errorf("截图数量 = %d, 期望15", len(shots))
	}
	if requests != 3 {
		t.Errorf("请求次数 = %d, 期望3", requests)
	}
}

// TestFetchAllScreenshotsSoftCap 测试达到软上限后停止请求后续页
func TestFetchAllScreenshotsSoftCap(t *testing.T) {
	requests := 0
	server := screenshotServer(t, 10, 5, &requests)
	defer server.Close()

	client := testClient(server.URL)
	shots := client.FetchAllScreenshots(1, 7)

	if len(shots) != 7 {
		t.Errorf("截图数量 = %d, 期望7(软上限)", len(shots))
	}
	if requests != 2 {
		t.Errorf("请求次数 = %d, 期望2(第二页中途达到上限)", requests)
	}
}

// TestFetchAllScreenshotsPageFailure 测试某页失败时返回已累积的结果
func TestFetchAllScreenshotsPageFailure(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page >= 2 {
			// 非404非5xx的硬失败，不触发重试
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next := fmt.Sprintf("%s/games/1/screenshots?page=2", server.URL)
		resp := ScreenshotPage{
			Next: &next,
			Results: []ScreenshotItem{
				{ID: 1, Image: "https://shots.example.com/1.jpg"},
				{ID: 2, Image: "https://shots.example.com/2.jpg"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := testClient(server.URL)
	shots := client.FetchAllScreenshots(1, 100)

	if len(shots) != 2 {
		t.Errorf("截图数量 = %d, 期望2(只保留成功页)", len(shots))
	}
}

// TestFetchMoviesQualityFallback 测试视频清晰度max优先、480兜底
func TestFetchMoviesQualityFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := MoviePage{Results: []MovieItem{
			{Name: "Trailer", Data: MovieData{Max: "https://v.example.com/max.mp4", P480: "https://v.example.com/480.mp4"}},
			{Name: "Teaser", Data: MovieData{P480: "https://v.example.com/teaser480.mp4"}},
			{Name: "Broken", Data: MovieData{}},
		}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := testClient(server.URL)
	movies := client.FetchMovies(1)

	if len(movies) != 2 {
		t.Fatalf("视频数量 = %d, 期望2(无地址的条目被跳过)", len(movies))
	}
	if movies[0].URL != "https://v.example.com/max.mp4" {
		t.Errorf("第一条应取max清晰度, 得到 %q", movies[0].URL)
	}
	if movies[1].URL != "https://v.example.com/teaser480.mp4" {
		t.Errorf("第二条应退回480清晰度, 得到 %q", movies[1].URL)
	}
}

// TestFetchSuggestionsLimit 测试推荐条目客户端截断
func TestFetchSuggestionsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := SuggestionPage{}
		for i := 1; i <= 12; i++ {
			id := int64(i)
			resp.Results = append(resp.Results, SuggestedGame{ID: &id, Name: fmt.Sprintf("Game %d", i)})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := testClient(server.URL)
	suggestions, err := client.FetchSuggestions(1, 8)
	if err != nil {
		t.Fatalf("FetchSuggestions返回了错误: %v", err)
	}
	if len(suggestions) != 8 {
		t.Errorf("推荐数量 = %d, 期望8", len(suggestions))
	}
}
