package rawg

import (
	"fmt"
	"net/url"
	"strconv"
)

// FetchGamesPage 抓取 /games 列表的一页（每页40条，与历史抓取脚本一致）
func (c *Client) FetchGamesPage(page, pageSize int) (*GameListPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	var out GameListPage
	if err := c.Get("/games", q, &out); err != nil {
		return nil, err
	}
	for i := range out.Results {
		normalizeDetailImages(&out.Results[i])
	}
	return &out, nil
}

// FetchDetails 抓取单个游戏详情，内嵌图片URL在返回前全部规范化
func (c *Client) FetchDetails(gameID int64) (*GameDetail, error) {
	var out GameDetail
	if err := c.Get(fmt.Sprintf("/games/%d", gameID), nil, &out); err != nil {
		return nil, err
	}
	normalizeDetailImages(&out)
	return &out, nil
}

func normalizeDetailImages(d *GameDetail) {
	d.BackgroundImage = NormalizeImage(d.BackgroundImage)
	d.BackgroundImageAdditional = NormalizeImage(d.BackgroundImageAdditional)
	for i := range d.ShortScreenshots {
		d.ShortScreenshots[i].Image = NormalizeImage(d.ShortScreenshots[i].Image)
	}
}

// FetchAllScreenshots 逐页抓取截图直到没有下一页或达到软上限maxImages
// 软上限只为控制请求量，不是正确性要求；达到上限后不再请求后续页
// 某一页抓取失败时返回已累积的结果，不把失败往外传
func (c *Client) FetchAllScreenshots(gameID int64, maxImages int) []ScreenshotItem {
	var out []ScreenshotItem
	page := 1
	for {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		var resp ScreenshotPage
		if err := c.Get(fmt.Sprintf("/games/%d/screenshots", gameID), q, &resp); err != nil {
			return out
		}
		for _, item := range resp.Results {
			if item.Image == "" {
				continue
			}
			item.Image = NormalizeImage(item.Image)
			out = append(out, item)
			if len(out) >= maxImages {
				return out
			}
		}
		if resp.Next == nil || *resp.Next == "" {
			break
		}
		page++
	}
	return out
}

// FetchMovies 抓取视频元数据，单页接口；url优先取max清晰度，退回480
func (c *Client) FetchMovies(gameID int64) []Movie {
	var resp MoviePage
	if err := c.Get(fmt.Sprintf("/games/%d/movies", gameID), nil, &resp); err != nil {
		return nil
	}
	var out []Movie
	for _, item := range resp.Results {
		u := item.Data.Max
		if u == "" {
			u = item.Data.P480
		}
		if u == "" {
			continue
		}
		out = append(out, Movie{
			Name:    item.Name,
			URL:     u,
			Preview: NormalizeImage(item.Preview),
		})
	}
	return out
}

// FetchSeries 抓取同系列游戏，单页接口
func (c *Client) FetchSeries(gameID int64) []NamedRef {
	var resp RelatedPage
	if err := c.Get(fmt.Sprintf("/games/%d/game-series", gameID), nil, &resp); err != nil {
		return nil
	}
	return resp.Results
}

// FetchAdditions 抓取DLC与扩展内容，单页接口
func (c *Client) FetchAdditions(gameID int64) []NamedRef {
	var resp RelatedPage
	if err := c.Get(fmt.Sprintf("/games/%d/additions", gameID), nil, &resp); err != nil {
		return nil
	}
	return resp.Results
}

// FetchSuggestions 抓取"类似游戏"推荐，客户端截断到limit条（展示需要，非接口限制）
// 该接口对部分账号等级不可用，失败时返回错误由调用方优雅跳过
func (c *Client) FetchSuggestions(gameID int64, limit int) ([]SuggestedGame, error) {
	var resp SuggestionPage
	if err := c.Get(fmt.Sprintf("/games/%d/suggested", gameID), nil, &resp); err != nil {
		return nil, err
	}
	results := resp.Results
	if len(results) > limit {
		results = results[:limit]
	}
	for i := range results {
		results[i].BackgroundImage = NormalizeImage(results[i].BackgroundImage)
	}
	return results, nil
}
