// Package stockmedia 聚合 Pexels、Unsplash、Pixabay 的素材搜索
package stockmedia

// StockPhoto 统一的图片素材结构
type StockPhoto struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Photographer    string `json:"photographer"`
	PhotographerURL string `json:"photographer_url"`
	Source          string `json:"source"`
}

// StockVideo 统一的视频素材结构
type StockVideo struct {
	ID           string   `json:"id"`
	URL          string   `json:"url"`
	PreviewURL   string   `json:"preview_url"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Duration     int      `json:"duration"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	User         string   `json:"user"`
	UserURL      string   `json:"user_url"`
	Source       string   `json:"source"`
	Tags         []string `json:"tags"`
}
