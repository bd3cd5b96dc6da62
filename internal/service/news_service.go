package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"likebike_backend/internal/config"
	"likebike_backend/internal/model"
	"likebike_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	newsCacheKey = "likebike:news"
	newsCacheTTL = 10 * time.Minute
)

// NewsService serves the bike-news feed from a Notion database. Without a
// configured Notion key it falls back to a static list, and responses are
// cached in Redis when a client is available.
type NewsService struct {
	Cfg   *config.Config
	Redis *redis.Client
	HTTP  *http.Client
}

func NewNewsService(cfg *config.Config, rdb *redis.Client) *NewsService {
	return &NewsService{
		Cfg:   cfg,
		Redis: rdb,
		HTTP:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NewsService) List(ctx context.Context) ([]model.NewsItem, error) {
	if s.Cfg.News.NotionSecretKey == "" {
		return staticNews(), nil
	}

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, newsCacheKey).Result(); err == nil {
			var items []model.NewsItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.fetchFromNotion(ctx)
	if err != nil {
		logger.Log.Warn("Notion news fetch failed, serving static list", zap.Error(err))
		return staticNews(), nil
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(items); err == nil {
			s.Redis.Set(ctx, newsCacheKey, encoded, newsCacheTTL)
		}
	}

	return items, nil
}

func (s *NewsService) fetchFromNotion(ctx context.Context) ([]model.NewsItem, error) {
	endpoint := fmt.Sprintf("https://api.notion.com/v1/databases/%s/query", s.Cfg.News.NotionDatabaseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.Cfg.News.NotionSecretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", "2022-06-28")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("notion query returned %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			ID          string `json:"id"`
			CreatedTime string `json:"created_time"`
			URL         string `json:"url"`
			Cover       *struct {
				External *struct {
					URL string `json:"url"`
				} `json:"external"`
				File *struct {
					URL string `json:"url"`
				} `json:"file"`
			} `json:"cover"`
			Properties map[string]struct {
				Title []struct {
					PlainText string `json:"plain_text"`
				} `json:"title"`
			} `json:"properties"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, len(payload.Results))
	for _, page := range payload.Results {
		title := ""
		for _, prop := range page.Properties {
			if len(prop.Title) > 0 {
				title = prop.Title[0].PlainText
				break
			}
		}
		if title == "" {
			continue
		}

		var thumbnail *string
		if page.Cover != nil {
			if page.Cover.External != nil {
				thumbnail = &page.Cover.External.URL
			} else if page.Cover.File != nil {
				thumbnail = &page.Cover.File.URL
			}
		}

		createdTime := page.CreatedTime
		items = append(items, model.NewsItem{
			ID:          page.ID,
			Title:       title,
			URL:         page.URL,
			Thumbnail:   thumbnail,
			CreatedTime: &createdTime,
		})
	}

	return items, nil
}

func staticNews() []model.NewsItem {
	iso := func(d time.Duration) *string {
		s := time.Now().Add(-d).Format(time.RFC3339)
		return &s
	}
	return []model.NewsItem{
		{ID: "news-1", Title: "서울시 자전거 도로 확충 계획 발표", URL: "#", CreatedTime: iso(24 * time.Hour)},
		{ID: "news-2", Title: "한강 자전거길 야간 조명 개선 완료", URL: "#", CreatedTime: iso(3 * 24 * time.Hour)},
		{ID: "news-3", Title: "봄철 자전거 안전 수칙 안내", URL: "#", CreatedTime: iso(5 * 24 * time.Hour)},
	}
}
