package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/pyar/jobboard/config"
)

// FeedServiceOptions groups dependencies for FeedService.
type FeedServiceOptions struct {
	JobRepo JobRepository
	Metrics Metrics
	Listing config.ListingConfig
	BaseURL string
	Now     func() time.Time
}

// FeedService renders the RSS feed of the most recent job postings.
type FeedService struct {
	jobs    JobRepository
	metrics Metrics
	listing config.ListingConfig
	baseURL string
	now     func() time.Time
}

// NewFeedService constructs a new FeedService.
func NewFeedService(opts FeedServiceOptions) *FeedService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	listing := opts.Listing
	listing.Sanitize()
	return &FeedService{
		jobs:    opts.JobRepo,
		metrics: opts.Metrics,
		listing: listing,
		baseURL: opts.BaseURL,
		now:     now,
	}
}

// RenderRSS returns the RSS 2.0 document for the newest postings. The feed
// covers the most recent jobs by creation date, active or not.
func (s *FeedService) RenderRSS(ctx context.Context) (string, error) {
	items, err := s.jobs.ListRecent(ctx, s.listing.FeedSize)
	if err != nil {
		return "", mapRepoErr(err)
	}

	feed := &feeds.Feed{
		Title:       "Ofertas de trabajo",
		Link:        &feeds.Link{Href: s.baseURL + "/api/jobs"},
		Description: "Últimas ofertas de trabajo publicadas",
		Created:     s.now().UTC(),
	}
	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			Title:       item.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/api/jobs/%s", s.baseURL, item.ID)},
			Description: item.Description,
			Author:      &feeds.Author{Name: item.CompanyName, Email: item.Email},
			Created:     item.CreatedAt,
			Updated:     item.UpdatedAt,
		})
	}

	// feeds.Item carries no category field, so tags are attached on the
	// lower-level RSS representation before serialization.
	rssFeed := (&feeds.Rss{Feed: feed}).RssFeed()
	for i, item := range items {
		if i < len(rssFeed.Items) && len(item.Tags) > 0 {
			rssFeed.Items[i].Category = strings.Join(item.Tags, ",")
		}
	}

	rss, err := feeds.ToXML(rssFeed)
	if err != nil {
		return "", fmt.Errorf("render rss feed: %w", err)
	}
	if s.metrics != nil {
		s.metrics.Count("feed.rendered", 1, nil)
	}
	return rss, nil
}
