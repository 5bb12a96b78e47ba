package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"
	"go.uber.org/zap"
)

// ProjectFeed builds an RSS feed of one profile's projects, newest first.
func (uc *PortfolioUseCase) ProjectFeed(ctx context.Context, ownerID uuid.UUID) (*feeds.Feed, error) {
	ctx, span := tracer.Start(ctx, "ProjectFeed")
	defer span.End()

	owner, err := uc.profileRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	projects, err := uc.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Error("Failed to list projects for RSS", err, zap.String("owner_id", ownerID.String()))
		return nil, err
	}

	siteURL := strings.TrimRight(uc.site.SiteURL, "/")
	author := uc.site.Author
	if author == "" {
		author = owner.FullName
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s - Projects", owner.FullName),
		Link:        &feeds.Link{Href: siteURL + "/projects"},
		Description: "Projects from the portfolio of " + owner.FullName,
		Author:      &feeds.Author{Name: author, Email: owner.Email},
		Created:     time.Now().UTC(),
	}
	if len(projects) > 0 {
		feed.Updated = projects[0].CreatedAt
	}

	feedItems := make([]*feeds.Item, 0, len(projects))
	for _, p := range projects {
		link := fmt.Sprintf("%s/projects/%s", siteURL, p.ID)
		if p.LiveURL != nil && *p.LiveURL != "" {
			link = *p.LiveURL
		} else if p.GithubURL != nil && *p.GithubURL != "" {
			link = *p.GithubURL
		}

		item := &feeds.Item{
			Id:          p.ID.String(),
			Title:       p.Name,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Created:     p.CreatedAt,
		}
		if p.StartDate != nil {
			item.Created = *p.StartDate
		}
		if p.Technologies != "" {
			item.Content = "Built with " + p.Technologies
		}
		feedItems = append(feedItems, item)
	}

	feed.Items = feedItems
	uc.logger.Info("Project feed generated", zap.String("owner_id", ownerID.String()), zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
