package repositories

import (
	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repository instances
type Repositories struct {
	Users          *UserRepository
	Courses        *ContentRepository[models.Course]
	BlogPosts      *ContentRepository[models.BlogPost]
	SuccessStories *ContentRepository[models.SuccessStory]
	Gallery        *ContentRepository[models.GalleryItem]
	HeroImages     *ContentRepository[models.HeroImage]
	Pillars        *ContentRepository[models.Pillar]
	Applications   *ContentRepository[models.Application]
	Messages       *ContentRepository[models.Message]
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db),
		Courses:        NewContentRepository[models.Course](db, models.CourseDescriptor),
		BlogPosts:      NewContentRepository[models.BlogPost](db, models.BlogPostDescriptor),
		SuccessStories: NewContentRepository[models.SuccessStory](db, models.SuccessStoryDescriptor),
		Gallery:        NewContentRepository[models.GalleryItem](db, models.GalleryItemDescriptor),
		HeroImages:     NewContentRepository[models.HeroImage](db, models.HeroImageDescriptor),
		Pillars:        NewContentRepository[models.Pillar](db, models.PillarDescriptor),
		Applications:   NewContentRepository[models.Application](db, models.ApplicationDescriptor),
		Messages:       NewContentRepository[models.Message](db, models.MessageDescriptor),
	}
}
