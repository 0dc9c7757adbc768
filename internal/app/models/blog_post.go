package models

import "time"

// BlogPost defines a blog entry based on the 'blog_posts' table.
// Author is deliberately free text, not a users reference: deleting a user
// must not cascade into blog posts.
type BlogPost struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Author      string     `json:"author" db:"author"`
	Excerpt     *string    `json:"excerpt,omitempty" db:"excerpt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	Asset
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssetName returns the title the post's asset key is derived from.
func (b *BlogPost) AssetName() string { return b.Title }

// BlogPostDescriptor parameterizes the shared CRUD machinery for blog posts.
var BlogPostDescriptor = Descriptor{
	Name:        "blog post",
	Table:       "blog_posts",
	Columns:     []string{"title", "content", "author", "excerpt", "published_at", "image_url", "image_ref"},
	Required:    []string{"title", "content", "author"},
	TitleField:  "title",
	AssetFolder: "blog",
}
