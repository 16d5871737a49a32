package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sheshape-storefront/internal/domain"
)

// BlogListParams page and filter the published post listing.
type BlogListParams struct {
	Page     int
	Size     int
	Category string
	Search   string
}

func (p BlogListParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// BlogPosts lists published posts.
func (c *Client) BlogPosts(ctx context.Context, p BlogListParams) (*domain.BlogPostPage, error) {
	var page domain.BlogPostPage
	if err := c.get(ctx, "/api/blog/posts", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AllBlogPosts lists posts including drafts; admin only.
func (c *Client) AllBlogPosts(ctx context.Context, p BlogListParams) (*domain.BlogPostPage, error) {
	var page domain.BlogPostPage
	if err := c.get(ctx, "/api/blog/posts/all", p.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) BlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.get(ctx, fmt.Sprintf("/api/blog/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreateBlogPost(ctx context.Context, in domain.BlogPostInput) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.post(ctx, "/api/blog/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdateBlogPost(ctx context.Context, id int64, in domain.BlogPostInput) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.put(ctx, fmt.Sprintf("/api/blog/posts/%d", id), in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeleteBlogPost(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/blog/posts/%d", id))
}

func (c *Client) PublishBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.put(ctx, fmt.Sprintf("/api/blog/posts/%d/publish", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UnpublishBlogPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := c.put(ctx, fmt.Sprintf("/api/blog/posts/%d/unpublish", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
