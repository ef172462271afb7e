package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/repository"
)

// PostService orchestrates post CRUD and the author-joined reads.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields required to create a post.
type CreatePostInput struct {
	Title    string
	Content  *string
	AuthorID uint
}

// UpdatePostInput carries optional fields for a partial post update.
// Nil fields are left unchanged.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

// NewPostService returns a PostService backed by the given repository.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost inserts a new post. An author id that references no existing
// user surfaces as an InvalidReference error.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns every post joined with its author's id, name and email,
// newest first. Posts with an unresolvable author keep a null author.
func (s *PostService) ListPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.PostWithAuthor, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].WithAuthor())
	}
	return out, nil
}

// GetPostByID returns one post with the same join projection as ListPosts.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.PostWithAuthor, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	joined := post.WithAuthor()
	return &joined, nil
}

// ListPostsByAuthor returns raw post rows for one author, newest first.
// An unknown author yields an empty slice.
func (s *PostService) ListPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	return s.postRepo.GetByAuthorID(ctx, authorID)
}

// UpdatePost merges the supplied fields into the stored row, refreshes
// updated_at and returns the post-update row.
func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and returns the deleted row.
func (s *PostService) DeletePost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Delete(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}
