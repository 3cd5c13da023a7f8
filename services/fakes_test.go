package services

import (
	"context"
	"errors"
	"time"

	"comments-api/models"
	"comments-api/repositories"
)

var errStorage = errors.New("storage unavailable")

type fakeUsers struct {
	byID   map[string]*models.User
	err    error
	writes int
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.writes++
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

type fakeComments struct {
	rows      map[string]*models.Comment
	order     []string
	users     *fakeUsers
	writes    int
	createErr error
	findErr   error
	listErr   error
	updateErr error

	lastOffset, lastLimit int
}

func newFakeComments(users *fakeUsers) *fakeComments {
	return &fakeComments{rows: map[string]*models.Comment{}, users: users}
}

func (f *fakeComments) withOwner(c models.Comment) *models.Comment {
	if u, ok := f.users.byID[c.UserID]; ok {
		c.User = *u
	}
	return &c
}

func (f *fakeComments) Create(_ context.Context, comment *models.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.writes++
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	comment.CreatedAt, comment.UpdatedAt = now, now
	stored := *comment
	stored.User = models.User{}
	f.rows[comment.ID] = &stored
	f.order = append(f.order, comment.ID)
	return nil
}

func (f *fakeComments) FindByID(_ context.Context, id string) (*models.Comment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return f.withOwner(*c), nil
}

func (f *fakeComments) FindByModel(_ context.Context, modelType, modelID string, offset, limit int) ([]models.Comment, int64, error) {
	f.lastOffset, f.lastLimit = offset, limit
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var matched []models.Comment
	for _, id := range f.order {
		c := f.rows[id]
		if c.ModelType == modelType && c.ModelID == modelID {
			matched = append(matched, *f.withOwner(*c))
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Comment{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeComments) UpdateContent(_ context.Context, comment *models.Comment, content string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	c, ok := f.rows[comment.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	f.writes++
	c.Content = content
	c.UpdatedAt = c.UpdatedAt.Add(time.Minute)
	return nil
}
