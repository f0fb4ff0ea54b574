package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dcampos/red-social-backend/internal/middleware"
	"github.com/dcampos/red-social-backend/internal/models"
	"github.com/dcampos/red-social-backend/internal/repositories"
	"github.com/dcampos/red-social-backend/internal/session"
	"github.com/dcampos/red-social-backend/validators"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func actAs(c echo.Context, user *models.User) {
	middleware.SetCurrentUser(c, &session.Data{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
	})
}

// fakeUserRepo keeps users in memory and mimics the unique indexes on nombre
// and correo.
type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Name == user.Name || u.Email == user.Email {
			return fmt.Errorf("%w: E11000 duplicate key error", repositories.ErrDuplicate)
		}
	}
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*models.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) ref(id primitive.ObjectID, withPhoto bool) models.UserRef {
	for _, u := range r.users {
		if u.ID == id {
			ref := models.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
			if withPhoto {
				ref.Photo = u.Photo
			}
			return ref
		}
	}
	return models.UserRef{}
}

type fakePostRepo struct {
	users *fakeUserRepo
	posts []*models.Post
	now   time.Time
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	if post.CreatedAt.IsZero() {
		r.now = r.now.Add(time.Second)
		post.CreatedAt = r.now
	}
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePostRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) GetAllWithAuthors(_ context.Context) ([]models.PostWithAuthor, error) {
	var out []models.PostWithAuthor
	for _, p := range r.posts {
		out = append(out, models.PostWithAuthor{
			ID:        p.ID,
			Author:    r.users.ref(p.UserID, true),
			Title:     p.Title,
			Image:     p.Image,
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) Update(_ context.Context, id primitive.ObjectID, req *models.UpdatePostRequest) (*models.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			p.Title = req.Title
			p.Image = req.Image
			p.Content = req.Content
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeLikeRepo mimics the compound unique index on (usuario, post).
type fakeLikeRepo struct {
	users *fakeUserRepo
	likes []models.Like
}

func (r *fakeLikeRepo) Create(_ context.Context, like *models.Like) error {
	for _, l := range r.likes {
		if l.UserID == like.UserID && l.PostID == like.PostID {
			return repositories.ErrDuplicate
		}
	}
	like.ID = primitive.NewObjectID()
	r.likes = append(r.likes, *like)
	return nil
}

func (r *fakeLikeRepo) Exists(_ context.Context, userID, postID primitive.ObjectID) (bool, error) {
	for _, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLikeRepo) GetByPostWithUsers(_ context.Context, postID primitive.ObjectID) ([]models.LikeWithUser, error) {
	var out []models.LikeWithUser
	for _, l := range r.likes {
		if l.PostID == postID {
			out = append(out, models.LikeWithUser{
				ID:     l.ID,
				User:   r.users.ref(l.UserID, false),
				PostID: l.PostID,
			})
		}
	}
	return out, nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, userID, postID primitive.ObjectID) error {
	for i, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeLikeRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) error {
	var kept []models.Like
	for _, l := range r.likes {
		if l.PostID != postID {
			kept = append(kept, l)
		}
	}
	r.likes = kept
	return nil
}

type fakeCommentRepo struct {
	users    *fakeUserRepo
	comments []models.Comment
	now      time.Time
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	if comment.CreatedAt.IsZero() {
		r.now = r.now.Add(time.Second)
		comment.CreatedAt = r.now
	}
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetByPostWithUsers(_ context.Context, postID primitive.ObjectID) ([]models.CommentWithAuthor, error) {
	var out []models.CommentWithAuthor
	for _, cm := range r.comments {
		if cm.PostID == postID {
			out = append(out, models.CommentWithAuthor{
				ID:        cm.ID,
				Author:    r.users.ref(cm.UserID, false),
				PostID:    cm.PostID,
				Content:   cm.Content,
				CreatedAt: cm.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, cm := range r.comments {
		if cm.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeCommentRepo) DeleteByPost(_ context.Context, postID primitive.ObjectID) error {
	var kept []models.Comment
	for _, cm := range r.comments {
		if cm.PostID != postID {
			kept = append(kept, cm)
		}
	}
	r.comments = kept
	return nil
}
