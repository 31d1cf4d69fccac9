package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/stretchr/testify/assert"
)

// --- Service mocks ---

type MockAuthService struct {
	RegisterFunc func(ctx context.Context, creds domain.Credentials) (domain.User, error)
	LoginFunc    func(ctx context.Context, creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, creds)
	}
	return domain.User{Id: 1, Email: creds.Email}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return "token", nil
}

type MockTopicService struct {
	CreateFunc func(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error)
	GetFunc    func(ctx context.Context, id domain.TopicId) (domain.Topic, error)
}

func (m *MockTopicService) Create(ctx context.Context, data domain.TopicCreationData) (domain.TopicId, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, data)
	}
	return 1, nil
}

func (m *MockTopicService) Get(ctx context.Context, id domain.TopicId) (domain.Topic, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return domain.Topic{Id: id, Posts: []domain.Post{}}, nil
}

type MockPostService struct {
	CreateFunc        func(ctx context.Context, data domain.PostCreationData) (domain.PostId, error)
	GetFunc           func(ctx context.Context, id domain.PostId, viewer *domain.UserId) (*api.PostResponse, error)
	MoveToTopicFunc   func(ctx context.Context, id domain.PostId, topicId domain.TopicId, actor domain.UserId) error
	ReassignOwnerFunc func(ctx context.Context, id domain.PostId, userId domain.UserId, actor domain.UserId) error
	DeleteFunc        func(ctx context.Context, id domain.PostId, actor domain.UserId) error
}

func (m *MockPostService) Create(ctx context.Context, data domain.PostCreationData) (domain.PostId, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, data)
	}
	return 1, nil
}

func (m *MockPostService) Get(ctx context.Context, id domain.PostId, viewer *domain.UserId) (*api.PostResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id, viewer)
	}
	return &api.PostResponse{}, nil
}

func (m *MockPostService) MoveToTopic(ctx context.Context, id domain.PostId, topicId domain.TopicId, actor domain.UserId) error {
	if m.MoveToTopicFunc != nil {
		return m.MoveToTopicFunc(ctx, id, topicId, actor)
	}
	return nil
}

func (m *MockPostService) ReassignOwner(ctx context.Context, id domain.PostId, userId domain.UserId, actor domain.UserId) error {
	if m.ReassignOwnerFunc != nil {
		return m.ReassignOwnerFunc(ctx, id, userId, actor)
	}
	return nil
}

func (m *MockPostService) Delete(ctx context.Context, id domain.PostId, actor domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, actor)
	}
	return nil
}

type MockVoteService struct {
	CastFunc func(ctx context.Context, data domain.VoteCreationData) (domain.Vote, error)
}

func (m *MockVoteService) Cast(ctx context.Context, data domain.VoteCreationData) (domain.Vote, error) {
	if m.CastFunc != nil {
		return m.CastFunc(ctx, data)
	}
	return domain.Vote{Id: 1, UserId: data.UserId, PostId: data.PostId, Value: data.Value}, nil
}

type MockCommentService struct {
	CreateFunc func(ctx context.Context, data domain.CommentCreationData) (domain.CommentId, error)
	DeleteFunc func(ctx context.Context, id domain.CommentId, actor domain.UserId) error
}

func (m *MockCommentService) Create(ctx context.Context, data domain.CommentCreationData) (domain.CommentId, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, data)
	}
	return 1, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id domain.CommentId, actor domain.UserId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, actor)
	}
	return nil
}

type MockFavoriteService struct {
	AddFunc    func(ctx context.Context, userId domain.UserId, postId domain.PostId) (domain.Favorite, error)
	RemoveFunc func(ctx context.Context, userId domain.UserId, postId domain.PostId) error
}

func (m *MockFavoriteService) Add(ctx context.Context, userId domain.UserId, postId domain.PostId) (domain.Favorite, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userId, postId)
	}
	return domain.Favorite{Id: 1, UserId: userId, PostId: postId}, nil
}

func (m *MockFavoriteService) Remove(ctx context.Context, userId domain.UserId, postId domain.PostId) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userId, postId)
	}
	return nil
}

type MockUserActivityService struct {
	GetUserProfileFunc func(ctx context.Context, userId domain.UserId) (*domain.UserProfile, error)
}

func (m *MockUserActivityService) GetUserProfile(ctx context.Context, userId domain.UserId) (*domain.UserProfile, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userId)
	}
	return &domain.UserProfile{User: domain.User{Id: userId}}, nil
}

// --- Helpers ---

func newTestHandler() *Handler {
	return &Handler{
		auth:         &MockAuthService{},
		topic:        &MockTopicService{},
		post:         &MockPostService{},
		vote:         &MockVoteService{},
		comment:      &MockCommentService{},
		favorite:     &MockFavoriteService{},
		userActivity: &MockUserActivityService{},
		health:       &MockHealthChecker{},
		cfg:          &config.Config{Public: config.Public{JwtTTL: time.Hour}},
	}
}

// serve routes one request through chi so url params resolve like in production.
// A non-nil userId is put in the context the way the auth middleware does it.
func serve(method, pattern, target, body string, userId *domain.UserId, hf http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userId != nil {
				req = req.WithContext(mw.WithUserId(req.Context(), *userId))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.MethodFunc(method, pattern, hf)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func ptr[T any](v T) *T { return &v }

func TestIdParam(t *testing.T) {
	h := newTestHandler()
	for _, target := range []string{"/v1/topics/abc", "/v1/topics/0", "/v1/topics/-3"} {
		rr := serve(http.MethodGet, "/v1/topics/{topic}", target, "", nil, h.GetTopic)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		assert.Contains(t, rr.Body.String(), "invalid topic id")
	}
}
