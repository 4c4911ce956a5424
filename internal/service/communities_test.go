package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"modsync/internal/domain"
	"modsync/internal/service/mocks"
)

type CommunitiesTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store     *mocks.MockCommunityStore
	statuses  *mocks.MockSyncStatusStore
	content   *mocks.MockContentStore
	txManager *mocks.MockTransactionManager
	posts     *mocks.MockSyncProcessor
	comments  *mocks.MockSyncProcessor

	service *Communities
}

func (s *CommunitiesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.store = mocks.NewMockCommunityStore(s.ctrl)
	s.statuses = mocks.NewMockSyncStatusStore(s.ctrl)
	s.content = mocks.NewMockContentStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.posts = mocks.NewMockSyncProcessor(s.ctrl)
	s.comments = mocks.NewMockSyncProcessor(s.ctrl)

	s.posts.EXPECT().ContentType().Return(domain.ContentPosts).AnyTimes()
	s.comments.EXPECT().ContentType().Return(domain.ContentComments).AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewCommunities(
		s.store,
		s.statuses,
		s.content,
		s.txManager,
		[]SyncProcessor{s.posts, s.comments},
		logger,
	)
}

func (s *CommunitiesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommunitiesTestSuite(t *testing.T) {
	suite.Run(t, new(CommunitiesTestSuite))
}

func (s *CommunitiesTestSuite) TestTrack() {
	ctx := context.Background()
	community := &domain.TrackedCommunity{ID: 1, Name: "golang", IsActive: true}

	s.store.EXPECT().Create(ctx, "golang").Return(community, nil)
	s.posts.EXPECT().EnqueueInitialSync(ctx, "golang").Return("1", nil)
	s.comments.EXPECT().EnqueueInitialSync(ctx, "golang").Return("2", nil)

	result, err := s.service.Track(ctx, " r/golang ")

	s.Require().NoError(err)
	s.Equal(community, result.Community)
	s.Equal(map[domain.ContentType]string{
		domain.ContentPosts:    "1",
		domain.ContentComments: "2",
	}, result.JobIDs)
}

func (s *CommunitiesTestSuite) TestTrack_AlreadyTracked() {
	ctx := context.Background()

	s.store.EXPECT().Create(ctx, "golang").Return(nil, domain.ErrAlreadyTracked)

	_, err := s.service.Track(ctx, "golang")

	s.ErrorIs(err, domain.ErrAlreadyTracked)
}

func (s *CommunitiesTestSuite) TestTrack_EnqueueFailure() {
	ctx := context.Background()

	s.store.EXPECT().Create(ctx, "golang").Return(&domain.TrackedCommunity{Name: "golang"}, nil)
	s.posts.EXPECT().EnqueueInitialSync(ctx, "golang").Return("", errors.New("queue closed"))

	_, err := s.service.Track(ctx, "golang")

	s.Error(err)
}

func (s *CommunitiesTestSuite) TestGet() {
	ctx := context.Background()
	community := &domain.TrackedCommunity{Name: "golang", IsActive: true}
	statuses := []domain.SyncStatus{{CommunityName: "golang", ContentType: domain.ContentPosts, TotalSynced: 42}}

	s.store.EXPECT().Get(ctx, "golang").Return(community, nil)
	s.statuses.EXPECT().ListForCommunity(ctx, "golang").Return(statuses, nil)

	details, err := s.service.Get(ctx, "golang")

	s.Require().NoError(err)
	s.Equal(community, details.Community)
	s.Equal(statuses, details.Statuses)
}

func (s *CommunitiesTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.store.EXPECT().Get(ctx, "nope").Return(nil, domain.ErrCommunityNotFound)

	_, err := s.service.Get(ctx, "nope")

	s.ErrorIs(err, domain.ErrCommunityNotFound)
}

func (s *CommunitiesTestSuite) TestItems_ClampsWindow() {
	ctx := context.Background()
	page := &domain.ItemsPage{Total: 3, Limit: 100}

	s.store.EXPECT().Get(ctx, "golang").Return(&domain.TrackedCommunity{Name: "golang"}, nil)
	s.content.EXPECT().List(ctx, domain.ContentPosts, "golang", 100, 0).Return(page, nil)

	got, err := s.service.Items(ctx, "golang", domain.ContentPosts, 500, -3)

	s.Require().NoError(err)
	s.Equal(page, got)
}

func (s *CommunitiesTestSuite) TestItems_UnknownContentType() {
	_, err := s.service.Items(context.Background(), "golang", domain.ContentType("wiki"), 10, 0)

	s.Error(err)
}

func (s *CommunitiesTestSuite) TestDeactivate() {
	ctx := context.Background()

	s.store.EXPECT().SetActive(ctx, "golang", false).Return(nil)
	s.posts.EXPECT().CancelAllJobsFor("golang").Return(2)
	s.comments.EXPECT().CancelAllJobsFor("golang").Return(1)

	s.NoError(s.service.Deactivate(ctx, "golang"))
}

func (s *CommunitiesTestSuite) TestDeactivate_NotFound() {
	ctx := context.Background()

	s.store.EXPECT().SetActive(ctx, "golang", false).Return(domain.ErrCommunityNotFound)

	s.ErrorIs(s.service.Deactivate(ctx, "golang"), domain.ErrCommunityNotFound)
}

func (s *CommunitiesTestSuite) TestActivate() {
	ctx := context.Background()

	s.store.EXPECT().Get(ctx, "golang").Return(&domain.TrackedCommunity{Name: "golang", IsActive: false}, nil)
	gomock.InOrder(
		s.store.EXPECT().SetActive(ctx, "golang", true).Return(nil),
		s.posts.EXPECT().CancelAllJobsFor("golang").Return(0),
		s.posts.EXPECT().EnqueueInitialSync(ctx, "golang").Return("5", nil),
	)
	s.comments.EXPECT().CancelAllJobsFor("golang").Return(0)
	s.comments.EXPECT().EnqueueInitialSync(ctx, "golang").Return("6", nil)

	ids, err := s.service.Activate(ctx, "golang")

	s.Require().NoError(err)
	s.Equal(map[domain.ContentType]string{
		domain.ContentPosts:    "5",
		domain.ContentComments: "6",
	}, ids)
}

func (s *CommunitiesTestSuite) TestActivate_AlreadyActiveStartsNothing() {
	ctx := context.Background()

	s.store.EXPECT().Get(ctx, "golang").Return(&domain.TrackedCommunity{Name: "golang", IsActive: true}, nil)

	ids, err := s.service.Activate(ctx, "golang")

	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *CommunitiesTestSuite) TestActivate_NotFound() {
	ctx := context.Background()

	s.store.EXPECT().Get(ctx, "nope").Return(nil, domain.ErrCommunityNotFound)

	_, err := s.service.Activate(ctx, "nope")

	s.ErrorIs(err, domain.ErrCommunityNotFound)
}

func (s *CommunitiesTestSuite) TestDelete() {
	ctx := context.Background()

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.store.EXPECT().Delete(ctx, "golang").Return(nil)
	s.posts.EXPECT().CancelAllJobsFor("golang").Return(0)
	s.comments.EXPECT().CancelAllJobsFor("golang").Return(1)

	s.NoError(s.service.Delete(ctx, "golang"))
}

func (s *CommunitiesTestSuite) TestDelete_KeepsJobsOnFailure() {
	ctx := context.Background()

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.store.EXPECT().Delete(ctx, "golang").Return(domain.ErrCommunityNotFound)

	s.ErrorIs(s.service.Delete(ctx, "golang"), domain.ErrCommunityNotFound)
}

func (s *CommunitiesTestSuite) TestResumeAll() {
	ctx := context.Background()

	s.store.EXPECT().List(ctx, true).Return([]domain.TrackedCommunity{
		{Name: "golang", IsActive: true},
		{Name: "rust", IsActive: true},
	}, nil)
	s.posts.EXPECT().EnqueueInitialSync(ctx, gomock.Any()).Return("1", nil).Times(2)
	s.comments.EXPECT().EnqueueInitialSync(ctx, gomock.Any()).Return("2", nil).Times(2)

	n, err := s.service.ResumeAll(ctx)

	s.NoError(err)
	s.Equal(2, n)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "golang", want: "golang"},
		{in: "r/golang", want: "golang"},
		{in: "  AskReddit ", want: "AskReddit"},
		{in: "a", wantErr: true},
		{in: "", wantErr: true},
		{in: "has space", wantErr: true},
		{in: "../etc", wantErr: true},
		{in: "abcdefghijklmnopqrstuv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeName(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCommunityName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
