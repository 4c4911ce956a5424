package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"modsync/internal/domain"
	"modsync/internal/service/mocks"
)

type ResetterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	communities *mocks.MockCommunityStore
	resets      *mocks.MockResetStore
	txManager   *mocks.MockTransactionManager
	cache       *mocks.MockResponseCache
	processor   *mocks.MockSyncProcessor

	resetter *Resetter
}

func (s *ResetterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.communities = mocks.NewMockCommunityStore(s.ctrl)
	s.resets = mocks.NewMockResetStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.cache = mocks.NewMockResponseCache(s.ctrl)
	s.processor = mocks.NewMockSyncProcessor(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.resetter = NewResetter(
		s.communities,
		s.resets,
		s.txManager,
		s.cache,
		[]SyncProcessor{s.processor},
		logger,
	)
}

func (s *ResetterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResetterTestSuite(t *testing.T) {
	suite.Run(t, new(ResetterTestSuite))
}

func (s *ResetterTestSuite) expectTx(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *ResetterTestSuite) TestReset() {
	ctx := context.Background()
	deleted := map[string]int64{"tracked_communities": 2, "posts": 40}

	gomock.InOrder(
		s.processor.EXPECT().Pause(),
		s.communities.EXPECT().List(ctx, false).Return([]domain.TrackedCommunity{
			{Name: "golang", IsActive: true},
			{Name: "rust", IsActive: false},
		}, nil),
		s.processor.EXPECT().CancelAllJobsFor("golang").Return(2),
		s.processor.EXPECT().CancelAllJobsFor("rust").Return(0),
		s.resets.EXPECT().PurgeAll(ctx).Return(deleted, nil),
		s.cache.EXPECT().Clear(ctx).Return(nil),
		s.processor.EXPECT().Resume(),
	)
	s.expectTx(ctx)

	report, err := s.resetter.Reset(ctx)

	s.Require().NoError(err)
	s.Equal(2, report.Communities)
	s.Equal(2, report.CancelledJobs)
	s.Equal(deleted, report.DeletedRows)
}

func (s *ResetterTestSuite) TestReset_PurgeFailureResumesQueues() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	s.processor.EXPECT().Pause()
	s.communities.EXPECT().List(ctx, false).Return(nil, nil)
	s.expectTx(ctx)
	s.resets.EXPECT().PurgeAll(ctx).Return(nil, dbErr)
	s.processor.EXPECT().Resume()

	_, err := s.resetter.Reset(ctx)

	s.ErrorIs(err, dbErr)
}

func (s *ResetterTestSuite) TestReset_WithoutCache() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	resetter := NewResetter(s.communities, s.resets, s.txManager, nil, []SyncProcessor{s.processor}, logger)

	s.processor.EXPECT().Pause()
	s.communities.EXPECT().List(ctx, false).Return(nil, nil)
	s.expectTx(ctx)
	s.resets.EXPECT().PurgeAll(ctx).Return(map[string]int64{}, nil)
	s.processor.EXPECT().Resume()

	report, err := resetter.Reset(ctx)

	s.Require().NoError(err)
	s.Zero(report.Communities)
}
