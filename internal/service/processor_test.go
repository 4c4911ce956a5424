package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"modsync/internal/config"
	"modsync/internal/domain"
	"modsync/internal/queue"
	"modsync/internal/service/mocks"
	"modsync/internal/source/reddit"
	"modsync/testdata/utils"
)

type ProcessorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source      *mocks.MockSource
	content     *mocks.MockContentStore
	status      *mocks.MockSyncStatusStore
	communities *mocks.MockCommunityStore
	txManager   *mocks.MockTransactionManager
	publisher   *mocks.MockPublisher
	initialQ    *mocks.MockJobQueue
	updatesQ    *mocks.MockJobQueue

	processor *Processor
	cfg       config.SyncConfig
	logger    *slog.Logger
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.content = mocks.NewMockContentStore(s.ctrl)
	s.status = mocks.NewMockSyncStatusStore(s.ctrl)
	s.communities = mocks.NewMockCommunityStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.initialQ = mocks.NewMockJobQueue(s.ctrl)
	s.updatesQ = mocks.NewMockJobQueue(s.ctrl)

	s.cfg = config.SyncConfig{
		ShortDelay:     1 * time.Second,
		LongDelay:      20 * time.Second,
		UpdateInterval: 10 * time.Second,
	}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().ID().Return("test-source").AnyTimes()

	s.processor = s.newProcessor(s.publisher)
}

func (s *ProcessorTestSuite) newProcessor(publisher Publisher) *Processor {
	factory := func(name string, _ queue.Handler[domain.SyncJob], _ queue.Options) JobQueue {
		switch name {
		case InitialQueueName(domain.ContentPosts):
			return s.initialQ
		case UpdateQueueName(domain.ContentPosts):
			return s.updatesQ
		}
		s.FailNow("unexpected queue", name)
		return nil
	}

	return NewProcessor(
		domain.ContentPosts,
		s.source,
		s.content,
		s.status,
		s.communities,
		s.txManager,
		publisher,
		factory,
		config.QueueConfig{InitialParallel: 1, UpdateParallel: 5},
		s.cfg,
		s.logger,
	)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func makeItems(community string, n int) []domain.ContentItem {
	items := make([]domain.ContentItem, n)
	for i := range items {
		items[i] = domain.ContentItem{
			CommunityName: community,
			Author:        "author",
			ItemKind:      domain.KindPost,
			UniqueName:    fmt.Sprintf("t3_%d", i),
		}
	}
	return items
}

func (s *ProcessorTestSuite) expectActive(ctx context.Context, name string) {
	s.communities.EXPECT().Get(ctx, name).Return(&domain.TrackedCommunity{Name: name, IsActive: true}, nil)
}

func (s *ProcessorTestSuite) expectTx(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func initialJob(community string, after *string) queue.Job[domain.SyncJob] {
	return queue.Job[domain.SyncJob]{
		ID:      "1",
		Queue:   InitialQueueName(domain.ContentPosts),
		Payload: domain.SyncJob{CommunityName: community, After: after, Mode: domain.ModeInitial},
	}
}

func updateJob(community string) queue.Job[domain.SyncJob] {
	return queue.Job[domain.SyncJob]{
		ID:      "repeat:posts-updates:" + community,
		Queue:   UpdateQueueName(domain.ContentPosts),
		Payload: domain.SyncJob{CommunityName: community, Mode: domain.ModeUpdate},
	}
}

func (s *ProcessorTestSuite) TestHandle_AllNewPageContinuesAfterShortDelay() {
	ctx := context.Background()
	items := makeItems("golang", 100)

	s.expectActive(ctx, "golang")
	s.status.EXPECT().Get(ctx, "golang", domain.ContentPosts).Return(&domain.SyncStatus{CommunityName: "golang"}, nil)
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, (*string)(nil)).
		Return(&domain.Page{Items: items, After: utils.Ptr("t3_abc")}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(items, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_abc"), 100).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.ContentPosts, gomock.Any()).Return(nil).Times(100)
	s.initialQ.EXPECT().Add(ctx, domain.SyncJob{
		CommunityName: "golang",
		After:         utils.Ptr("t3_abc"),
		Mode:          domain.ModeInitial,
	}, queue.JobOptions{Delay: s.cfg.ShortDelay}).Return("2", nil)

	out, err := s.processor.Handle(ctx, initialJob("golang", nil))

	s.Require().NoError(err)
	result := out.(SyncResult)
	s.Equal(100, result.Stats.Fetched)
	s.Equal(100, result.Stats.New)
	s.Equal(0, result.Stats.Duplicates)
	s.Equal(100, result.Stats.Published)
	s.Equal("t3_abc", *result.Stats.NextCursor)
	s.False(result.Skipped)
}

func (s *ProcessorTestSuite) TestHandle_LastPageRegistersUpdates() {
	ctx := context.Background()
	items := makeItems("golang", 3)

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_abc")).
		Return(&domain.Page{Items: items, After: nil}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(items, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, (*string)(nil), 3).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.ContentPosts, gomock.Any()).Return(nil).Times(3)
	s.updatesQ.EXPECT().Add(ctx, domain.SyncJob{
		CommunityName: "golang",
		Mode:          domain.ModeUpdate,
	}, queue.JobOptions{Repeat: s.cfg.UpdateInterval, Key: "golang"}).Return("repeat:posts-updates:golang", nil)

	out, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_abc")))

	s.Require().NoError(err)
	result := out.(SyncResult)
	s.Nil(result.Stats.NextCursor)
	s.Equal(3, result.Stats.New)
}

func (s *ProcessorTestSuite) TestHandle_DuplicatesContinueAfterLongDelay() {
	ctx := context.Background()
	items := makeItems("golang", 10)

	s.expectActive(ctx, "golang")
	s.status.EXPECT().Get(ctx, "golang", domain.ContentPosts).Return(&domain.SyncStatus{CommunityName: "golang"}, nil)
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, (*string)(nil)).
		Return(&domain.Page{Items: items, After: utils.Ptr("t3_next")}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(items[:4], nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_next"), 4).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.ContentPosts, gomock.Any()).Return(nil).Times(4)
	s.initialQ.EXPECT().Add(ctx, gomock.Any(), queue.JobOptions{Delay: s.cfg.LongDelay}).Return("2", nil)

	out, err := s.processor.Handle(ctx, initialJob("golang", nil))

	s.Require().NoError(err)
	result := out.(SyncResult)
	s.Equal(4, result.Stats.New)
	s.Equal(6, result.Stats.Duplicates)
}

func (s *ProcessorTestSuite) TestHandle_EmptyPageWithCursorContinues() {
	ctx := context.Background()

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
		Return(&domain.Page{Items: nil, After: utils.Ptr("t3_b")}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, gomock.Len(0)).Return(nil, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_b"), 0).Return(nil)
	s.initialQ.EXPECT().Add(ctx, domain.SyncJob{
		CommunityName: "golang",
		After:         utils.Ptr("t3_b"),
		Mode:          domain.ModeInitial,
	}, queue.JobOptions{Delay: s.cfg.ShortDelay}).Return("2", nil)

	_, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

	s.NoError(err)
}

func (s *ProcessorTestSuite) TestHandle_InactiveCommunitySkips() {
	ctx := context.Background()

	s.communities.EXPECT().Get(ctx, "golang").Return(&domain.TrackedCommunity{Name: "golang", IsActive: false}, nil)

	out, err := s.processor.Handle(ctx, initialJob("golang", nil))

	s.Require().NoError(err)
	result := out.(SyncResult)
	s.True(result.Skipped)
	s.True(result.StopRepeat())
	s.Nil(result.Stats)
}

func (s *ProcessorTestSuite) TestHandle_UnknownCommunitySkips() {
	ctx := context.Background()

	s.communities.EXPECT().Get(ctx, "gone").Return(nil, domain.ErrCommunityNotFound)

	out, err := s.processor.Handle(ctx, updateJob("gone"))

	s.Require().NoError(err)
	s.True(out.(SyncResult).StopRepeat())
}

func (s *ProcessorTestSuite) TestHandle_CommunityLookupConnectionLossIsRetried() {
	ctx := context.Background()

	s.communities.EXPECT().Get(ctx, "golang").Return(nil, driver.ErrBadConn)

	_, err := s.processor.Handle(ctx, initialJob("golang", nil))

	s.Require().Error(err)
	s.False(queue.IsPermanent(err))
	s.ErrorIs(err, driver.ErrBadConn)
}

func (s *ProcessorTestSuite) TestHandle_CommunityLookupDataErrorIsPermanent() {
	ctx := context.Background()

	s.communities.EXPECT().Get(ctx, "golang").Return(nil, &pq.Error{Code: "22021"})

	_, err := s.processor.Handle(ctx, initialJob("golang", nil))

	s.Require().Error(err)
	s.True(queue.IsPermanent(err))
	var perr *PersistenceError
	s.ErrorAs(err, &perr)
}

func (s *ProcessorTestSuite) TestHandle_DecodeErrorIsPermanent() {
	ctx := context.Background()

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
		Return(nil, &reddit.DecodeError{Body: []byte("<html>"), Err: errors.New("invalid character")})

	_, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

	s.Require().Error(err)
	s.True(queue.IsPermanent(err))
}

func (s *ProcessorTestSuite) TestHandle_UpstreamErrorIsRetried() {
	ctx := context.Background()

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
		Return(nil, &reddit.UpstreamError{Status: 503})

	_, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

	s.Require().Error(err)
	s.False(queue.IsPermanent(err))
	var upErr *reddit.UpstreamError
	s.ErrorAs(err, &upErr)
}

func (s *ProcessorTestSuite) TestHandle_InsertConstraintViolationIsPermanent() {
	ctx := context.Background()
	items := makeItems("golang", 2)
	dbErr := &pq.Error{Code: "23502", Message: "null value in column \"author\""}

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
		Return(&domain.Page{Items: items, After: utils.Ptr("t3_b")}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(nil, dbErr)

	_, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

	s.Require().Error(err)
	s.True(queue.IsPermanent(err))
	var perr *PersistenceError
	s.Require().ErrorAs(err, &perr)
	s.Equal("store page", perr.Op)
	s.ErrorIs(err, dbErr)
}

func (s *ProcessorTestSuite) TestHandle_TransientStoreFailureIsRetried() {
	ctx := context.Background()
	items := makeItems("golang", 2)

	for _, dbErr := range []error{
		driver.ErrBadConn,
		&pq.Error{Code: "40001"},
		&pq.Error{Code: "57P01"},
		context.DeadlineExceeded,
	} {
		s.expectActive(ctx, "golang")
		s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
			Return(&domain.Page{Items: items, After: utils.Ptr("t3_b")}, nil)
		s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(dbErr)

		_, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

		s.Require().Error(err)
		s.False(queue.IsPermanent(err), "%v", dbErr)
		s.ErrorIs(err, dbErr)
	}
}

func (s *ProcessorTestSuite) TestQueue_RetriesDroppedConnectionUntilAttemptsRunOut() {
	items := makeItems("golang", 2)

	var txCalls atomic.Int32
	s.communities.EXPECT().Get(gomock.Any(), "golang").
		Return(&domain.TrackedCommunity{Name: "golang", IsActive: true}, nil).Times(3)
	s.status.EXPECT().Get(gomock.Any(), "golang", domain.ContentPosts).
		Return(&domain.SyncStatus{CommunityName: "golang"}, nil).Times(3)
	s.source.EXPECT().FetchPage(gomock.Any(), "golang", domain.ContentPosts, (*string)(nil)).
		Return(&domain.Page{Items: items, After: utils.Ptr("t3_b")}, nil).Times(3)
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, func(context.Context) error) error {
			txCalls.Add(1)
			return driver.ErrBadConn
		}).Times(3)

	processor := NewProcessor(
		domain.ContentPosts,
		s.source,
		s.content,
		s.status,
		s.communities,
		s.txManager,
		nil,
		InMemoryQueues(s.logger),
		config.QueueConfig{
			Attempts:        3,
			BackoffBase:     5 * time.Millisecond,
			PollInterval:    10 * time.Millisecond,
			InitialParallel: 1,
			UpdateParallel:  1,
		},
		s.cfg,
		s.logger,
	)
	processor.Start()
	defer processor.Close()

	id, err := processor.EnqueueInitialSync(context.Background(), "golang")
	s.Require().NoError(err)

	s.Eventually(func() bool {
		return processor.JobStatus(id).Status == queue.StatusFailed
	}, 5*time.Second, 10*time.Millisecond)

	st := processor.JobStatus(id)
	s.Equal(3, st.AttemptsMade)
	s.Equal(int32(3), txCalls.Load())
	s.Contains(st.FailedReason, "bad connection")
}

func (s *ProcessorTestSuite) TestHandle_PublishFailureDoesNotFailJob() {
	ctx := context.Background()
	items := makeItems("golang", 2)

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
		Return(&domain.Page{Items: items}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(items, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, (*string)(nil), 2).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.ContentPosts, &items[0]).Return(errors.New("channel closed"))
	s.publisher.EXPECT().Publish(ctx, domain.ContentPosts, &items[1]).Return(nil)
	s.updatesQ.EXPECT().Add(ctx, gomock.Any(), gomock.Any()).Return("repeat:posts-updates:golang", nil)

	out, err := s.processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

	s.Require().NoError(err)
	s.Equal(1, out.(SyncResult).Stats.Published)
}

func (s *ProcessorTestSuite) TestHandle_NoPublisher() {
	ctx := context.Background()
	items := makeItems("golang", 2)
	processor := s.newProcessor(nil)

	s.expectActive(ctx, "golang")
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_a")).
		Return(&domain.Page{Items: items}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(items, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, (*string)(nil), 2).Return(nil)
	s.updatesQ.EXPECT().Add(ctx, gomock.Any(), gomock.Any()).Return("repeat:posts-updates:golang", nil)

	out, err := processor.Handle(ctx, initialJob("golang", utils.Ptr("t3_a")))

	s.Require().NoError(err)
	s.Equal(0, out.(SyncResult).Stats.Published)
}

func (s *ProcessorTestSuite) TestHandle_UpdateCaughtUpWaitsInterval() {
	ctx := context.Background()
	items := makeItems("golang", 1)

	s.expectActive(ctx, "golang")
	s.status.EXPECT().Get(ctx, "golang", domain.ContentPosts).Return(&domain.SyncStatus{CommunityName: "golang"}, nil)
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, (*string)(nil)).
		Return(&domain.Page{Items: items}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(nil, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, (*string)(nil), 0).Return(nil)

	out, err := s.processor.Handle(ctx, updateJob("golang"))

	s.Require().NoError(err)
	result := out.(SyncResult)
	s.Equal(s.cfg.UpdateInterval, result.RepeatDelay())
	s.False(result.StopRepeat())
}

func (s *ProcessorTestSuite) TestHandle_UpdateWithMorePagesUsesCrawlDelay() {
	ctx := context.Background()
	items := makeItems("golang", 5)

	s.expectActive(ctx, "golang")
	s.status.EXPECT().Get(ctx, "golang", domain.ContentPosts).Return(&domain.SyncStatus{CommunityName: "golang"}, nil)
	s.source.EXPECT().FetchPage(ctx, "golang", domain.ContentPosts, (*string)(nil)).
		Return(&domain.Page{Items: items, After: utils.Ptr("t3_more")}, nil)
	s.expectTx(ctx)
	s.content.EXPECT().InsertNew(ctx, domain.ContentPosts, items).Return(items, nil)
	s.status.EXPECT().Save(ctx, "golang", domain.ContentPosts, utils.Ptr("t3_more"), 5).Return(nil)
	s.publisher.EXPECT().Publish(ctx, domain.ContentPosts, gomock.Any()).Return(nil).Times(5)

	out, err := s.processor.Handle(ctx, updateJob("golang"))

	s.Require().NoError(err)
	s.Equal(s.cfg.ShortDelay, out.(SyncResult).RepeatDelay())
}

func (s *ProcessorTestSuite) TestEnqueueInitialSync() {
	ctx := context.Background()

	s.initialQ.EXPECT().Add(ctx, domain.SyncJob{
		CommunityName: "golang",
		Mode:          domain.ModeInitial,
	}, queue.JobOptions{}).Return("7", nil)

	id, err := s.processor.EnqueueInitialSync(ctx, "golang")

	s.NoError(err)
	s.Equal("7", id)
}

func (s *ProcessorTestSuite) TestEnqueueInitialSync_QueueClosed() {
	ctx := context.Background()

	s.initialQ.EXPECT().Add(ctx, gomock.Any(), gomock.Any()).Return("", queue.ErrClosed)

	_, err := s.processor.EnqueueInitialSync(ctx, "golang")

	s.ErrorIs(err, queue.ErrClosed)
}

func (s *ProcessorTestSuite) TestCancelAllJobsFor() {
	var initialMatch, updatesMatch func(domain.SyncJob) bool
	s.initialQ.EXPECT().RemoveWhere(gomock.Any()).DoAndReturn(func(match func(domain.SyncJob) bool) int {
		initialMatch = match
		return 2
	})
	s.updatesQ.EXPECT().RemoveWhere(gomock.Any()).DoAndReturn(func(match func(domain.SyncJob) bool) int {
		updatesMatch = match
		return 1
	})

	n := s.processor.CancelAllJobsFor("golang")

	s.Equal(3, n)
	s.True(initialMatch(domain.SyncJob{CommunityName: "golang"}))
	s.False(initialMatch(domain.SyncJob{CommunityName: "rust"}))
	s.True(updatesMatch(domain.SyncJob{CommunityName: "golang", Mode: domain.ModeUpdate}))
}

func (s *ProcessorTestSuite) TestJobStatus_FallsBackToUpdates() {
	s.initialQ.EXPECT().Status("repeat:posts-updates:golang").Return(queue.JobStatus{ID: "repeat:posts-updates:golang", Status: queue.StatusNotFound})
	s.updatesQ.EXPECT().Status("repeat:posts-updates:golang").Return(queue.JobStatus{ID: "repeat:posts-updates:golang", Status: queue.StatusDelayed})

	st := s.processor.JobStatus("repeat:posts-updates:golang")

	s.Equal(queue.StatusDelayed, st.Status)
}

func (s *ProcessorTestSuite) TestClean() {
	s.initialQ.EXPECT().Clean(time.Hour).Return(4)
	s.updatesQ.EXPECT().Clean(time.Hour).Return(1)

	s.Equal(5, s.processor.Clean(time.Hour))
}

func TestDecide(t *testing.T) {
	short, long := time.Second, 20*time.Second

	tests := []struct {
		name  string
		stats domain.SyncStats
		want  Decision
	}{
		{
			name:  "all new with cursor",
			stats: domain.SyncStats{Fetched: 100, New: 100, NextCursor: utils.Ptr("t3_x")},
			want:  Decision{Action: ActionNextPage, Delay: short},
		},
		{
			name:  "some duplicates with cursor",
			stats: domain.SyncStats{Fetched: 100, New: 99, NextCursor: utils.Ptr("t3_x")},
			want:  Decision{Action: ActionNextPage, Delay: long},
		},
		{
			name:  "empty page with cursor",
			stats: domain.SyncStats{NextCursor: utils.Ptr("t3_x")},
			want:  Decision{Action: ActionNextPage, Delay: short},
		},
		{
			name:  "no cursor",
			stats: domain.SyncStats{Fetched: 100, New: 100},
			want:  Decision{Action: ActionCaughtUp},
		},
		{
			name:  "empty cursor",
			stats: domain.SyncStats{Fetched: 3, New: 0, NextCursor: utils.Ptr("")},
			want:  Decision{Action: ActionCaughtUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(&tt.stats, short, long))
		})
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "server error", err: &reddit.UpstreamError{Status: 502}, want: true},
		{name: "rate limited", err: &reddit.UpstreamError{Status: 429}, want: true},
		{name: "forbidden", err: &reddit.UpstreamError{Status: 403}, want: false},
		{name: "malformed body", err: &reddit.DecodeError{Err: errors.New("unexpected EOF")}, want: false},
		{name: "transport", err: errors.New("connection reset by peer"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(fmt.Errorf("fetch: %w", tt.err)))
		})
	}
}
