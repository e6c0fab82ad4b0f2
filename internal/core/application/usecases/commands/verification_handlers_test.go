package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateApplicationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateApplicationCommand(verification.SubjectBusiness, kernel.NewUUID(),
		verification.PriorityNormal, []verification.DocumentSpec{{Type: "business_license", Required: true}}, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockApplicationRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*verification.Application")).Return(nil).Once(),
		uow.On("AuditLog").Return(auditLog).Once(),
		auditLog.On("Append", ctx, mock.MatchedBy(func(entries []audit.Entry) bool {
			return len(entries) == 2 && entries[0].Action() == audit.ActionCreate
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	app, err := commands.NewCreateApplicationCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, verification.StatusDraft, app.Status())
	assert.Equal(t, int64(1), app.Version())
	assert.Empty(t, app.PendingAuditEntries())
	repo.AssertExpectations(t)
	auditLog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateApplicationCommandHandler_Handle_AuditFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateApplicationCommand(verification.SubjectDriver, kernel.NewUUID(),
		verification.PriorityLow, nil, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockApplicationRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ApplicationRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("AuditLog").Return(auditLog).Once()
	auditLog.On("Append", ctx, mock.Anything).Return(errors.New("disk full")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockApplicationUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateApplicationCommandHandler(factory).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAuditWriteFailure)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateApplicationCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockApplicationUoWFactory)
	_, err := commands.NewCreateApplicationCommandHandler(factory).Handle(t.Context(), commands.CreateApplicationCommand{})
	require.ErrorIs(t, err, commands.ErrCreateApplicationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitApplicationCommandHandler_Handle(t *testing.T) {
	t.Run("draft is submitted", func(t *testing.T) {
		ctx := t.Context()
		app := storedApplication(t, verification.StatusDraft, nil, verification.DocumentPending)
		factory, uow, repo, auditLog := applicationUoW(ctx, app)
		repo.On("Update", ctx, app).Return(nil).Once()
		auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewSubmitApplicationCommand(app.ID(), kernel.NewUUID())
		require.NoError(t, err)
		got, err := commands.NewSubmitApplicationCommandHandler(factory).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, verification.StatusSubmitted, got.Status())
		assert.Equal(t, int64(4), got.Version())
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("stale write is returned and nothing is committed", func(t *testing.T) {
		ctx := t.Context()
		app := storedApplication(t, verification.StatusDraft, nil, verification.DocumentPending)
		factory, uow, repo, _ := applicationUoW(ctx, app)
		repo.On("Update", ctx, app).Return(errs.NewStaleWriteError("application", app.ID().String(), 3)).Once()

		cmd, err := commands.NewSubmitApplicationCommand(app.ID(), kernel.NewUUID())
		require.NoError(t, err)
		_, err = commands.NewSubmitApplicationCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrStaleWrite)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		repo := new(MockApplicationRepository)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("applicationID", id)).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ApplicationRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockApplicationUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewSubmitApplicationCommand(id, kernel.NewUUID())
		require.NoError(t, err)
		_, err = commands.NewSubmitApplicationCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestAssignReviewerCommandHandler_Handle(t *testing.T) {
	t.Run("pickup moves a submitted application under review", func(t *testing.T) {
		ctx := t.Context()
		app := storedApplication(t, verification.StatusSubmitted, nil, verification.DocumentPending)
		factory, uow, repo, auditLog := applicationUoW(ctx, app)
		repo.On("Update", ctx, app).Return(nil).Once()
		auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		reviewer := kernel.NewUUID()
		cmd, err := commands.NewAssignReviewerCommand(app.ID(), reviewer)
		require.NoError(t, err)
		got, err := commands.NewAssignReviewerCommandHandler(factory).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, verification.StatusUnderReview, got.Status())
		require.NotNil(t, got.AssignedReviewerID())
		assert.True(t, got.AssignedReviewerID().IsEqual(reviewer))
	})

	t.Run("same reviewer again skips the write", func(t *testing.T) {
		ctx := t.Context()
		reviewer := kernel.NewUUID()
		app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
		factory, uow, repo, _ := applicationUoW(ctx, app)

		cmd, err := commands.NewAssignReviewerCommand(app.ID(), reviewer)
		require.NoError(t, err)
		got, err := commands.NewAssignReviewerCommandHandler(factory).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Version())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("another reviewer conflicts", func(t *testing.T) {
		ctx := t.Context()
		holder := kernel.NewUUID()
		app := storedApplication(t, verification.StatusUnderReview, &holder, verification.DocumentPending)
		factory, _, repo, _ := applicationUoW(ctx, app)

		cmd, err := commands.NewAssignReviewerCommand(app.ID(), kernel.NewUUID())
		require.NoError(t, err)
		_, err = commands.NewAssignReviewerCommandHandler(factory).Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrReviewerConflict)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestReviewDocumentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
	license := app.Documents()[0]
	factory, uow, repo, auditLog := applicationUoW(ctx, app)
	repo.On("Update", ctx, app).Return(nil).Once()
	auditLog.On("Append", ctx, mock.MatchedBy(func(entries []audit.Entry) bool {
		return len(entries) == 1 && entries[0].EntityType() == audit.EntityDocument
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewReviewDocumentCommand(app.ID(), license.ID(), reviewer, verification.DocumentApproved, "")
	require.NoError(t, err)
	got, err := commands.NewReviewDocumentCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, verification.StatusUnderReview, got.Status())
	assert.True(t, got.AllRequiredDocumentsApproved())
	auditLog.AssertExpectations(t)
}

func TestDecideApplicationCommandHandler_Handle(t *testing.T) {
	t.Run("approval stores a lifecycle event", func(t *testing.T) {
		ctx := t.Context()
		reviewer := kernel.NewUUID()
		app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentApproved)
		factory, uow, repo, auditLog := applicationUoW(ctx, app)
		outbox := new(MockOutbox)
		repo.On("Update", ctx, app).Return(nil).Once()
		auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
		uow.On("Outbox").Return(outbox).Once()
		outbox.On("Add", ctx, mock.MatchedBy(func(e services.LifecycleEvent) bool {
			return e.Type == services.EventVerificationApproved && e.EntityID.IsEqual(app.ID())
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDecideApplicationCommand(app.ID(), reviewer, verification.StatusApproved, "ok", nil, nil)
		require.NoError(t, err)
		got, err := commands.NewDecideApplicationCommandHandler(factory, 72*time.Hour).Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, verification.StatusApproved, got.Status())
		assert.Nil(t, got.AssignedReviewerID())
		assert.NotNil(t, got.CompletedAt())
		outbox.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("approval with a pending required document is refused", func(t *testing.T) {
		ctx := t.Context()
		reviewer := kernel.NewUUID()
		app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
		factory, _, repo, _ := applicationUoW(ctx, app)

		cmd, err := commands.NewDecideApplicationCommand(app.ID(), reviewer, verification.StatusApproved, "", nil, nil)
		require.NoError(t, err)
		_, err = commands.NewDecideApplicationCommandHandler(factory, time.Hour).Handle(ctx, cmd)

		var incomplete *errs.DocumentsIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{"driver_license"}, incomplete.Missing)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("info request uses the configured window", func(t *testing.T) {
		ctx := t.Context()
		reviewer := kernel.NewUUID()
		app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
		factory, uow, repo, auditLog := applicationUoW(ctx, app)
		repo.On("Update", ctx, app).Return(nil).Once()
		auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDecideApplicationCommand(app.ID(), reviewer,
			verification.StatusAdditionalInfoRequired, "licence photo is blurry", []string{"driver_license"}, nil)
		require.NoError(t, err)
		before := time.Now()
		got, err := commands.NewDecideApplicationCommandHandler(factory, 48*time.Hour).Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, verification.StatusAdditionalInfoRequired, got.Status())
		require.Len(t, got.InfoRequests(), 1)
		due := got.InfoRequests()[0].DueDate()
		assert.WithinDuration(t, before.Add(48*time.Hour), due, time.Minute)
		uow.AssertNotCalled(t, "Outbox")
	})
}

func TestRequestAdditionalInfoCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
	factory, uow, repo, auditLog := applicationUoW(ctx, app)
	repo.On("Update", ctx, app).Return(nil).Once()
	auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewRequestAdditionalInfoCommand(app.ID(), reviewer, "upload insurance",
		[]string{"insurance"}, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	got, err := commands.NewRequestAdditionalInfoCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, verification.StatusAdditionalInfoRequired, got.Status())
	assert.True(t, got.HasUnresolvedInfoRequests())
}

func TestResolveInfoRequestCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
	_, err := app.RequestAdditionalInfo(reviewer, "upload insurance", nil, time.Now().Add(time.Hour), time.Now())
	require.NoError(t, err)
	requestID := app.InfoRequests()[0].ID()
	stored := restoreAsStored(t, app)

	factory, uow, repo, auditLog := applicationUoW(ctx, stored)
	repo.On("Update", ctx, stored).Return(nil).Once()
	auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewResolveInfoRequestCommand(stored.ID(), requestID, kernel.NewUUID())
	require.NoError(t, err)
	got, err := commands.NewResolveInfoRequestCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, verification.StatusUnderReview, got.Status())
	assert.False(t, got.HasUnresolvedInfoRequests())
}

func TestSuspendApplicationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	reviewer := kernel.NewUUID()
	app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
	factory, uow, repo, auditLog := applicationUoW(ctx, app)
	outbox := new(MockOutbox)
	repo.On("Update", ctx, app).Return(nil).Once()
	auditLog.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.On("Outbox").Return(outbox).Once()
	outbox.On("Add", ctx, mock.MatchedBy(func(e services.LifecycleEvent) bool {
		return e.Type == services.EventVerificationSuspended
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewSuspendApplicationCommand(app.ID(), reviewer, "forged documents")
	require.NoError(t, err)
	got, err := commands.NewSuspendApplicationCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, verification.StatusSuspended, got.Status())
	outbox.AssertExpectations(t)
}

func TestExpireInfoRequestsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	overdue := overdueApplication(t, now)
	raced := overdueApplication(t, now)

	listRepo := new(MockApplicationRepository)
	listRepo.On("ListWithOverdueInfoRequests", ctx, now, 50).
		Return([]kernel.UUID{overdue.ID(), raced.ID()}, nil).Once()
	listUoW := new(MockUoW)
	listUoW.On("ApplicationRepository").Return(listRepo).Once()

	overdueUoW, overdueRepo, overdueAudit := loadingUoW(ctx, overdue)
	overdueRepo.On("Update", ctx, overdue).Return(nil).Once()
	overdueAudit.On("Append", ctx, mock.MatchedBy(func(entries []audit.Entry) bool {
		return len(entries) == 2 && entries[0].ActorID().IsEqual(kernel.SystemActor)
	})).Return(nil).Once()
	overdueUoW.On("Commit", ctx).Return(nil).Once()

	racedUoW, racedRepo, _ := loadingUoW(ctx, raced)
	racedRepo.On("Update", ctx, raced).Return(errs.NewStaleWriteError("application", raced.ID().String(), 4)).Once()

	factory := new(MockApplicationUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		factory.On("Create").Return(overdueUoW).Once(),
		factory.On("Create").Return(racedUoW).Once(),
	)

	cmd, err := commands.NewExpireInfoRequestsCommand(now, 50)
	require.NoError(t, err)
	result, err := commands.NewExpireInfoRequestsCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, commands.ExpireInfoRequestsResult{Applications: 1, Requests: 1, Skipped: 1}, result)
	assert.Equal(t, verification.PriorityHigh, overdue.Priority())
	assert.Equal(t, verification.StatusAdditionalInfoRequired, overdue.Status())
	overdueUoW.AssertExpectations(t)
	racedUoW.AssertNotCalled(t, "Commit", ctx)
}

// overdueApplication waits for info on a request that fell due an hour before now.
func overdueApplication(t *testing.T, now time.Time) *verification.Application {
	t.Helper()

	reviewer := kernel.NewUUID()
	app := storedApplication(t, verification.StatusUnderReview, &reviewer, verification.DocumentPending)
	_, err := app.RequestAdditionalInfo(reviewer, "upload insurance", nil, now.Add(-time.Hour), now.Add(-2*time.Hour))
	require.NoError(t, err)
	return restoreAsStored(t, app)
}

// restoreAsStored round-trips app through its state so it looks freshly loaded.
func restoreAsStored(t *testing.T, app *verification.Application) *verification.Application {
	t.Helper()

	submitted := storedAt
	stored, err := verification.RestoreApplication(verification.ApplicationState{
		ID:                 app.ID(),
		SubjectType:        app.SubjectType(),
		SubjectID:          app.SubjectID(),
		Status:             app.Status(),
		Priority:           app.Priority(),
		AssignedReviewerID: app.AssignedReviewerID(),
		Documents:          app.Documents(),
		Reviews:            app.Reviews(),
		InfoRequests:       app.InfoRequests(),
		SubmittedAt:        &submitted,
		CreatedAt:          app.CreatedAt(),
		Version:            app.Version(),
	})
	require.NoError(t, err)
	return stored
}
