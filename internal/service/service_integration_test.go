package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"course-marketplace-api/internal/authz"
	"course-marketplace-api/internal/domain"
	"course-marketplace-api/internal/dto"
	"course-marketplace-api/internal/repository"
	"course-marketplace-api/internal/response"
)

type integrationEnv struct {
	db    *gorm.DB
	repos repository.Repositories
	uow   repository.UnitOfWork
}

func setupIntegration(t *testing.T) *integrationEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Role{}, &domain.UserRole{},
		&domain.Skill{}, &domain.SkillCreator{},
		&domain.Course{}, &domain.Video{}, &domain.Review{}, &domain.Payment{},
	))

	repos := repository.NewRepositories(db)
	ctx := context.Background()
	for _, name := range []string{authz.RoleAdmin, authz.RoleCreator, authz.RoleStudent} {
		require.NoError(t, repos.Roles.Create(ctx, &domain.Role{Name: name}))
	}
	return &integrationEnv{db: db, repos: repos, uow: repository.NewUnitOfWork(db)}
}

func (e *integrationEnv) createUser(t *testing.T, email, role string) uuid.UUID {
	t.Helper()
	svc := NewUserService(e.repos, e.uow, zap.NewNop())
	result := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		FirstName: "Test", LastName: "User", Email: email, Role: role,
	})
	require.True(t, result.IsSuccess(), "%v", result.Failure())
	return result.Value.ID
}

func (e *integrationEnv) createCourse(t *testing.T, creatorID uuid.UUID, videos int) *dto.CourseResponse {
	t.Helper()
	svc := NewCourseService(e.repos, e.uow, &MockMediaChecker{}, nil, zap.NewNop())
	req := &dto.CreateCourseRequest{Title: "Testing in Go", Price: decimal.NewFromInt(25)}
	for i := 0; i < videos; i++ {
		req.Videos = append(req.Videos, dto.VideoDescriptor{Title: "Lesson", ProviderVideoID: uuid.NewString(), ProviderName: "api.video"})
	}
	result := svc.CreateCourse(context.Background(), req, creatorID)
	require.True(t, result.IsSuccess(), "%v", result.Failure())
	return result.Value
}

func TestUserService_Lifecycle(t *testing.T) {
	env := setupIntegration(t)
	svc := NewUserService(env.repos, env.uow, zap.NewNop())
	ctx := context.Background()

	id := env.createUser(t, "ada@example.com", "")

	roles := svc.GetUserRoles(ctx, id)
	require.True(t, roles.IsSuccess())
	assert.Equal(t, []string{authz.RoleStudent}, roles.Value)

	assert.Equal(t, response.KindNotModified, svc.ActivateUser(ctx, id).SuccessKind())
	assert.Equal(t, response.KindUpdated, svc.DeactivateUser(ctx, id).SuccessKind())
	assert.Equal(t, response.KindNotModified, svc.DeactivateUser(ctx, id).SuccessKind())

	require.True(t, svc.AssignRoles(ctx, id, []string{authz.RoleCreator, authz.RoleStudent}).IsSuccess())
	roles = svc.GetUserRoles(ctx, id)
	assert.Equal(t, []string{authz.RoleCreator, authz.RoleStudent}, roles.Value)

	require.True(t, svc.ReplaceRoles(ctx, id, []string{authz.RoleAdmin}).IsSuccess())
	roles = svc.GetUserRoles(ctx, id)
	assert.Equal(t, []string{authz.RoleAdmin}, roles.Value)

	require.True(t, svc.RemoveRole(ctx, id, authz.RoleAdmin).IsSuccess())
	roles = svc.GetUserRoles(ctx, id)
	assert.Empty(t, roles.Value)

	require.Equal(t, response.KindDeleted, svc.DeleteUser(ctx, id).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, svc.GetUser(ctx, id).Failure().Code)
}

func TestUserService_CreateUser_Failures(t *testing.T) {
	env := setupIntegration(t)
	svc := NewUserService(env.repos, env.uow, zap.NewNop())
	ctx := context.Background()

	env.createUser(t, "dup@example.com", authz.RoleStudent)

	dup := svc.CreateUser(ctx, &dto.CreateUserRequest{FirstName: "a", LastName: "b", Email: "dup@example.com"})
	require.False(t, dup.IsSuccess())
	assert.Equal(t, response.ErrCodeConflict, dup.Failure().Code)

	unknown := svc.CreateUser(ctx, &dto.CreateUserRequest{FirstName: "a", LastName: "b", Email: "x@example.com", Role: "wizard"})
	require.False(t, unknown.IsSuccess())
	assert.Equal(t, response.ErrCodeValidation, unknown.Failure().Code)
	assert.Contains(t, unknown.Failure().Fields, "roles")

	assign := svc.AssignRoles(ctx, uuid.New(), []string{authz.RoleAdmin})
	assert.Equal(t, response.ErrCodeNotFound, assign.Failure().Code)
}

func TestRoleService(t *testing.T) {
	env := setupIntegration(t)
	svc := NewRoleService(env.repos, zap.NewNop())
	ctx := context.Background()

	created := svc.CreateRole(ctx, &dto.RoleRequest{Name: authz.RoleModerator})
	require.True(t, created.IsSuccess())
	assert.Equal(t, response.KindCreated, created.SuccessKind())

	dup := svc.CreateRole(ctx, &dto.RoleRequest{Name: authz.RoleAdmin})
	assert.Equal(t, response.ErrCodeConflict, dup.Failure().Code)

	assert.Equal(t, response.KindNotModified, svc.UpdateRole(ctx, created.Value.ID, &dto.RoleRequest{Name: authz.RoleModerator}).SuccessKind())
	assert.Equal(t, response.ErrCodeConflict, svc.UpdateRole(ctx, created.Value.ID, &dto.RoleRequest{Name: authz.RoleAdmin}).Failure().Code)
	assert.Equal(t, response.KindUpdated, svc.UpdateRole(ctx, created.Value.ID, &dto.RoleRequest{Name: "reviewer"}).SuccessKind())

	all := svc.GetRoles(ctx)
	require.True(t, all.IsSuccess())
	assert.Len(t, all.Value, 4)

	assert.Equal(t, response.KindDeleted, svc.DeleteRole(ctx, created.Value.ID).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, svc.GetRole(ctx, created.Value.ID).Failure().Code)
}

func TestSkillService(t *testing.T) {
	env := setupIntegration(t)
	svc := NewSkillService(env.repos, env.uow, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)

	created := svc.CreateSkill(ctx, &dto.SkillRequest{Name: "Systems Programming"})
	require.True(t, created.IsSuccess())
	assert.Equal(t, "systems-programming", created.Value.Slug)

	dup := svc.CreateSkill(ctx, &dto.SkillRequest{Name: "Systems Programming"})
	assert.Equal(t, response.ErrCodeConflict, dup.Failure().Code)

	require.True(t, svc.AddCreatorToSkills(ctx, creator, []uuid.UUID{created.Value.ID}).IsSuccess())
	require.True(t, svc.AddCreatorToSkills(ctx, creator, []uuid.UUID{created.Value.ID}).IsSuccess())
	skills := svc.GetCreatorSkills(ctx, creator)
	require.True(t, skills.IsSuccess())
	assert.Len(t, skills.Value, 1)

	missing := svc.AddCreatorToSkills(ctx, creator, []uuid.UUID{uuid.New()})
	assert.Equal(t, response.ErrCodeNotFound, missing.Failure().Code)

	require.True(t, svc.UpdateSkill(ctx, created.Value.ID, &dto.SkillRequest{Name: "Rust"}).IsSuccess())
	got := svc.GetSkillWithCourses(ctx, created.Value.ID)
	require.True(t, got.IsSuccess())
	assert.Equal(t, "rust", got.Value.Slug)

	assert.Equal(t, response.KindDeleted, svc.SoftDeleteSkill(ctx, created.Value.ID).SuccessKind())
	assert.Equal(t, response.KindNotModified, svc.SoftDeleteSkill(ctx, created.Value.ID).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, svc.GetSkillWithCourses(ctx, created.Value.ID).Failure().Code)
}

func TestReviewService(t *testing.T) {
	env := setupIntegration(t)
	svc := NewReviewService(env.repos, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	student := env.createUser(t, "student@example.com", authz.RoleStudent)
	course := env.createCourse(t, creator, 1)
	other := env.createCourse(t, creator, 1)

	outOfRange := svc.CreateReview(ctx, student, &dto.CreateReviewRequest{CourseID: course.ID, Rating: decimal.NewFromInt(6)})
	assert.Equal(t, response.ErrCodeValidation, outOfRange.Failure().Code)

	foreignVideo := other.Videos[0].ID
	mismatch := svc.CreateReview(ctx, student, &dto.CreateReviewRequest{CourseID: course.ID, VideoID: &foreignVideo, Rating: decimal.NewFromInt(4)})
	assert.Equal(t, response.ErrCodeValidation, mismatch.Failure().Code)

	videoID := course.Videos[0].ID
	created := svc.CreateReview(ctx, student, &dto.CreateReviewRequest{CourseID: course.ID, VideoID: &videoID, Rating: decimal.RequireFromString("4.5"), Content: "good"})
	require.True(t, created.IsSuccess(), "%v", created.Failure())
	assert.Equal(t, student, created.Value.UserID)

	byVideo := svc.GetReviewsByVideo(ctx, videoID, dto.PageQuery{})
	require.True(t, byVideo.IsSuccess())
	assert.Equal(t, int64(1), byVideo.Value.TotalCount)

	require.True(t, svc.UpdateReview(ctx, created.Value.ID, &dto.UpdateReviewRequest{Content: "great", Rating: decimal.NewFromInt(5)}).IsSuccess())

	assert.Equal(t, response.KindDeleted, svc.SoftDeleteReview(ctx, created.Value.ID).SuccessKind())
	assert.Equal(t, response.KindNotModified, svc.SoftDeleteReview(ctx, created.Value.ID).SuccessKind())

	byCourse := svc.GetReviewsByCourse(ctx, course.ID, dto.PageQuery{})
	require.True(t, byCourse.IsSuccess())
	assert.Equal(t, int64(0), byCourse.Value.TotalCount)

	assert.Equal(t, response.KindDeleted, svc.DeleteReview(ctx, created.Value.ID).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, svc.DeleteReview(ctx, created.Value.ID).Failure().Code)
}

func TestVideoService(t *testing.T) {
	env := setupIntegration(t)
	media := &MockMediaChecker{}
	svc := NewVideoService(env.repos, env.uow, media, nil, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	course := env.createCourse(t, creator, 0)

	created := svc.CreateVideo(ctx, course.ID, &dto.CreateVideoRequest{VideoDescriptor: dto.VideoDescriptor{
		Title: "Goroutines", ProviderVideoID: "vi123", ProviderName: "api.video",
	}})
	require.True(t, created.IsSuccess(), "%v", created.Failure())
	assert.Equal(t, creator, created.Value.CreatorID)
	assert.Equal(t, course.ID, created.Value.CourseID)
	assert.Equal(t, 1, media.Calls)

	id := created.Value.ID
	assert.Equal(t, response.KindUpdated, svc.MakeVideoPaid(ctx, id).SuccessKind())
	assert.Equal(t, response.KindNotModified, svc.MakeVideoPaid(ctx, id).SuccessKind())
	assert.Equal(t, response.KindUpdated, svc.MakeVideoFree(ctx, id).SuccessKind())
	assert.Equal(t, response.KindUpdated, svc.MakeVideoPrivate(ctx, id).SuccessKind())
	assert.Equal(t, response.KindUpdated, svc.MakeVideoPublic(ctx, id).SuccessKind())

	require.True(t, svc.UpdateVideo(ctx, id, &dto.UpdateVideoRequest{Title: "Channels", ThumbnailTime: "5s"}).IsSuccess())
	got := svc.GetVideo(ctx, id)
	require.True(t, got.IsSuccess())
	assert.Equal(t, "channels", got.Value.Slug)
	assert.Equal(t, course.ID, got.Value.CourseID)

	page := svc.GetVideosByCourse(ctx, course.ID, dto.PageQuery{})
	require.True(t, page.IsSuccess())
	assert.Equal(t, int64(1), page.Value.TotalCount)

	assert.Equal(t, response.KindDeleted, svc.SoftDeleteVideo(ctx, id).SuccessKind())
	assert.Equal(t, response.KindNotModified, svc.SoftDeleteVideo(ctx, id).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, svc.GetVideo(ctx, id).Failure().Code)

	assert.Equal(t, response.KindDeleted, svc.DeleteVideo(ctx, id).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, svc.DeleteVideo(ctx, id).Failure().Code)

	assert.Equal(t, response.ErrCodeNotFound, svc.CreateVideo(ctx, uuid.New(), &dto.CreateVideoRequest{}).Failure().Code)
	assert.Equal(t, response.ErrCodeInternal, svc.GenerateUploadToken(ctx).Failure().Code)
}

func TestCourseService_PropagationCommitsWithSQLite(t *testing.T) {
	env := setupIntegration(t)
	svc := NewCourseService(env.repos, env.uow, &MockMediaChecker{}, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	course := env.createCourse(t, creator, 3)

	require.Equal(t, response.KindUpdated, svc.MakeCoursePrivate(ctx, course.ID).SuccessKind())
	require.Equal(t, response.KindDeleted, svc.DeleteCourse(ctx, course.ID).SuccessKind())

	videos, err := env.repos.Videos.FindByCourseID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	for _, v := range videos {
		assert.True(t, v.IsPrivate)
		assert.True(t, v.IsSoftDeleted)
	}
	assert.Equal(t, response.KindNotModified, svc.DeleteCourse(ctx, course.ID).SuccessKind())
}

func TestPaymentService_WithSQLite(t *testing.T) {
	env := setupIntegration(t)
	svc := NewPaymentService(env.repos, env.uow, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	student := env.createUser(t, "student@example.com", authz.RoleStudent)
	course := env.createCourse(t, creator, 0)

	created := svc.CreatePayment(ctx, student, &dto.CreatePaymentRequest{CourseID: course.ID})
	require.True(t, created.IsSuccess(), "%v", created.Failure())
	assert.True(t, created.Value.Amount.Equal(decimal.NewFromInt(25)))
	assert.False(t, created.Value.IsPaid)

	assert.Equal(t, response.KindUpdated, svc.PayPayments(ctx, []uuid.UUID{created.Value.ID}).SuccessKind())
	assert.Equal(t, response.KindNotModified, svc.PayPayments(ctx, []uuid.UUID{created.Value.ID}).SuccessKind())

	list := svc.GetPaymentsByUser(ctx, student)
	require.True(t, list.IsSuccess())
	require.Len(t, list.Value, 1)
	assert.True(t, list.Value[0].IsPaid)

	assert.Equal(t, response.ErrCodeNotFound, svc.CreatePayment(ctx, student, &dto.CreatePaymentRequest{CourseID: uuid.New()}).Failure().Code)
	assert.Equal(t, response.KindDeleted, svc.DeletePayment(ctx, created.Value.ID).SuccessKind())
}

var errInjectedWrite = errors.New("injected write failure")

// failNthVideoWrite returns a gorm callback that fails the nth statement against the videos table
func failNthVideoWrite(nth int) (func(*gorm.DB), *int) {
	var writes int
	return func(tx *gorm.DB) {
		if tx.Statement.Table != "videos" {
			return
		}
		writes++
		if writes == nth {
			_ = tx.AddError(errInjectedWrite)
		}
	}, &writes
}

func TestCourseService_MakePaid_RollsBackOnVideoWriteFailure(t *testing.T) {
	env := setupIntegration(t)
	svc := NewCourseService(env.repos, env.uow, &MockMediaChecker{}, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	course := env.createCourse(t, creator, 3)

	failing, writes := failNthVideoWrite(2)
	require.NoError(t, env.db.Callback().Update().Before("gorm:update").Register("test:fail_video_update", failing))

	result := svc.MakeCoursePaid(ctx, course.ID)

	require.False(t, result.IsSuccess())
	assert.Equal(t, response.ErrCodeInternal, result.Failure().Code)
	assert.Equal(t, 2, *writes)

	stored, err := env.repos.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPaid)
	videos, err := env.repos.Videos.FindByCourseID(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	for _, v := range videos {
		assert.False(t, v.IsPaid, "video %s", v.ID)
	}
}

func TestCourseService_CreateCourse_RollsBackOnVideoBatchFailure(t *testing.T) {
	env := setupIntegration(t)
	svc := NewCourseService(env.repos, env.uow, &MockMediaChecker{}, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)

	failing, _ := failNthVideoWrite(1)
	require.NoError(t, env.db.Callback().Create().Before("gorm:create").Register("test:fail_video_create", failing))

	result := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
		Title:  "Never stored",
		Videos: []dto.VideoDescriptor{{Title: "a", ProviderVideoID: "vi1", ProviderName: "api.video"}},
	}, creator)

	require.False(t, result.IsSuccess())
	var courses, videos int64
	require.NoError(t, env.db.Model(&domain.Course{}).Count(&courses).Error)
	require.NoError(t, env.db.Model(&domain.Video{}).Count(&videos).Error)
	assert.Zero(t, courses)
	assert.Zero(t, videos)
}

func TestCourseService_CreateCourse_StoresInitialFlags(t *testing.T) {
	env := setupIntegration(t)
	svc := NewCourseService(env.repos, env.uow, &MockMediaChecker{}, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)

	created := svc.CreateCourse(ctx, &dto.CreateCourseRequest{
		Title:     "Premium",
		Price:     decimal.NewFromInt(99),
		IsPaid:    true,
		IsPrivate: true,
		Videos: []dto.VideoDescriptor{
			{Title: "Trailer", ProviderVideoID: "vi1", ProviderName: "api.video"},
			{Title: "Lesson", ProviderVideoID: "vi2", ProviderName: "api.video", IsPaid: true, IsPrivate: true},
		},
	}, creator)
	require.True(t, created.IsSuccess(), "%v", created.Failure())

	stored, err := env.repos.Courses.FindByID(ctx, created.Value.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPaid)
	assert.True(t, stored.IsPrivate)

	videos, err := env.repos.Videos.FindByCourseID(ctx, created.Value.ID)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	flags := map[string][2]bool{}
	for _, v := range videos {
		flags[v.ProviderVideoID] = [2]bool{v.IsPaid, v.IsPrivate}
	}
	assert.Equal(t, [2]bool{false, false}, flags["vi1"])
	assert.Equal(t, [2]bool{true, true}, flags["vi2"])
}

func TestCourseService_HardDelete_WithSQLite(t *testing.T) {
	env := setupIntegration(t)
	svc := NewCourseService(env.repos, env.uow, &MockMediaChecker{}, nil, zap.NewNop())
	reviews := NewReviewService(env.repos, zap.NewNop())
	payments := NewPaymentService(env.repos, env.uow, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	student := env.createUser(t, "student@example.com", authz.RoleStudent)

	t.Run("reviews go with the course", func(t *testing.T) {
		course := env.createCourse(t, creator, 2)
		videoID := course.Videos[0].ID
		onVideo := reviews.CreateReview(ctx, student, &dto.CreateReviewRequest{CourseID: course.ID, VideoID: &videoID, Rating: decimal.NewFromInt(4)})
		require.True(t, onVideo.IsSuccess(), "%v", onVideo.Failure())
		onCourse := reviews.CreateReview(ctx, student, &dto.CreateReviewRequest{CourseID: course.ID, Rating: decimal.NewFromInt(5)})
		require.True(t, onCourse.IsSuccess(), "%v", onCourse.Failure())

		require.Equal(t, response.KindDeleted, svc.HardDeleteCourse(ctx, course.ID).SuccessKind())

		var left int64
		require.NoError(t, env.db.Model(&domain.Review{}).Where("course_id = ?", course.ID).Count(&left).Error)
		assert.Zero(t, left)
		require.NoError(t, env.db.Model(&domain.Video{}).Where("course_id = ?", course.ID).Count(&left).Error)
		assert.Zero(t, left)
		assert.Equal(t, response.ErrCodeNotFound, svc.HardDeleteCourse(ctx, course.ID).Failure().Code)
	})

	t.Run("purchased course is kept", func(t *testing.T) {
		course := env.createCourse(t, creator, 1)
		paid := payments.CreatePayment(ctx, student, &dto.CreatePaymentRequest{CourseID: course.ID})
		require.True(t, paid.IsSuccess(), "%v", paid.Failure())

		result := svc.HardDeleteCourse(ctx, course.ID)

		require.False(t, result.IsSuccess())
		assert.Equal(t, response.ErrCodeConflict, result.Failure().Code)
		_, err := env.repos.Courses.FindByID(ctx, course.ID)
		assert.NoError(t, err)
		videos, err := env.repos.Videos.FindByCourseID(ctx, course.ID)
		require.NoError(t, err)
		assert.Len(t, videos, 1)
	})
}

func TestVideoService_DeleteVideo_RemovesReviews(t *testing.T) {
	env := setupIntegration(t)
	svc := NewVideoService(env.repos, env.uow, &MockMediaChecker{}, nil, nil, zap.NewNop())
	reviews := NewReviewService(env.repos, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)
	student := env.createUser(t, "student@example.com", authz.RoleStudent)
	course := env.createCourse(t, creator, 2)
	target, kept := course.Videos[0].ID, course.Videos[1].ID

	for _, id := range []uuid.UUID{target, kept} {
		videoID := id
		r := reviews.CreateReview(ctx, student, &dto.CreateReviewRequest{CourseID: course.ID, VideoID: &videoID, Rating: decimal.NewFromInt(3)})
		require.True(t, r.IsSuccess(), "%v", r.Failure())
	}

	require.Equal(t, response.KindDeleted, svc.DeleteVideo(ctx, target).SuccessKind())

	var n int64
	require.NoError(t, env.db.Model(&domain.Review{}).Where("video_id = ?", target).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, env.db.Model(&domain.Review{}).Where("video_id = ?", kept).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSoftDeleted_AxisTransitionsAreNotFound(t *testing.T) {
	env := setupIntegration(t)
	courses := NewCourseService(env.repos, env.uow, &MockMediaChecker{}, nil, zap.NewNop())
	videos := NewVideoService(env.repos, env.uow, &MockMediaChecker{}, nil, nil, zap.NewNop())
	ctx := context.Background()
	creator := env.createUser(t, "creator@example.com", authz.RoleCreator)

	course := env.createCourse(t, creator, 1)
	require.Equal(t, response.KindDeleted, courses.DeleteCourse(ctx, course.ID).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, courses.MakeCoursePaid(ctx, course.ID).Failure().Code)
	assert.Equal(t, response.ErrCodeNotFound, courses.MakeCoursePrivate(ctx, course.ID).Failure().Code)
	assert.Equal(t, response.KindNotModified, courses.DeleteCourse(ctx, course.ID).SuccessKind())

	stored, err := env.repos.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPaid)
	assert.False(t, stored.IsPrivate)

	live := env.createCourse(t, creator, 1)
	videoID := live.Videos[0].ID
	require.Equal(t, response.KindDeleted, videos.SoftDeleteVideo(ctx, videoID).SuccessKind())
	assert.Equal(t, response.ErrCodeNotFound, videos.MakeVideoPaid(ctx, videoID).Failure().Code)
	assert.Equal(t, response.ErrCodeNotFound, videos.MakeVideoFree(ctx, videoID).Failure().Code)
	assert.Equal(t, response.ErrCodeNotFound, videos.MakeVideoPrivate(ctx, videoID).Failure().Code)
	assert.Equal(t, response.ErrCodeNotFound, videos.MakeVideoPublic(ctx, videoID).Failure().Code)
	assert.Equal(t, response.KindNotModified, videos.SoftDeleteVideo(ctx, videoID).SuccessKind())
}
