package user

import (
	"context"
	"testing"
	"time"

	"github.com/tudorvana/expense-tracker-api/internal/domain/entity"
	errs "github.com/tudorvana/expense-tracker-api/internal/domain/error"
	coremocks "github.com/tudorvana/expense-tracker-api/mocks/port/core"
	persistencemocks "github.com/tudorvana/expense-tracker-api/mocks/port/persistence"
	usecasemocks "github.com/tudorvana/expense-tracker-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful user creation", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Name == "Alice" && user.Email == "alice@example.com"
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "Alice", "alice@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, uint64(42), user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid fields stop before storage", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "", "not-an-email")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{ID: 7, Name: "Bob", Email: "alice@example.com"}

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(existing, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "Alice", "alice@example.com")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateEmailError(err))

		var dupErr *errs.DuplicateEmailError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, uint64(7), dupErr.ExistingUserID)
	})

	t.Run("Uniqueness probe failure rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrDatabaseConnection).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "Alice", "alice@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrInternalServer).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.CreateUser(ctx, "Alice", "alice@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
