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

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

	stored := func() *entity.User {
		return &entity.User{ID: 5, Name: "Alice", Email: "alice@example.com", CreatedAt: createdAt, UpdatedAt: createdAt}
	}

	t.Run("Mismatched path and payload IDs", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.UpdateUser(ctx, 5, 9, "Alice", "alice@example.com")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, errs.IsIDMismatchError(err))

		var mismatchErr *errs.IDMismatchError
		require.ErrorAs(t, err, &mismatchErr)
		assert.Equal(t, uint64(5), mismatchErr.PathID)
		assert.Equal(t, uint64(9), mismatchErr.PayloadID)
	})

	t.Run("Invalid fields stop before storage", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.UpdateUser(ctx, 5, 5, "", "broken")

		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrUserNotFound).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.UpdateUser(ctx, 5, 5, "Alice", "alice@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Email owned by another user is rejected", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		other := &entity.User{ID: 9, Name: "Bob", Email: "bob@example.com"}

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(stored(), nil).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(other, nil).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.UpdateUser(ctx, 5, 5, "Alice", "bob@example.com")

		assert.Nil(t, user)
		assert.True(t, errs.IsDuplicateEmailError(err))
	})

	t.Run("Keeping the current email is allowed", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		current := stored()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(current, nil).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(current, nil).Once()
		mockTime.EXPECT().Now().Return(updatedAt).Once()
		mockRepo.EXPECT().Update(mock.Anything, current).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.UpdateUser(ctx, 5, 5, "Alicia", "alice@example.com")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Alicia", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, updatedAt, user.UpdatedAt)
	})

	t.Run("Successful update with a fresh email", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		current := stored()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockRepo).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(current, nil).Once()
		mockRepo.EXPECT().GetByEmail(mock.Anything, "alicia@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(updatedAt).Once()
		mockRepo.EXPECT().Update(mock.Anything, current).Return(nil).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUow, usecasemocks.NewMockExpenseUseCase(t), mockTime, mockLogger)

		user, err := userUseCase.UpdateUser(ctx, 5, 5, "Alicia", "alicia@example.com")

		require.NoError(t, err)
		assert.Equal(t, uint64(5), user.ID)
		assert.Equal(t, "alicia@example.com", user.Email)
		assert.Equal(t, createdAt, user.CreatedAt)
	})
}
