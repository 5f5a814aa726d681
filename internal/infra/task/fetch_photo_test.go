package task

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/internal/infra/gateway"
	"github.com/snapfeedhq/snapfeed/internal/infra/repository"
	"github.com/snapfeedhq/snapfeed/internal/structs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFetchPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Success - exactly one photo persisted per firing", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		external := structs.ExternalPhoto{
			AlbumID:      1,
			ID:           3,
			Title:        "officia porro iure",
			URL:          "https://photos.example.com/full/3",
			ThumbnailURL: "https://photos.example.com/thumb/3",
		}

		mockRepo.EXPECT().CountPhotos(gomock.Any()).Return(int64(2), nil)
		mockPhotos.EXPECT().FetchPhoto(gomock.Any(), 3).Return(external, nil)
		mockRepo.EXPECT().CreatePhoto(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, photo structs.Photo) error {
				assert.Equal(t, external.ID, photo.ExternalID)
				assert.Equal(t, external.AlbumID, photo.AlbumID)
				assert.Equal(t, external.Title, photo.Title)
				assert.Equal(t, external.URL, photo.URL)
				assert.Equal(t, external.ThumbnailURL, photo.ThumbnailURL)
				assert.False(t, photo.FetchedAt.IsZero())
				return nil
			}).
			Times(1)

		handler := tasks.GetTasks()[FetchPhoto]
		err := handler(context.Background(), asynq.NewTask(FetchPhoto.String(), nil))

		assert.NoError(t, err)
	})

	t.Run("API failure - nothing persisted", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		mockRepo.EXPECT().CountPhotos(gomock.Any()).Return(int64(0), nil)
		mockPhotos.EXPECT().FetchPhoto(gomock.Any(), 1).
			Return(structs.ExternalPhoto{}, assert.AnError)

		handler := tasks.GetTasks()[FetchPhoto]
		err := handler(context.Background(), asynq.NewTask(FetchPhoto.String(), nil))

		assert.Error(t, err)
	})

	t.Run("Count failure - retryable error", func(t *testing.T) {
		mockRepo := repository.NewMockRepository(ctrl)
		mockPhotos := gateway.NewMockPhotoAPI(ctrl)
		mockMailer := gateway.NewMockMailer(ctrl)
		tasks := NewTasks(mockRepo, mockPhotos, mockMailer)

		mockRepo.EXPECT().CountPhotos(gomock.Any()).Return(int64(0), assert.AnError)

		handler := tasks.GetTasks()[FetchPhoto]
		err := handler(context.Background(), asynq.NewTask(FetchPhoto.String(), nil))

		assert.Error(t, err)
	})
}
