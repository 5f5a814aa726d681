package task

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/snapfeedhq/snapfeed/pkg/ctxlogger"
)

// fetchPhoto saves exactly one photo record per firing. The external API is
// sequential, so the next photo id is the current count plus one.
func (t Tasks) fetchPhoto(ctx context.Context, _ *asynq.Task) error {
	count, err := t.repo.CountPhotos(ctx)
	if err != nil {
		return fmt.Errorf("count photos: %w", err)
	}

	nextID := int(count) + 1

	external, err := t.photos.FetchPhoto(ctx, nextID)
	if err != nil {
		return fmt.Errorf("fetch photo from api: %w", err)
	}

	photo := external.ToPhoto()
	if err := t.repo.CreatePhoto(ctx, photo); err != nil {
		return fmt.Errorf("save photo: %w", err)
	}

	ctxlogger.GetLogger(ctx).Info("photo saved",
		"photo_id", photo.ID.String(),
		"external_id", photo.ExternalID,
		"title", photo.Title,
	)

	return nil
}
