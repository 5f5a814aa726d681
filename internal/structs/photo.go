package structs

import (
	"time"

	"github.com/google/uuid"
)

// Photo is one record saved per firing of the periodic photos:fetch task.
type Photo struct {
	ID           uuid.UUID `bson:"id" json:"id"`
	ExternalID   int       `bson:"external_id" json:"external_id"`
	AlbumID      int       `bson:"album_id" json:"album_id"`
	Title        string    `bson:"title" json:"title"`
	URL          string    `bson:"url" json:"url"`
	ThumbnailURL string    `bson:"thumbnail_url" json:"thumbnail_url"`
	FetchedAt    time.Time `bson:"fetched_at" json:"fetched_at"`
}

// ExternalPhoto mirrors the photo API's wire shape.
type ExternalPhoto struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (ep ExternalPhoto) ToPhoto() Photo {
	return Photo{
		ID:           uuid.New(),
		ExternalID:   ep.ID,
		AlbumID:      ep.AlbumID,
		Title:        ep.Title,
		URL:          ep.URL,
		ThumbnailURL: ep.ThumbnailURL,
		FetchedAt:    time.Now().UTC(),
	}
}
