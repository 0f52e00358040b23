package services

import (
	"context"
	"log"
	"time"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/store"
)

func videoID(video models.PreviewVideo) string { return video.ID }

func (s *Service) localVideos() []models.PreviewVideo {
	return readLocal(s.local, store.VideosKey, func() []models.PreviewVideo {
		return []models.PreviewVideo{}
	})
}

func (s *Service) saveLocalVideos(videos []models.PreviewVideo) error {
	return writeLocal(s.local, store.VideosKey, videos)
}

// GetVideos returns the best-known video list, newest first.
func (s *Service) GetVideos(ctx context.Context) []models.PreviewVideo {
	if s.remote == nil {
		return s.localVideos()
	}
	videos, err := s.remote.ListVideos(ctx)
	if err != nil {
		log.Println("remote videos fetch failed, using local snapshot:", err)
		return s.localVideos()
	}
	if err := s.saveLocalVideos(videos); err != nil {
		log.Println("video mirror to local cache failed:", err)
	}
	return videos
}

// SubscribeToVideos delivers the current list immediately and on every poll
// tick.
func (s *Service) SubscribeToVideos(cb func([]models.PreviewVideo)) func() {
	return startSubscription(orderPollInterval, func() []models.PreviewVideo {
		return s.GetVideos(context.Background())
	}, cb)
}

// GetActivePreviewVideo returns the active video or nil when none is active.
func (s *Service) GetActivePreviewVideo(ctx context.Context) *models.PreviewVideo {
	for _, video := range s.GetVideos(ctx) {
		if video.IsActive {
			found := video
			return &found
		}
	}
	return nil
}

// SavePreviewVideo persists a video. Saving with IsActive set first flips
// every other video inactive, locally and best effort remotely, so at most
// one video is active after the call. There is no transaction across the two
// tiers; a concurrent activation from another session can race until the next
// full resync.
func (s *Service) SavePreviewVideo(ctx context.Context, video *models.PreviewVideo) error {
	if video.CreatedAt == 0 {
		video.CreatedAt = time.Now().UnixMilli()
	}
	if video.IsActive {
		others := s.localVideos()
		for i := range others {
			if others[i].ID == video.ID || !others[i].IsActive {
				continue
			}
			others[i].IsActive = false
			if s.remote != nil {
				if err := s.remote.SetVideoActive(ctx, others[i].ID, false); err != nil {
					log.Println("remote video deactivate failed:", err)
				}
			}
		}
		if err := s.saveLocalVideos(others); err != nil {
			return err
		}
	}
	if s.remote != nil {
		if isPlaceholderID(video.ID) {
			created := *video
			created.ID = ""
			if err := s.remote.CreateVideo(ctx, &created); err != nil {
				log.Println("remote video create failed:", err)
			} else {
				video.ID = created.ID
			}
		} else {
			if err := s.remote.SetVideo(ctx, *video); err != nil {
				log.Println("remote video save failed:", err)
			}
		}
	}
	if video.ID == "" {
		video.ID = newPlaceholderID(videoIDPrefix)
	}
	videos := s.localVideos()
	replaced := false
	for i := range videos {
		if videos[i].ID == video.ID {
			videos[i] = *video
			replaced = true
			break
		}
	}
	if !replaced {
		// Newest first.
		videos = append([]models.PreviewVideo{*video}, videos...)
	}
	return s.saveLocalVideos(videos)
}

// ActivateVideo is the dedicated single-active transition: it activates the
// given video and deactivates all others.
func (s *Service) ActivateVideo(ctx context.Context, id string) error {
	for _, video := range s.GetVideos(ctx) {
		if video.ID == id {
			video.IsActive = true
			return s.SavePreviewVideo(ctx, &video)
		}
	}
	return ErrVideoNotFound
}

// DeletePreviewVideo removes locally first, then best effort remotely.
func (s *Service) DeletePreviewVideo(ctx context.Context, id string) error {
	if err := s.saveLocalVideos(removeByID(s.localVideos(), videoID, id)); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.DeleteVideo(ctx, id); err != nil {
			log.Println("remote video delete failed:", err)
		}
	}
	return nil
}
