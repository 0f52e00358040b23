package services

import (
	"context"
	"testing"

	"github.com/ammafood/amma-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCount(videos []models.PreviewVideo) int {
	count := 0
	for _, video := range videos {
		if video.IsActive {
			count++
		}
	}
	return count
}

func TestSavePreviewVideoKeepsSingleActive(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	first := models.PreviewVideo{URL: "https://cdn.example.com/a.mp4", IsActive: true}
	require.NoError(t, svc.SavePreviewVideo(ctx, &first))

	second := models.PreviewVideo{URL: "https://cdn.example.com/b.mp4", IsActive: true}
	require.NoError(t, svc.SavePreviewVideo(ctx, &second))

	videos := svc.GetVideos(ctx)
	require.Len(t, videos, 2)
	assert.Equal(t, 1, activeCount(videos), "exactly one video may be active after any activation")

	active := svc.GetActivePreviewVideo(ctx)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)
}

func TestSavePreviewVideoSingleActiveWithRemote(t *testing.T) {
	remote := newMockRemote()
	svc := newRemoteService(remote)
	ctx := context.Background()

	first := models.PreviewVideo{URL: "https://cdn.example.com/a.mp4", IsActive: true}
	require.NoError(t, svc.SavePreviewVideo(ctx, &first))
	second := models.PreviewVideo{URL: "https://cdn.example.com/b.mp4", IsActive: true}
	require.NoError(t, svc.SavePreviewVideo(ctx, &second))

	// The invariant holds in the local cache regardless of remote state.
	assert.Equal(t, 1, activeCount(svc.localVideos()))

	remoteVideos, err := remote.ListVideos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, activeCount(remoteVideos))
}

func TestActivateVideo(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	a := models.PreviewVideo{URL: "https://cdn.example.com/a.mp4", IsActive: true}
	require.NoError(t, svc.SavePreviewVideo(ctx, &a))
	b := models.PreviewVideo{URL: "https://cdn.example.com/b.mp4"}
	require.NoError(t, svc.SavePreviewVideo(ctx, &b))

	require.NoError(t, svc.ActivateVideo(ctx, b.ID))

	active := svc.GetActivePreviewVideo(ctx)
	require.NotNil(t, active)
	assert.Equal(t, b.ID, active.ID)
	assert.Equal(t, 1, activeCount(svc.GetVideos(ctx)))

	assert.ErrorIs(t, svc.ActivateVideo(ctx, "missing"), ErrVideoNotFound)
}

func TestInactiveVideosMeanNoActiveVideo(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	video := models.PreviewVideo{URL: "https://cdn.example.com/a.mp4"}
	require.NoError(t, svc.SavePreviewVideo(ctx, &video))

	assert.Nil(t, svc.GetActivePreviewVideo(ctx))
}

func TestNewVideosArePrepended(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	older := models.PreviewVideo{URL: "https://cdn.example.com/old.mp4"}
	require.NoError(t, svc.SavePreviewVideo(ctx, &older))
	newer := models.PreviewVideo{URL: "https://cdn.example.com/new.mp4"}
	require.NoError(t, svc.SavePreviewVideo(ctx, &newer))

	videos := svc.GetVideos(ctx)
	require.Len(t, videos, 2)
	assert.Equal(t, newer.ID, videos[0].ID)
}

func TestDeletePreviewVideo(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	video := models.PreviewVideo{URL: "https://cdn.example.com/a.mp4"}
	require.NoError(t, svc.SavePreviewVideo(ctx, &video))
	require.NoError(t, svc.DeletePreviewVideo(ctx, video.ID))

	assert.Empty(t, svc.GetVideos(ctx))
}
