package media

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	ref    Ref
	kind   Kind
	closed *atomic.Int32
}

func (h *fakeHandle) Ref() Ref   { return h.ref }
func (h *fakeHandle) Kind() Kind { return h.kind }
func (h *fakeHandle) Close() error {
	h.closed.Add(1)
	return nil
}

func TestPreloadRecordsFailuresWithoutAborting(t *testing.T) {
	var closed atomic.Int32
	var calls atomic.Int32

	loader := LoaderFunc(func(ctx context.Context, ref Ref, kind Kind) (Handle, error) {
		calls.Add(1)
		if ref == "broken.mp4" {
			return nil, errors.New("no such file")
		}
		return &fakeHandle{ref: ref, kind: kind, closed: &closed}, nil
	})

	requests := []Request{
		{Ref: "valo.mp4", Kind: KindVideo},
		{Ref: "broken.mp4", Kind: KindVideo},
		{Ref: "fonts/a.ttf", Kind: KindFont},
		{Ref: "valo.mp4", Kind: KindVideo},
	}

	cat, err := Preload(context.Background(), loader, requests, nil)
	require.NotNil(t, cat)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResourceLoad)
	assert.EqualValues(t, 3, calls.Load(), "duplicate requests are loaded once")
	assert.Equal(t, 2, cat.Len())

	h, err := cat.Handle("valo.mp4", KindVideo)
	require.NoError(t, err)
	assert.Equal(t, Ref("valo.mp4"), h.Ref())

	_, err = cat.Handle("broken.mp4", KindVideo)
	var rle *ResourceLoadError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, Ref("broken.mp4"), rle.Ref)

	_, err = cat.Handle("never.mp4", KindVideo)
	assert.ErrorIs(t, err, ErrResourceLoad)

	require.NoError(t, cat.Close())
	assert.EqualValues(t, 2, closed.Load())
	assert.Equal(t, 0, cat.Len())
}

func TestPreloadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := LoaderFunc(func(ctx context.Context, ref Ref, kind Kind) (Handle, error) {
		t.Fatalf("loader should not run after cancellation")
		return nil, nil
	})

	cat, err := Preload(ctx, loader, []Request{{Ref: "valo.mp4", Kind: KindVideo}}, nil)
	assert.Nil(t, cat)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMultiLoaderDispatch(t *testing.T) {
	var closed atomic.Int32
	videos := LoaderFunc(func(ctx context.Context, ref Ref, kind Kind) (Handle, error) {
		return &fakeHandle{ref: ref, kind: kind, closed: &closed}, nil
	})
	ml := MultiLoader{KindVideo: videos}

	h, err := ml.Load(context.Background(), "pubg.mp4", KindVideo)
	require.NoError(t, err)
	assert.Equal(t, KindVideo, h.Kind())

	_, err = ml.Load(context.Background(), "fonts/a.ttf", KindFont)
	assert.ErrorIs(t, err, ErrResourceLoad)
}
