// Package video decodes background clips with reisen. A Clip is the
// preloaded handle; each Player owns its own decoder goroutine and is
// stopped synchronously by Close.
package video

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/BrandonKowalski/battleground/pkg/battleground/media"
	"github.com/zergon321/reisen"
	"go.uber.org/atomic"
)

var errNoVideoStream = errors.New("no video stream")

// Clip describes a video file that is known to decode.
type Clip struct {
	ref      media.Ref
	path     string
	width    int
	height   int
	frameDur time.Duration
	logger   *slog.Logger
}

func (c *Clip) Ref() media.Ref { return c.ref }

func (c *Clip) Kind() media.Kind { return media.KindVideo }

// Close is a no-op; players hold their own decoders.
func (c *Clip) Close() error { return nil }

// Size returns the frame dimensions.
func (c *Clip) Size() (width, height int) { return c.width, c.height }

// FrameDuration returns the display time of one frame.
func (c *Clip) FrameDuration() time.Duration { return c.frameDur }

// Loader opens clips relative to a root directory.
type Loader struct {
	Root   string
	Logger *slog.Logger
}

// Load probes ref and returns a *Clip.
func (l Loader) Load(ctx context.Context, ref media.Ref, kind media.Kind) (media.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path := filepath.Join(l.Root, string(ref))
	m, err := reisen.NewMedia(path)
	if err != nil {
		return nil, media.NewResourceLoadError(ref, kind, err)
	}
	defer m.Close()

	streams := m.VideoStreams()
	if len(streams) == 0 {
		return nil, media.NewResourceLoadError(ref, kind, errNoVideoStream)
	}
	s := streams[0]

	num, den := s.FrameRate()
	frameDur := time.Second / 30
	if num > 0 && den > 0 {
		frameDur = time.Duration(float64(time.Second) * float64(den) / float64(num))
	}

	return &Clip{
		ref:      ref,
		path:     path,
		width:    s.Width(),
		height:   s.Height(),
		frameDur: frameDur,
		logger:   logger,
	}, nil
}

// Player decodes a clip in a loop on its own goroutine.
type Player struct {
	clip *Clip

	mu    sync.Mutex
	frame *image.RGBA
	seq   *atomic.Uint64

	done    chan struct{}
	stopped chan struct{}
	err     error
}

// Play opens a new decoder for c and starts playback.
func (c *Clip) Play() (*Player, error) {
	m, err := reisen.NewMedia(c.path)
	if err != nil {
		return nil, media.NewResourceLoadError(c.ref, media.KindVideo, err)
	}

	if err := m.OpenDecode(); err != nil {
		m.Close()
		return nil, media.NewResourceLoadError(c.ref, media.KindVideo, err)
	}

	streams := m.VideoStreams()
	if len(streams) == 0 {
		m.CloseDecode()
		m.Close()
		return nil, media.NewResourceLoadError(c.ref, media.KindVideo, errNoVideoStream)
	}
	stream := streams[0]
	if err := stream.Open(); err != nil {
		m.CloseDecode()
		m.Close()
		return nil, media.NewResourceLoadError(c.ref, media.KindVideo, err)
	}

	p := &Player{
		clip:    c,
		seq:     atomic.NewUint64(0),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go p.run(m, stream)
	return p, nil
}

func (p *Player) run(m *reisen.Media, stream *reisen.VideoStream) {
	defer close(p.stopped)
	defer func() {
		stream.Close()
		m.CloseDecode()
		m.Close()
	}()

	ticker := time.NewTicker(p.clip.frameDur)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		default:
		}

		packet, ok, err := m.ReadPacket()
		if err != nil {
			p.err = fmt.Errorf("video: read %s: %w", p.clip.ref, err)
			p.clip.logger.Warn("Video decode stopped", "ref", p.clip.ref, "error", err)
			return
		}

		if !ok {
			if err := stream.Rewind(0); err != nil {
				p.err = fmt.Errorf("video: rewind %s: %w", p.clip.ref, err)
				p.clip.logger.Warn("Video loop failed", "ref", p.clip.ref, "error", err)
				return
			}
			continue
		}

		if packet.StreamIndex() != stream.Index() {
			continue
		}

		frame, got, err := stream.ReadVideoFrame()
		if err != nil {
			p.err = fmt.Errorf("video: decode %s: %w", p.clip.ref, err)
			p.clip.logger.Warn("Video decode stopped", "ref", p.clip.ref, "error", err)
			return
		}
		if !got || frame == nil {
			continue
		}

		p.mu.Lock()
		p.frame = frame.Image()
		p.mu.Unlock()
		p.seq.Inc()

		select {
		case <-p.done:
			return
		case <-ticker.C:
		}
	}
}

// Frame returns the latest decoded frame and its sequence number. The
// sequence changes whenever a new frame is available.
func (p *Player) Frame() (*image.RGBA, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame, p.seq.Load()
}

// Clip returns the clip being played.
func (p *Player) Clip() *Clip { return p.clip }

// Close stops the decoder and waits for it to release its resources.
func (p *Player) Close() error {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
	<-p.stopped
	return p.err
}
