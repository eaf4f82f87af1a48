package audio

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	SampleRate = 44100
	BufferSize = 512

	lowHz  = 120.0
	highHz = 1200.0
)

// Synth turns step events into short triangle-wave blips whose pitch follows
// the value of the bar being touched.
type Synth struct {
	mu     sync.Mutex
	target float64
	gate   float64
	lo, hi int

	phase       float64
	freq        float64
	env         float64
	FilterState [2]float64
	DelayLine   [2][]float64
	DelayHead   int
}

func NewSynth(lo, hi int) *Synth {
	// short slapback so fast sorts smear into a sweep
	delayLen := int(float64(SampleRate) * 0.08)
	return &Synth{
		lo:        lo,
		hi:        hi,
		DelayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

// Frequency maps a bar value onto the synth's pitch range.
func (s *Synth) Frequency(v int) float64 {
	span := s.hi - s.lo
	if span <= 0 {
		return lowHz
	}
	t := float64(v-s.lo) / float64(span)
	t = math.Max(0, math.Min(1, t))
	return lowHz + t*(highHz-lowHz)
}

func (s *Synth) Observe(f sorting.Frame) {
	if f.Array == nil {
		return
	}
	idx := -1
	switch f.Kind {
	case sorting.KindCompare, sorting.KindSwap, sorting.KindWrite:
		idx = f.Highlight.Compare
		if idx < 0 {
			idx = f.Highlight.Target
		}
	case sorting.KindConfirm:
		idx = f.Confirmed
	}
	if idx < 0 || idx >= f.Array.Len() {
		return
	}

	s.mu.Lock()
	s.target = s.Frequency(f.Array.At(idx))
	s.gate = 1
	s.mu.Unlock()
}

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// Fill renders one stereo buffer. It is the portaudio callback.
func (s *Synth) Fill(out [][]float32) {
	s.mu.Lock()
	if s.gate > 0 {
		s.freq = s.target
		s.env = 1
		s.gate = 0
	}
	s.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	decay := math.Exp(-dt / 0.04)
	vol := 0.25

	for i := 0; i < len(out[0]); i++ {
		raw := 0.0
		if s.freq > 0 {
			raw = triangle(s.phase) * s.env
			s.phase += s.freq * dt
			if s.phase >= 1 {
				s.phase -= math.Floor(s.phase)
			}
		}
		s.env *= decay

		var l, r float64
		l, s.FilterState[0] = lpf(raw, 2400, dt, s.FilterState[0])
		r, s.FilterState[1] = lpf(raw, 2000, dt, s.FilterState[1])

		dl := s.DelayLine[0][s.DelayHead]
		dr := s.DelayLine[1][s.DelayHead]
		mixL := l + dr*0.25
		mixR := r + dl*0.25
		s.DelayLine[0][s.DelayHead] = mixL * 0.4
		s.DelayLine[1][s.DelayHead] = mixR * 0.4
		s.DelayHead = (s.DelayHead + 1) % len(s.DelayLine[0])

		out[0][i] = float32(mixL * vol)
		if len(out) > 1 {
			out[1][i] = float32(mixR * vol)
		}
	}
}

// Player streams a Synth to the default output device.
type Player struct {
	*Synth
	stream *portaudio.Stream
	log    *slog.Logger
}

func Start(lo, hi int, log *slog.Logger) (*Player, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("init audio: %w", err)
	}

	p := &Player{Synth: NewSynth(lo, hi), log: log}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.Fill)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("open audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("start audio stream: %w", err)
	}
	p.stream = stream
	log.Debug("audio started", "rate", SampleRate, "buffer", BufferSize)
	return p, nil
}

func (p *Player) Stop() error {
	var err error
	if p.stream != nil {
		if serr := p.stream.Stop(); serr != nil {
			err = serr
		}
		if cerr := p.stream.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if terr := portaudio.Terminate(); terr != nil && err == nil {
		err = terr
	}
	p.log.Debug("audio stopped")
	return err
}
