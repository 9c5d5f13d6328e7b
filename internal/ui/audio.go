package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType identifies a board event with an audio cue.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundCastle
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// envelope shapes the amplitude over progress p in [0,1].
type envelope func(t, p float64) float64

func percussive(t, _ float64) float64 { return math.Exp(-t * 30) }

func attackDecay(_, p float64) float64 {
	if p < 0.1 {
		return p / 0.1
	}
	return 1 - (p-0.1)/0.9
}

func linearDecay(_, p float64) float64 { return 1 - p }

func swell(_, p float64) float64 {
	switch {
	case p < 0.1:
		return p / 0.1
	case p > 0.7:
		return (1 - p) / 0.3
	}
	return 1
}

// AudioManager plays short procedurally generated cues.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates the audio context and renders every cue.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
		volume:  0.5,
	}
	wood := func(f, t float64, i int) float64 {
		return math.Sin(2*math.Pi*f*t) + (math.Sin(float64(i)*0.3)+math.Sin(float64(i)*0.7))*0.3
	}
	buzz := func(f, t float64, _ int) float64 {
		return 0.5 * (math.Sin(2*math.Pi*f*t) + 0.3*math.Sin(4*math.Pi*f*t))
	}

	am.sounds[SoundMove] = synth([]float64{440}, 0.08, 0.3, percussive, wood)
	am.sounds[SoundCapture] = synth([]float64{330}, 0.12, 0.5, percussive, wood)
	am.sounds[SoundCheck] = synth([]float64{880}, 0.15, 0.4, attackDecay, nil)
	am.sounds[SoundInvalid] = synth([]float64{150}, 0.1, 0.3, linearDecay, buzz)
	am.sounds[SoundGameEnd] = synth([]float64{261.63, 329.63, 392.00}, 0.4, 0.5, swell, nil)

	first := synth([]float64{400}, 0.06, 0.3, percussive, wood)
	second := synth([]float64{440}, 0.06, 0.24, percussive, wood)
	gap := make([]byte, int(sampleRate*0.05)*4)
	am.sounds[SoundCastle] = append(append(first, gap...), second...)
	return am
}

// synth renders 16-bit stereo PCM. With several frequencies the waves are
// averaged into a chord. wave defaults to a sine.
func synth(freqs []float64, duration, amplitude float64, env envelope, wave func(f, t float64, i int) float64) []byte {
	if wave == nil {
		wave = func(f, t float64, _ int) float64 { return math.Sin(2 * math.Pi * f * t) }
	}
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := 0.0
		for _, f := range freqs {
			v += wave(f, t, i)
		}
		v = v / float64(len(freqs)) * env(t, t/duration) * amplitude
		v = math.Max(-1, math.Min(1, v))

		s := int16(v * 32767)
		data[i*4] = byte(s)
		data[i*4+1] = byte(s >> 8)
		data[i*4+2] = byte(s)
		data[i*4+3] = byte(s >> 8)
	}
	return data
}

// Play plays a cue if audio is enabled.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil || !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
