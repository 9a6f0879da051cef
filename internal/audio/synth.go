package audio

import (
	"io"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // float32 LE, two channels
)

// pcm is a one-shot sound buffer.
type pcm struct {
	data []byte
	pos  int
}

func (r *pcm) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereo writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*frameBytes + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat is a gentle saturation curve that never leaves [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func frames(seconds float64) int {
	return int(seconds * SampleRate)
}

// genEat is a short rising chirp.
func genEat() []byte {
	n := frames(0.09)
	buf := make([]byte, n*frameBytes)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// genCrash is a descending minor triad.
func genCrash() []byte {
	n := frames(0.75)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}

	mix := make([]float64, n)
	for _, note := range notes {
		start := frames(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}

	buf := make([]byte, n*frameBytes)
	for i, s := range mix {
		putStereo(buf, i, softSat(s))
	}
	return buf
}

// drone is an endless dungeon ambience: a slow minor pad over a pulsing
// sub bass. It never returns io.EOF.
type drone struct {
	t float64
}

// A minor, then F major, then G major, then E minor; four seconds each.
var droneChords = [][]float64{
	{110.00, 130.81, 164.81},
	{87.31, 110.00, 130.81},
	{98.00, 123.47, 146.83},
	{82.41, 98.00, 123.47},
}

const droneChordSeconds = 4.0

func (d *drone) Read(p []byte) (int, error) {
	n := len(p) / frameBytes
	for i := 0; i < n; i++ {
		chord := droneChords[int(d.t/droneChordSeconds)%len(droneChords)]

		var pad float64
		for _, f := range chord {
			pad += math.Sin(2*math.Pi*f*d.t) * 0.12
		}
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*d.t/droneChordSeconds)
		pulse := math.Exp(-math.Mod(d.t, 0.75) * 6)
		bass := fm(d.t, chord[0]/2, 0.5, 0.8) * pulse * 0.35

		putStereo(p, i, softSat(pad*swell+bass))
		d.t += 1.0 / SampleRate
	}
	return n * frameBytes, nil
}
