package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func samples(t *testing.T, buf []byte) []float32 {
	t.Helper()
	if len(buf)%frameBytes != 0 {
		t.Fatalf("buffer length %d is not a whole number of frames", len(buf))
	}
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestCuesStayInRange(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		seconds float64
	}{
		{"eat", genEat(), 0.09},
		{"crash", genCrash(), 0.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if want := frames(tc.seconds) * frameBytes; len(tc.buf) != want {
				t.Errorf("length = %d, expected %d", len(tc.buf), want)
			}
			var peak float64
			for _, s := range samples(t, tc.buf) {
				v := math.Abs(float64(s))
				if v > 1 {
					t.Fatalf("sample %v out of range", s)
				}
				peak = max(peak, v)
			}
			if peak == 0 {
				t.Error("cue is silent")
			}
		})
	}
}

func TestStereoChannelsMatch(t *testing.T) {
	s := samples(t, genEat())
	for i := 0; i < len(s); i += 2 {
		if s[i] != s[i+1] {
			t.Fatalf("frame %d: left %v right %v", i/2, s[i], s[i+1])
		}
	}
}

func TestDroneNeverEnds(t *testing.T) {
	d := &drone{}
	buf := make([]byte, 4096*frameBytes)
	for i := 0; i < 50; i++ {
		n, err := d.Read(buf)
		if err != nil || n != len(buf) {
			t.Fatalf("Read() = %d, %v", n, err)
		}
	}
	if d.t < 4 {
		t.Errorf("drone clock at %v s, expected past the first chord", d.t)
	}
}

func TestPCMReadsToEOF(t *testing.T) {
	r := &pcm{data: []byte{1, 2, 3, 4, 5}}
	data, err := io.ReadAll(r)
	if err != nil || len(data) != 5 {
		t.Errorf("ReadAll = %v, %v", data, err)
	}
}

func TestZeroPlayerIsSilent(t *testing.T) {
	var p Player
	p.FoodConsumed()
	p.Collision()
	p.StartMusic()
	p.StopMusic()

	if p.Muted() {
		t.Error("zero player should start unmuted")
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("SetMuted(true) not kept")
	}
}
