package sound

import (
	"math"
	"testing"
)

func TestTapToneDrainsAndStaysInRange(t *testing.T) {
	s := newTapTone(sampleRate, tapFreq, tapDuration)
	want := sampleRate.N(tapDuration)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || math.Abs(buf[i][1]) > 1 {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Fatalf("drained streamer should stay drained, got n=%d ok=%v", n, ok)
	}
}

func TestPlayTapBeforeInitializeIsSilentNoOp(t *testing.T) {
	m := NewManager()
	m.PlayTap() // must not panic or touch the speaker
}
