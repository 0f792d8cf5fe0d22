package alder_test

import (
	"testing"

	"github.com/alder-lang/alder"
)

func TestSpanJoin(t *testing.T) {
	l := alder.NewSpan(2, 5)
	r := alder.NewSpan(8, 12)
	if got := l.Join(r); got != alder.NewSpan(2, 12) {
		t.Errorf("Join: got %v", got)
	}
}

func TestSpanLen(t *testing.T) {
	if got := alder.NewSpan(3, 7).Len(); got != 4 {
		t.Errorf("Len: got %d", got)
	}
	if got := alder.NewSpan(3, 3).Len(); got != 0 {
		t.Errorf("empty Len: got %d", got)
	}
}

func TestNewSpanInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSpan accepted an inverted range")
		}
	}()
	alder.NewSpan(5, 2)
}
