package watch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_ResetReplacesTimer(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)
	assert.False(t, d.pending())
	assert.Nil(t, d.C())

	d.reset()
	first := d.C()
	d.reset()
	second := d.C()
	assert.True(t, d.pending())
	assert.NotEqual(t, first, second)

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	d.fired()
	assert.False(t, d.pending())

	// The replaced timer never fires.
	select {
	case <-first:
		t.Fatal("canceled timer fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	d.reset()
	c := d.C()
	d.stop()
	assert.False(t, d.pending())

	select {
	case <-c:
		t.Fatal("stopped timer fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindAdded, KindDirAdded, KindChanged, KindRemoved, KindDirRemoved} {
		assert.True(t, k.Relevant(), k.String())
	}
	assert.False(t, KindOther.Relevant())
	assert.False(t, Kind(42).Relevant())
	assert.Equal(t, "dirRemoved", KindDirRemoved.String())
	assert.Equal(t, "other", Kind(42).String())
}
