package scrollback

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHoldsBanner(t *testing.T) {
	b := New()
	require.Equal(t, 4, b.Len())
	assert.Equal(t, "Construction CLI Web Terminal", b.Lines()[0])
	assert.Equal(t, "", b.Last())
}

func TestAppendKeepsOrder(t *testing.T) {
	b := New().Append("$ one", "1").Append("$ two")
	want := append(Banner(), "$ one", "1", "$ two")
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	base := New().Append("a")
	left := base.Append("left")
	right := base.Append("right")

	assert.Equal(t, 5, base.Len())
	assert.Equal(t, "left", left.Last())
	assert.Equal(t, "right", right.Last())
}

func TestAppendNothing(t *testing.T) {
	b := New()
	assert.Equal(t, b.Lines(), b.Append().Lines())
}

func TestResetRestoresBanner(t *testing.T) {
	b := New()
	for i := 0; i < 50; i++ {
		b = b.Append("noise")
	}
	b = b.Reset()
	if diff := cmp.Diff(Banner(), b.Lines()); diff != "" {
		t.Fatalf("reset mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesIsACopy(t *testing.T) {
	b := New()
	lines := b.Lines()
	lines[0] = "changed"
	assert.Equal(t, "Construction CLI Web Terminal", b.Lines()[0])

	banner := Banner()
	banner[0] = "changed"
	assert.Equal(t, "Construction CLI Web Terminal", New().Lines()[0])
}
