package imaging

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/hdn-james/50years-ulaw-sub000/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDeriver 对指定档位注入失败，其余委托给真实生成器
type failingDeriver struct {
	inner    Deriver
	failTier string
	calls    atomic.Int32
}

func (f *failingDeriver) Derive(ctx context.Context, src []byte, opts Options) (*Derivative, error) {
	f.calls.Add(1)
	if opts.Label == f.failTier {
		return nil, newProcessingError("encode", errors.New("injected"))
	}
	return f.inner.Derive(ctx, src, opts)
}

func TestTier_Eligible(t *testing.T) {
	thumb := Tiers[0]
	assert.False(t, thumb.Eligible(150, 150))
	assert.True(t, thumb.Eligible(151, 10))
	assert.True(t, thumb.Eligible(10, 151))
}

func TestGenerateTiers_AllTiersWithinBoundsAndAspect(t *testing.T) {
	g := NewGenerator(80, nil)
	src := testutils.JPEGBytes(t, 3000, 2000)

	got := GenerateTiers(context.Background(), g, src, 3000, 2000, Tiers, 80, nil)
	require.Len(t, got, 4)

	for _, tier := range Tiers {
		out, ok := got[tier.Name]
		require.True(t, ok, tier.Name)
		assert.LessOrEqual(t, out.Width, tier.MaxWidth, tier.Name)
		assert.LessOrEqual(t, out.Height, tier.MaxHeight, tier.Name)
		// 3:2 比例保持（允许 1px 取整误差）
		assert.InDelta(t, float64(out.Width)*2/3, float64(out.Height), 1, tier.Name)
	}
	assert.Equal(t, 150, got["thumbnail"].Width)
	assert.Equal(t, 1600, got["large"].Width)
}

func TestGenerateTiers_SmallSourceSkipsTiers(t *testing.T) {
	g := NewGenerator(80, nil)
	src := testutils.JPEGBytes(t, 120, 80)

	got := GenerateTiers(context.Background(), g, src, 120, 80, Tiers, 80, nil)
	assert.Empty(t, got)

	src = testutils.JPEGBytes(t, 500, 300)
	got = GenerateTiers(context.Background(), g, src, 500, 300, Tiers, 80, nil)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "thumbnail")
	assert.Contains(t, got, "small")
}

func TestGenerateTiers_OneFailureKeepsOthers(t *testing.T) {
	d := &failingDeriver{inner: NewGenerator(80, nil), failTier: "medium"}
	src := testutils.JPEGBytes(t, 2000, 1500)

	got := GenerateTiers(context.Background(), d, src, 2000, 1500, Tiers, 80, nil)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, "medium")
	assert.Equal(t, int32(4), d.calls.Load())
}

func TestGenerateTiers_SinkFailureOmitsTier(t *testing.T) {
	g := NewGenerator(80, nil)
	src := testutils.JPEGBytes(t, 1000, 1000)

	var sunk atomic.Int32
	sink := func(_ context.Context, tier Tier, _ *Derivative) error {
		if tier.Name == "small" {
			return errors.New("disk full")
		}
		sunk.Add(1)
		return nil
	}

	got := GenerateTiers(context.Background(), g, src, 1000, 1000, Tiers, 80, sink)
	assert.Len(t, got, 2)
	assert.NotContains(t, got, "small")
	assert.Equal(t, int32(2), sunk.Load())
}

func TestGenerateTiers_CanceledContextProducesNothing(t *testing.T) {
	g := NewGenerator(80, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := GenerateTiers(ctx, g, testutils.JPEGBytes(t, 2000, 2000), 2000, 2000, Tiers, 80, nil)
	assert.Empty(t, got)
}
