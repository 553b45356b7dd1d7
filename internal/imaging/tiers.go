package imaging

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Tier 固定尺寸档位
type Tier struct {
	Name      string
	Suffix    string
	MaxWidth  int
	MaxHeight int
}

// Eligible 源图至少一边超过档位边界时才生成该档位（永不放大）
func (t Tier) Eligible(srcW, srcH int) bool {
	return srcW > t.MaxWidth || srcH > t.MaxHeight
}

// Tiers 档位目录，顺序固定
var Tiers = []Tier{
	{Name: "thumbnail", Suffix: "thumb", MaxWidth: 150, MaxHeight: 150},
	{Name: "small", Suffix: "small", MaxWidth: 400, MaxHeight: 400},
	{Name: "medium", Suffix: "medium", MaxWidth: 800, MaxHeight: 800},
	{Name: "large", Suffix: "large", MaxWidth: 1600, MaxHeight: 1600},
}

// MaxTierConcurrency 同一上传内并发生成的档位上限
const MaxTierConcurrency = 4

// TierSink 持久化单个档位结果，返回错误时该档位视为失败
type TierSink func(ctx context.Context, tier Tier, out *Derivative) error

// GenerateTiers 并发生成所有符合条件的档位并等待全部完成。
// 单个档位失败（变换或写入）只记录日志并从结果中省略，不影响其他档位。
func GenerateTiers(ctx context.Context, d Deriver, src []byte, srcW, srcH int, tiers []Tier, quality int, sink TierSink) map[string]*Derivative {
	results := make(map[string]*Derivative, len(tiers))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(MaxTierConcurrency)

	for _, tier := range tiers {
		if !tier.Eligible(srcW, srcH) {
			continue
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			out, err := d.Derive(ctx, src, Options{
				Width:   tier.MaxWidth,
				Height:  tier.MaxHeight,
				Fit:     FitInside,
				Quality: quality,
				Label:   tier.Name,
			})
			if err != nil {
				log.Printf("⚠️ 生成尺寸档位 %s 失败: %v", tier.Name, err)
				return nil
			}
			if sink != nil {
				if err := sink(ctx, tier, out); err != nil {
					log.Printf("⚠️ 保存尺寸档位 %s 失败: %v", tier.Name, err)
					return nil
				}
			}
			mu.Lock()
			results[tier.Name] = out
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
