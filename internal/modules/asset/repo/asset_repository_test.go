package repo

import (
	"errors"
	"testing"

	"github.com/hdn-james/50years-ulaw-sub000/internal/model"
	"github.com/hdn-james/50years-ulaw-sub000/internal/testutils"

	"gorm.io/gorm"
)

func seedAsset(t *testing.T, store AssetStore, baseID, original string, size int64) *model.Asset {
	t.Helper()
	asset := &model.Asset{
		BaseID:           baseID,
		Filename:         baseID + ".webp",
		OriginalName:     original,
		Size:             size,
		OriginalSize:     size * 2,
		MimeType:         "image/webp",
		OriginalMimeType: "image/png",
		Width:            10,
		Height:           10,
		Converted:        true,
		UploadedAt:       1,
	}
	if err := store.Create(asset); err != nil {
		t.Fatalf("创建资源失败: %v", err)
	}
	return asset
}

// 测试内容：验证资源的增删查与统计。
func TestAssetRepository_CRUD(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewAssetRepository(gdb)

	a := seedAsset(t, store, "1-aaaa", "cake.png", 100)
	seedAsset(t, store, "2-bbbb", "party.jpg", 50)

	got, err := store.FindByBaseID("1-aaaa")
	if err != nil || got.ID != a.ID {
		t.Fatalf("期望找到资源 %d，实际为 %+v err=%v", a.ID, got, err)
	}
	if _, err := store.FindByID(a.ID); err != nil {
		t.Fatalf("期望为 nil，实际为 %v", err)
	}

	list, total, err := store.ListAssets(ListAssetsParams{Filename: "party", Limit: 10})
	if err != nil || total != 1 || len(list) != 1 || list[0].BaseID != "2-bbbb" {
		t.Fatalf("期望按原始文件名过滤到 1 条，实际为 total=%d len=%d err=%v", total, len(list), err)
	}

	count, _ := store.CountAll()
	sum, _ := store.SumAllSize()
	if count != 2 || sum != 150 {
		t.Fatalf("期望 count=2 sum=150，实际为 count=%d sum=%d", count, sum)
	}

	if err := store.Delete(a); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := store.FindByBaseID("1-aaaa"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", err)
	}
}

// 测试内容：验证空表时 SumAllSize 返回 0。
func TestAssetRepository_SumAllSizeEmpty(t *testing.T) {
	store := NewAssetRepository(testutils.SetupDB(t))
	sum, err := store.SumAllSize()
	if err != nil || sum != 0 {
		t.Fatalf("期望 0，实际为 %d err=%v", sum, err)
	}
}
