package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/config"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
)

var errStorage = errors.New("存储不可用")

// ── 测试辅助 ──

// setupTestRepo 基于内存 KV 的真实 Repository
func setupTestRepo() *repository.Repository {
	return repository.NewRepository(repository.NewMemoryKV())
}

func setupTestService() (*Service, *repository.Repository) {
	repo := setupTestRepo()
	cfg := &config.Config{Export: testExportConfig()}
	return NewService(cfg, repo, zap.NewNop()), repo
}

func testExportConfig() config.ExportConfig {
	return config.ExportConfig{
		FilePrefix:  "nobet-cizelgesi",
		SheetName:   "Nöbet Çizelgesi",
		ColumnWidth: 30,
		Snapshot:    true,
		Raster:      config.RasterConfig{Width: 800, RowHeight: 30, ColumnOffset: 400, FontSize: 14},
	}
}

// ── Mock KVStore（所有操作失败） ──

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errStorage }
func (failingKV) Set(context.Context, string, string) error         { return errStorage }

// ── Mock ImageRepository ──

type mockImageRepo struct {
	images    []model.UploadedImage
	createErr error
}

func newMockImageRepo() *mockImageRepo {
	return &mockImageRepo{}
}

func (m *mockImageRepo) List(_ context.Context) ([]model.UploadedImage, error) {
	return append([]model.UploadedImage{}, m.images...), nil
}

func (m *mockImageRepo) GetByID(_ context.Context, id string) (*model.UploadedImage, error) {
	for i := range m.images {
		if m.images[i].ID == id {
			img := m.images[i]
			return &img, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockImageRepo) Create(_ context.Context, img *model.UploadedImage) error {
	if m.createErr != nil {
		return m.createErr
	}
	if img.ID == "" {
		img.ID = "img-" + time.Now().Format("150405.000000000")
	}
	m.images = append(m.images, *img)
	return nil
}

func (m *mockImageRepo) Delete(_ context.Context, id string) error {
	kept := m.images[:0]
	for _, img := range m.images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	m.images = kept
	return nil
}

// ── 数据准备 ──

func seedPersonnel(repo *repository.Repository, names ...string) []model.Personnel {
	out := make([]model.Personnel, 0, len(names))
	for _, n := range names {
		p := &model.Personnel{Name: n}
		if err := repo.Personnel.Create(context.Background(), p); err != nil {
			panic(err)
		}
		out = append(out, *p)
	}
	return out
}

func seedDutyTypes(repo *repository.Repository, names ...string) []model.DutyType {
	out := make([]model.DutyType, 0, len(names))
	for _, n := range names {
		dt := &model.DutyType{Name: n}
		if err := repo.DutyType.Create(context.Background(), dt); err != nil {
			panic(err)
		}
		out = append(out, *dt)
	}
	return out
}

func seedEntry(repo *repository.Repository, date, day string, p model.Personnel, dt model.DutyType) model.DutyEntry {
	e := &model.DutyEntry{
		Date:          date,
		Day:           day,
		PersonnelID:   p.ID,
		PersonnelName: p.Name,
		DutyTypeID:    dt.ID,
		DutyTypeName:  dt.Name,
	}
	if err := repo.DutyEntry.Create(context.Background(), e); err != nil {
		panic(err)
	}
	return *e
}
