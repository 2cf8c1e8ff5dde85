package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/model"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/repository"
	pkgerrors "github.com/ilyasbozdemir/personel-duty-tracking/pkg/errors"
)

// ── 值班记录模块业务错误 ──

var (
	ErrDutyFieldsRequired  = fmt.Errorf("%w: 日期、日标签、人员与值班类型均为必填", pkgerrors.ErrValidation)
	ErrDutyDateEndRequired = fmt.Errorf("%w: 日期范围需要填写结束日期", pkgerrors.ErrValidation)
)

// DutyEntryService 值班记录业务接口
type DutyEntryService interface {
	List(ctx context.Context) ([]dto.DutyEntryResponse, error)
	Create(ctx context.Context, req *dto.CreateDutyEntryRequest) (*dto.DutyEntryResponse, error)
	Delete(ctx context.Context, id string) error
}

type dutyEntryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDutyEntryService 创建 DutyEntryService 实例
func NewDutyEntryService(repo *repository.Repository, logger *zap.Logger) DutyEntryService {
	return &dutyEntryService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

// List 按开始日期倒序返回，同一天保持插入顺序
func (s *dutyEntryService) List(ctx context.Context) ([]dto.DutyEntryResponse, error) {
	entries, err := s.repo.DutyEntry.List(ctx)
	if err != nil {
		s.logger.Error("列出值班记录失败", zap.Error(err))
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	result := make([]dto.DutyEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, toDutyEntryResponse(&entries[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

// Create 校验必填项后写入；人员与值班类型名称在此刻拷贝进记录，之后不再同步
func (s *dutyEntryService) Create(ctx context.Context, req *dto.CreateDutyEntryRequest) (*dto.DutyEntryResponse, error) {
	date := strings.TrimSpace(req.Date)
	day := strings.TrimSpace(req.Day)
	personnelID := strings.TrimSpace(req.PersonnelID)
	dutyTypeID := strings.TrimSpace(req.DutyTypeID)
	if date == "" || day == "" || personnelID == "" || dutyTypeID == "" {
		return nil, ErrDutyFieldsRequired
	}

	var dateEnd string
	if req.IsDateRange {
		dateEnd = strings.TrimSpace(req.DateEnd)
		if dateEnd == "" {
			return nil, ErrDutyDateEndRequired
		}
	}

	person, err := s.repo.Personnel.GetByID(ctx, personnelID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		s.logger.Error("查询人员失败", zap.String("personnel_id", personnelID), zap.Error(err))
		return nil, err
	}

	dutyType, err := s.repo.DutyType.GetByID(ctx, dutyTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrDutyTypeNotFound
		}
		s.logger.Error("查询值班类型失败", zap.String("duty_type_id", dutyTypeID), zap.Error(err))
		return nil, err
	}

	entry := &model.DutyEntry{
		Date:          date,
		DateEnd:       dateEnd,
		Day:           day,
		PersonnelID:   person.ID,
		PersonnelName: person.Name,
		DutyTypeID:    dutyType.ID,
		DutyTypeName:  dutyType.Name,
	}
	if err := s.repo.DutyEntry.Create(ctx, entry); err != nil {
		s.logger.Error("创建值班记录失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("值班记录已创建",
		zap.String("id", entry.ID),
		zap.String("date", entry.Date),
		zap.String("personnel_id", entry.PersonnelID),
	)
	resp := toDutyEntryResponse(entry)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *dutyEntryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DutyEntry.Delete(ctx, id); err != nil {
		s.logger.Error("删除值班记录失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toDutyEntryResponse(e *model.DutyEntry) dto.DutyEntryResponse {
	return dto.DutyEntryResponse{
		ID:            e.ID,
		Date:          e.Date,
		DateEnd:       e.DateEnd,
		Day:           e.Day,
		PersonnelID:   e.PersonnelID,
		PersonnelName: e.PersonnelName,
		DutyTypeID:    e.DutyTypeID,
		DutyTypeName:  e.DutyTypeName,
		CreatedAt:     e.CreatedAt.Format(timeLayout),
	}
}
