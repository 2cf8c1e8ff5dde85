package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/internal/dto"
	"github.com/ilyasbozdemir/personel-duty-tracking/internal/service"
	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock PersonnelService ──

type mockPersonnelService struct {
	listResult   []dto.PersonnelResponse
	listErr      error
	createResult *dto.PersonnelResponse
	createErr    error
	deleteErr    error
	deletedID    string
}

func (m *mockPersonnelService) List(_ context.Context) ([]dto.PersonnelResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockPersonnelService) Create(_ context.Context, _ *dto.CreatePersonnelRequest) (*dto.PersonnelResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockPersonnelService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

// ── Mock DutyEntryService ──

type mockDutyEntryService struct {
	createResult *dto.DutyEntryResponse
	createErr    error
	lastReq      *dto.CreateDutyEntryRequest
}

func (m *mockDutyEntryService) List(_ context.Context) ([]dto.DutyEntryResponse, error) {
	return nil, nil
}
func (m *mockDutyEntryService) Create(_ context.Context, req *dto.CreateDutyEntryRequest) (*dto.DutyEntryResponse, error) {
	m.lastReq = req
	return m.createResult, m.createErr
}
func (m *mockDutyEntryService) Delete(_ context.Context, _ string) error { return nil }

// ── Mock MediaService ──

type mockMediaService struct {
	uploadResult *dto.ImageResponse
	uploadErr    error
	uploaded     []byte
	description  string
	getMime      string
	getPayload   []byte
	getErr       error
}

func (m *mockMediaService) List(_ context.Context) ([]dto.ImageResponse, error) { return nil, nil }
func (m *mockMediaService) Get(_ context.Context, _ string) (string, []byte, error) {
	return m.getMime, m.getPayload, m.getErr
}
func (m *mockMediaService) Upload(_ context.Context, data []byte, description string) (*dto.ImageResponse, error) {
	m.uploaded = data
	m.description = description
	return m.uploadResult, m.uploadErr
}
func (m *mockMediaService) Delete(_ context.Context, _ string) error { return nil }

// ── Mock StatsService / DashboardService ──

type mockStatsService struct {
	allResult []dto.PersonnelStatsResponse
	oneResult *dto.PersonnelStatsResponse
	err       error
	lastQuery dto.StatsQuery
}

func (m *mockStatsService) All(_ context.Context, q dto.StatsQuery) ([]dto.PersonnelStatsResponse, error) {
	m.lastQuery = q
	return m.allResult, m.err
}
func (m *mockStatsService) ForPersonnel(_ context.Context, _ string, q dto.StatsQuery) (*dto.PersonnelStatsResponse, error) {
	m.lastQuery = q
	return m.oneResult, m.err
}

type mockDashboardService struct {
	result   *dto.DashboardResponse
	calledAt time.Time
}

func (m *mockDashboardService) Summary(_ context.Context, now time.Time) (*dto.DashboardResponse, error) {
	m.calledAt = now
	return m.result, nil
}

// ── Mock ExportService ──

type mockExportService struct {
	preview  *dto.RosterPreviewResponse
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) Preview(_ context.Context, _ *dto.ExportQuery) (*dto.RosterPreviewResponse, error) {
	return m.preview, m.err
}
func (m *mockExportService) Export(_ context.Context, _ *dto.ExportQuery) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── Mock SettingsService ──

type mockSettingsService struct {
	theme  string
	setErr error
}

func (m *mockSettingsService) GetTheme(_ context.Context) (*dto.ThemeResponse, error) {
	return &dto.ThemeResponse{Theme: m.theme}, nil
}
func (m *mockSettingsService) SetTheme(_ context.Context, req *dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	if m.setErr != nil {
		return nil, m.setErr
	}
	m.theme = req.Theme
	return &dto.ThemeResponse{Theme: m.theme}, nil
}
func (m *mockSettingsService) ToggleTheme(_ context.Context) (*dto.ThemeResponse, error) {
	if m.theme == "dark" {
		m.theme = "light"
	} else {
		m.theme = "dark"
	}
	return &dto.ThemeResponse{Theme: m.theme}, nil
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ═══════════════════════════════════════════════════════════
// PersonnelHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPersonnelHandler_Create_Success(t *testing.T) {
	mock := &mockPersonnelService{createResult: &dto.PersonnelResponse{ID: "p-1", Name: "Ayşe"}}
	h := NewPersonnelHandler(mock)

	r := gin.New()
	r.POST("/personnel", h.CreatePersonnel)
	req := httptest.NewRequest("POST", "/personnel", jsonBody(dto.CreatePersonnelRequest{Name: "Ayşe"}))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestPersonnelHandler_Create_BadJSON(t *testing.T) {
	h := NewPersonnelHandler(&mockPersonnelService{})

	r := gin.New()
	r.POST("/personnel", h.CreatePersonnel)
	req := httptest.NewRequest("POST", "/personnel", strings.NewReader("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("expected code 10001, got %d", resp.Code)
	}
}

func TestPersonnelHandler_Create_NameRequired(t *testing.T) {
	h := NewPersonnelHandler(&mockPersonnelService{createErr: service.ErrNameRequired})

	r := gin.New()
	r.POST("/personnel", h.CreatePersonnel)
	req := httptest.NewRequest("POST", "/personnel", jsonBody(dto.CreatePersonnelRequest{Name: " "}))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 20001 {
		t.Errorf("expected code 20001, got %d", resp.Code)
	}
}

func TestPersonnelHandler_List_InternalError(t *testing.T) {
	h := NewPersonnelHandler(&mockPersonnelService{listErr: context.DeadlineExceeded})

	r := gin.New()
	r.GET("/personnel", h.ListPersonnel)
	w := serve(r, httptest.NewRequest("GET", "/personnel", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 50000 {
		t.Errorf("expected code 50000, got %d", resp.Code)
	}
}

func TestPersonnelHandler_Delete(t *testing.T) {
	mock := &mockPersonnelService{}
	h := NewPersonnelHandler(mock)

	r := gin.New()
	r.DELETE("/personnel/:id", h.DeletePersonnel)
	w := serve(r, httptest.NewRequest("DELETE", "/personnel/p-42", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.deletedID != "p-42" {
		t.Errorf("expected id p-42, got %s", mock.deletedID)
	}
}

// ═══════════════════════════════════════════════════════════
// DutyEntryHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDutyEntryHandler_Create_Success(t *testing.T) {
	mock := &mockDutyEntryService{createResult: &dto.DutyEntryResponse{ID: "e-1"}}
	h := NewDutyEntryHandler(mock)

	r := gin.New()
	r.POST("/duty-entries", h.CreateDutyEntry)
	body := `{"date":"2024-06-01","is_date_range":true,"date_end":"2024-06-03","day":"Resmi Tatil","personnel_id":"p-1","duty_type_id":"d-1"}`
	req := httptest.NewRequest("POST", "/duty-entries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if mock.lastReq == nil || !mock.lastReq.IsDateRange || mock.lastReq.DateEnd != "2024-06-03" {
		t.Errorf("请求未正确绑定: %+v", mock.lastReq)
	}
}

func TestDutyEntryHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode int
	}{
		{"缺少字段", service.ErrDutyFieldsRequired, http.StatusBadRequest, 40001},
		{"缺少结束日期", service.ErrDutyDateEndRequired, http.StatusBadRequest, 40002},
		{"人员不存在", service.ErrPersonnelNotFound, http.StatusNotFound, 40003},
		{"值班类型不存在", service.ErrDutyTypeNotFound, http.StatusNotFound, 40004},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewDutyEntryHandler(&mockDutyEntryService{createErr: tt.err})

			r := gin.New()
			r.POST("/duty-entries", h.CreateDutyEntry)
			req := httptest.NewRequest("POST", "/duty-entries", strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			w := serve(r, req)

			if w.Code != tt.wantHTTP {
				t.Errorf("expected %d, got %d", tt.wantHTTP, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// MediaHandler Tests
// ═══════════════════════════════════════════════════════════

func multipartUpload(t *testing.T, field string, data []byte, description string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, "imza.png")
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(data)
	}
	mw.WriteField("description", description)
	mw.Close()

	req := httptest.NewRequest("POST", "/media", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMediaHandler_Upload_Success(t *testing.T) {
	mock := &mockMediaService{uploadResult: &dto.ImageResponse{ID: "img-1"}}
	h := NewMediaHandler(mock)

	r := gin.New()
	r.POST("/media", h.UploadImage)
	w := serve(r, multipartUpload(t, "file", []byte("\x89PNG\r\n\x1a\n"), "imza"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !bytes.Equal(mock.uploaded, []byte("\x89PNG\r\n\x1a\n")) || mock.description != "imza" {
		t.Errorf("上传内容未透传: %q / %q", mock.uploaded, mock.description)
	}
}

func TestMediaHandler_Upload_MissingFile(t *testing.T) {
	h := NewMediaHandler(&mockMediaService{})

	r := gin.New()
	r.POST("/media", h.UploadImage)
	w := serve(r, multipartUpload(t, "", nil, "imza"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 51003 {
		t.Errorf("expected code 51003, got %d", resp.Code)
	}
}

func TestMediaHandler_Upload_NotImage(t *testing.T) {
	h := NewMediaHandler(&mockMediaService{uploadErr: service.ErrImageInvalid})

	r := gin.New()
	r.POST("/media", h.UploadImage)
	w := serve(r, multipartUpload(t, "file", []byte("text"), ""))

	if resp := parseResponse(w); w.Code != http.StatusBadRequest || resp.Code != 51001 {
		t.Errorf("expected 400/51001, got %d/%d", w.Code, resp.Code)
	}
}

func TestMediaHandler_GetRaw(t *testing.T) {
	h := NewMediaHandler(&mockMediaService{getMime: "image/png", getPayload: []byte{1, 2, 3}})

	r := gin.New()
	r.GET("/media/:id/raw", h.GetImageRaw)
	w := serve(r, httptest.NewRequest("GET", "/media/img-1/raw", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %s", ct)
	}
	if !bytes.Equal(w.Body.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("unexpected body %v", w.Body.Bytes())
	}
}

func TestMediaHandler_GetRaw_NotFound(t *testing.T) {
	h := NewMediaHandler(&mockMediaService{getErr: service.ErrImageNotFound})

	r := gin.New()
	r.GET("/media/:id/raw", h.GetImageRaw)
	w := serve(r, httptest.NewRequest("GET", "/media/missing/raw", nil))

	if resp := parseResponse(w); w.Code != http.StatusNotFound || resp.Code != 51002 {
		t.Errorf("expected 404/51002, got %d/%d", w.Code, resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// StatsHandler Tests
// ═══════════════════════════════════════════════════════════

func TestStatsHandler_ListStats_ParsesQuery(t *testing.T) {
	mock := &mockStatsService{allResult: []dto.PersonnelStatsResponse{}}
	h := NewStatsHandler(mock, &mockDashboardService{})

	r := gin.New()
	r.GET("/stats", h.ListStats)
	w := serve(r, httptest.NewRequest("GET", "/stats?year=2024&month=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastQuery.Year == nil || *mock.lastQuery.Year != 2024 {
		t.Errorf("year 未解析: %+v", mock.lastQuery)
	}
	if mock.lastQuery.Month == nil || *mock.lastQuery.Month != 5 {
		t.Errorf("month 未解析: %+v", mock.lastQuery)
	}
}

func TestStatsHandler_ListStats_NoFilter(t *testing.T) {
	mock := &mockStatsService{}
	h := NewStatsHandler(mock, &mockDashboardService{})

	r := gin.New()
	r.GET("/stats", h.ListStats)
	w := serve(r, httptest.NewRequest("GET", "/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastQuery.Year != nil || mock.lastQuery.Month != nil {
		t.Errorf("未传参时筛选应为空: %+v", mock.lastQuery)
	}
}

func TestStatsHandler_BadQuery(t *testing.T) {
	h := NewStatsHandler(&mockStatsService{}, &mockDashboardService{})

	r := gin.New()
	r.GET("/stats", h.ListStats)
	w := serve(r, httptest.NewRequest("GET", "/stats?year=abc", nil))

	if resp := parseResponse(w); w.Code != http.StatusBadRequest || resp.Code != 10001 {
		t.Errorf("expected 400/10001, got %d/%d", w.Code, resp.Code)
	}
}

func TestStatsHandler_DeletedPersonnel(t *testing.T) {
	mock := &mockStatsService{oneResult: &dto.PersonnelStatsResponse{
		Person:     dto.PersonnelResponse{ID: "gone", Name: "Ali"},
		Total:      2,
		ByDutyType: map[string]int{"Acil": 2},
		ByDay:      map[string]int{"Cumartesi": 2},
	}}
	h := NewStatsHandler(mock, &mockDashboardService{})

	r := gin.New()
	r.GET("/stats/:personnel_id", h.GetPersonnelStats)
	w := serve(r, httptest.NewRequest("GET", "/stats/gone", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"total":2`) {
		t.Errorf("expected total 2 in body, got %s", w.Body.String())
	}
}

func TestStatsHandler_QueryErrorDetailsInTurkish(t *testing.T) {
	h := NewStatsHandler(&mockStatsService{}, &mockDashboardService{})

	r := gin.New()
	r.GET("/stats", h.ListStats)
	w := serve(r, httptest.NewRequest("GET", "/stats?year=abc", nil))

	resp := parseResponse(w)
	if w.Code != http.StatusBadRequest || resp.Code != 10001 {
		t.Fatalf("expected 400/10001, got %d/%d", w.Code, resp.Code)
	}
	if resp.Details != "year tam sayı olmalıdır" {
		t.Errorf("unexpected details: %q", resp.Details)
	}
}

func TestMustGetParam_BlankDetailsInTurkish(t *testing.T) {
	r := gin.New()
	r.GET("/media/:id", func(c *gin.Context) {
		if _, ok := MustGetParam(c, "id"); ok {
			c.Status(http.StatusOK)
		}
	})
	w := serve(r, httptest.NewRequest("GET", "/media/%20", nil))

	resp := parseResponse(w)
	if w.Code != http.StatusBadRequest || resp.Details != "id boş olamaz" {
		t.Errorf("expected 400 with Turkish details, got %d/%q", w.Code, resp.Details)
	}
}

func TestStatsHandler_InvalidMonth(t *testing.T) {
	h := NewStatsHandler(&mockStatsService{err: service.ErrStatsInvalidMonth}, &mockDashboardService{})

	r := gin.New()
	r.GET("/stats", h.ListStats)
	w := serve(r, httptest.NewRequest("GET", "/stats?month=12", nil))

	resp := parseResponse(w)
	if w.Code != http.StatusBadRequest || resp.Code != 10001 {
		t.Errorf("expected 400/10001, got %d/%d", w.Code, resp.Code)
	}
	if resp.Details != "month 0-11 arasında olmalıdır" {
		t.Errorf("unexpected details: %q", resp.Details)
	}
}

func TestStatsHandler_Dashboard(t *testing.T) {
	dash := &mockDashboardService{result: &dto.DashboardResponse{PersonnelCount: 3}}
	h := NewStatsHandler(&mockStatsService{}, dash)
	fixed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	r := gin.New()
	r.GET("/dashboard", h.Dashboard)
	w := serve(r, httptest.NewRequest("GET", "/dashboard", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !dash.calledAt.Equal(fixed) {
		t.Errorf("expected now=%v, got %v", fixed, dash.calledAt)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Export_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("fake-xlsx"),
		filename: "nobet-cizelgesi-2024-06-01-2024-06-30.xlsx",
	}
	h := NewExportHandler(mock)

	r := gin.New()
	r.GET("/export/roster", h.ExportRoster)
	w := serve(r, httptest.NewRequest("GET", "/export/roster?start_date=2024-06-01&end_date=2024-06-30", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected Content-Type %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "nobet-cizelgesi-2024-06-01-2024-06-30.xlsx") {
		t.Errorf("unexpected Content-Disposition %s", cd)
	}
	if w.Body.String() != "fake-xlsx" {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestExportHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode int
	}{
		{"缺少日期", service.ErrExportRangeRequired, http.StatusBadRequest, 60001},
		{"日期无效", service.ErrExportInvalidRange, http.StatusBadRequest, 60002},
		{"没有记录", service.ErrExportNothing, http.StatusNotFound, 60003},
		{"生成失败", service.ErrExportGenerateFail, http.StatusInternalServerError, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewExportHandler(&mockExportService{err: tt.err})

			r := gin.New()
			r.GET("/export/roster", h.ExportRoster)
			w := serve(r, httptest.NewRequest("GET", "/export/roster", nil))

			if w.Code != tt.wantHTTP {
				t.Errorf("expected %d, got %d", tt.wantHTTP, w.Code)
			}
			if resp := parseResponse(w); resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestExportHandler_Preview(t *testing.T) {
	mock := &mockExportService{preview: &dto.RosterPreviewResponse{
		Rows: []dto.RosterRowResponse{{Kind: "blank", Cells: []string{}}},
	}}
	h := NewExportHandler(mock)

	r := gin.New()
	r.GET("/export/preview", h.PreviewRoster)
	w := serve(r, httptest.NewRequest("GET", "/export/preview?start_date=2024-06-01&end_date=2024-06-30", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"kind":"blank"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// SettingsHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSettingsHandler_ThemeFlow(t *testing.T) {
	mock := &mockSettingsService{theme: "dark"}
	h := NewSettingsHandler(mock)

	r := gin.New()
	r.GET("/settings/theme", h.GetTheme)
	r.PUT("/settings/theme", h.UpdateTheme)
	r.POST("/settings/theme/toggle", h.ToggleTheme)

	w := serve(r, httptest.NewRequest("POST", "/settings/theme/toggle", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"theme":"light"`) {
		t.Errorf("toggle 失败: %d %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest("PUT", "/settings/theme", jsonBody(dto.UpdateThemeRequest{Theme: "dark"}))
	req.Header.Set("Content-Type", "application/json")
	w = serve(r, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	w = serve(r, httptest.NewRequest("GET", "/settings/theme", nil))
	if !strings.Contains(w.Body.String(), `"theme":"dark"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestSettingsHandler_InvalidTheme(t *testing.T) {
	h := NewSettingsHandler(&mockSettingsService{setErr: service.ErrInvalidTheme})

	r := gin.New()
	r.PUT("/settings/theme", h.UpdateTheme)
	req := httptest.NewRequest("PUT", "/settings/theme", jsonBody(dto.UpdateThemeRequest{Theme: "blue"}))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)

	if resp := parseResponse(w); w.Code != http.StatusBadRequest || resp.Code != 70001 {
		t.Errorf("expected 400/70001, got %d/%d", w.Code, resp.Code)
	}
}
