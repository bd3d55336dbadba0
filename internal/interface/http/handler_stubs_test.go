package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
	"github.com/federalbonds/backend/internal/interface/middleware"
	"github.com/federalbonds/backend/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// authAs stands in for the auth middleware on protected routes.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, userID)
		c.Next()
	}
}

func performJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// envelope mirrors the response wrapper for decoding in assertions.
type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, w.Body.String())
	}
	return e
}

func errorDetails(t *testing.T, e envelope) map[string]string {
	t.Helper()
	out := map[string]string{}
	if len(e.Error) > 0 {
		if err := json.Unmarshal(e.Error, &out); err != nil {
			t.Fatalf("error details are not a field map: %v\n%s", err, string(e.Error))
		}
	}
	return out
}

// Function-field stubs for the repository interfaces. Tests set only the
// calls they expect; anything else panics via the nil function.

type accountRepoStub struct {
	create func(u *entity.User, p *entity.Profile) error
	remove func(userID string) error
}

func (s *accountRepoStub) CreateWithProfile(_ context.Context, u *entity.User, p *entity.Profile) error {
	return s.create(u, p)
}

func (s *accountRepoStub) DeleteWithProfile(_ context.Context, userID string) error {
	return s.remove(userID)
}

type userRepoStub struct {
	byID    func(id string) (*entity.User, error)
	byEmail func(email string) (*entity.User, error)
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.byID(id)
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.byEmail(email)
}

type profileRepoStub struct {
	byUserID func(userID string) (*entity.Profile, error)
	update   func(p *entity.Profile) error
}

func (s *profileRepoStub) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	return s.byUserID(userID)
}

func (s *profileRepoStub) Update(_ context.Context, p *entity.Profile) error {
	return s.update(p)
}

type productRepoStub struct {
	products []entity.Product
}

func (s *productRepoStub) List(_ context.Context) ([]entity.Product, error) {
	return s.products, nil
}

func (s *productRepoStub) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *productRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func (s *productRepoStub) CreateBatch(_ context.Context, products []entity.Product) error {
	s.products = append(s.products, products...)
	return nil
}

type investmentRepoStub struct {
	create     func(inv *entity.Investment) error
	byID       func(id int64) (*entity.Investment, error)
	listByUser func(userID string) ([]entity.Investment, error)
	listOpen   func(userID string) ([]entity.Investment, error)
	markSold   func(id int64, saleDate time.Time) error
	count      func(userID string) (int64, error)
}

func (s *investmentRepoStub) Create(_ context.Context, inv *entity.Investment) error {
	return s.create(inv)
}

func (s *investmentRepoStub) GetByID(_ context.Context, id int64) (*entity.Investment, error) {
	return s.byID(id)
}

func (s *investmentRepoStub) ListByUser(_ context.Context, userID string) ([]entity.Investment, error) {
	return s.listByUser(userID)
}

func (s *investmentRepoStub) ListOpenByUser(_ context.Context, userID string) ([]entity.Investment, error) {
	return s.listOpen(userID)
}

func (s *investmentRepoStub) MarkSold(_ context.Context, id int64, saleDate time.Time) error {
	return s.markSold(id, saleDate)
}

func (s *investmentRepoStub) CountByUser(_ context.Context, userID string) (int64, error) {
	return s.count(userID)
}

var (
	_ repo.AccountRepository    = (*accountRepoStub)(nil)
	_ repo.UserRepository       = (*userRepoStub)(nil)
	_ repo.ProfileRepository    = (*profileRepoStub)(nil)
	_ repo.ProductRepository    = (*productRepoStub)(nil)
	_ repo.InvestmentRepository = (*investmentRepoStub)(nil)
)

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Classic Federal Bond 1 Month", Duration: "1 Month", Rate: "2.5% p.a."},
		{ID: 2, Name: "Green Federal Bond 6 Months", Duration: "6 Months", Rate: "2.8% p.a.", IsGreen: true},
	}
}
