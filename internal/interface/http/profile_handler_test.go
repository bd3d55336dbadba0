package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/federalbonds/backend/internal/application"
	"github.com/federalbonds/backend/internal/domain/entity"
	repo "github.com/federalbonds/backend/internal/domain/repository"
)

func performForm(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newProfileRouter(profiles repo.ProfileRepository, investments repo.InvestmentRepository, accounts repo.AccountRepository) *gin.Engine {
	svc := &application.ProfileService{
		Profiles:    profiles,
		Investments: investments,
		Accounts:    accounts,
		Logger:      testLogger(),
	}
	h := NewProfileHandler(svc, testLogger(), "localhost", false)

	r := gin.New()
	auth := r.Group("/api", authAs("user-1"))
	auth.GET("/profile", h.View)
	auth.PUT("/profile", h.Update)
	auth.DELETE("/profile", h.Delete)
	return r
}

func mariaProfile() *entity.Profile {
	return &entity.Profile{
		ID: "profile-1", UserID: "user-1",
		FirstName: "Maria", LastName: "Muster", IsActive: true,
	}
}

func TestProfileView(t *testing.T) {
	profiles := &profileRepoStub{
		byUserID: func(userID string) (*entity.Profile, error) { return mariaProfile(), nil },
	}
	investments := &investmentRepoStub{
		listOpen: func(userID string) ([]entity.Investment, error) {
			return []entity.Investment{
				{ID: 1, UserID: userID, Amount: decimal.NewFromInt(100)},
				{ID: 2, UserID: userID, Amount: decimal.NewFromInt(400)},
			}, nil
		},
	}
	r := newProfileRouter(profiles, investments, &accountRepoStub{})

	w := performJSON(r, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view profileViewResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &view))
	assert.Equal(t, "Maria Muster", view.Profile.FullName)
	assert.Len(t, view.OpenInvestments, 2)
	assert.Equal(t, "500.00", view.OpenTotal)
}

func TestProfileViewMissingRedirectsToRegister(t *testing.T) {
	profiles := &profileRepoStub{
		byUserID: func(userID string) (*entity.Profile, error) { return nil, repo.ErrNotFound },
	}
	r := newProfileRouter(profiles, &investmentRepoStub{}, &accountRepoStub{})

	w := performJSON(r, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	details := errorDetails(t, decodeEnvelope(t, w))
	assert.Equal(t, "/account/register", details["redirect"])
}

func TestProfileUpdate(t *testing.T) {
	var updated *entity.Profile
	profiles := &profileRepoStub{
		byUserID: func(userID string) (*entity.Profile, error) { return mariaProfile(), nil },
		update: func(p *entity.Profile) error {
			updated = p
			return nil
		},
	}
	r := newProfileRouter(profiles, &investmentRepoStub{}, &accountRepoStub{})

	w := performForm(r, http.MethodPut, "/api/profile", url.Values{
		"first_name": {"Marie"},
		"last_name":  {"Musterfrau"},
		"is_active":  {"true"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, updated)
	assert.Equal(t, "Marie", updated.FirstName)
	assert.Equal(t, "Musterfrau", updated.LastName)

	var resp profileResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &resp))
	assert.Equal(t, "Marie Musterfrau", resp.FullName)
}

func TestProfileUpdateValidation(t *testing.T) {
	r := newProfileRouter(&profileRepoStub{}, &investmentRepoStub{}, &accountRepoStub{})

	w := performForm(r, http.MethodPut, "/api/profile", url.Values{
		"first_name": {strings.Repeat("x", 51)},
		"last_name":  {"Muster"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	details := errorDetails(t, decodeEnvelope(t, w))
	assert.Equal(t, "must be at most 50 characters long", details["first_name"])
}

func TestProfileDeleteBlockedWhileInvested(t *testing.T) {
	profiles := &profileRepoStub{
		byUserID: func(userID string) (*entity.Profile, error) { return mariaProfile(), nil },
	}
	investments := &investmentRepoStub{
		count: func(userID string) (int64, error) { return 2, nil },
	}
	r := newProfileRouter(profiles, investments, &accountRepoStub{})

	w := performJSON(r, http.MethodDelete, "/api/profile", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "deletion not possible: active investments exist", decodeEnvelope(t, w).Message)
}

func TestProfileDeleteClearsCookies(t *testing.T) {
	profiles := &profileRepoStub{
		byUserID: func(userID string) (*entity.Profile, error) { return mariaProfile(), nil },
	}
	investments := &investmentRepoStub{
		count: func(userID string) (int64, error) { return 0, nil },
	}
	deleted := ""
	accounts := &accountRepoStub{
		remove: func(userID string) error {
			deleted = userID
			return nil
		},
	}
	r := newProfileRouter(profiles, investments, accounts)

	w := performJSON(r, http.MethodDelete, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", deleted)

	for _, c := range w.Result().Cookies() {
		assert.Empty(t, c.Value, "auth cookie %s must be cleared", c.Name)
		assert.Negative(t, c.MaxAge)
	}
}
