package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/loyalty_token_ledger/internal/apperrors"
	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loyalty_token_ledger/internal/core/ports/services"
	"github.com/SscSPs/loyalty_token_ledger/internal/dto"
	"github.com/SscSPs/loyalty_token_ledger/internal/handlers"
	"github.com/SscSPs/loyalty_token_ledger/internal/middleware"
	"github.com/SscSPs/loyalty_token_ledger/internal/platform/config"
	"github.com/SscSPs/loyalty_token_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var pts = domain.NewSymbol(4, "PTS")

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GetSupply(ctx context.Context, code string) (*domain.Asset, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockTokenService) GetStats(ctx context.Context, code string) (*domain.CurrencyStats, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyStats), args.Error(1)
}
func (m *MockTokenService) ListSymbols(ctx context.Context) ([]domain.SymbolEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SymbolEntry), args.Error(1)
}
func (m *MockTokenService) GetBalance(ctx context.Context, owner domain.Name, code string) (*domain.Asset, error) {
	args := m.Called(ctx, owner, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockTokenService) GetAccount(ctx context.Context, owner domain.Name, code string) (*domain.Account, error) {
	args := m.Called(ctx, owner, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockTokenService) Create(ctx context.Context, issuer domain.Name, maxSupply domain.Asset, info domain.StoreInfo) (*domain.CurrencyStats, error) {
	args := m.Called(ctx, issuer, maxSupply, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyStats), args.Error(1)
}
func (m *MockTokenService) Issue(ctx context.Context, to domain.Name, quantity domain.Asset, memo string) (*domain.CurrencyStats, error) {
	args := m.Called(ctx, to, quantity, memo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyStats), args.Error(1)
}
func (m *MockTokenService) Burn(ctx context.Context, owner domain.Name, value domain.Asset) (*domain.CurrencyStats, error) {
	args := m.Called(ctx, owner, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyStats), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock EscrowService ---
type MockEscrowService struct {
	mock.Mock
}

func (m *MockEscrowService) GetClaim(ctx context.Context, key domain.ClaimKey) (*domain.Claim, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockEscrowService) ListClaims(ctx context.Context, holder domain.Name, pageToken string, limit int) (*domain.ClaimPage, error) {
	args := m.Called(ctx, holder, pageToken, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimPage), args.Error(1)
}
func (m *MockEscrowService) AuditHolder(ctx context.Context, holder domain.Name) (*domain.HolderAudit, error) {
	args := m.Called(ctx, holder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HolderAudit), args.Error(1)
}
func (m *MockEscrowService) AllowClaim(ctx context.Context, from, to domain.Name, quantity domain.Asset) (*domain.Claim, error) {
	args := m.Called(ctx, from, to, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}
func (m *MockEscrowService) Claim(ctx context.Context, from, to domain.Name, quantity domain.Asset) (*domain.Account, error) {
	args := m.Called(ctx, from, to, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

var _ portssvc.EscrowSvcFacade = (*MockEscrowService)(nil)

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CleanState(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockAdminService) SweepState(ctx context.Context, codes []string, owners []domain.Name) (*domain.SweepReport, error) {
	args := m.Called(ctx, codes, owners)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SweepReport), args.Error(1)
}
func (m *MockAdminService) GetVersion(ctx context.Context) (*domain.VersionState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VersionState), args.Error(1)
}

var _ portssvc.AdminSvc = (*MockAdminService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	cfg        *config.Config
	mockToken  *MockTokenService
	mockEscrow *MockEscrowService
	mockAdmin  *MockAdminService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())

	suite.cfg = &config.Config{
		IsProduction: true,
		JWTSecret:    "test-secret-key-that-is-long-enough",
		JWTIssuer:    "ledger-test",
	}
	suite.mockToken = new(MockTokenService)
	suite.mockEscrow = new(MockEscrowService)
	suite.mockAdmin = new(MockAdminService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Token:  suite.mockToken,
		Escrow: suite.mockEscrow,
		Admin:  suite.mockAdmin,
	})
}

// token signs an identity proof for signer with the suite's secret.
func (suite *LedgerHandlerTestSuite) token(signer string) string {
	t, err := utils.GenerateJWT(signer, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return t
}

// do serves a request signed by the first signer and co-signed by the rest.
func (suite *LedgerHandlerTestSuite) do(method, path string, body any, signers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	for i, s := range signers {
		if i == 0 {
			req.Header.Set("Authorization", "Bearer "+suite.token(s))
		} else {
			req.Header.Add(middleware.CosignHeader, suite.token(s))
		}
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func signedBy(names ...domain.Name) any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		for _, n := range names {
			if !middleware.HasSigner(ctx, n) {
				return false
			}
		}
		return true
	})
}

func (suite *LedgerHandlerTestSuite) decode(w *httptest.ResponseRecorder, dst any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func stats(supply int64) *domain.CurrencyStats {
	return &domain.CurrencyStats{
		Supply:    domain.NewAsset(supply, pts),
		MaxSupply: domain.NewAsset(10000000000, pts),
		Issuer:    "issuer",
		Info:      domain.StoreInfo{Name: "Points"},
	}
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateToken_Success() {
	maxSupply := domain.NewAsset(10000000000, pts)
	suite.mockToken.On("Create", signedBy("ledger.admin"), domain.Name("issuer"), maxSupply, domain.StoreInfo{Name: "Points"}).
		Return(stats(0), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tokens", dto.CreateTokenRequest{
		Issuer:        "issuer",
		MaximumSupply: "1000000.0000 PTS",
		Name:          "Points",
	}, "ledger.admin")

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.StatsResponse
	suite.decode(w, &resp)
	suite.Equal("0.0000 PTS", resp.Supply)
	suite.Equal("1000000.0000 PTS", resp.MaxSupply)
	suite.Equal("4,PTS", resp.Symbol)
	suite.mockToken.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateToken_RequiresIdentityProof() {
	w := suite.do(http.MethodPost, "/api/v1/tokens", dto.CreateTokenRequest{Issuer: "issuer", MaximumSupply: "1.0 PTS"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/tokens", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.mockToken.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCreateToken_BindingValidation() {
	tests := []struct {
		name string
		req  dto.CreateTokenRequest
	}{
		{"bad issuer", dto.CreateTokenRequest{Issuer: "Issuer!", MaximumSupply: "1.0 PTS"}},
		{"bad supply", dto.CreateTokenRequest{Issuer: "issuer", MaximumSupply: "lots"}},
		{"missing supply", dto.CreateTokenRequest{Issuer: "issuer"}},
		{"bad url", dto.CreateTokenRequest{Issuer: "issuer", MaximumSupply: "1.0 PTS", URL: "not a url"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/tokens", tt.req, "ledger.admin")
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockToken.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestWriteErrorsMapToStatus() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: memo", apperrors.ErrMemoTooLong), http.StatusBadRequest},
		{"authority", fmt.Errorf("%w of issuer", apperrors.ErrMissingAuthority), http.StatusForbidden},
		{"not found", apperrors.ErrSymbolNotFound, http.StatusNotFound},
		{"duplicate", apperrors.ErrSymbolExists, http.StatusConflict},
		{"invariant", fmt.Errorf("%w: 1.0000 PTS remaining", apperrors.ErrSupplyExceeded), http.StatusUnprocessableEntity},
		{"storage", apperrors.NewAppError(http.StatusInternalServerError, "leveldb write failed", fmt.Errorf("disk")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockToken.On("Issue", mock.Anything, domain.Name("alice"), domain.NewAsset(100000, pts), "").
				Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/tokens/issue", dto.IssueRequest{To: "alice", Quantity: "10.0000 PTS"}, "issuer")
			suite.Equal(tt.status, w.Code)

			var body map[string]string
			suite.decode(w, &body)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to issue tokens", body["error"], "internal details must not leak")
			} else {
				suite.Equal(tt.err.Error(), body["error"])
			}
		})
	}
}

func (suite *LedgerHandlerTestSuite) TestBurn_Success() {
	suite.mockToken.On("Burn", signedBy("alice"), domain.Name("alice"), domain.NewAsset(50000, pts)).
		Return(stats(950000), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tokens/burn", dto.BurnRequest{Owner: "alice", Value: "5.0000 PTS"}, "alice")
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.StatsResponse
	suite.decode(w, &resp)
	suite.Equal("95.0000 PTS", resp.Supply)
}

func (suite *LedgerHandlerTestSuite) TestAllowClaim_CosignersBecomeSigners() {
	release := domain.NewAsset(-25000, pts)
	claim := &domain.Claim{
		ClaimKey: domain.ClaimKey{Holder: "alice", Beneficiary: "bob", Code: "PTS"},
		Quantity: domain.NewAsset(75000, pts),
		Payer:    "alice",
	}
	suite.mockEscrow.On("AllowClaim", signedBy("alice", "exchange"), domain.Name("alice"), domain.Name("bob"), release).
		Return(claim, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/claims/allow",
		dto.AllowClaimRequest{From: "alice", To: "bob", Quantity: "-2.5000 PTS"}, "alice", "exchange")

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ClaimResponse
	suite.decode(w, &resp)
	suite.Equal("7.5000 PTS", resp.Quantity)
	suite.Equal("bob", resp.Beneficiary)
	suite.mockEscrow.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAllowClaim_BadCosignTokenRejected() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/claims/allow", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Bearer "+suite.token("alice"))
	req.Header.Add(middleware.CosignHeader, "forged")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEscrow.AssertNotCalled(suite.T(), "AllowClaim", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestSettleClaim_NoClaim() {
	suite.mockEscrow.On("Claim", signedBy("bob", "exchange"), domain.Name("alice"), domain.Name("bob"), domain.NewAsset(10000, pts)).
		Return(nil, apperrors.ErrNoClaim).Once()

	w := suite.do(http.MethodPost, "/api/v1/claims/settle",
		dto.ClaimRequest{From: "alice", To: "bob", Quantity: "1.0000 PTS"}, "bob", "exchange")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestQueriesArePublic() {
	balance := domain.NewAsset(70000, pts)
	suite.mockToken.On("GetBalance", mock.Anything, domain.Name("alice"), "PTS").Return(&balance, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/alice/balances/PTS", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.BalanceResponse
	suite.decode(w, &resp)
	suite.Equal("alice", resp.Owner)
	suite.Equal("7.0000 PTS", resp.Quantity)
	suite.Equal("7.0000", resp.Amount)
}

func (suite *LedgerHandlerTestSuite) TestGetAccount_ShowsBlocked() {
	acc := &domain.Account{Owner: "alice", Balance: domain.NewAsset(100000, pts), Blocked: 30000, Payer: "alice"}
	suite.mockToken.On("GetAccount", mock.Anything, domain.Name("alice"), "PTS").Return(acc, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/alice/rows/PTS", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("10.0000 PTS", resp.Balance)
	suite.Equal("3.0000 PTS", resp.Blocked)
	suite.Equal("7.0000 PTS", resp.Spendable)
}

func (suite *LedgerHandlerTestSuite) TestGetSupply() {
	supply := domain.NewAsset(123456, pts)
	suite.mockToken.On("GetSupply", mock.Anything, "PTS").Return(&supply, nil).Once()
	suite.mockToken.On("GetSupply", mock.Anything, "NONE").Return(nil, apperrors.ErrSymbolNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/tokens/PTS/supply", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AssetResponse
	suite.decode(w, &resp)
	suite.Equal("12.3456 PTS", resp.Quantity)

	w = suite.do(http.MethodGet, "/api/v1/tokens/NONE/supply", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestListSymbols() {
	suite.mockToken.On("ListSymbols", mock.Anything).Return([]domain.SymbolEntry{{Symbol: pts}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tokens", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.SymbolResponse
	suite.decode(w, &resp)
	suite.Equal([]dto.SymbolResponse{{Code: "PTS", Precision: 4}}, resp)
}

func (suite *LedgerHandlerTestSuite) TestListClaims_Paging() {
	page := &domain.ClaimPage{
		Claims: []domain.Claim{{
			ClaimKey: domain.ClaimKey{Holder: "alice", Beneficiary: "bob", Code: "PTS"},
			Quantity: domain.NewAsset(10000, pts),
			Payer:    "alice",
		}},
		NextPageToken: "next",
	}
	suite.mockEscrow.On("ListClaims", mock.Anything, domain.Name("alice"), "prev", 1).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/claims/alice?limit=1&nextToken=prev", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ListClaimsResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Claims, 1)
	suite.Equal("1.0000 PTS", resp.Claims[0].Quantity)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/claims/alice?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetClaim() {
	key := domain.ClaimKey{Holder: "alice", Beneficiary: "bob", Code: "PTS"}
	suite.mockEscrow.On("GetClaim", mock.Anything, key).Return(&domain.Claim{ClaimKey: key, Quantity: domain.NewAsset(5, pts)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/claims/alice/bob/PTS", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClaimResponse
	suite.decode(w, &resp)
	suite.Equal("0.0005 PTS", resp.Quantity)
}

func (suite *LedgerHandlerTestSuite) TestAuditHolder() {
	audit := &domain.HolderAudit{Holder: "alice", Holdings: []domain.HoldingAudit{{
		Code:    "PTS",
		Balance: domain.NewAsset(100000, pts),
		Blocked: domain.NewAsset(20000, pts),
		Held:    domain.NewAsset(20000, pts),
		Claims:  2,
	}}}
	suite.mockEscrow.On("AuditHolder", mock.Anything, domain.Name("alice")).Return(audit, nil).Once()
	suite.mockEscrow.On("AuditHolder", mock.Anything, domain.Name("bob")).
		Return(nil, fmt.Errorf("%w: bob blocks 1.0000 PTS but claims hold 0.0000 PTS", apperrors.ErrInvariant)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/alice/escrow", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.HolderAuditResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Holdings, 1)
	suite.Equal("2.0000 PTS", resp.Holdings[0].Held)
	suite.Equal(2, resp.Holdings[0].Claims)

	w = suite.do(http.MethodGet, "/api/v1/accounts/bob/escrow", nil)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestAdminRoutes() {
	suite.mockAdmin.On("CleanState", signedBy("ledger.admin")).Return(nil).Once()
	suite.mockAdmin.On("SweepState", signedBy("ledger.admin"), []string{"PTS"}, []domain.Name{"alice"}).
		Return(&domain.SweepReport{Stats: 1, Symbols: 1, Accounts: 2, Claims: 3}, nil).Once()
	suite.mockAdmin.On("GetVersion", mock.Anything).Return(&domain.VersionState{Version: "1.0.0", Hash: "ab"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/cleanstate", nil, "ledger.admin")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/admin/sweep", dto.SweepStateRequest{Symbols: []string{"PTS"}, Owners: []string{"alice"}}, "ledger.admin")
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var report dto.SweepReportResponse
	suite.decode(w, &report)
	suite.Equal(dto.SweepReportResponse{Stats: 1, Symbols: 1, Accounts: 2, Claims: 3}, report)

	w = suite.do(http.MethodPost, "/api/v1/admin/sweep", dto.SweepStateRequest{Owners: []string{"Not A Name"}}, "ledger.admin")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/version", nil)
	suite.Equal(http.StatusOK, w.Code)
	var v dto.VersionResponse
	suite.decode(w, &v)
	suite.Equal("1.0.0", v.Version)

	suite.mockAdmin.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestActionDispatch() {
	suite.mockToken.On("Issue", signedBy("issuer"), domain.Name("bob"), domain.NewAsset(10000, pts), "hi").
		Return(stats(10000), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/actions/issue", dto.IssueRequest{To: "bob", Quantity: "1.0000 PTS", Memo: "hi"}, "issuer")
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPost, "/api/v1/actions/transfer", dto.IssueRequest{}, "issuer")
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.mockToken.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestHealthAndMetrics() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())

	w = suite.do(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// --- Run Test Suite ---
func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
