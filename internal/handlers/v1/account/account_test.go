package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flowfox-labs/finance-server/internal/operator/actions"
	"github.com/flowfox-labs/finance-server/internal/storage/account"
)

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// mockAccountLister is a mock for accountLister.
type mockAccountLister struct {
	mock.Mock
}

func (m *mockAccountLister) ListAccounts(ctx context.Context) ([]account.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.Account), args.Error(1)
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_Defaults(t *testing.T) {
	input := &CreateAccountInput{Body: CreateAccountBody{Name: "Cash"}}

	action, err := parseCreateAccountInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "Cash", action.Name)
	assert.Equal(t, account.TypeBank, action.Type)
	assert.True(t, action.StartingBalance.IsZero())
}

func TestParseCreateAccountInput_ExplicitValues(t *testing.T) {
	input := &CreateAccountInput{Body: CreateAccountBody{
		Name:            "Wallet",
		Type:            account.TypeWallet,
		StartingBalance: "250.75",
	}}

	action, err := parseCreateAccountInput(input)
	assert.NoError(t, err)
	assert.Equal(t, account.TypeWallet, action.Type)
	assert.True(t, action.StartingBalance.Equal(decimal.RequireFromString("250.75")))
}

func TestParseCreateAccountInput_BadBalance(t *testing.T) {
	input := &CreateAccountInput{Body: CreateAccountBody{
		Name:            "Wallet",
		StartingBalance: "lots",
	}}

	_, err := parseCreateAccountInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateAccount)
		return ok && create.Name == "Checking" && create.Type == account.TypeBank
	})).Return(nil)

	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{Name: "Checking", Type: account.TypeBank})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateAccount_OperatorError(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, api := humatest.New(t)
	NewCreateAccountHandler(mockOp).Register(api)

	resp := api.Post("/v1/account", CreateAccountBody{Name: "Checking", Type: account.TypeBank})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListAccounts(t *testing.T) {
	mockSvc := new(mockAccountLister)
	mockSvc.On("ListAccounts", mock.Anything).Return([]account.Account{{
		ID:              1,
		Name:            "Checking",
		Type:            account.TypeBank,
		StartingBalance: decimal.RequireFromString("2000"),
		CreatedAt:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}}, nil)

	_, api := humatest.New(t)
	NewListAccountsHandler(mockSvc).Register(api)

	resp := api.Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	assert.Equal(t, "Checking", body.Accounts[0].Name)
	assert.Equal(t, "2000", body.Accounts[0].StartingBalance)
}
