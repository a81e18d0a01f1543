package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/flowfox-labs/finance-server/internal/handlers/v1/account"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/admin"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/budget"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/category"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/report"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/status"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/transaction"
	"github.com/flowfox-labs/finance-server/internal/handlers/v1/transfer"
	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator"
	"github.com/flowfox-labs/finance-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("finance-server", "1.0.0")
	restAPI := humago.New(mux, humaConfig)
	restAPI.UseMiddleware(logging.HumaWrapper(r.Logger))

	account.NewCreateAccountHandler(r.Operator).Register(restAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(restAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(restAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(restAPI)
	category.NewDeleteCategoryHandler(r.Operator).Register(restAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(restAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(restAPI)
	transaction.NewEditTransactionsHandler(r.Operator).Register(restAPI)

	budget.NewUpsertBudgetHandler(r.Operator).Register(restAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(restAPI)

	report.NewSummaryHandler(r.Service.Report).Register(restAPI)
	report.NewBreakdownHandler(r.Service.Report).Register(restAPI)
	report.NewCashflowHandler(r.Service.Report).Register(restAPI)
	report.NewBudgetVsActualHandler(r.Service.Report).Register(restAPI)

	transfer.NewImportTransactionsHandler(r.Operator).Register(restAPI)

	admin.NewWipeDataHandler(r.Operator).Register(restAPI)

	// Raw CSV downloads stay outside the JSON API.
	exportHandler := transfer.NewExportHandler(r.Service.Transfer)
	mux.HandleFunc("GET /v1/export/{collection}", logging.LoggingWrapper("Export", r.Logger, exportHandler.Handler))

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
