package services

import (
	"context"

	portsrepo "github.com/moneynest/money_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/moneynest/money_tracker_app/internal/core/ports/services"
	"github.com/moneynest/money_tracker_app/internal/repositories/kvjson"
)

// Container holds all the services and manages their dependencies.
type Container struct {
	Category       portssvc.CategorySvcFacade
	Ledger         portssvc.LedgerSvcFacade
	Budget         portssvc.BudgetSvcFacade
	Reconciliation portssvc.ReconciliationSvcFacade
	Reporting      portssvc.ReportingSvcFacade
	Security       portssvc.SecuritySvcFacade
}

// NewContainer wires repositories and services over the given KV store.
// The repositories load their collections from storage here, so the context
// carries the logger used for any load warnings.
func NewContainer(ctx context.Context, kv portsrepo.KVStore, opts ...BudgetServiceOption) *Container {
	accountRepo := kvjson.NewKVAccountRepository(ctx, kv)
	categoryRepo := kvjson.NewKVCategoryRepository(ctx, kv)
	txRepo := kvjson.NewKVTransactionRepository(ctx, kv)
	budgetRepo := kvjson.NewKVBudgetRepository(ctx, kv)

	container := &Container{}
	container.Category = NewCategoryService(categoryRepo)
	container.Ledger = NewLedgerService(accountRepo, txRepo, container.Category)
	container.Budget = NewBudgetService(budgetRepo, container.Category, opts...)
	container.Reconciliation = NewReconciliationService(container.Ledger, container.Budget)
	container.Reporting = NewReportingService(txRepo)
	container.Security = NewSecurityService(kv)
	return container
}
