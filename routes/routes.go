package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"p9e.in/sparkle/handlers"
	"p9e.in/sparkle/middleware"
)

// RegisterRoutes sets up all application routes against the given database
// handle.
func RegisterRoutes(db *gorm.DB) http.Handler {
	r := mux.NewRouter()

	// The browser client addresses everything under /api.
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestID)

	api.HandleFunc("/health", handlers.Health).Methods("GET")

	// Cleaning Reports
	reports := handlers.NewReportHandler(db)
	registerCRUDRoutes(api, "/reports", "{id:[0-9]+}", crudHandlers{
		getAll: reports.GetAll,
		create: reports.Create,
		getOne: reports.GetOne,
		update: reports.Update,
		delete: reports.Delete,
	})

	// Invoices
	invoices := handlers.NewInvoiceHandler(db)
	registerCRUDRoutes(api, "/invoices", "{id:[0-9]+}", crudHandlers{
		getAll: invoices.GetAll,
		create: invoices.Create,
		getOne: invoices.GetOne,
		update: invoices.Update,
		delete: invoices.Delete,
	})

	// Bank Accounts (string ids)
	accounts := handlers.NewBankAccountHandler(db)
	registerCRUDRoutes(api, "/bank-accounts", "{id}", crudHandlers{
		getAll: accounts.GetAll,
		create: accounts.Create,
		getOne: accounts.GetOne,
		update: accounts.Update,
		delete: accounts.Delete,
	})

	// Site Presets (no update; ids never leave the server, so no get-one)
	presets := handlers.NewPresetHandler(db)
	registerCRUDRoutes(api, "/presets", "{id:[0-9]+}", crudHandlers{
		getAll: presets.GetAll,
		create: presets.Create,
		delete: presets.Delete,
	})

	// Bulk reconciliation
	sync := handlers.NewSyncHandler(db)
	api.HandleFunc("/sync", sync.Sync).Methods("POST")

	// Invoice ledger downloads
	export := handlers.NewExportHandler(db)
	api.HandleFunc("/invoices/export/excel", export.Excel).Methods("GET")
	api.HandleFunc("/invoices/export/csv", export.CSV).Methods("GET")

	return r
}

// crudHandlers holds the handlers for one CRUD resource.
type crudHandlers struct {
	getAll http.HandlerFunc
	create http.HandlerFunc
	getOne http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

// registerCRUDRoutes registers standard CRUD routes for a resource.
// idPattern is the mux variable for the item routes, constrained to digits
// for server-generated integer keys.
func registerCRUDRoutes(router *mux.Router, path, idPattern string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")

	item := path + "/" + idPattern
	if h.getOne != nil {
		router.HandleFunc(item, h.getOne).Methods("GET")
	}
	if h.update != nil {
		router.HandleFunc(item, h.update).Methods("PUT")
	}
	router.HandleFunc(item, h.delete).Methods("DELETE")
}
