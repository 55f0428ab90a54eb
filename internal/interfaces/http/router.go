package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/views"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProjectUC     *workflow.ProjectUseCase
	TaskUC        *workflow.TaskUseCase
	ProcurementUC *workflow.ProcurementUseCase
	InvoiceUC     *workflow.InvoiceUseCase
	CommentUC     *workflow.CommentUseCase
	EmployeeUC    *workflow.EmployeeUseCase
	ViewUC        *views.ViewUseCase
	Translator    *Translator
	Log           zerolog.Logger
	CookieSecure  bool
}

// AppConfig configuración de Fiber para la API.
// Immutable es obligatorio: los use cases guardan c.Params en el almacén y, sin copia,
// esos strings apuntan al buffer que fasthttp reutiliza en la siguiente petición.
func AppConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	errs := errorResponder{log: deps.Log}
	rv := newRequestValidator()

	api := app.Group("/api", Localize(deps.Translator), RequestLogger(deps.Log))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, errs, rv, deps.CookieSecure)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (Bearer Token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)

	dashboardHandler := NewDashboardHandler(deps.ViewUC, errs)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)

	// Projects; /eligible antes de /:id
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.TaskUC, deps.CommentUC, errs, rv)
	projects := protected.Group("/projects")
	projects.Post("/", projectHandler.Create)
	projects.Get("/eligible", dashboardHandler.EligibleProjects)
	projects.Get("/:id", dashboardHandler.ProjectDetail)
	projects.Post("/:id/approve", projectHandler.Approve)
	projects.Post("/:id/reject", projectHandler.Reject)
	projects.Put("/:id/status/:status", projectHandler.Transition)
	projects.Put("/:id/progress", projectHandler.UpdateProgress)
	projects.Post("/:id/tasks", projectHandler.AddTask)
	projects.Post("/:id/comments", projectHandler.AddComment)

	protected.Put("/tasks/:id/status/:status", projectHandler.SetTaskStatus)

	// Procurement
	procurementHandler := NewProcurementHandler(deps.ProcurementUC, errs, rv)
	purchases := protected.Group("/purchase-requests")
	purchases.Post("/", procurementHandler.AddPurchaseRequest)
	purchases.Post("/:id/approve", procurementHandler.ApprovePurchaseRequest)
	purchases.Post("/:id/reject", procurementHandler.RejectPurchaseRequest)
	protected.Get("/suppliers", procurementHandler.ListSuppliers)
	protected.Post("/suppliers", procurementHandler.AddSupplier)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, errs, rv)
	invoices := protected.Group("/invoices")
	invoices.Post("/", invoiceHandler.Add)
	invoices.Post("/:id/paid", invoiceHandler.MarkPaid)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Employees (hr, master)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, errs, rv)
	protected.Get("/employees", employeeHandler.List)
	protected.Post("/employees", employeeHandler.Add)
}
