package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/authz"
	"github.com/jhoicas/Proyectos-api/internal/application/views"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Proyectos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Proyectos-api/internal/interfaces/http"
	"github.com/jhoicas/Proyectos-api/pkg/config"
	"github.com/jhoicas/Proyectos-api/pkg/logger"
)

// storage repositorios del driver elegido en STORAGE_DRIVER.
type storage struct {
	users     repository.UserRepository
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	purchases repository.PurchaseRequestRepository
	suppliers repository.SupplierRepository
	invoices  repository.InvoiceRepository
	comments  repository.CommentRepository
	tx        auth.UserTxRunner
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &storage{
			users:     store.Users(),
			projects:  store.Projects(),
			tasks:     store.Tasks(),
			purchases: store.PurchaseRequests(),
			suppliers: store.Suppliers(),
			invoices:  store.Invoices(),
			comments:  store.Comments(),
			tx:        store,
			close:     func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		users:     postgres.NewUserRepository(pool),
		projects:  postgres.NewProjectRepository(pool),
		tasks:     postgres.NewTaskRepository(pool),
		purchases: postgres.NewPurchaseRequestRepository(pool),
		suppliers: postgres.NewSupplierRepository(pool),
		invoices:  postgres.NewInvoiceRepository(pool),
		comments:  postgres.NewCommentRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Bool("strict_transitions", cfg.Workflow.StrictTransitions).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.close()

	hasher := auth.NewPasswordHasher(bcrypt.DefaultCost)

	// Cuentas de desarrollo: nunca en producción
	if cfg.App.SeedDevUsers && !cfg.App.IsProduction() {
		if _, err := auth.SeedDevUsers(ctx, store.tx, hasher, log.Component("seed")); err != nil {
			log.Fatal().Err(err).Msg("sembrar usuarios de desarrollo")
		}
	}

	az, err := authz.New()
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de permisos")
	}
	opts := workflow.Options{
		Authz:  az,
		Guards: policy.Guards{Strict: cfg.Workflow.StrictTransitions},
		Log:    log.Component("workflow"),
	}

	authUC, err := auth.NewAuthUseCase(store.users, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))
	if err != nil {
		log.Fatal().Err(err).Msg("caso de uso de auth")
	}

	// PDF de facturas de proyecto
	pdfGenerator, err := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, infrapdf.UnicodeFont{
		Family:  cfg.PDF.FontFamily,
		Regular: cfg.PDF.FontRegular,
		Bold:    cfg.PDF.FontBold,
	})
	if err != nil {
		log.Warn().Err(err).Msg("fuente del PDF no disponible, se usa helvetica sin soporte árabe")
		pdfGenerator, _ = infrapdf.NewMarotoPDFGenerator(cfg.App.Name, infrapdf.UnicodeFont{})
	}

	translator, err := httpRouter.NewTranslator(cfg.I18n.DefaultLang)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de mensajes")
	}

	app := fiber.New(httpRouter.AppConfig(cfg.App.Name))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); cfg.HTTP.SwaggerFile != "" && err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Proyectos API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProjectUC:     workflow.NewProjectUseCase(store.projects, opts),
		TaskUC:        workflow.NewTaskUseCase(store.tasks, store.projects, store.users, opts),
		ProcurementUC: workflow.NewProcurementUseCase(store.purchases, store.suppliers, store.projects, opts),
		InvoiceUC:     workflow.NewInvoiceUseCase(store.invoices, store.projects, pdfGenerator, opts),
		CommentUC:     workflow.NewCommentUseCase(store.comments, store.projects, opts),
		EmployeeUC:    workflow.NewEmployeeUseCase(store.users, hasher, opts),
		ViewUC: views.NewViewUseCase(views.Repositories{
			Users:            store.users,
			Projects:         store.projects,
			Tasks:            store.tasks,
			PurchaseRequests: store.purchases,
			Invoices:         store.invoices,
			Comments:         store.comments,
		}, az, log.Component("views")),
		Translator:   translator,
		Log:          log.Component("http"),
		CookieSecure: cfg.HTTP.CookieSecure,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
