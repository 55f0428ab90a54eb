package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/authz"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/views"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Proyectos-api/internal/interfaces/http"
)

// newTestServer API completa sobre el almacén en memoria con los usuarios de desarrollo.
func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	_, err := auth.SeedDevUsers(context.Background(), store, hasher, zerolog.Nop())
	require.NoError(t, err)

	translator, err := apphttp.NewTranslator("ar")
	require.NoError(t, err)

	authUC, err := auth.NewAuthUseCase(store.Users(), hasher, auth.JWTConfig{Secret: "router-test", ExpMinutes: 30, Issuer: "test"}, zerolog.Nop())
	require.NoError(t, err)

	az := authz.MustNew()
	opts := workflow.Options{Authz: az, Log: zerolog.Nop()}
	pdfGenerator, err := pdf.NewMarotoPDFGenerator("Test", pdf.UnicodeFont{})
	require.NoError(t, err)
	app := fiber.New(apphttp.AppConfig("test"))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		ProjectUC:     workflow.NewProjectUseCase(store.Projects(), opts),
		TaskUC:        workflow.NewTaskUseCase(store.Tasks(), store.Projects(), store.Users(), opts),
		ProcurementUC: workflow.NewProcurementUseCase(store.PurchaseRequests(), store.Suppliers(), store.Projects(), opts),
		InvoiceUC:     workflow.NewInvoiceUseCase(store.Invoices(), store.Projects(), pdfGenerator, opts),
		CommentUC:     workflow.NewCommentUseCase(store.Comments(), store.Projects(), opts),
		EmployeeUC:    workflow.NewEmployeeUseCase(store.Users(), hasher, opts),
		ViewUC: views.NewViewUseCase(views.Repositories{
			Users:            store.Users(),
			Projects:         store.Projects(),
			Tasks:            store.Tasks(),
			PurchaseRequests: store.PurchaseRequests(),
			Invoices:         store.Invoices(),
			Comments:         store.Comments(),
		}, az, zerolog.Nop()),
		Translator: translator,
		Log:        zerolog.Nop(),
	})
	return app
}

type call struct {
	method string
	path   string
	token  string
	lang   string
	body   any
}

func send(t *testing.T, app *fiber.App, c call) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if c.body != nil {
		raw, err := json.Marshal(c.body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(c.method, c.path, reader)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.lang != "" {
		req.Header.Set("Accept-Language", c.lang)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

type actionBody[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: dto.LoginRequest{Username: username, Password: password}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	return decode[actionBody[dto.LoginResponse]](t, raw).Data.Token
}

func createProject(t *testing.T, app *fiber.App, token, code string) dto.ProjectResponse {
	t.Helper()
	resp, raw := send(t, app, call{
		method: http.MethodPost, path: "/api/projects", token: token,
		body: map[string]any{"project_code": code, "name": "Proyecto " + code, "estimated_cost": "1500.50", "start_date": "2024-05-01"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	return decode[actionBody[dto.ProjectResponse]](t, raw).Data
}

func TestLogin_MensajeLocalizado(t *testing.T) {
	app := newTestServer(t)

	cases := map[string]string{
		"en":             "Welcome, sales",
		"es-CO,es;q=0.9": "Bienvenido, sales",
		"":               "مرحباً sales!",
	}
	for lang, want := range cases {
		resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/auth/login", lang: lang, body: dto.LoginRequest{Username: "sales", Password: "sales123"}})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, want, decode[actionBody[dto.LoginResponse]](t, raw).Message, "Accept-Language=%q", lang)
	}
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := newTestServer(t)

	respPass, rawPass := send(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: dto.LoginRequest{Username: "sales", Password: "x"}})
	respUser, rawUser := send(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: dto.LoginRequest{Username: "nadie", Password: "x"}})

	assert.Equal(t, http.StatusUnauthorized, respPass.StatusCode)
	assert.Equal(t, respPass.StatusCode, respUser.StatusCode)
	assert.Equal(t, string(rawPass), string(rawUser))
}

func TestLogin_CuerpoInvalido(t *testing.T) {
	app := newTestServer(t)

	resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: map[string]string{"username": "sales"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "required", body.Fields["password"])
}

func TestLogin_FijaCookieDeSesion(t *testing.T) {
	app := newTestServer(t)

	resp, _ := send(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: dto.LoginRequest{Username: "hr", Password: "hr123"}})
	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.SessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: cookie.Value})
	me, err := app.Test(req, -1)
	require.NoError(t, err)
	defer me.Body.Close()
	assert.Equal(t, http.StatusOK, me.StatusCode)
}

func TestRutaProtegida_SinSesion(t *testing.T) {
	app := newTestServer(t)

	resp, raw := send(t, app, call{method: http.MethodGet, path: "/api/dashboard"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.LoginPath, decode[dto.ErrorResponse](t, raw).Redirect)
}

// Ventas crea, gerencia aprueba y operaciones pide material para el proyecto aprobado.
func TestFlujo_VentasGerenciaOperaciones(t *testing.T) {
	app := newTestServer(t)
	salesTok := login(t, app, "sales", "sales123")
	managerTok := login(t, app, "manager", "manager123")
	opsTok := login(t, app, "operations", "operations123")

	project := createProject(t, app, salesTok, "P-100")
	assert.Equal(t, "pending_approval", project.Status)
	assert.Nil(t, project.ApprovedBy)

	// gerencia solo ve pendientes
	_, raw := send(t, app, call{method: http.MethodGet, path: "/api/dashboard", token: managerTok})
	dash := decode[dto.DashboardDTO](t, raw)
	require.Len(t, dash.Projects, 1)
	assert.Equal(t, project.ID, dash.Projects[0].ID)

	resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/projects/" + project.ID + "/approve", token: managerTok, lang: "en"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	approved := decode[actionBody[dto.ProjectResponse]](t, raw)
	assert.Equal(t, "project Proyecto P-100 approved", approved.Message)
	assert.Equal(t, "approved", approved.Data.Status)
	require.NotNil(t, approved.Data.ApprovedBy)

	// ya aprobado, desaparece del dashboard de gerencia
	_, raw = send(t, app, call{method: http.MethodGet, path: "/api/dashboard", token: managerTok})
	assert.Empty(t, decode[dto.DashboardDTO](t, raw).Projects)

	// operaciones lo ve como elegible para compras
	_, raw = send(t, app, call{method: http.MethodGet, path: "/api/projects/eligible?purpose=purchase", token: opsTok})
	eligible := decode[[]dto.ProjectResponse](t, raw)
	require.Len(t, eligible, 1)
	assert.Equal(t, project.ID, eligible[0].ID)

	resp, raw = send(t, app, call{
		method: http.MethodPost, path: "/api/purchase-requests", token: opsTok,
		body: map[string]any{"project_id": project.ID, "description": "cemento", "estimated_cost": "300"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	pr := decode[actionBody[dto.PurchaseRequestResponse]](t, raw).Data
	assert.Equal(t, "pending", pr.Status)

	_, raw = send(t, app, call{method: http.MethodGet, path: "/api/dashboard", token: opsTok})
	opsDash := decode[dto.DashboardDTO](t, raw)
	require.Len(t, opsDash.PurchaseRequests, 1)
	assert.Equal(t, pr.ID, opsDash.PurchaseRequests[0].ID)
}

func TestCrearProyecto_RolSinPermiso_403(t *testing.T) {
	app := newTestServer(t)
	opsTok := login(t, app, "operations", "operations123")
	masterTok := login(t, app, "master", "admin123")

	resp, raw := send(t, app, call{
		method: http.MethodPost, path: "/api/projects", token: opsTok, lang: "es",
		body: map[string]any{"project_code": "X-1", "name": "No permitido"},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "no tiene permiso para crear proyectos", body.Message)

	_, raw = send(t, app, call{method: http.MethodGet, path: "/api/dashboard/stats", token: masterTok})
	assert.Equal(t, 0, decode[dto.DashboardStatsDTO](t, raw).Total)
}

func TestVentas_SoloVeSusProyectos(t *testing.T) {
	app := newTestServer(t)
	salesTok := login(t, app, "sales", "sales123")
	masterTok := login(t, app, "master", "admin123")

	a := createProject(t, app, salesTok, "A")
	b := createProject(t, app, salesTok, "B")
	createProject(t, app, masterTok, "C")

	_, raw := send(t, app, call{method: http.MethodGet, path: "/api/dashboard", token: salesTok})
	dash := decode[dto.DashboardDTO](t, raw)
	ids := []string{}
	for _, p := range dash.Projects {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
	assert.Empty(t, dash.Invoices)
}

func TestProyecto_NoExiste_404(t *testing.T) {
	app := newTestServer(t)
	tok := login(t, app, "master", "admin123")

	resp, raw := send(t, app, call{method: http.MethodGet, path: "/api/projects/no-existe", token: tok})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestTransicion_EstadoInvalido_422(t *testing.T) {
	app := newTestServer(t)
	tok := login(t, app, "master", "admin123")
	p := createProject(t, app, tok, "S-1")

	resp, _ := send(t, app, call{method: http.MethodPut, path: "/api/projects/" + p.ID + "/status/archived", token: tok})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, raw := send(t, app, call{method: http.MethodPut, path: "/api/projects/" + p.ID + "/status/in_progress", token: tok, lang: "es"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Contains(t, decode[actionBody[dto.ProjectResponse]](t, raw).Message, "en ejecución")
}

func TestComentarioEnBlanco_NoCrea(t *testing.T) {
	app := newTestServer(t)
	tok := login(t, app, "master", "admin123")
	p := createProject(t, app, tok, "K-1")

	resp, _ := send(t, app, call{method: http.MethodPost, path: "/api/projects/" + p.ID + "/comments", token: tok, body: dto.CreateCommentRequest{CommentText: "   "}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, app, call{method: http.MethodPost, path: "/api/projects/" + p.ID + "/comments", token: tok, body: dto.CreateCommentRequest{CommentText: "listo"}})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	_, raw := send(t, app, call{method: http.MethodGet, path: "/api/projects/" + p.ID, token: tok})
	detail := decode[dto.ProjectDetailDTO](t, raw)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "listo", detail.Comments[0].CommentText)
}

func TestFactura_PDF(t *testing.T) {
	app := newTestServer(t)
	masterTok := login(t, app, "master", "admin123")
	financeTok := login(t, app, "finance", "finance123")
	p := createProject(t, app, masterTok, "F-1")

	resp, raw := send(t, app, call{
		method: http.MethodPost, path: "/api/invoices", token: financeTok,
		body: map[string]any{"project_id": p.ID, "invoice_type": "anticipo", "amount": "750.25"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	inv := decode[actionBody[dto.InvoiceResponse]](t, raw).Data

	resp, raw = send(t, app, call{method: http.MethodGet, path: "/api/invoices/" + inv.ID + "/pdf", token: financeTok})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura-F-1-"+inv.ID+".pdf")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestEmpleados_SoloRRHH(t *testing.T) {
	app := newTestServer(t)
	hrTok := login(t, app, "hr", "hr123")
	salesTok := login(t, app, "sales", "sales123")

	resp, _ := send(t, app, call{method: http.MethodGet, path: "/api/employees", token: salesTok})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	newEmp := dto.CreateEmployeeRequest{Username: "nuevo", Password: "secreto1", Role: "finance", FullName: "Empleado Nuevo"}
	resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/employees", token: hrTok, body: newEmp})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	resp, _ = send(t, app, call{method: http.MethodPost, path: "/api/employees", token: hrTok, body: newEmp})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	login(t, app, "nuevo", "secreto1")
}

// Tareas y comentarios quedan en su proyecto aunque lleguen peticiones posteriores a otro.
func TestHijos_NoCambianDeProyecto(t *testing.T) {
	app := newTestServer(t)
	tok := login(t, app, "master", "admin123")
	a := createProject(t, app, tok, "PA-1")
	b := createProject(t, app, tok, "PB-1")

	resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/projects/" + a.ID + "/tasks", token: tok, body: dto.CreateTaskRequest{Name: "excavación"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	resp, raw = send(t, app, call{method: http.MethodPost, path: "/api/projects/" + a.ID + "/comments", token: tok, body: dto.CreateCommentRequest{CommentText: "inicio de obra"}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	for i := 0; i < 5; i++ {
		send(t, app, call{method: http.MethodGet, path: "/api/projects/" + b.ID, token: tok})
		send(t, app, call{method: http.MethodPut, path: "/api/projects/" + b.ID + "/status/on_hold", token: tok})
	}

	_, raw = send(t, app, call{method: http.MethodGet, path: "/api/projects/" + a.ID, token: tok})
	detailA := decode[dto.ProjectDetailDTO](t, raw)
	require.Len(t, detailA.Tasks, 1)
	require.Len(t, detailA.Comments, 1)
	assert.Equal(t, a.ID, detailA.Tasks[0].ProjectID)
	assert.Equal(t, a.ID, detailA.Comments[0].ProjectID)

	_, raw = send(t, app, call{method: http.MethodGet, path: "/api/projects/" + b.ID, token: tok})
	detailB := decode[dto.ProjectDetailDTO](t, raw)
	assert.Empty(t, detailB.Tasks)
	assert.Empty(t, detailB.Comments)
}

func TestAppConfig_Inmutable(t *testing.T) {
	assert.True(t, apphttp.AppConfig("x").Immutable)
}

func TestPermisoDenegado_MensajePorAccion(t *testing.T) {
	app := newTestServer(t)
	salesTok := login(t, app, "sales", "sales123")
	p := createProject(t, app, salesTok, "P-403")

	resp, raw := send(t, app, call{method: http.MethodPost, path: "/api/projects/" + p.ID + "/approve", token: salesTok})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ليس لديك صلاحية لاعتماد المشاريع", decode[dto.ErrorResponse](t, raw).Message)

	resp, raw = send(t, app, call{method: http.MethodPost, path: "/api/projects/" + p.ID + "/reject", token: salesTok, lang: "en"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "you are not allowed to reject projects", decode[dto.ErrorResponse](t, raw).Message)

	// Sin texto propio para la acción se usa el genérico.
	resp, raw = send(t, app, call{method: http.MethodGet, path: "/api/employees", token: salesTok})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ليس لديك صلاحية لتنفيذ هذا الإجراء", decode[dto.ErrorResponse](t, raw).Message)
}
