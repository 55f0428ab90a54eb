package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// LocalPrinter key de c.Locals con el *message.Printer de la petición.
const LocalPrinter = "printer"

// Claves de mensajes. El texto traducido vive en el catálogo.
const (
	msgUnauthenticated    = "error.unauthenticated"
	msgForbidden          = "error.forbidden"
	msgNotFound           = "error.not_found"
	msgInvalidStatus      = "error.invalid_status"
	msgInvalidCredentials = "error.invalid_credentials"
	msgInvalidInput       = "error.invalid_input"
	msgInvalidBody        = "error.invalid_body"
	msgDuplicate          = "error.duplicate"
	msgInvalidTransition  = "error.invalid_transition"
	msgInternal           = "error.internal"

	msgWelcome         = "auth.welcome"
	msgLoggedOut       = "auth.logged_out"
	msgProjectCreated  = "project.created"
	msgProjectApproved = "project.approved"
	msgProjectRejected = "project.rejected"
	msgProjectStatus   = "project.status_changed"
	msgProgress        = "project.progress_updated"
	msgTaskCreated     = "task.created"
	msgTaskStatus      = "task.status_changed"
	msgCommentAdded    = "comment.added"
	msgPurchaseCreated = "purchase.created"
	msgPurchaseApprove = "purchase.approved"
	msgPurchaseReject  = "purchase.rejected"
	msgSupplierCreated = "supplier.created"
	msgInvoiceCreated  = "invoice.created"
	msgInvoicePaid     = "invoice.paid"
	msgEmployeeCreated = "employee.created"
)

var messagesAR = map[string]string{
	msgUnauthenticated:    "يرجى تسجيل الدخول أولاً",
	msgForbidden:          "ليس لديك صلاحية لتنفيذ هذا الإجراء",
	msgNotFound:           "العنصر غير موجود",
	msgInvalidStatus:      "حالة غير صحيحة",
	msgInvalidCredentials: "اسم المستخدم أو كلمة المرور غير صحيحة",
	msgInvalidInput:       "بيانات غير صالحة",
	msgInvalidBody:        "تعذر قراءة الطلب",
	msgDuplicate:          "العنصر موجود مسبقاً",
	msgInvalidTransition:  "لا يمكن تغيير الحالة من الحالة الحالية",
	msgInternal:           "حدث خطأ غير متوقع",
	msgWelcome:            "مرحباً %s!",
	msgLoggedOut:          "تم تسجيل الخروج بنجاح",
	msgProjectCreated:     "تم إضافة المشروع بنجاح! في انتظار الاعتماد",
	msgProjectApproved:    "تم اعتماد المشروع: %s",
	msgProjectRejected:    "تم رفض المشروع: %s",
	msgProjectStatus:      "تم تحديث حالة المشروع إلى: %s",
	msgProgress:           "تم تحديث نسبة الإنجاز",
	msgTaskCreated:        "تمت إضافة المهمة بنجاح",
	msgTaskStatus:         "تم تحديث حالة المهمة",
	msgCommentAdded:       "تمت إضافة التعليق",
	msgPurchaseCreated:    "تم إضافة طلب الشراء بنجاح!",
	msgPurchaseApprove:    "تم اعتماد طلب الشراء",
	msgPurchaseReject:     "تم رفض طلب الشراء",
	msgSupplierCreated:    "تمت إضافة المورد بنجاح",
	msgInvoiceCreated:     "تم إضافة الفاتورة بنجاح!",
	msgInvoicePaid:        "تم تحديث حالة الفاتورة إلى: مدفوعة",
	msgEmployeeCreated:    "تمت إضافة الموظف بنجاح",
	"status.in_progress":  "قيد التنفيذ",
	"status.on_hold":      "متوقف",
	"status.completed":    "مكتمل",
	"status.cancelled":    "ملغي",

	"forbidden.project.create":           "ليس لديك صلاحية لإضافة مشاريع",
	"forbidden.project.approve":          "ليس لديك صلاحية لاعتماد المشاريع",
	"forbidden.project.reject":           "ليس لديك صلاحية لرفض المشاريع",
	"forbidden.purchase_request.create":  "ليس لديك صلاحية لإضافة طلبات شراء",
	"forbidden.purchase_request.approve": "ليس لديك صلاحية لاعتماد طلبات الشراء",
	"forbidden.purchase_request.reject":  "ليس لديك صلاحية لرفض طلبات الشراء",
	"forbidden.invoice.create":           "ليس لديك صلاحية لإضافة فواتير",
	"forbidden.invoice.mark_paid":        "ليس لديك صلاحية لتحديث الفواتير",
}

var messagesES = map[string]string{
	msgUnauthenticated:    "inicie sesión para continuar",
	msgForbidden:          "no tiene permiso para realizar esta acción",
	msgNotFound:           "recurso no encontrado",
	msgInvalidStatus:      "estado no válido",
	msgInvalidCredentials: "usuario o contraseña incorrectos",
	msgInvalidInput:       "datos inválidos",
	msgInvalidBody:        "cuerpo inválido",
	msgDuplicate:          "el recurso ya existe",
	msgInvalidTransition:  "no se puede cambiar el estado desde el estado actual",
	msgInternal:           "error interno",
	msgWelcome:            "Bienvenido, %s",
	msgLoggedOut:          "sesión cerrada correctamente",
	msgProjectCreated:     "proyecto creado, pendiente de aprobación",
	msgProjectApproved:    "proyecto %s aprobado",
	msgProjectRejected:    "proyecto %s rechazado",
	msgProjectStatus:      "estado del proyecto cambiado a %s",
	msgProgress:           "avance actualizado",
	msgTaskCreated:        "tarea agregada",
	msgTaskStatus:         "estado de la tarea actualizado",
	msgCommentAdded:       "comentario agregado",
	msgPurchaseCreated:    "solicitud de compra enviada",
	msgPurchaseApprove:    "solicitud de compra aprobada",
	msgPurchaseReject:     "solicitud de compra rechazada",
	msgSupplierCreated:    "proveedor registrado",
	msgInvoiceCreated:     "factura creada",
	msgInvoicePaid:        "factura marcada como pagada",
	msgEmployeeCreated:    "empleado registrado",
	"status.in_progress":  "en ejecución",
	"status.on_hold":      "en pausa",
	"status.completed":    "completado",
	"status.cancelled":    "cancelado",

	"forbidden.project.create":           "no tiene permiso para crear proyectos",
	"forbidden.project.approve":          "no tiene permiso para aprobar proyectos",
	"forbidden.project.reject":           "no tiene permiso para rechazar proyectos",
	"forbidden.purchase_request.create":  "no tiene permiso para crear solicitudes de compra",
	"forbidden.purchase_request.approve": "no tiene permiso para aprobar solicitudes de compra",
	"forbidden.purchase_request.reject":  "no tiene permiso para rechazar solicitudes de compra",
	"forbidden.invoice.create":           "no tiene permiso para crear facturas",
	"forbidden.invoice.mark_paid":        "no tiene permiso para actualizar facturas",
}

var messagesEN = map[string]string{
	msgUnauthenticated:    "please log in first",
	msgForbidden:          "you are not allowed to perform this action",
	msgNotFound:           "not found",
	msgInvalidStatus:      "invalid status",
	msgInvalidCredentials: "invalid username or password",
	msgInvalidInput:       "invalid input",
	msgInvalidBody:        "invalid request body",
	msgDuplicate:          "already exists",
	msgInvalidTransition:  "the status cannot change from its current value",
	msgInternal:           "internal error",
	msgWelcome:            "Welcome, %s",
	msgLoggedOut:          "logged out",
	msgProjectCreated:     "project created and awaiting approval",
	msgProjectApproved:    "project %s approved",
	msgProjectRejected:    "project %s rejected",
	msgProjectStatus:      "project status changed to %s",
	msgProgress:           "progress updated",
	msgTaskCreated:        "task added",
	msgTaskStatus:         "task status updated",
	msgCommentAdded:       "comment added",
	msgPurchaseCreated:    "purchase request submitted",
	msgPurchaseApprove:    "purchase request approved",
	msgPurchaseReject:     "purchase request rejected",
	msgSupplierCreated:    "supplier added",
	msgInvoiceCreated:     "invoice created",
	msgInvoicePaid:        "invoice marked as paid",
	msgEmployeeCreated:    "employee added",
	"status.in_progress":  "in progress",
	"status.on_hold":      "on hold",
	"status.completed":    "completed",
	"status.cancelled":    "cancelled",

	"forbidden.project.create":           "you are not allowed to add projects",
	"forbidden.project.approve":          "you are not allowed to approve projects",
	"forbidden.project.reject":           "you are not allowed to reject projects",
	"forbidden.purchase_request.create":  "you are not allowed to add purchase requests",
	"forbidden.purchase_request.approve": "you are not allowed to approve purchase requests",
	"forbidden.purchase_request.reject":  "you are not allowed to reject purchase requests",
	"forbidden.invoice.create":           "you are not allowed to add invoices",
	"forbidden.invoice.mark_paid":        "you are not allowed to update invoices",
}

// Translator elige el idioma de cada petición a partir de Accept-Language.
type Translator struct {
	cat     *catalog.Builder
	matcher language.Matcher
	tags    []language.Tag
}

// NewTranslator construye el catálogo ar/es/en. defaultLang se usa cuando
// Accept-Language no coincide con ninguno; valores desconocidos caen en árabe.
func NewTranslator(defaultLang string) (*Translator, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		def = language.Arabic
	}
	cat := catalog.NewBuilder(catalog.Fallback(def))
	for tag, msgs := range map[language.Tag]map[string]string{
		language.Arabic:  messagesAR,
		language.Spanish: messagesES,
		language.English: messagesEN,
	} {
		for key, text := range msgs {
			if err := cat.SetString(tag, key, text); err != nil {
				return nil, err
			}
		}
	}

	tags := []language.Tag{language.Arabic, language.Spanish, language.English}
	for i, t := range tags {
		if base, _ := t.Base(); sameBase(base, def) {
			tags[0], tags[i] = tags[i], tags[0]
			break
		}
	}
	return &Translator{cat: cat, matcher: language.NewMatcher(tags), tags: tags}, nil
}

func sameBase(b language.Base, t language.Tag) bool {
	other, _ := t.Base()
	return b == other
}

// Printer devuelve el printer para el valor de Accept-Language.
func (t *Translator) Printer(acceptLanguage string) *message.Printer {
	desired, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := t.matcher.Match(desired...)
	return message.NewPrinter(t.tags[idx], message.Catalog(t.cat))
}

// Localize guarda en c.Locals el printer del idioma pedido.
func Localize(t *Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalPrinter, t.Printer(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

// tr traduce key con el printer de la petición.
func tr(c *fiber.Ctx, key string, args ...any) string {
	p, ok := c.Locals(LocalPrinter).(*message.Printer)
	if !ok {
		p = message.NewPrinter(language.Arabic)
	}
	return p.Sprintf(key, args...)
}
