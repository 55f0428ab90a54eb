package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Storage  StorageConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Workflow WorkflowConfig
	I18n     I18nConfig
	PDF      PDFConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
	// SeedDevUsers crea las ocho cuentas de desarrollo si no hay usuarios.
	// Nunca se honra con Env=production.
	SeedDevUsers bool
}

// IsProduction informa si el entorno es producción.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// StorageConfig selecciona la implementación de los repositorios.
type StorageConfig struct {
	Driver string // postgres | memory
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración del token de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	SwaggerFile  string // vacío o inexistente = sin /docs
	CookieSecure bool
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// WorkflowConfig comportamiento del motor de estados.
type WorkflowConfig struct {
	// StrictTransitions exige el estado actual correcto antes de aprobar, rechazar,
	// mover o pagar. Por defecto false: se sobrescribe el estado sin verificar.
	StrictTransitions bool
}

// I18nConfig idioma por defecto de los mensajes al cliente.
type I18nConfig struct {
	DefaultLang string // ar, es, en
}

// PDFConfig fuentes TTF incrustadas en las facturas. Con FontRegular vacío se usa helvetica,
// que no tiene glifos árabes.
type PDFConfig struct {
	FontFamily  string
	FontRegular string
	FontBold    string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:          getString(v, "APP_ENV", "development"),
			Name:         getString(v, "APP_NAME", "proyectos-api"),
			SeedDevUsers: getBool(v, "APP_SEED_DEV_USERS", false),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StoragePostgres)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "proyectos"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "proyectos-api"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8080),
			SwaggerFile:  getString(v, "HTTP_SWAGGER_FILE", "./docs/swagger.json"),
			CookieSecure: getBool(v, "HTTP_COOKIE_SECURE", false),
		},
		Workflow: WorkflowConfig{
			StrictTransitions: getBool(v, "WORKFLOW_STRICT_TRANSITIONS", false),
		},
		I18n: I18nConfig{
			DefaultLang: getString(v, "I18N_DEFAULT_LANG", "ar"),
		},
		PDF: PDFConfig{
			FontFamily:  getString(v, "PDF_FONT_FAMILY", "NotoNaskhArabic"),
			FontRegular: getString(v, "PDF_FONT_REGULAR", "/usr/share/fonts/truetype/noto/NotoNaskhArabic-Regular.ttf"),
			FontBold:    getString(v, "PDF_FONT_BOLD", "/usr/share/fonts/truetype/noto/NotoNaskhArabic-Bold.ttf"),
		},
	}

	if cfg.Storage.Driver != StoragePostgres && cfg.Storage.Driver != StorageMemory {
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido %q", cfg.Storage.Driver)
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
