package http

import (
	"net/http"

	"foodstall-backend/internal/delivery/http/handler"
	"foodstall-backend/internal/delivery/http/middleware"
	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/observability"
	"foodstall-backend/pkg/response"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Food     *handler.FoodHandler
	Category *handler.FoodCategoryHandler
	Menu     *handler.FoodMenuHandler
	Employee *handler.EmployeeHandler
	Invoice  *handler.InvoiceHandler
	Role     *handler.RoleHandler
	User     *handler.UserHandler
	Upload   *handler.UploadHandler
	AuditLog *handler.AuditLogHandler
}

type Middlewares struct {
	Auth       *middleware.AuthMiddleware
	Permission *middleware.PermissionMiddleware
	CORS       *middleware.CORSMiddleware
	Security   *middleware.SecurityMiddleware
	Logging    *middleware.LoggingMiddleware
	// AuthRateLimit guards login and registration.
	AuthRateLimit func(http.Handler) http.Handler
}

// StaticFiles maps a public URL prefix onto a directory.
type StaticFiles struct {
	Dir        string
	PublicPath string
}

type Router struct {
	router      *mux.Router
	handlers    Handlers
	middlewares Middlewares
	metrics     *observability.Metrics
	uploads     StaticFiles
}

func NewRouter(handlers Handlers, middlewares Middlewares, metrics *observability.Metrics, uploads StaticFiles) *Router {
	return &Router{
		router:      mux.NewRouter(),
		handlers:    handlers,
		middlewares: middlewares,
		metrics:     metrics,
		uploads:     uploads,
	}
}

// Setup registers every route and returns the fully wrapped handler.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.Use(r.metrics.Middleware)

	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
	if r.uploads.PublicPath != "" {
		r.router.PathPrefix(r.uploads.PublicPath).
			Handler(http.StripPrefix(r.uploads.PublicPath, http.FileServer(http.Dir(r.uploads.Dir)))).
			Methods(http.MethodGet)
	}

	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	r.authRoutes(api)
	r.catalogRoutes(api)
	r.backOfficeRoutes(api)

	// Outermost first: CORS must answer preflights for unmatched routes too.
	var h http.Handler = r.router
	h = r.middlewares.Logging.Handle(h)
	h = r.middlewares.Security.Handle(h)
	h = r.middlewares.CORS.Handle(h)
	return h
}

func (r *Router) authRoutes(api *mux.Router) {
	auth := r.handlers.Auth
	limit := r.middlewares.AuthRateLimit

	api.Handle("/login", limit(http.HandlerFunc(auth.Login))).Methods(http.MethodPost)
	api.Handle("/register-dev", limit(http.HandlerFunc(auth.RegisterDev))).Methods(http.MethodPost)
	api.Handle("/register", limit(r.protect(entity.ResourceUser, entity.ActionCreate, auth.Register))).Methods(http.MethodPost)
	api.Handle("/logout", r.middlewares.Auth.Optional(http.HandlerFunc(auth.Logout))).Methods(http.MethodGet)
	api.Handle("/me", r.middlewares.Auth.Authenticate(http.HandlerFunc(auth.Me))).Methods(http.MethodGet)
	api.Handle("/upload", r.middlewares.Auth.Authenticate(http.HandlerFunc(r.handlers.Upload.UploadImage))).Methods(http.MethodPost)
}

func (r *Router) catalogRoutes(api *mux.Router) {
	foods := api.PathPrefix("/foods").Subrouter()
	foods.HandleFunc("/getAllFoods", r.handlers.Food.GetAll).Methods(http.MethodGet)
	foods.HandleFunc("/getFoodById/{id}", r.handlers.Food.GetByID).Methods(http.MethodGet)
	foods.Handle("/createFood", r.protect(entity.ResourceFood, entity.ActionCreate, r.handlers.Food.Create)).Methods(http.MethodPost)
	foods.Handle("/updateFood/{id}", r.protect(entity.ResourceFood, entity.ActionUpdate, r.handlers.Food.Update)).Methods(http.MethodPut)
	foods.Handle("/deleteFood/{id}", r.protect(entity.ResourceFood, entity.ActionDelete, r.handlers.Food.Delete)).Methods(http.MethodDelete)

	categories := api.PathPrefix("/categories").Subrouter()
	categories.HandleFunc("/getAllCategories", r.handlers.Category.GetAll).Methods(http.MethodGet)
	categories.HandleFunc("/getCategoryById/{id}", r.handlers.Category.GetByID).Methods(http.MethodGet)
	categories.Handle("/createCategory", r.protect(entity.ResourceFoodCategory, entity.ActionCreate, r.handlers.Category.Create)).Methods(http.MethodPost)
	categories.Handle("/updateCategory/{id}", r.protect(entity.ResourceFoodCategory, entity.ActionUpdate, r.handlers.Category.Update)).Methods(http.MethodPut)
	categories.Handle("/deleteCategory/{id}", r.protect(entity.ResourceFoodCategory, entity.ActionDelete, r.handlers.Category.Delete)).Methods(http.MethodDelete)

	menus := api.PathPrefix("/menus").Subrouter()
	menus.HandleFunc("/getAllMenus", r.handlers.Menu.GetAll).Methods(http.MethodGet)
	menus.HandleFunc("/getMenuById/{id}", r.handlers.Menu.GetByID).Methods(http.MethodGet)
	menus.Handle("/createMenu", r.protect(entity.ResourceFoodMenu, entity.ActionCreate, r.handlers.Menu.Create)).Methods(http.MethodPost)
	menus.Handle("/updateMenu/{id}", r.protect(entity.ResourceFoodMenu, entity.ActionUpdate, r.handlers.Menu.Update)).Methods(http.MethodPut)
	menus.Handle("/deleteMenu/{id}", r.protect(entity.ResourceFoodMenu, entity.ActionDelete, r.handlers.Menu.Delete)).Methods(http.MethodDelete)
}

func (r *Router) backOfficeRoutes(api *mux.Router) {
	employees := api.PathPrefix("/employees").Subrouter()
	employees.Handle("/getAllEmployees", r.protect(entity.ResourceEmployee, entity.ActionRead, r.handlers.Employee.GetAll)).Methods(http.MethodGet)
	employees.Handle("/getEmployeeById/{id}", r.protect(entity.ResourceEmployee, entity.ActionRead, r.handlers.Employee.GetByID)).Methods(http.MethodGet)
	employees.Handle("/createEmployee", r.protect(entity.ResourceEmployee, entity.ActionCreate, r.handlers.Employee.Create)).Methods(http.MethodPost)
	employees.Handle("/updateEmployee/{id}", r.protect(entity.ResourceEmployee, entity.ActionUpdate, r.handlers.Employee.Update)).Methods(http.MethodPut)
	employees.Handle("/deleteEmployee/{id}", r.protect(entity.ResourceEmployee, entity.ActionDelete, r.handlers.Employee.Delete)).Methods(http.MethodDelete)

	invoices := api.PathPrefix("/invoices").Subrouter()
	invoices.Handle("/getAllInvoices", r.protect(entity.ResourceInvoice, entity.ActionRead, r.handlers.Invoice.GetAll)).Methods(http.MethodGet)
	invoices.Handle("/getInvoiceById/{id}", r.protect(entity.ResourceInvoice, entity.ActionRead, r.handlers.Invoice.GetByID)).Methods(http.MethodGet)
	invoices.Handle("/createInvoice", r.protect(entity.ResourceInvoice, entity.ActionCreate, r.handlers.Invoice.Create)).Methods(http.MethodPost)
	invoices.Handle("/updateInvoiceDateTime/{id}", r.protect(entity.ResourceInvoice, entity.ActionUpdate, r.handlers.Invoice.UpdateDateTime)).Methods(http.MethodPut)
	invoices.Handle("/deleteInvoiceById/{id}", r.protect(entity.ResourceInvoice, entity.ActionDelete, r.handlers.Invoice.Delete)).Methods(http.MethodDelete)

	roles := api.PathPrefix("/roles").Subrouter()
	roles.Handle("/getAllRoles", r.protect(entity.ResourceRole, entity.ActionRead, r.handlers.Role.GetAll)).Methods(http.MethodGet)
	roles.Handle("/getRoleById/{id}", r.protect(entity.ResourceRole, entity.ActionRead, r.handlers.Role.GetByID)).Methods(http.MethodGet)
	roles.Handle("/createRole", r.protect(entity.ResourceRole, entity.ActionCreate, r.handlers.Role.Create)).Methods(http.MethodPost)
	roles.Handle("/updateRole/{id}", r.protect(entity.ResourceRole, entity.ActionUpdate, r.handlers.Role.Update)).Methods(http.MethodPut)
	roles.Handle("/deleteRole/{id}", r.protect(entity.ResourceRole, entity.ActionDelete, r.handlers.Role.Delete)).Methods(http.MethodDelete)

	users := api.PathPrefix("/user").Subrouter()
	users.Handle("/getAllUsers", r.protect(entity.ResourceUser, entity.ActionRead, r.handlers.User.GetAll)).Methods(http.MethodGet)
	users.Handle("/getUserById/{id}", r.protect(entity.ResourceUser, entity.ActionRead, r.handlers.User.GetByID)).Methods(http.MethodGet)
	users.Handle("/updateUser/{id}", r.protect(entity.ResourceUser, entity.ActionUpdate, r.handlers.User.Update)).Methods(http.MethodPut)
	users.Handle("/deleteUser/{id}", r.protect(entity.ResourceUser, entity.ActionDelete, r.handlers.User.Delete)).Methods(http.MethodDelete)

	auditLogs := api.PathPrefix("/auditLogs").Subrouter()
	auditLogs.Handle("/getAllAuditLogs", r.protect(entity.ResourceUser, entity.ActionRead, r.handlers.AuditLog.GetAllAuditLogs)).Methods(http.MethodGet)
	auditLogs.Handle("/getAuditLogById/{id}", r.protect(entity.ResourceUser, entity.ActionRead, r.handlers.AuditLog.GetAuditLog)).Methods(http.MethodGet)
}

// protect runs the session gate, then the permission gate for (resource, action).
func (r *Router) protect(resource entity.Resource, action entity.Action, h http.HandlerFunc) http.Handler {
	return r.middlewares.Auth.Authenticate(r.middlewares.Permission.Require(resource, action)(h))
}

func (r *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Envelope{"status": "ok"})
}
