package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-admin-console/internal/handler"
	"go-admin-console/internal/middleware"
	"go-admin-console/internal/model"
	"go-admin-console/internal/repository"
	"go-admin-console/internal/service"
	"go-admin-console/internal/ws"
	"go-admin-console/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Access{}, &model.Role{}, &model.Account{}, &model.AccountRole{}, &model.RoleAccess{})

	// 3. Seed access catalog and super admin account
	seedAccessAndAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	accessRepo := repository.NewAccessRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	accountRoleRepo := repository.NewAccountRoleRepo(db)
	roleAccessRepo := repository.NewRoleAccessRepo(db)

	authService := service.NewAuthService(accountRepo)
	menuService := service.NewMenuService(accessRepo, accountRoleRepo, roleAccessRepo)
	roleService := service.NewRoleService(roleRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(menuService)
	roleHandler := handler.NewRoleHandler(roleService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Admin Console API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(accountRepo))

	// Menu resolution for the current user
	protected.Get("/menus", menuHandler.GetMenus)

	// Role management
	protected.Post("/roles", roleHandler.CreateRole)
	protected.Get("/roles", roleHandler.GetRoles)
	protected.Get("/roles/:id", roleHandler.GetRole)
	protected.Patch("/roles/:id", roleHandler.UpdateRole)
	protected.Delete("/roles/:id", roleHandler.DeleteRole)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAccessAndAdmin creates the default access catalog, the default
// role with its menu grants, and the super admin account if they don't
// exist
func seedAccessAndAdmin(db *gorm.DB) {
	accessRepo := repository.NewAccessRepo(db)
	accountRepo := repository.NewAccountRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	roleAccessRepo := repository.NewRoleAccessRepo(db)

	if err := accessRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed access catalog: %v", err)
	}

	seedDefaultRole(roleRepo, roleAccessRepo, accessRepo)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	existing, err := accountRepo.FindByUsername(username)
	if err != nil {
		log.Printf("Warning: Failed to look up admin account: %v", err)
		return
	}
	if existing != nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.Account{
		Username: username,
		Identity: model.IdentitySuper,
		Status:   model.StatusNormal,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := accountRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin account: %v", err)
	} else {
		log.Printf("✅ Super admin account created: %s", username)
	}
}

// seedDefaultRole creates the auto-assignable default role and grants
// it menu visibility over the seeded catalog
func seedDefaultRole(roleRepo repository.RoleRepository, roleAccessRepo repository.RoleAccessRepository, accessRepo repository.AccessRepository) {
	existing, err := roleRepo.FindDefault()
	if err != nil {
		log.Printf("Warning: Failed to look up default role: %v", err)
		return
	}
	if existing != nil {
		return
	}

	role := &model.Role{
		Name:        "Viewer",
		Description: "Read-only default role",
		IsDefault:   model.DefaultRole,
		Status:      model.StatusNormal,
	}
	if err := roleRepo.Create(role); err != nil {
		log.Printf("Warning: Failed to create default role: %v", err)
		return
	}

	menus, err := accessRepo.FindMenus()
	if err != nil {
		log.Printf("Warning: Failed to load menus for default role: %v", err)
		return
	}
	for _, menu := range menus {
		link := &model.RoleAccess{RoleID: role.ID, AccessID: menu.ID, Type: model.GrantTypeMenu}
		if err := roleAccessRepo.Create(link); err != nil {
			log.Printf("Warning: Failed to grant menu %d to default role: %v", menu.ID, err)
		}
	}
	log.Println("✅ Default role created: Viewer")
}
