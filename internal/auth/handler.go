package auth

import (
	"strings"

	"dukkan-backend/internal/config"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterOwnerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register-owner
// İlk kurulum: işletme sahibi hesabı. Zaten bir sahip varsa ikincisi
// engellenir.
func RegisterOwnerHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterOwnerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		users, err := st.LoadUsers()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar yüklenemedi")
		}
		for _, u := range users {
			if u.Role == models.RoleOwner {
				return fiber.NewError(fiber.StatusForbidden, "Zaten bir işletme sahibi hesabı var")
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user, err := st.AppendUser(models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleOwner,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

// POST /api/auth/users (sadece owner)
// Veri girişi yapacak personel hesabı açar.
func CreateStaffHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		users, err := st.LoadUsers()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar yüklenemedi")
		}
		for _, u := range users {
			if u.Email == body.Email {
				return fiber.NewError(fiber.StatusConflict, "Bu email ile kayıtlı kullanıcı var")
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user, err := st.AppendUser(models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleStaff,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		users, err := st.LoadUsers()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar yüklenemedi")
		}

		var user *models.User
		for i := range users {
			if users[i].Email == body.Email {
				user = &users[i]
				break
			}
		}
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDVal := c.Locals(CtxUserIDKey)
		userID, ok := userIDVal.(uint)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Kullanıcı bilgisi alınamadı")
		}

		users, err := st.LoadUsers()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcılar yüklenemedi")
		}
		for _, u := range users {
			if u.ID == userID {
				return c.JSON(fiber.Map{
					"user_id": u.ID,
					"name":    u.Name,
					"email":   u.Email,
					"role":    u.Role,
				})
			}
		}
		return fiber.NewError(fiber.StatusNotFound, "Kullanıcı bulunamadı")
	}
}

// GetUserInfo: audit kaydı için istekteki kullanıcıyı çözer.
func GetUserInfo(c *fiber.Ctx, st *store.Store) (uint, string, error) {
	userIDVal := c.Locals(CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}

	users, err := st.LoadUsers()
	if err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
	}
	for _, u := range users {
		if u.ID == userID {
			return u.ID, u.Name, nil
		}
	}
	return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
}
