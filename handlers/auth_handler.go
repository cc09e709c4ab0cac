package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solucioning/fleetforms/dto"
	"github.com/solucioning/fleetforms/repositories"
	"github.com/solucioning/fleetforms/response"
	"github.com/solucioning/fleetforms/services"
	"github.com/solucioning/fleetforms/utils"
)

type AuthHandler struct {
	users   *services.UserService
	logRepo repositories.LogRepo
}

func NewAuthHandler(users *services.UserService, logRepo repositories.LogRepo) *AuthHandler {
	return &AuthHandler{users: users, logRepo: logRepo}
}

// POST /api/auth/login
// Unknown user and wrong password collapse into the same 401 body; the audit
// trail keeps them apart.
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Usuario y contraseña son obligatorios"})
		return
	}

	user, token, err := h.users.Login(input.Username, input.Password)
	switch {
	case errors.Is(err, services.ErrUnknownUser):
		utils.LogAction(c, nil, "login", "fallo", "Usuario inexistente: "+input.Username, nil, h.logRepo)
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Credenciales inválidas"})
		return
	case errors.Is(err, services.ErrWrongPassword):
		utils.LogAction(c, &user.ID, "login", "fallo", "Contraseña incorrecta", nil, h.logRepo)
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Credenciales inválidas"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al iniciar sesión"})
		return
	}

	utils.LogAction(c, &user.ID, "login", "exito", "Inicio de sesión", nil, h.logRepo)
	c.JSON(http.StatusOK, response.TokenResponse{
		Message: "Inicio de sesión correcto",
		Token:   token,
		User:    user,
	})
}

// GET /api/auth/verify
// Reaching this handler means the token already passed the middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
	})
}

// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var input dto.ChangePasswordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "La nueva contraseña debe tener al menos 6 caracteres"})
		return
	}

	err = h.users.ChangePassword(claims.UserID, input.CurrentPassword, input.NewPassword)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Usuario no encontrado"})
		return
	case errors.Is(err, services.ErrIncorrectPassword):
		utils.LogAction(c, &claims.UserID, "cambio_password", "fallo", "Contraseña actual incorrecta", nil, h.logRepo)
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "La contraseña actual no es correcta"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al cambiar la contraseña"})
		return
	}

	utils.LogAction(c, &claims.UserID, "cambio_password", "exito", "Contraseña actualizada", nil, h.logRepo)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Contraseña actualizada correctamente"})
}

// POST /api/auth/create-user (operations chief only)
func (h *AuthHandler) CreateUser(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token inválido"})
		return
	}

	var input dto.CreateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Datos de usuario inválidos"})
		return
	}

	user, err := h.users.CreateUser(input)
	switch {
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Rol inválido"})
		return
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "El usuario o email ya existe"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Error al crear el usuario"})
		return
	}

	utils.LogAction(c, &claims.UserID, "alta_usuario", "exito", "Usuario creado: "+user.Username, nil, h.logRepo)
	c.JSON(http.StatusCreated, user)
}
