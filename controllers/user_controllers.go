package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lastortilhas/restaurant-api/middlewares"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/services"
	"github.com/lastortilhas/restaurant-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var errInvalidCredentials = errors.New("invalid credentials")

type UserController struct {
	DB       *gorm.DB
	Sessions services.SessionStore

	TokenTTL   time.Duration
	SessionTTL time.Duration

	// AllowImplicitRegistration provisions an account on first login
	// with a never-seen email instead of rejecting it.
	AllowImplicitRegistration bool

	SecureCookies bool
}

func NewUserController(db *gorm.DB, sessions services.SessionStore) *UserController {
	return &UserController{
		DB:         db,
		Sessions:   sessions,
		TokenTTL:   24 * time.Hour,
		SessionTTL: 7 * 24 * time.Hour,
	}
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func publicUser(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// Register creates an account and logs it in.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.User
	if err := uc.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("email already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Email:     req.Email,
		Username:  usernameFromEmail(req.Email),
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleUser,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		// The unique index on email is the last line of defence against
		// a concurrent registration with the same address.
		utils.RespondError(c, http.StatusConflict, errors.New("email already registered"))
		return
	}

	utils.InfoLogger.Printf("New user registered: %s", user.Email)

	uc.respondAuthenticated(c, http.StatusCreated, &user)
}

// Login verifies credentials and issues a session plus a bearer token.
// The failure response never reveals whether the email exists.
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	err := uc.DB.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if uc.AllowImplicitRegistration && len(req.Password) >= 6 {
			uc.provisionAndLogin(c, req.Email, req.Password)
			return
		}
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	uc.respondAuthenticated(c, http.StatusOK, &user)
}

// provisionAndLogin backs the implicit-registration flag: a login with
// a never-seen email creates the account on the spot.
func (uc *UserController) provisionAndLogin(c *gin.Context, email, password string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Email:     email,
		Username:  usernameFromEmail(email),
		Password:  string(hashed),
		FirstName: capitalize(usernameFromEmail(email)),
		Role:      models.RoleUser,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	utils.InfoLogger.Printf("Implicitly registered user on login: %s", user.Email)

	uc.respondAuthenticated(c, http.StatusOK, &user)
}

// Logout destroys the server-side session and clears the cookie.
func (uc *UserController) Logout(c *gin.Context) {
	if sid, err := c.Cookie(middlewares.SessionCookie); err == nil && sid != "" {
		if err := uc.Sessions.Delete(sid); err != nil {
			utils.ErrorLogger.Printf("Failed to delete session: %v", err)
		}
	}
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", uc.SecureCookies, true)

	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "logged out"})
}

// GetProfile returns the authenticated user.
func (uc *UserController) GetProfile(c *gin.Context) {
	identity, ok := middlewares.CurrentIdentity(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, "id = ?", identity.ID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, publicUser(&user))
}

func (uc *UserController) respondAuthenticated(c *gin.Context, code int, user *models.User) {
	token, err := utils.GenerateToken(user, uc.TokenTTL)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sid, err := uc.Sessions.Create(services.Identity{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.SetCookie(middlewares.SessionCookie, sid, int(uc.SessionTTL.Seconds()), "/", "", uc.SecureCookies, true)

	utils.RespondJSON(c, code, gin.H{
		"user":  publicUser(user),
		"token": token,
	})
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
