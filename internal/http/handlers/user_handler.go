// README: Auth handlers: register, login, logout, current user, Google OAuth.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"roamhaven/internal/http/middleware"
	"roamhaven/internal/modules/user"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type UserHandler struct {
	users *user.Service
	oauth *oauth2.Config
}

// NewUserHandler creates the auth handler. oauthCfg may be nil when Google
// login is not configured for the deployment.
func NewUserHandler(users *user.Service, oauthCfg *oauth2.Config) *UserHandler {
	return &UserHandler{users: users, oauth: oauthCfg}
}

type registerReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	u, token, err := h.users.Register(c.Request.Context(), strings.TrimSpace(req.Email), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	h.setSessionCookie(c, token)
	writeJSON(c, http.StatusCreated, gin.H{"user": u, "token": token})
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	u, token, err := h.users.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	h.setSessionCookie(c, token)
	writeJSON(c, http.StatusOK, gin.H{"user": u, "token": token})
}

// Logout handles POST /api/auth/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	token := ""
	if cookie, err := c.Cookie("session"); err == nil {
		token = cookie
	}
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if token != "" {
		_ = h.users.Logout(c.Request.Context(), token)
	}
	c.SetCookie("session", "", -1, "/", "", false, true)
	writeJSON(c, http.StatusOK, gin.H{"logged_out": true})
}

// Me handles GET /api/auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.users.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"user": u})
}

// GoogleLogin handles GET /auth/google: redirects to the consent screen.
func (h *UserHandler) GoogleLogin(c *gin.Context) {
	if h.oauth == nil {
		writeError(c, http.StatusServiceUnavailable, "google login not configured")
		return
	}
	state := uuid.NewString()
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

// googleProfile is the subset of the userinfo response we consume.
type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleCallback handles GET /auth/google/callback: exchanges the code,
// fetches the profile, and finds-or-creates the account.
func (h *UserHandler) GoogleCallback(c *gin.Context) {
	if h.oauth == nil {
		writeError(c, http.StatusServiceUnavailable, "google login not configured")
		return
	}

	wantState, err := c.Cookie("oauth_state")
	if err != nil || wantState == "" || c.Query("state") != wantState {
		writeError(c, http.StatusBadRequest, "invalid oauth state")
		return
	}

	tok, err := h.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		writeError(c, http.StatusUnauthorized, "oauth exchange failed")
		return
	}

	resp, err := h.oauth.Client(c.Request.Context(), tok).Get(googleUserinfoURL)
	if err != nil {
		writeError(c, http.StatusBadGateway, "failed to fetch google profile")
		return
	}
	defer resp.Body.Close()

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.ID == "" {
		writeError(c, http.StatusBadGateway, "malformed google profile")
		return
	}

	u, token, err := h.users.LoginGoogle(c.Request.Context(), profile.ID, profile.Email, profile.Name)
	if err != nil {
		writeUserError(c, err)
		return
	}
	h.setSessionCookie(c, token)
	writeJSON(c, http.StatusOK, gin.H{"user": u, "token": token})
}

func (h *UserHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("session", token, int(user.SessionTTL.Seconds()), "/", "", false, true)
}
