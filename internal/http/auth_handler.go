package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"smartlandlord/internal/auth"
)

// AuthHandler 手机号白名单登录。无 token 无 session，
// 验证通过只返回身份信息，由前端自行保管。
type AuthHandler struct {
	whitelist *auth.Whitelist
	logger    *zap.Logger
}

func NewAuthHandler(whitelist *auth.Whitelist, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{whitelist: whitelist, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Phone string `json:"phone"`
	}
	if err := readBodyJSON(r, 1<<16, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if !auth.ValidatePhoneFormat(req.Phone) {
		writeJSON(w, http.StatusBadRequest, Fail("手機號碼格式錯誤"))
		return
	}
	user, ok := h.whitelist.Verify(req.Phone)
	if !ok {
		h.logger.Info("login rejected", zap.String("phone", req.Phone))
		writeJSON(w, http.StatusUnauthorized, Fail("此號碼未授權"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(user))
}
