package auth

import (
	"regexp"
	"strings"
)

// Role 登录者角色
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleTenant Role = "Tenant"
)

// User 白名单条目：手机号 → 显示名 + 角色
type User struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Whitelist 固定手机号白名单。没有 token、没有 session、没有过期——
// 登录只做格式检查和名单匹配。
type Whitelist struct {
	users map[string]User
}

func NewWhitelist(users ...User) *Whitelist {
	m := make(map[string]User, len(users))
	for _, u := range users {
		m[normalizePhone(u.Phone)] = u
	}
	return &Whitelist{users: m}
}

// DefaultWhitelist 内置管理员名单
func DefaultWhitelist() *Whitelist {
	return NewWhitelist(
		User{Phone: "0937779487", Name: "房東 Admin", Role: RoleAdmin},
		User{Phone: "0912570503", Name: "管理員小陳", Role: RoleAdmin},
		User{Phone: "0952337781", Name: "授權管理員", Role: RoleAdmin},
	)
}

// Verify 清理格式后查名单
func (w *Whitelist) Verify(phone string) (User, bool) {
	u, ok := w.users[normalizePhone(phone)]
	return u, ok
}

// 台湾手机格式：09 开头共 10 码
var phonePattern = regexp.MustCompile(`^09\d{8}$`)

// ValidatePhoneFormat 格式校验（先去掉空白与破折号）
func ValidatePhoneFormat(phone string) bool {
	return phonePattern.MatchString(normalizePhone(phone))
}

func normalizePhone(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	return strings.ReplaceAll(phone, "-", "")
}
