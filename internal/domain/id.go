package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID 生成带前缀的记录 ID。
// 时间戳之外带随机成分：同一毫秒内创建多条记录（如租金+押金）也不会碰撞。
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
