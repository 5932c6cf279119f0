package mirror

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Publisher 变更入队接口；镜像停用时注入 NopPublisher
type Publisher interface {
	Enqueue(collection string, action Action, data map[string]any)
}

// NopPublisher 丢弃一切（镜像未配置时数据仅存本地）
type NopPublisher struct{}

func (NopPublisher) Enqueue(string, Action, map[string]any) {}

type outboxItem struct {
	collection string
	action     Action
	data       map[string]any
}

// Outbox best-effort 发件箱：有界队列 + 后台冲刷。
// 失败只记日志，不重试、不回报调用方——静默失败在这里是显式策略，不是散落在
// 各个变更处理器里的副作用。队列满时丢弃新条目（同样只记日志）。
type Outbox struct {
	ch     chan outboxItem
	client *Client
	logger *zap.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewOutbox(client *Client, queueSize int, logger *zap.Logger) *Outbox {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Outbox{
		ch:     make(chan outboxItem, queueSize),
		client: client,
		logger: logger,
	}
}

// Start 启动后台冲刷协程
func (o *Outbox) Start() {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for item := range o.ch {
			if err := o.client.Push(context.Background(), item.collection, item.action, item.data); err != nil {
				// 本地状态为准，镜像分叉静默接受
				o.logger.Warn("mirror push failed",
					zap.String("collection", item.collection),
					zap.String("action", string(item.action)),
					zap.Error(err))
			}
		}
	}()
}

// Enqueue 非阻塞入队；队列满时丢弃并记日志
func (o *Outbox) Enqueue(collection string, action Action, data map[string]any) {
	select {
	case o.ch <- outboxItem{collection: collection, action: action, data: data}:
	default:
		o.logger.Warn("mirror outbox full, dropping item",
			zap.String("collection", collection),
			zap.String("action", string(action)))
	}
}

// Close 停止接收并等待队列排空
func (o *Outbox) Close() {
	o.closeOnce.Do(func() { close(o.ch) })
	o.wg.Wait()
}
