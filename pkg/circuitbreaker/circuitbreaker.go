// Package circuitbreaker 实现一个简单的三状态熔断器
//
// 状态机：
//
//	CLOSED --连续失败达到阈值--> OPEN --冷却期结束--> HALF_OPEN
//	HALF_OPEN --探测成功--> CLOSED
//	HALF_OPEN --探测失败--> OPEN
//
// 用途：保护对外部依赖（如Redis缓存）的调用，依赖故障时快速失败，
// 避免每个请求都等待超时。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota // 关闭（正常放行）
	StateOpen                // 打开（快速失败）
	StateHalfOpen            // 半开（放行探测请求）
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpen 熔断器打开时的快速失败错误
var ErrOpen = errors.New("circuit breaker is open")

// Breaker 熔断器
type Breaker struct {
	mu sync.Mutex

	name             string        // 名称（用于日志）
	failureThreshold int           // 连续失败多少次后熔断
	cooldown         time.Duration // OPEN状态持续时长

	state        State
	consecFails  int       // 连续失败次数
	openedAt     time.Time // 进入OPEN状态的时间
	halfOpenBusy bool      // 半开状态下是否已有探测请求在途
}

// New 创建熔断器
// failureThreshold<=0时取默认值5，cooldown<=0时取默认值30秒
func New(name string, failureThreshold int, cooldown time.Duration) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &Breaker{
		name:             name,
		failureThreshold: failureThreshold,
		cooldown:         cooldown,
	}
}

// Do 执行受保护的调用
// OPEN状态下直接返回ErrOpen，不执行fn
func (b *Breaker) Do(fn func() error) error {
	if err := b.before(); err != nil {
		return err
	}

	err := fn()
	b.after(err == nil)
	return err
}

// State 返回当前状态（冷却期结束会先迁移到HALF_OPEN）
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refresh(time.Now())
	return b.state
}

// Name 返回熔断器名称
func (b *Breaker) Name() string {
	return b.name
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refresh(time.Now())

	switch b.state {
	case StateOpen:
		return ErrOpen
	case StateHalfOpen:
		// 半开状态只放行一个探测请求
		if b.halfOpenBusy {
			return ErrOpen
		}
		b.halfOpenBusy = true
	}
	return nil
}

func (b *Breaker) after(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.halfOpenBusy = false

	if success {
		b.consecFails = 0
		b.state = StateClosed
		return
	}

	b.consecFails++
	if b.state == StateHalfOpen || b.consecFails >= b.failureThreshold {
		b.state = StateOpen
		b.openedAt = time.Now()
	}
}

// refresh 冷却期结束后由OPEN迁移到HALF_OPEN
// 调用方必须持有b.mu
func (b *Breaker) refresh(now time.Time) {
	if b.state == StateOpen && now.Sub(b.openedAt) >= b.cooldown {
		b.state = StateHalfOpen
		b.halfOpenBusy = false
	}
}
