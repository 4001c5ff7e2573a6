// Package deeplink 构造应用深链并控制自动跳转次数。
//
// 自动跳转是否成功无法在服务端或页面上观测：系统注册了协议处理程序时控制权交给
// 原生应用，否则跳转静默失败、页面保持不变。因此有效邀请页面总是同时渲染商店下载
// 入口和手动“打开应用”入口。
package deeplink

import (
	"net/url"
	"sync"

	"letsfitgo/web/internal/model"
)

// Target 返回 {scheme}://invite/{token}
func Target(scheme, token string) string {
	return scheme + "://invite/" + url.PathEscape(token)
}

// Navigator 执行跳转的副作用
type Navigator func(target string)

// Dispatcher 单次页面访问内的深链调度器，状态只有 Idle → Attempted
// 每个请求新建一个实例，不在请求之间共享
type Dispatcher struct {
	scheme   string
	token    string
	navigate Navigator

	mu        sync.Mutex
	attempted bool
}

// NewDispatcher 创建 Dispatcher
func NewDispatcher(scheme, token string, navigate Navigator) *Dispatcher {
	return &Dispatcher{
		scheme:   scheme,
		token:    token,
		navigate: navigate,
	}
}

// Target 本次访问对应的深链
func (d *Dispatcher) Target() string {
	return Target(d.scheme, d.token)
}

// Observe 接收解析结果：首次拿到有效邀请时自动跳转一次，之后不再触发
// 返回本次调用是否触发了跳转
func (d *Dispatcher) Observe(invite *model.ChallengeInvite) bool {
	if invite == nil || !invite.IsValid {
		return false
	}

	d.mu.Lock()
	if d.attempted {
		d.mu.Unlock()
		return false
	}
	d.attempted = true
	d.mu.Unlock()

	d.navigate(d.Target())
	return true
}

// Attempted 是否已经自动跳转过
func (d *Dispatcher) Attempted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attempted
}

// Open 用户手动打开应用，不受次数限制，也不改变自动跳转状态
func (d *Dispatcher) Open() string {
	target := d.Target()
	d.navigate(target)
	return target
}
