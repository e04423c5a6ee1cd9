package game

import "errors"

// ErrQuit 用户请求退出
// 由场景的 Update 返回，前端据此正常结束主循环
var ErrQuit = errors.New("quit requested")
