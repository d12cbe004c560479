package model

import "errors"

// ErrInvalidConfig 配置参数不满足模型约束（构造时返回）。
var ErrInvalidConfig = errors.New("model: invalid config")
