package main

import "embed"

// 终端版本单独构建，内嵌一份与根目录相同的玩法配置（make prepare-term 同步）
//
//go:embed data/gameplay.yaml
var dataFS embed.FS
