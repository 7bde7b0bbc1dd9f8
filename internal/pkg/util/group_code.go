package util

import (
	"math/rand"
	"time"
)

// 去掉易混淆字符 0/O/1/I
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateGroupCode 生成小组加入口令
func GenerateGroupCode(length int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[r.Intn(len(codeAlphabet))]
	}
	return string(code)
}
