package service

import "strings"

// ViewerKey 是浏览去重使用的访问者标识：登录用户取用户 ID，匿名访客取
// 规范化后的 IP 地址，二者互斥。
type ViewerKey struct {
	UserID    uint
	IPAddress string
}

// Authenticated 表示该标识来自登录用户。
func (k ViewerKey) Authenticated() bool {
	return k.UserID != 0
}

// ResolveViewerKey 根据请求携带的身份与来源地址生成 ViewerKey。
// 本地开发时 IPv6 回环地址会规范化为 127.0.0.1，保证与 IPv4 回环去重一致。
// 该函数总是能给出结果，匿名访客是兜底分支。
func ResolveViewerKey(userID uint, remoteIP string) ViewerKey {
	ip := strings.TrimSpace(remoteIP)
	if ip == "::1" {
		ip = "127.0.0.1"
	}

	return ViewerKey{UserID: userID, IPAddress: ip}
}
