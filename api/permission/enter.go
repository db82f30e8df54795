package permission

type Permission struct{}
