package role

type Role struct{}
