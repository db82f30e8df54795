package spu

type Spu struct{}
