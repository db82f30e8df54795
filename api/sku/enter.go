package sku

type Sku struct{}
