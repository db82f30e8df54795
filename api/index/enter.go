package index

type Index struct{}
