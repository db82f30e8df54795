package attr

type Attr struct{}
