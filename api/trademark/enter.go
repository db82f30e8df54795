package trademark

type Trademark struct{}
