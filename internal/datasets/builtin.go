package datasets

import _ "embed"

//go:embed data/usmetros.jsonl
var usMetros []byte

//go:embed data/northeast.jsonl
var northeast []byte

func init() {
	Register(Dataset{
		ID:    "usmetros",
		Title: "US metropolitan areas",
		Data:  func() []byte { return usMetros },
	})
	Register(Dataset{
		ID:    "northeast",
		Title: "Northeast corridor (dense, suits advanced mode)",
		Data:  func() []byte { return northeast },
	})
}
