package format

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caserWrapper wraps a cases.Caser to allow pointer storage in sync.Pool.
type caserWrapper struct {
	caser cases.Caser
}

// titleCaserPool holds title casers; a cases.Caser is not safe for
// concurrent use.
var titleCaserPool = sync.Pool{
	New: func() any {
		return &caserWrapper{caser: cases.Title(language.English)}
	},
}

// Title converts s to title case ("setup" -> "Setup").
func Title(s string) string {
	wrapper, ok := titleCaserPool.Get().(*caserWrapper)
	if !ok || wrapper == nil {
		return cases.Title(language.English).String(s)
	}
	defer titleCaserPool.Put(wrapper)
	return wrapper.caser.String(s)
}
