package segment

import (
	"sync"

	"github.com/go-ego/gse"

	"github.com/kbukum/captionkit/logger"
)

// GseCutter segments Chinese text with gse's embedded dictionary. The
// dictionary is loaded on first use; if loading fails the cutter degrades to
// per-character words.
type GseCutter struct {
	once     sync.Once
	seg      gse.Segmenter
	err      error
	fallback Cutter
}

// NewGseCutter creates a lazily-loaded gse cutter.
func NewGseCutter() *GseCutter {
	return &GseCutter{fallback: NewMaxMatch()}
}

// Cut splits text into dictionary words.
func (g *GseCutter) Cut(text string) []string {
	g.once.Do(g.load)
	if g.err != nil {
		return g.fallback.Cut(text)
	}
	return g.seg.Cut(text, true)
}

func (g *GseCutter) load() {
	g.err = g.seg.LoadDictEmbed()
	if g.err != nil {
		logger.Get("segment").Warn("gse dictionary unavailable, using per-character segmentation",
			logger.ErrorFields("load_dict", g.err))
	}
}
