// Package segment finds the positions at which caption text may be broken
// into lines.
//
// A Segmenter is a strategy selected by language. Space-delimited languages
// break at whitespace; logographic scripts such as Chinese run a dictionary
// segmentation pass and only break at word edges. New scripts are supported
// by registering another Segmenter under their base language subtag:
//
//	reg := segment.NewRegistry()
//	reg.Register("zh", segment.NewDictionary(segment.NewGseCutter()))
//	bounds := reg.Boundaries("今天天气很好", "zh-CN")
//
// Boundaries are rune offsets: an offset b means a line may end right before
// the rune at index b. Unknown or empty tags use whitespace boundaries.
package segment
