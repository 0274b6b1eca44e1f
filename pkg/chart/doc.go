// Package chart defines the histogram chart specification: the immutable
// input of a render call.
//
// A [ChartSpec] describes the canvas size, the descriptive text, the ordered
// x-axis category labels, and one or more named [Series]. Each series holds
// one optional [Value] per category; a missing value means "no data for this
// category" and is skipped by every data-driven computation instead of being
// treated as zero.
//
// # Decoding
//
// Specs are usually built in code or decoded from JSON (the reference wire
// format) or TOML:
//
//	{
//	  "width": 800, "height": 400,
//	  "description": "Histogram Example",
//	  "caption": "Rewards Distribution",
//	  "labels_x": ["Jul 14", "Jul 21"],
//	  "series": [{"name": "Staked", "color": "#ffaa88", "values": [35129025, null]}]
//	}
//
// Decoding failures carry the INVALID_FORMAT code; a spec that decodes but
// violates an invariant fails [Validate] with INVALID_SPEC. The two are
// distinguished with [errors.Is].
//
// [errors.Is]: github.com/matzehuels/histoscene/pkg/errors.Is
package chart
