package sink

import (
	"encoding/json"

	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
)

// RenderJSON exports the scene tree as pretty-printed JSON. Element order and
// attribute order are preserved, so the output is as stable as the markup.
func RenderJSON(root *scene.Node) ([]byte, error) {
	return json.MarshalIndent(root, "", "  ")
}
