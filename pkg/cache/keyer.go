package cache

// Keyer derives cache keys. Implementations must be deterministic: equal
// inputs give equal keys and any option that changes the output changes
// the key.
type Keyer interface {
	// SceneKey identifies the scene rendered from a spec.
	SceneKey(specHash string, opts SceneKeyOpts) string

	// ArtifactKey identifies one serialized form of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// SceneKeyOpts lists the render options that shape a scene.
type SceneKeyOpts struct {
	Ticks  string `json:"ticks"`
	Marks  bool   `json:"marks"`
	Legend bool   `json:"legend"`
	Insets [4]int `json:"insets"`
}

// ArtifactKeyOpts lists the sink options that shape an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SceneKey returns "scene:<sha256>".
func (DefaultKeyer) SceneKey(specHash string, opts SceneKeyOpts) string {
	return hashKey(KeyTypeScene, specHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, sceneHash, opts)
}
