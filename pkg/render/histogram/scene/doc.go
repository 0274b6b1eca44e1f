// Package scene is the renderable vector-graphics element tree produced by
// the histogram assembler.
//
// A [Node] is an element with ordered attributes, optional literal text and
// ordered children. Attribute order is preserved so that serialization is
// byte-stable: rendering the same chart twice yields identical markup.
//
// # Building
//
//	root := scene.El("svg", scene.A("viewBox", "0 0 800 400"))
//	root.Append(scene.El("desc").WithText("Histogram Example"))
//
// # Serializing
//
// [Node.WriteTo] emits indented markup with standard XML escaping of text and
// attribute values. Nothing else is escaped or rewritten.
//
// # Querying
//
// [Node.FindAll] with the [ByTag] and [ByClass] predicates lets sinks and
// tests locate groups and text nodes without depending on child positions.
package scene
