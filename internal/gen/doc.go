// Package gen materializes models into output documents.
//
// A Generator combines a model library, an image store, and a per-call
// argument list. Each model line is emitted in order: literal lines verbatim,
// placeholder lines replaced by the argument at their index, every line
// followed by a newline. An out-of-range index fails the call with
// ArgIndexError.
//
// With image resolution enabled, an argument string that exactly names a
// loaded image substitutes the image's raw content instead of the literal
// argument text.
//
//	g := gen.New(library, store)
//	out, err := g.Generate("badge", []string{"Ada Lovelace", "Analytical Ltd"})
//
// Generation is read-only over the library and store; a Generator is safe for
// concurrent use as long as each call writes to its own sink.
package gen
