// Package model provides parsing and loading of stencil models.
//
// A model is a line-oriented template. Each line is either literal text,
// copied through verbatim, or a placeholder of the form:
//
//	#GET <n>
//
// where <n> is a non-negative decimal argument index. The marker must occupy
// the whole line (surrounding whitespace ignored); a line that merely contains
// the marker somewhere is literal.
//
// A model file may open with a YAML frontmatter block describing the model:
//
//	---
//	description: Conference badge, front face
//	args: [attendee name, company]
//	---
//	<svg ...>
//	  #GET 0
//	</svg>
//
// The frontmatter is stripped before line parsing and never appears in
// generated output.
//
// Models are resolved by name (file stem) through a Library, which checks the
// workspace models directory first and then the user's global library.
package model
