// Package emit provides the output emitters for the TDoc parser.
//
// An emitter implements parse.Emitter and defines one output shape:
//
//   - XML: an XML rendition of the document
//   - TDoc: the normalized canonical notation
//   - Null: placeholders only, for syntax checking
//
// The event-trace emitter lives in the stream package. Emitters own
// only their own formatting state and never reach into the parser.
package emit
