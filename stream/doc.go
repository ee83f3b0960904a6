// Package stream provides pull-driven structural events for TDoc
// documents.
//
// The parse package pushes directives into an Emitter; this package
// turns that around into an explicit iterator: a Decoder reads lines
// from an io.Reader and yields one Event per ReadEvent call, computing
// nothing until asked. The sequence is finite and not restartable.
//
// # Example: Decoding
//
//	dec := stream.NewDecoder(reader)
//	event, _ := dec.ReadEvent() // EventDocumentStart
//	event, _ := dec.ReadEvent() // EventNodeStart("document")
//	...
//	event, err := dec.ReadEvent() // err == io.EOF after EventDocumentEnd
//
// The EventEmitter implementing parse.Emitter is also usable directly
// for diagnostics: it renders each parser directive as one tagged Event
// record, decoupling parsing from serialization.
package stream
