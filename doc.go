// Package rdfopts is a typed registry of the options shared by RDF parsers,
// serializers, the SAX2 XML reader and the Turtle and XML writers.
//
// The catalog is static: every option has a dense ID, a value type, an Area
// mask, a short name and a canonical URI under URIPrefix. A World supplies
// the runtime collaborators (URI factory, query evaluator, schema generator,
// activity hooks) and hands out Settings, the type-checked accessors over a
// per-object State.
package rdfopts
