// Package intent defines the canonical intent vocabulary: the tagged union
// of requests actors publish into the choreographer's merged stream. Go has
// no sum types, so the union is expressed the idiomatic way — an Intent
// interface implemented by one concrete struct per variant, each embedding
// Base for the sender/priority/correlation-ID fields every variant shares.
package intent
