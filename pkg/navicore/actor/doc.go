// Package actor defines the intent-producer contract and the two generic
// actors (user, system) every navicore application wires in: a named
// intent source with a sender tag, a default priority, and an outbound
// intent stream, translating a higher-level API (Navigate, Back, ...) into
// canonical intent variants. Concrete hardware-backed actors, such as
// actor/evdev, implement the same Source contract.
package actor
