// Package reactortest provides fluent assertions for driving a
// runtime.Runtime against an in-memory dom/memdom document, the
// in-process analogue of pkg/vtest's server-rendered-HTML assertions.
package reactortest
