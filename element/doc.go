// Package element defines the author-facing element tree: the
// lightweight, immediately-returned values that CreateElement and the
// tag constructors build. An Element describes what should be rendered
// without rendering it; building it into a live tree is vtree's job.
package element
