// Package runtag stamps each top-level CLI invocation with a correlation
// id, so concurrent CI log streams for the same build can be told apart at a
// glance.
package runtag

import (
	"github.com/google/uuid"
	"github.com/goombaio/namegenerator"
)

// Tag identifies one forge invocation.
type Tag struct {
	ID   string
	Name string
}

// New mints a fresh Tag: a UUID for machine correlation and a
// human-readable adjective-noun name for humans reading logs.
func New(seed int64) Tag {
	generator := namegenerator.NewNameGenerator(seed)
	return Tag{
		ID:   uuid.NewString(),
		Name: generator.Generate(),
	}
}
