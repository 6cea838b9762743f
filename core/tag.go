package core

import (
	"fmt"
	"reflect"
)

// Loggable is implemented by anything that can tag a log line.
// The name is rendered in the "[name @ id]" line prefix.
type Loggable interface {
	ItemName() string
}

// Identifier lets a tag supply its own identity token instead of its address.
type Identifier interface {
	LogID() string
}

// Parented is implemented by tags that belong to an enclosing context.
// A non-nil parent is rendered in front of the tag's own prefix.
type Parented interface {
	LogParent() Loggable
}

// LevelOffsetter shifts the level of messages logged with the tag.
// PanicLevel messages are never shifted.
type LevelOffsetter interface {
	LogLevelOffset() int
}

// Class is the default Loggable: a component known only by its name.
type Class struct {
	Name string
}

// ItemName returns the class name.
func (c *Class) ItemName() string {
	if c == nil {
		return "NULL"
	}
	return c.Name
}

// Identity returns the stable identity token for tag.
func Identity(tag Loggable) string {
	if id, ok := tag.(Identifier); ok {
		return id.LogID()
	}
	switch reflect.ValueOf(tag).Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%p", tag)
	default:
		return "0x0"
	}
}

// Parent returns the tag's enclosing context, or nil.
func Parent(tag Loggable) Loggable {
	if p, ok := tag.(Parented); ok {
		return p.LogParent()
	}
	return nil
}

// AdjustLevel applies the tag's level offset to level. Only levels at
// FatalLevel or less severe are shifted, so panics are never demoted.
func AdjustLevel(tag Loggable, level Level) Level {
	if tag == nil || level < FatalLevel {
		return level
	}
	if o, ok := tag.(LevelOffsetter); ok {
		return level + Level(o.LogLevelOffset())
	}
	return level
}
