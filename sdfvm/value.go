package sdfvm

import (
	"fmt"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Tag discriminates the kind of value held by a [Value].
type Tag uint8

const (
	// TagNone marks an empty stack slot or unset register.
	TagNone Tag = iota
	TagScalar
	TagVec2
	TagVec3
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagScalar:
		return "scalar"
	case TagVec2:
		return "vec2"
	case TagVec3:
		return "vec3"
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Value is a tagged stack or register slot holding a scalar, vec2 or vec3.
// The zero Value is untagged and invalid as an operand.
type Value struct {
	tag     Tag
	x, y, z float32
}

// Scalar returns a scalar Value.
func Scalar(v float32) Value {
	return Value{tag: TagScalar, x: v}
}

// Vec2 returns a 2-vector Value.
func Vec2(v ms2.Vec) Value {
	return Value{tag: TagVec2, x: v.X, y: v.Y}
}

// Vec3 returns a 3-vector Value.
func Vec3(v ms3.Vec) Value {
	return Value{tag: TagVec3, x: v.X, y: v.Y, z: v.Z}
}

// Tag returns the value's kind.
func (v Value) Tag() Tag { return v.tag }

// AsScalar returns the scalar payload. Valid only when Tag is [TagScalar].
func (v Value) AsScalar() float32 { return v.x }

// AsVec2 returns the vec2 payload. Valid only when Tag is [TagVec2].
func (v Value) AsVec2() ms2.Vec { return ms2.Vec{X: v.x, Y: v.y} }

// AsVec3 returns the vec3 payload. Valid only when Tag is [TagVec3].
func (v Value) AsVec3() ms3.Vec { return ms3.Vec{X: v.x, Y: v.y, Z: v.z} }

func (v Value) String() string {
	switch v.tag {
	case TagScalar:
		return fmt.Sprintf("%g", v.x)
	case TagVec2:
		return fmt.Sprintf("(%g,%g)", v.x, v.y)
	case TagVec3:
		return fmt.Sprintf("(%g,%g,%g)", v.x, v.y, v.z)
	}
	return "<none>"
}
