// Package sdfvm implements a stack virtual machine for evaluating signed
// distance fragment programs. The operand stack carries tagged scalar, vec2
// and vec3 values; programs are flat byte sequences of single-byte opcodes
// with raw little-endian float32 immediates.
//
// A VM evaluates one pixel at a time: the caller sets the ambient point and
// color, optionally populates the 16-slot register file, and either executes
// a bytecode [Program] or drives the machine directly through its operation
// methods. Execution allocates nothing.
package sdfvm

import (
	"github.com/PaulBatchelor/sdf2d"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

const (
	// StackDepth is the operand stack capacity. All shipped programs fit
	// comfortably; exceeding it is a program bug reported as overflow.
	StackDepth = 64
	// NumRegisters is the size of the externally populated register file.
	NumRegisters = 16
)

// VM is a single evaluation engine. The zero value is ready to use. A VM is
// not safe for concurrent use; rendering code keeps one VM per worker.
type VM struct {
	stack [StackDepth]Value
	n     int
	regs  [NumRegisters]Value
	point ms2.Vec
	color ms3.Vec
}

// Reset clears the operand stack. Registers and ambient inputs persist.
func (vm *VM) Reset() { vm.n = 0 }

// Depth returns the number of values on the operand stack.
func (vm *VM) Depth() int { return vm.n }

// SetPoint sets the ambient point pushed by [OpPoint].
func (vm *VM) SetPoint(p ms2.Vec) { vm.point = p }

// SetColor sets the ambient color pushed by [OpColor].
func (vm *VM) SetColor(c ms3.Vec) { vm.color = c }

// SetRegister stores v in register idx. Registers are written before a
// frame is dispatched and are read-only during execution.
func (vm *VM) SetRegister(idx int, v Value) error {
	if idx < 0 || idx >= NumRegisters {
		return ErrRegisterOutOfRange
	}
	if v.Tag() == TagNone {
		return ErrRegisterTag
	}
	vm.regs[idx] = v
	return nil
}

// SetRegisters stores vals starting at register 0.
func (vm *VM) SetRegisters(vals []Value) error {
	if len(vals) > NumRegisters {
		return ErrRegisterOutOfRange
	}
	for i, v := range vals {
		if err := vm.SetRegister(i, v); err != nil {
			return err
		}
	}
	return nil
}

// fail clears the stack and passes the error through. Any VM error leaves
// the machine idle with an empty stack.
func (vm *VM) fail(err error) error {
	vm.n = 0
	return err
}

func (vm *VM) push(v Value) error {
	if vm.n >= StackDepth {
		return vm.fail(ErrStackOverflow)
	}
	vm.stack[vm.n] = v
	vm.n++
	return nil
}

func (vm *VM) pop(want Tag) (Value, error) {
	if vm.n == 0 {
		return Value{}, vm.fail(ErrStackUnderflow)
	}
	v := vm.stack[vm.n-1]
	if v.Tag() != want {
		return Value{}, vm.fail(TypeMismatchError{Expected: want, Got: v.Tag()})
	}
	vm.n--
	return v, nil
}

// PushScalar pushes a scalar operand.
func (vm *VM) PushScalar(v float32) error { return vm.push(Scalar(v)) }

// PushVec2 pushes a vec2 operand.
func (vm *VM) PushVec2(v ms2.Vec) error { return vm.push(Vec2(v)) }

// PushVec3 pushes a vec3 operand.
func (vm *VM) PushVec3(v ms3.Vec) error { return vm.push(Vec3(v)) }

// PopScalar pops a scalar operand.
func (vm *VM) PopScalar() (float32, error) {
	v, err := vm.pop(TagScalar)
	return v.AsScalar(), err
}

// PopVec2 pops a vec2 operand.
func (vm *VM) PopVec2() (ms2.Vec, error) {
	v, err := vm.pop(TagVec2)
	return v.AsVec2(), err
}

// PopVec3 pops a vec3 operand.
func (vm *VM) PopVec3() (ms3.Vec, error) {
	v, err := vm.pop(TagVec3)
	return v.AsVec3(), err
}

// Point pushes the ambient point.
func (vm *VM) Point() error { return vm.push(Vec2(vm.point)) }

// Color pushes the ambient color.
func (vm *VM) Color() error { return vm.push(Vec3(vm.color)) }

// LoadRegister pops a scalar index, truncates it to an integer and pushes
// the register it names with its tag preserved.
func (vm *VM) LoadRegister() error {
	f, err := vm.PopScalar()
	if err != nil {
		return err
	}
	idx := int(f)
	if idx < 0 || idx >= NumRegisters {
		return vm.fail(ErrRegisterOutOfRange)
	}
	r := vm.regs[idx]
	if r.Tag() == TagNone {
		return vm.fail(ErrRegisterTag)
	}
	return vm.push(r)
}

// Normalize pops vec2 resolution and vec2 position and pushes the centered
// coordinate with unit y-extent.
func (vm *VM) Normalize() error {
	res, err := vm.PopVec2()
	if err != nil {
		return err
	}
	pos, err := vm.PopVec2()
	if err != nil {
		return err
	}
	return vm.push(Vec2(sdf2d.Normalize(pos, res)))
}

func (vm *VM) binaryScalar(f func(a, b float32) float32) error {
	b, err := vm.PopScalar()
	if err != nil {
		return err
	}
	a, err := vm.PopScalar()
	if err != nil {
		return err
	}
	return vm.push(Scalar(f(a, b)))
}

// Add pops two scalars and pushes their sum.
func (vm *VM) Add() error {
	return vm.binaryScalar(func(a, b float32) float32 { return a + b })
}

// Sub pops scalar b then scalar a and pushes a-b.
func (vm *VM) Sub() error {
	return vm.binaryScalar(func(a, b float32) float32 { return a - b })
}

// Mul pops two scalars and pushes their product.
func (vm *VM) Mul() error {
	return vm.binaryScalar(func(a, b float32) float32 { return a * b })
}

// Div pops scalar b then scalar a and pushes a/b.
func (vm *VM) Div() error {
	return vm.binaryScalar(func(a, b float32) float32 { return a / b })
}

// Add2 pops two vec2 and pushes the componentwise sum.
func (vm *VM) Add2() error {
	b, err := vm.PopVec2()
	if err != nil {
		return err
	}
	a, err := vm.PopVec2()
	if err != nil {
		return err
	}
	return vm.push(Vec2(ms2.Add(a, b)))
}

// Circle pops scalar radius and vec2 point and pushes the circle distance.
func (vm *VM) Circle() error {
	r, err := vm.PopScalar()
	if err != nil {
		return err
	}
	p, err := vm.PopVec2()
	if err != nil {
		return err
	}
	return vm.push(Scalar(sdf2d.Circle(p, r)))
}

// Poly4 pops four vec2 vertices then a vec2 point and pushes the distance
// to the quadrilateral through the vertices.
func (vm *VM) Poly4() error {
	var verts [4]ms2.Vec
	for i := 3; i >= 0; i-- {
		v, err := vm.PopVec2()
		if err != nil {
			return err
		}
		verts[i] = v
	}
	p, err := vm.PopVec2()
	if err != nil {
		return err
	}
	return vm.push(Scalar(sdf2d.Poly4(p, verts)))
}

// Roundness pops scalar r and scalar d and pushes d-r.
func (vm *VM) Roundness() error {
	r, err := vm.PopScalar()
	if err != nil {
		return err
	}
	d, err := vm.PopScalar()
	if err != nil {
		return err
	}
	return vm.push(Scalar(sdf2d.Round(d, r)))
}

// Onion pops scalar r and scalar d and pushes |d|-r.
func (vm *VM) Onion() error {
	r, err := vm.PopScalar()
	if err != nil {
		return err
	}
	d, err := vm.PopScalar()
	if err != nil {
		return err
	}
	return vm.push(Scalar(sdf2d.Onion(d, r)))
}

// Union pops two scalar distances and pushes their minimum.
func (vm *VM) Union() error {
	return vm.binaryScalar(sdf2d.Union)
}

// UnionSmooth pops scalar k and two scalar distances and pushes the
// polynomial smooth minimum.
func (vm *VM) UnionSmooth() error {
	k, err := vm.PopScalar()
	if err != nil {
		return err
	}
	b, err := vm.PopScalar()
	if err != nil {
		return err
	}
	a, err := vm.PopScalar()
	if err != nil {
		return err
	}
	return vm.push(Scalar(sdf2d.UnionSmooth(a, b, k)))
}

// Lerp pops scalar t, then scalars b and a, and pushes a+(b-a)*t.
func (vm *VM) Lerp() error {
	t, err := vm.PopScalar()
	if err != nil {
		return err
	}
	b, err := vm.PopScalar()
	if err != nil {
		return err
	}
	a, err := vm.PopScalar()
	if err != nil {
		return err
	}
	return vm.push(Scalar(sdf2d.Interp(a, b, t)))
}

// Lerp3 pops vec3 b and vec3 a, then scalar t, and pushes the componentwise
// interpolation between a and b.
func (vm *VM) Lerp3() error {
	b, err := vm.PopVec3()
	if err != nil {
		return err
	}
	a, err := vm.PopVec3()
	if err != nil {
		return err
	}
	t, err := vm.PopScalar()
	if err != nil {
		return err
	}
	return vm.push(Vec3(ms3.InterpElem(a, b, ms3.Vec{X: t, Y: t, Z: t})))
}

// GTZ pops a scalar and pushes 1 if it is positive, else 0.
func (vm *VM) GTZ() error {
	x, err := vm.PopScalar()
	if err != nil {
		return err
	}
	var r float32
	if x > 0 {
		r = 1
	}
	return vm.push(Scalar(r))
}
