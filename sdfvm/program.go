package sdfvm

import (
	"encoding/binary"
	"math"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Program is a bytecode fragment program. The zero value is an empty
// program; append instructions with the mnemonic methods and run it with
// [VM.Execute]. The encoded form is the wire format: single-byte opcodes
// with little-endian binary32 immediates, no header and no padding.
type Program struct {
	code []byte
}

// ReadProgram validates data as a bytecode program and returns it wrapped.
// It rejects unknown opcodes and immediates running past the end of data.
// The byte slice is copied.
func ReadProgram(data []byte) (*Program, error) {
	pc := 0
	for pc < len(data) {
		op := Opcode(data[pc])
		if op >= numOpcodes {
			return nil, UnknownOpcodeError(data[pc])
		}
		pc++
		w := op.immWidth()
		if pc+w > len(data) {
			return nil, ErrTruncatedImmediate
		}
		pc += w
	}
	code := make([]byte, len(data))
	copy(code, data)
	return &Program{code: code}, nil
}

// Bytes returns the encoded program. The slice aliases the program's
// internal buffer and must not be modified while a VM executes it.
func (p *Program) Bytes() []byte { return p.code }

// Len returns the encoded length in bytes.
func (p *Program) Len() int { return len(p.code) }

// Reset truncates the program to empty, keeping the buffer.
func (p *Program) Reset() { p.code = p.code[:0] }

func (p *Program) op(op Opcode) *Program {
	p.code = append(p.code, byte(op))
	return p
}

func (p *Program) imm(f float32) *Program {
	p.code = binary.LittleEndian.AppendUint32(p.code, math.Float32bits(f))
	return p
}

// Halt appends an explicit halt.
func (p *Program) Halt() *Program { return p.op(OpHalt) }

// Point appends a push of the ambient point.
func (p *Program) Point() *Program { return p.op(OpPoint) }

// Color appends a push of the ambient color.
func (p *Program) Color() *Program { return p.op(OpColor) }

// Scalar appends a push of the immediate scalar v.
func (p *Program) Scalar(v float32) *Program { return p.op(OpScalar).imm(v) }

// Vec2 appends a push of the immediate vec2 v.
func (p *Program) Vec2(v ms2.Vec) *Program { return p.op(OpVec2).imm(v.X).imm(v.Y) }

// Vec3 appends a push of the immediate vec3 v.
func (p *Program) Vec3(v ms3.Vec) *Program { return p.op(OpVec3).imm(v.X).imm(v.Y).imm(v.Z) }

// Register appends a push of register idx: an immediate scalar index
// followed by the register load.
func (p *Program) Register(idx int) *Program { return p.Scalar(float32(idx)).op(OpRegister) }

// Normalize appends the coordinate normalization.
func (p *Program) Normalize() *Program { return p.op(OpNormalize) }

// Add appends scalar addition.
func (p *Program) Add() *Program { return p.op(OpAdd) }

// Sub appends scalar subtraction.
func (p *Program) Sub() *Program { return p.op(OpSub) }

// Mul appends scalar multiplication.
func (p *Program) Mul() *Program { return p.op(OpMul) }

// Div appends scalar division.
func (p *Program) Div() *Program { return p.op(OpDiv) }

// Add2 appends componentwise vec2 addition.
func (p *Program) Add2() *Program { return p.op(OpAdd2) }

// Circle appends the circle distance.
func (p *Program) Circle() *Program { return p.op(OpCircle) }

// Poly4 appends the quadrilateral distance.
func (p *Program) Poly4() *Program { return p.op(OpPoly4) }

// Roundness appends the corner rounding operation.
func (p *Program) Roundness() *Program { return p.op(OpRoundness) }

// Onion appends the shell operation.
func (p *Program) Onion() *Program { return p.op(OpOnion) }

// Union appends the distance union.
func (p *Program) Union() *Program { return p.op(OpUnion) }

// UnionSmooth appends the polynomial smooth union.
func (p *Program) UnionSmooth() *Program { return p.op(OpUnionSmooth) }

// Lerp appends scalar interpolation.
func (p *Program) Lerp() *Program { return p.op(OpLerp) }

// Lerp3 appends vec3 interpolation.
func (p *Program) Lerp3() *Program { return p.op(OpLerp3) }

// GTZ appends the greater-than-zero test.
func (p *Program) GTZ() *Program { return p.op(OpGTZ) }

// Execute runs program until its end, an explicit halt, or the first error.
// The stack is cleared on entry; ambient inputs and registers must be set
// beforehand. On error the stack is cleared and the machine is left idle.
func (vm *VM) Execute(program []byte) error {
	vm.Reset()
	pc := 0
	for pc < len(program) {
		op := Opcode(program[pc])
		pc++
		w := op.immWidth()
		if pc+w > len(program) {
			return vm.fail(ErrTruncatedImmediate)
		}
		imm := program[pc : pc+w]
		pc += w

		var err error
		switch op {
		case OpHalt:
			return nil
		case OpPoint:
			err = vm.Point()
		case OpColor:
			err = vm.Color()
		case OpScalar:
			err = vm.PushScalar(leFloat(imm))
		case OpVec2:
			err = vm.PushVec2(ms2.Vec{X: leFloat(imm), Y: leFloat(imm[4:])})
		case OpVec3:
			err = vm.PushVec3(ms3.Vec{X: leFloat(imm), Y: leFloat(imm[4:]), Z: leFloat(imm[8:])})
		case OpRegister:
			err = vm.LoadRegister()
		case OpNormalize:
			err = vm.Normalize()
		case OpAdd:
			err = vm.Add()
		case OpSub:
			err = vm.Sub()
		case OpMul:
			err = vm.Mul()
		case OpDiv:
			err = vm.Div()
		case OpAdd2:
			err = vm.Add2()
		case OpCircle:
			err = vm.Circle()
		case OpPoly4:
			err = vm.Poly4()
		case OpRoundness:
			err = vm.Roundness()
		case OpOnion:
			err = vm.Onion()
		case OpUnion:
			err = vm.Union()
		case OpUnionSmooth:
			err = vm.UnionSmooth()
		case OpLerp:
			err = vm.Lerp()
		case OpLerp3:
			err = vm.Lerp3()
		case OpGTZ:
			err = vm.GTZ()
		default:
			return vm.fail(UnknownOpcodeError(byte(op)))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func leFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
