//go:build tinygo || !cgo

package viewer

import (
	"errors"

	"github.com/soypat/glgl/math/ms3"
)

func show(buf []ms3.Vec, width, height int, title string) error {
	return errors.New("require cgo for window rendering")
}
