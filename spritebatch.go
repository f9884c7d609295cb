package spritebatch

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrOutOfBounds is returned when a region does not fit inside its texture.
	ErrOutOfBounds = errors.New("spritebatch: region out of texture bounds")
	// ErrInvalidCellSize is returned by SplitTexture for non-positive cells.
	ErrInvalidCellSize = errors.New("spritebatch: invalid cell size")
	// ErrInvalidFrameDuration is returned by NewAnimation when the frame
	// duration is not strictly positive.
	ErrInvalidFrameDuration = errors.New("spritebatch: frame duration must be positive")
	// ErrNoKeyFrames is returned by NewAnimation for an empty frame list.
	ErrNoKeyFrames = errors.New("spritebatch: animation has no key frames")
	// ErrCapacityExceeded is the panic value of Queue.Push on a full queue.
	ErrCapacityExceeded = errors.New("spritebatch: sprite queue capacity exceeded")
	// ErrUnclosedBatch is the panic value raised when a batch session is left
	// open while the renderer is used again.
	ErrUnclosedBatch = errors.New("spritebatch: batch was not finished")
	// ErrBatchFinished is the panic value raised when drawing into a batch
	// that has already been finished.
	ErrBatchFinished = errors.New("spritebatch: batch already finished")
	// ErrNoImage is returned by EbitenSurface for textures with no backing image.
	ErrNoImage = errors.New("spritebatch: texture has no image")
	// ErrRotatedFrame is returned by LoadAtlas for frames packed rotated.
	ErrRotatedFrame = errors.New("spritebatch: rotated atlas frames are not supported")
)

// Color represents an RGBA tint with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the identity tint.
var ColorWhite = Color{1, 1, 1, 1}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// BlendMode picks how drawn quads combine with the target.
// The zero value disables blending.
type BlendMode uint8

const (
	BlendNone     BlendMode = iota // replace the destination
	BlendAlpha                     // source over destination
	BlendAdd                       // src + dst
	BlendMultiply                  // src * dst
	BlendScreen                    // 1 - (1-src)(1-dst)
	BlendErase                     // clears where the source is opaque
	BlendBelow                     // draws behind existing pixels
)

// EbitenBlend maps b to ebiten's blend state. Unknown modes copy.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNone:
		return ebiten.BlendCopy
	case BlendAlpha:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendBelow:
		return ebiten.BlendDestinationOver
	default:
		return ebiten.BlendCopy
	}
}

// Filter selects how textures are sampled when minified or magnified.
type Filter uint8

const (
	FilterNearest Filter = iota // nearest texel, crisp pixel art
	FilterLinear                // bilinear interpolation
)

// EbitenFilter returns the matching ebiten.Filter.
func (f Filter) EbitenFilter() ebiten.Filter {
	if f == FilterLinear {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

// Address selects how texture coordinates outside of a region are sampled.
type Address uint8

const (
	AddressUnsafe      Address = iota // no clamping, fastest
	AddressClampToZero                // transparent outside the source
	AddressRepeat                     // wrap around
)

// EbitenAddress returns the matching ebiten.Address.
func (a Address) EbitenAddress() ebiten.Address {
	switch a {
	case AddressClampToZero:
		return ebiten.AddressClampToZero
	case AddressRepeat:
		return ebiten.AddressRepeat
	default:
		return ebiten.AddressUnsafe
	}
}

// DrawParams is the draw state shared by every submission of a batch or an
// immediate draw. The zero value draws without blending, with nearest
// filtering and unsafe addressing.
type DrawParams struct {
	Blend   BlendMode
	Filter  Filter
	Address Address
}
