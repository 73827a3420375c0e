// Package tiles computes how pages cut into a grid of tiles were scrambled
// with a seedrandom shuffle, and the copies that put them back.
package tiles

import (
	"image"

	"github.com/pkg/errors"

	"github.com/Jx2f/seedrandom/pkg/crypto/seedrandom"
)

var (
	ErrInvalidGrid    = errors.New("invalid tile grid")
	ErrNotPermutation = errors.New("not a permutation")
)

type Grid struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

func (g Grid) Len() int { return g.Columns * g.Rows }

func (g Grid) Validate() error {
	if g.Columns <= 0 || g.Rows <= 0 {
		return errors.Wrapf(ErrInvalidGrid, "%dx%d", g.Columns, g.Rows)
	}
	return nil
}

// Rect is the pixel rectangle of tile index in a width x height image.
// Tiles are laid out row-major and all share one integer size; the
// remainder strips on the right and bottom are covered by Strips. An
// invalid grid yields the empty rectangle.
func (g Grid) Rect(index, width, height int) image.Rectangle {
	if g.Validate() != nil {
		return image.Rectangle{}
	}
	w, h := width/g.Columns, height/g.Rows
	x, y := (index%g.Columns)*w, (index/g.Columns)*h
	return image.Rect(x, y, x+w, y+h)
}

// Strips returns the pixels no tile covers: the right strip (full
// height) and the bottom strip under the tiles. They are never scrambled.
func (g Grid) Strips(width, height int) []image.Rectangle {
	if g.Validate() != nil {
		return nil
	}
	tw, th := width/g.Columns*g.Columns, height/g.Rows*g.Rows
	var strips []image.Rectangle
	if tw < width {
		strips = append(strips, image.Rect(tw, 0, width, height))
	}
	if th < height {
		strips = append(strips, image.Rect(0, th, tw, height))
	}
	return strips
}

// Order returns the scrambled layout for seed: slot k of the scrambled
// image holds the tile that belongs at order[k].
func Order(seed string, g Grid) ([]int, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return seedrandom.New(seed).Perm(g.Len()), nil
}

func Inverse(order []int) ([]int, error) {
	inv := make([]int, len(order))
	for i := range inv {
		inv[i] = -1
	}
	for k, v := range order {
		if v < 0 || v >= len(order) || inv[v] != -1 {
			return nil, errors.Wrapf(ErrNotPermutation, "index %d holds %d", k, v)
		}
		inv[v] = k
	}
	return inv, nil
}

type Move struct {
	From image.Rectangle `json:"from"`
	To   image.Rectangle `json:"to"`
}

// Moves lists the copies from a scrambled image into a blank one that
// restore the original picture: one per tile, in slot order, followed by
// in-place copies of the remainder strips. Every pixel is written once.
func Moves(seed string, g Grid, width, height int) ([]Move, error) {
	if width < g.Columns || height < g.Rows {
		return nil, errors.Wrapf(ErrInvalidGrid, "%dx%d image is smaller than %dx%d grid", width, height, g.Columns, g.Rows)
	}
	order, err := Order(seed, g)
	if err != nil {
		return nil, err
	}
	moves := make([]Move, len(order))
	for k, src := range order {
		moves[k] = Move{
			From: g.Rect(k, width, height),
			To:   g.Rect(src, width, height),
		}
	}
	for _, r := range g.Strips(width, height) {
		moves = append(moves, Move{From: r, To: r})
	}
	return moves, nil
}
