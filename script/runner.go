package script

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/isogrid/common"
	"github.com/milk9111/isogrid/grid"
	"github.com/milk9111/isogrid/stages"
)

var ErrUnknownTile = errors.New("script: unknown tile")

// Runner executes build scripts against a stage. Each builtin maps onto a
// single stage operation; stage errors come back to the script as error
// values so a script can test them with is_error.
type Runner struct {
	stage *grid.Stage
	noise *perlin.Perlin
}

func NewRunner(stage *grid.Stage, seed int64) *Runner {
	return &Runner{
		stage: stage,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (r *Runner) Stage() *grid.Stage {
	return r.stage
}

// RunFile loads name from disk or the embedded scripts and runs it.
func (r *Runner) RunFile(name string) error {
	src, err := stages.LoadScript(name)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", name, err)
	}
	if err := r.Run(src); err != nil {
		return fmt.Errorf("script: %s: %w", name, err)
	}
	return nil
}

func (r *Runner) Run(src []byte) error {
	if r == nil || r.stage == nil {
		return errors.New("script: no stage")
	}

	s := tengo.NewScript(src)
	for name, fn := range r.builtins() {
		if err := s.Add(name, &tengo.UserFunction{Name: name, Value: fn}); err != nil {
			return err
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return err
	}
	return compiled.Run()
}

// Noise returns 2D perlin noise scaled to [0, 1].
func (r *Runner) Noise(x, y float64) float64 {
	n := (r.noise.Noise2D(x, y) + 1) / 2
	return max(0, min(1, n))
}

func (r *Runner) builtins() map[string]tengo.CallableFunc {
	return map[string]tengo.CallableFunc{
		"init":        r.initGrid,
		"place":       r.place,
		"remove":      r.remove,
		"select":      r.selectTile,
		"deselect":    r.deselect,
		"move":        r.move,
		"reset":       r.reset,
		"commit":      r.commit,
		"scale":       r.scale,
		"reset_scale": r.resetScale,
		"extrude":     r.extrude,
		"cell":        r.cell,
		"noise":       r.noise2D,
	}
}

func (r *Runner) initGrid(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	w, err := intArg(args, 0, "width")
	if err != nil {
		return nil, err
	}
	l, err := intArg(args, 1, "length")
	if err != nil {
		return nil, err
	}
	cfg := r.stage.Config()
	return result(r.stage.InitializeGrid(w, l, cfg.Origin, cfg.Centered))
}

func (r *Runner) place(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	cell, obj, err := r.cellArgs(args)
	if obj != nil || err != nil {
		return obj, err
	}
	idx, err := r.tileArg(args[2])
	if err != nil {
		return wrapError(err), nil
	}
	_, err = r.stage.Place(cell, idx)
	return result(err)
}

func (r *Runner) remove(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	cell, obj, err := r.cellArgs(args)
	if obj != nil || err != nil {
		return obj, err
	}
	return result(r.stage.Remove(cell))
}

func (r *Runner) selectTile(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	cell, obj, err := r.cellArgs(args)
	if obj != nil || err != nil {
		return obj, err
	}
	_, err = r.stage.Select(cell)
	return result(err)
}

func (r *Runner) deselect(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	r.stage.Deselect()
	return tengo.TrueValue, nil
}

func (r *Runner) move(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 4 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := floatArgs(args, "grid_x", "grid_y", "world_x", "world_y")
	if err != nil {
		return nil, err
	}
	return result(r.stage.SetMove(v[0], v[1], v[2], v[3]))
}

func (r *Runner) reset(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return result(r.stage.ResetPositions())
}

func (r *Runner) commit(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return result(r.stage.CommitPositions())
}

func (r *Runner) scale(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := floatArgs(args, "x", "y")
	if err != nil {
		return nil, err
	}
	return result(r.stage.Scale(v[0], v[1]))
}

func (r *Runner) resetScale(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	return result(r.stage.ResetScale())
}

func (r *Runner) extrude(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := floatArgs(args, "x", "y", "z")
	if err != nil {
		return nil, err
	}
	return result(r.stage.Extrude(common.Vec3{X: v[0], Y: v[1], Z: v[2]}))
}

// cell returns a snapshot map of the cell at (x, y), or undefined.
func (r *Runner) cell(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	x, err := intArg(args, 0, "x")
	if err != nil {
		return nil, err
	}
	y, err := intArg(args, 1, "y")
	if err != nil {
		return nil, err
	}
	c, ok := r.stage.CellAt(grid.Coord{X: x, Y: y})
	if !ok {
		return tengo.UndefinedValue, nil
	}

	out := map[string]tengo.Object{
		"x":           &tengo.Int{Value: int64(c.Coord.X)},
		"y":           &tengo.Int{Value: int64(c.Coord.Y)},
		"height":      &tengo.Int{Value: int64(c.Height)},
		"base_height": &tengo.Int{Value: int64(c.BaseHeight)},
		"world":       vecObject(c.World),
		"occupied":    tengo.FalseValue,
		"tile":        tengo.UndefinedValue,
	}
	if t, ok := r.stage.Occupant(c); ok {
		out["occupied"] = tengo.TrueValue
		out["tile"] = &tengo.String{Value: t.Sprite}
		out["category"] = &tengo.String{Value: t.Category.String()}
	}
	return &tengo.ImmutableMap{Value: out}, nil
}

func (r *Runner) noise2D(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	v, err := floatArgs(args, "x", "y")
	if err != nil {
		return nil, err
	}
	return &tengo.Float{Value: r.Noise(v[0], v[1])}, nil
}

// cellArgs resolves the first two arguments to a frontier cell. A missing
// cell is reported to the script rather than aborting it.
func (r *Runner) cellArgs(args []tengo.Object) (*grid.Cell, tengo.Object, error) {
	x, err := intArg(args, 0, "x")
	if err != nil {
		return nil, nil, err
	}
	y, err := intArg(args, 1, "y")
	if err != nil {
		return nil, nil, err
	}
	c, ok := r.stage.CellAt(grid.Coord{X: x, Y: y})
	if !ok {
		return nil, wrapError(fmt.Errorf("%w: %v", grid.ErrUnknownCell, grid.Coord{X: x, Y: y})), nil
	}
	return c, nil, nil
}

// tileArg accepts a catalog index or a tile name.
func (r *Runner) tileArg(obj tengo.Object) (int, error) {
	if s, ok := obj.(*tengo.String); ok {
		for i, def := range r.stage.Catalog() {
			if def.Name == s.Value {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: %q", ErrUnknownTile, s.Value)
	}
	i, ok := tengo.ToInt(obj)
	if !ok {
		return -1, tengo.ErrInvalidArgumentType{Name: "tile", Expected: "int or string", Found: obj.TypeName()}
	}
	return i, nil
}

func intArg(args []tengo.Object, i int, name string) (int, error) {
	v, ok := tengo.ToInt(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: name, Expected: "int", Found: args[i].TypeName()}
	}
	return v, nil
}

func floatArgs(args []tengo.Object, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, ok := tengo.ToFloat64(args[i])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: name, Expected: "float", Found: args[i].TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func vecObject(v common.Vec3) tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x": &tengo.Float{Value: v.X},
		"y": &tengo.Float{Value: v.Y},
		"z": &tengo.Float{Value: v.Z},
	}}
}

func result(err error) (tengo.Object, error) {
	if err != nil {
		return wrapError(err), nil
	}
	return tengo.TrueValue, nil
}

func wrapError(err error) tengo.Object {
	return &tengo.Error{Value: &tengo.String{Value: err.Error()}}
}
