// Package command drives a screen.Editor from single-letter text
// commands, one per line.
package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/32bitkid/gedit/display"
	"github.com/32bitkid/gedit/screen"
)

// Command letters
type opCode byte

const (
	opCreate     opCode = 'I'
	opClear             = 'C'
	opPaint             = 'L'
	opVertical          = 'V'
	opHorizontal        = 'H'
	opFill              = 'F'
	opShow              = 'S'
	opExit              = 'X'
)

// arity is the number of arguments each command takes. Commands that are
// missing accept and ignore any arguments.
var arity = map[opCode]int{
	opCreate:     2,
	opPaint:      3,
	opVertical:   4,
	opHorizontal: 4,
	opFill:       3,
}

const Farewell = "\n....Goodbye....\n\n"

var (
	// ErrExit is returned by Execute after the exit command.
	ErrExit = errors.New("exit requested")

	ErrArguments      = errors.New("wrong number of arguments")
	ErrUnknownCommand = errors.New("unknown command")
)

// Error is a rejected command. It is reported to the user and the
// dispatcher carries on.
type Error struct {
	Command string
	Err     error
	msg     string
}

func (e *Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

type ConfirmFunc func(prompt string) (bool, error)

func (fn ConfirmFunc) Confirm(prompt string) (bool, error) { return fn(prompt) }

// AlwaysConfirm answers yes without asking.
var AlwaysConfirm = ConfirmFunc(func(string) (bool, error) { return true, nil })

type Options struct {
	Renderer  display.Renderer
	Confirmer Confirmer
	Logger    logrus.FieldLogger
}

type Dispatcher struct {
	editor    screen.Editor
	out       io.Writer
	renderer  display.Renderer
	confirmer Confirmer
	log       logrus.FieldLogger
}

// NewDispatcher returns a Dispatcher writing to out. Without a Confirmer,
// re-creating an existing grid is always confirmed.
func NewDispatcher(editor screen.Editor, out io.Writer, options ...Options) *Dispatcher {
	d := &Dispatcher{
		editor:    editor,
		out:       out,
		renderer:  display.Text{},
		confirmer: AlwaysConfirm,
	}

	for _, opts := range options {
		if opts.Renderer != nil {
			d.renderer = opts.Renderer
		}
		if opts.Confirmer != nil {
			d.confirmer = opts.Confirmer
		}
		if opts.Logger != nil {
			d.log = opts.Logger
		}
	}

	if d.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.log = l
	}

	return d
}

// Execute runs a single input line. Rejected commands are reported on the
// output and yield a nil error; only write failures, confirmation failures
// and ErrExit are returned.
func (d *Dispatcher) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	log := d.log.WithField("command", fields[0])
	log.WithField("args", fields[1:]).Debug("executing command")

	err := d.execute(fields[0], fields[1:])

	var cmdErr *Error
	if errors.As(err, &cmdErr) {
		log.WithError(err).Debug("command rejected")
		_, err = fmt.Fprintf(d.out, "ERROR: %s\n", cmdErr)
	}
	return err
}

func (d *Dispatcher) execute(name string, args []string) error {
	if len(name) != 1 {
		return unknownCommand(name)
	}

	op := opCode(name[0])
	if n, ok := arity[op]; ok && len(args) != n {
		msg := fmt.Sprintf(
			"you have entered an insufficient number of arguments for the %q command",
			name,
		)
		return &Error{Command: name, Err: ErrArguments, msg: msg}
	}

	switch op {
	case opCreate:
		return d.create(args[0], args[1])
	case opClear:
		if !d.editor.Exists() {
			return noImage(name, "there is no image to clear. You must create an image using the \"I\" command first")
		}
		return reject(name, d.editor.Clear())
	case opPaint:
		if !d.editor.Exists() {
			return noImage(name, "you must create an image using the \"I\" command before you can color any pixels")
		}
		return d.paint(name, args)
	case opVertical, opHorizontal:
		if !d.editor.Exists() {
			return noImage(name, "you must create an image using the \"I\" command before you can draw any lines")
		}
		return d.segment(op, name, args)
	case opFill:
		if !d.editor.Exists() {
			return noImage(name, "you must create an image using the \"I\" command before you can fill any space")
		}
		return d.fill(name, args)
	case opShow:
		if !d.editor.Exists() {
			return noImage(name, "there is no image to show. You must create an image using the \"I\" command first")
		}
		return d.show(name)
	case opExit:
		if _, err := io.WriteString(d.out, Farewell); err != nil {
			return err
		}
		return ErrExit
	}

	return unknownCommand(name)
}

func (d *Dispatcher) create(colsArg, rowsArg string) error {
	columns, err := screen.ParseDimension("columns", colsArg)
	if err != nil {
		return reject("I", err)
	}
	rows, err := screen.ParseDimension("rows", rowsArg)
	if err != nil {
		return reject("I", err)
	}
	if err := screen.ValidateDimensions(columns, rows); err != nil {
		return reject("I", err)
	}

	if d.editor.Exists() {
		oldCols, oldRows := d.editor.Bounds()
		prompt := fmt.Sprintf(
			"This will erase your current %d X %d image\nAre you sure you wish to proceed? [Y/N]?\n",
			oldCols, oldRows,
		)
		ok, err := d.confirmer.Confirm(prompt)
		if err != nil {
			return err
		}
		if !ok {
			d.log.Info("re-create cancelled")
			_, err := io.WriteString(d.out, "Task cancelled by user.\n")
			return err
		}
		d.log.WithFields(logrus.Fields{
			"columns": columns,
			"rows":    rows,
		}).Info("replacing existing image")
	}

	return reject("I", d.editor.Create(columns, rows))
}

// coordinates parses and range checks (col, row) pairs, in order. Each
// pair is fully checked before the next one is parsed.
func (d *Dispatcher) coordinates(name string, pairs ...[2]string) ([][2]int, error) {
	out := make([][2]int, len(pairs))
	for i, pair := range pairs {
		for j, token := range pair {
			v, err := screen.ParseCoordinate(token)
			if err != nil {
				return nil, reject(name, err)
			}
			out[i][j] = v
		}
		if err := d.editor.ValidateCoordinate(out[i][0], out[i][1]); err != nil {
			return nil, reject(name, err)
		}
	}
	return out, nil
}

func (d *Dispatcher) paint(name string, args []string) error {
	p, err := d.coordinates(name, [2]string{args[0], args[1]})
	if err != nil {
		return err
	}
	c, err := screen.ParseColor(args[2])
	if err != nil {
		return reject(name, err)
	}
	return reject(name, d.editor.Paint(p[0][0], p[0][1], c))
}

func (d *Dispatcher) segment(op opCode, name string, args []string) error {
	var (
		axis  screen.Axis
		pairs [2][2]string
	)

	// V X Y1 Y2 C, H X1 X2 Y C
	switch op {
	case opVertical:
		axis = screen.Column
		pairs = [2][2]string{{args[0], args[1]}, {args[0], args[2]}}
	default:
		axis = screen.Row
		pairs = [2][2]string{{args[0], args[2]}, {args[1], args[2]}}
	}

	p, err := d.coordinates(name, pairs[0], pairs[1])
	if err != nil {
		return err
	}
	c, err := screen.ParseColor(args[3])
	if err != nil {
		return reject(name, err)
	}

	start, end := p[0], p[1]
	if axis == screen.Column {
		return reject(name, d.editor.Segment(axis, start[0], start[1], end[1], c))
	}
	return reject(name, d.editor.Segment(axis, start[1], start[0], end[0], c))
}

func (d *Dispatcher) fill(name string, args []string) error {
	p, err := d.coordinates(name, [2]string{args[0], args[1]})
	if err != nil {
		return err
	}
	c, err := screen.ParseColor(args[2])
	if err != nil {
		return reject(name, err)
	}
	return reject(name, d.editor.Fill(p[0][0], p[0][1], c))
}

func (d *Dispatcher) show(name string) error {
	if r, ok := d.renderer.(display.ImageRenderer); ok {
		img, err := d.editor.Image()
		if err != nil {
			return reject(name, err)
		}
		return r.RenderImage(d.out, img)
	}

	rows, err := d.editor.Rows()
	if err != nil {
		return reject(name, err)
	}
	return d.renderer.Render(d.out, rows)
}

func reject(name string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Command: name, Err: err}
}

func noImage(name, msg string) error {
	return &Error{Command: name, Err: screen.ErrNoImage, msg: msg}
}

func unknownCommand(name string) error {
	return &Error{
		Command: name,
		Err:     ErrUnknownCommand,
		msg:     fmt.Sprintf("invalid command %q. Please try again", name),
	}
}
